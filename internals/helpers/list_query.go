// file: internals/helpers/list_query.go
package helper

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

/* ===============================
   List request body
   {query, options:{page,limit,sort}, isCountOnly}
=================================*/

type ListOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Sort  string `json:"sort"` // "col" asc, "-col" desc
}

type ListRequest struct {
	Query       map[string]interface{} `json:"query"`
	Options     ListOptions            `json:"options"`
	IsCountOnly bool                   `json:"isCountOnly"`
}

func (r *ListRequest) Normalize(defaultLimit, maxLimit int) {
	if r.Options.Page < 1 {
		r.Options.Page = 1
	}
	if r.Options.Limit <= 0 {
		r.Options.Limit = defaultLimit
	}
	if maxLimit > 0 && r.Options.Limit > maxLimit {
		r.Options.Limit = maxLimit
	}
}

func (r *ListRequest) Offset() int {
	return (r.Options.Page - 1) * r.Options.Limit
}

// ApplyFilter adds WHERE clauses for every whitelisted filter key.
// allowed maps the JSON field name to the real column. Array values become IN.
func ApplyFilter(tx *gorm.DB, query map[string]interface{}, allowed map[string]string) (*gorm.DB, error) {
	for key, val := range query {
		col, ok := allowed[key]
		if !ok {
			return nil, fmt.Errorf("filter on %q is not allowed", key)
		}
		switch v := val.(type) {
		case []interface{}:
			tx = tx.Where(col+" IN ?", v)
		case nil:
			tx = tx.Where(col + " IS NULL")
		default:
			tx = tx.Where(col+" = ?", v)
		}
	}
	return tx, nil
}

// SafeOrderClause resolves the sort option against a column whitelist.
func SafeOrderClause(sort string, allowed map[string]string, defaultClause string) (string, error) {
	sort = strings.TrimSpace(sort)
	if sort == "" {
		return defaultClause, nil
	}
	dir := "ASC"
	if strings.HasPrefix(sort, "-") {
		dir = "DESC"
		sort = sort[1:]
	}
	col, ok := allowed[sort]
	if !ok {
		return "", fmt.Errorf("sort on %q is not allowed", sort)
	}
	return col + " " + dir, nil
}
