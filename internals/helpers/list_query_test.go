package helper

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		name           string
		page, limit    int
		wantPage       int
		wantLimit      int
	}{
		{"zero values", 0, 0, 1, 20},
		{"negative page", -3, 10, 1, 10},
		{"over max", 1, 500, 1, 100},
		{"normal", 2, 50, 2, 50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := ListRequest{Options: ListOptions{Page: tc.page, Limit: tc.limit}}
			req.Normalize(20, 100)
			if req.Options.Page != tc.wantPage {
				t.Errorf("page = %d, want %d", req.Options.Page, tc.wantPage)
			}
			if req.Options.Limit != tc.wantLimit {
				t.Errorf("limit = %d, want %d", req.Options.Limit, tc.wantLimit)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	req := ListRequest{Options: ListOptions{Page: 3, Limit: 25}}
	if got := req.Offset(); got != 50 {
		t.Errorf("offset = %d, want 50", got)
	}
}

func TestSafeOrderClause(t *testing.T) {
	allowed := map[string]string{
		"piece_position":   "piece_position",
		"piece_created_at": "piece_created_at",
	}

	got, err := SafeOrderClause("", allowed, "piece_created_at DESC")
	if err != nil || got != "piece_created_at DESC" {
		t.Errorf("empty sort = %q, %v", got, err)
	}

	got, err = SafeOrderClause("piece_position", allowed, "")
	if err != nil || got != "piece_position ASC" {
		t.Errorf("asc sort = %q, %v", got, err)
	}

	got, err = SafeOrderClause("-piece_position", allowed, "")
	if err != nil || got != "piece_position DESC" {
		t.Errorf("desc sort = %q, %v", got, err)
	}

	if _, err = SafeOrderClause("user_password", allowed, ""); err == nil {
		t.Error("unlisted column accepted")
	}

	if _, err = SafeOrderClause("piece_position; DROP TABLE pieces", allowed, ""); err == nil {
		t.Error("injection attempt accepted")
	}
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(95, 2, 20)
	if p.Total != 95 {
		t.Errorf("total = %d", p.Total)
	}
	if p.Page != 2 {
		t.Errorf("page = %d", p.Page)
	}
	if p.TotalPages != 5 {
		t.Errorf("total pages = %d, want 5", p.TotalPages)
	}

	// an empty set still reports one page
	p = BuildPaginationFromPage(0, 1, 20)
	if p.TotalPages != 1 {
		t.Errorf("total pages = %d for empty set, want 1", p.TotalPages)
	}
	if p.HasNext || p.HasPrev {
		t.Error("empty set claims neighbours")
	}
}
