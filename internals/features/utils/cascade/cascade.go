// file: internals/features/utils/cascade/cascade.go
//
// Cascade delete for the whole entity graph, driven by one relationship
// table instead of a hand-written fan-out per entity. Controllers call
// SoftDelete/HardDelete with the parent table name and ids; dependents are
// walked recursively inside the caller's transaction.
package cascade

import (
	"fmt"

	"gorm.io/gorm"
)

type Action int

const (
	ActionDelete  Action = iota // dependent rows go away with the parent
	ActionNullify               // dependent keeps the row, loses the reference
)

type entity struct {
	PK      string
	SoftCol string // is_deleted flag column; "" = hard delete only
}

type Rule struct {
	Parent    string
	Dependent string
	FKs       []string // any of these columns referencing the parent id
	Action    Action
}

var entities = map[string]entity{
	"users":           {PK: "user_id", SoftCol: "user_is_deleted"},
	"roles":           {PK: "role_id", SoftCol: "role_is_deleted"},
	"project_routes":  {PK: "project_route_id", SoftCol: "project_route_is_deleted"},
	"route_roles":     {PK: "route_role_id", SoftCol: "route_role_is_deleted"},
	"user_roles":      {PK: "user_role_id", SoftCol: "user_role_is_deleted"},
	"games":           {PK: "game_id", SoftCol: "game_is_deleted"},
	"tables":          {PK: "table_id", SoftCol: "table_is_deleted"},
	"slots":           {PK: "slot_id", SoftCol: "slot_is_deleted"},
	"pieces":          {PK: "piece_id", SoftCol: "piece_is_deleted"},
	"piece_templates": {PK: "piece_template_id", SoftCol: "piece_template_is_deleted"},
	"moves":           {PK: "move_id", SoftCol: "move_is_deleted"},
	"chat_groups":     {PK: "chat_group_id", SoftCol: "chat_group_is_deleted"},
	"chat_messages":   {PK: "chat_message_id", SoftCol: "chat_message_is_deleted"},
}

// rules mirror the ownership graph: one row per parent→dependent edge.
var rules = []Rule{
	{Parent: "users", Dependent: "user_roles", FKs: []string{"user_role_user_id"}, Action: ActionDelete},
	{Parent: "users", Dependent: "games", FKs: []string{"game_added_by", "game_updated_by"}, Action: ActionDelete},
	{Parent: "users", Dependent: "tables", FKs: []string{"table_added_by", "table_updated_by"}, Action: ActionDelete},
	{Parent: "users", Dependent: "slots", FKs: []string{"slot_added_by", "slot_updated_by"}, Action: ActionDelete},
	{Parent: "users", Dependent: "pieces", FKs: []string{"piece_added_by", "piece_updated_by"}, Action: ActionDelete},
	{Parent: "users", Dependent: "piece_templates", FKs: []string{"piece_template_added_by", "piece_template_updated_by"}, Action: ActionDelete},
	{Parent: "users", Dependent: "moves", FKs: []string{"move_added_by"}, Action: ActionDelete},
	{Parent: "users", Dependent: "chat_groups", FKs: []string{"chat_group_added_by", "chat_group_updated_by"}, Action: ActionDelete},
	{Parent: "users", Dependent: "chat_messages", FKs: []string{"chat_message_added_by", "chat_message_updated_by"}, Action: ActionDelete},

	{Parent: "roles", Dependent: "route_roles", FKs: []string{"route_role_role_id"}, Action: ActionDelete},
	{Parent: "roles", Dependent: "user_roles", FKs: []string{"user_role_role_id"}, Action: ActionDelete},
	{Parent: "project_routes", Dependent: "route_roles", FKs: []string{"route_role_route_id"}, Action: ActionDelete},

	{Parent: "chat_groups", Dependent: "chat_messages", FKs: []string{"chat_message_group_id"}, Action: ActionDelete},
	{Parent: "chat_groups", Dependent: "games", FKs: []string{"game_chat_id"}, Action: ActionNullify},

	{Parent: "games", Dependent: "tables", FKs: []string{"table_game_id"}, Action: ActionDelete},
	{Parent: "tables", Dependent: "slots", FKs: []string{"slot_table_id"}, Action: ActionDelete},
	{Parent: "slots", Dependent: "moves", FKs: []string{"move_target_slot_id"}, Action: ActionDelete},

	{Parent: "pieces", Dependent: "slots", FKs: []string{"slot_piece_id"}, Action: ActionNullify},
	{Parent: "pieces", Dependent: "moves", FKs: []string{"move_piece_id"}, Action: ActionDelete},
	{Parent: "piece_templates", Dependent: "pieces", FKs: []string{"piece_template_id"}, Action: ActionNullify},
}

// SoftDelete flips the is_deleted flag on every dependent of the given
// parent rows, recursively. The parent rows themselves are the caller's job.
func SoftDelete(tx *gorm.DB, parent string, ids []interface{}) error {
	return walk(tx, parent, ids, true)
}

// HardDelete removes every dependent of the given parent rows, recursively.
func HardDelete(tx *gorm.DB, parent string, ids []interface{}) error {
	return walk(tx, parent, ids, false)
}

func walk(tx *gorm.DB, parent string, ids []interface{}, soft bool) error {
	if len(ids) == 0 {
		return nil
	}
	for _, rule := range rules {
		if rule.Parent != parent {
			continue
		}
		dep, ok := entities[rule.Dependent]
		if !ok {
			return fmt.Errorf("cascade: unknown entity %q", rule.Dependent)
		}

		cond, args := fkCondition(rule.FKs, ids)

		if rule.Action == ActionNullify {
			// a nullified reference keeps the row; only single-column rules
			// make sense here
			if err := tx.Table(rule.Dependent).
				Where(cond, args...).
				Update(rule.FKs[0], nil).Error; err != nil {
				return err
			}
			continue
		}

		// collect dependent ids first so their own dependents go too
		var depIDs []interface{}
		rows, err := tx.Table(rule.Dependent).Select(dep.PK).Where(cond, args...).Rows()
		if err != nil {
			return err
		}
		for rows.Next() {
			var id interface{}
			if err := rows.Scan(&id); err != nil {
				rows.Close()
				return err
			}
			depIDs = append(depIDs, id)
		}
		rows.Close()

		if len(depIDs) == 0 {
			continue
		}
		if err := walk(tx, rule.Dependent, depIDs, soft); err != nil {
			return err
		}

		if soft {
			if dep.SoftCol == "" {
				continue
			}
			if err := tx.Table(rule.Dependent).
				Where(dep.PK+" IN ?", depIDs).
				Update(dep.SoftCol, true).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Table(rule.Dependent).
				Where(dep.PK+" IN ?", depIDs).
				Delete(nil).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func fkCondition(fks []string, ids []interface{}) (string, []interface{}) {
	cond := ""
	args := make([]interface{}, 0, len(fks))
	for i, fk := range fks {
		if i > 0 {
			cond += " OR "
		}
		cond += fk + " IN ?"
		args = append(args, ids)
	}
	return cond, args
}
