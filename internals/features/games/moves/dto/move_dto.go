package dto

// CreateMoveRequest mirrors the wire body of POST /admin/move/create.
// targetPosition is the numeric board position to resolve against
// slots.slot_position, not a slot id.
type CreateMoveRequest struct {
	PieceID        string `json:"pieceId"`
	TargetPosition int    `json:"targetPosition"`
	AddedBy        string `json:"addedBy"`
}

var (
	MoveFilterColumns = map[string]string{
		"move_id":             "move_id",
		"move_piece_id":       "move_piece_id",
		"move_target_slot_id": "move_target_slot_id",
		"move_added_by":       "move_added_by",
		"move_is_deleted":     "move_is_deleted",
	}
	MoveSortColumns = map[string]string{
		"move_date":       "move_date",
		"move_created_at": "move_created_at",
	}
)
