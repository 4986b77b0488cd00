package dto

import (
	"github.com/google/uuid"

	"gameku_backend/internals/features/games/slots/model"
)

type CreateSlotRequest struct {
	SlotTableID  uuid.UUID  `json:"slot_table_id" validate:"required"`
	SlotPosition int        `json:"slot_position" validate:"required,gte=1,lte=64"`
	SlotPieceID  *uuid.UUID `json:"slot_piece_id"`
	SlotX        int        `json:"slot_x" validate:"gte=0,lte=7"`
	SlotY        int        `json:"slot_y" validate:"gte=0,lte=7"`
}

type UpdateSlotRequest struct {
	SlotPosition int        `json:"slot_position" validate:"required,gte=1,lte=64"`
	SlotPieceID  *uuid.UUID `json:"slot_piece_id"`
	SlotX        int        `json:"slot_x" validate:"gte=0,lte=7"`
	SlotY        int        `json:"slot_y" validate:"gte=0,lte=7"`
}

func (r *CreateSlotRequest) ToModel(addedBy uuid.UUID) *model.SlotModel {
	return &model.SlotModel{
		SlotTableID:   r.SlotTableID,
		SlotPosition:  r.SlotPosition,
		SlotPieceID:   r.SlotPieceID,
		SlotX:         r.SlotX,
		SlotY:         r.SlotY,
		SlotIsActive:  true,
		SlotAddedBy:   addedBy,
		SlotUpdatedBy: addedBy,
	}
}

func (r *UpdateSlotRequest) ToUpdates(updatedBy uuid.UUID) map[string]interface{} {
	return map[string]interface{}{
		"slot_position":   r.SlotPosition,
		"slot_piece_id":   r.SlotPieceID,
		"slot_x":          r.SlotX,
		"slot_y":          r.SlotY,
		"slot_updated_by": updatedBy,
	}
}

var (
	SlotFilterColumns = map[string]string{
		"slot_id":         "slot_id",
		"slot_table_id":   "slot_table_id",
		"slot_position":   "slot_position",
		"slot_piece_id":   "slot_piece_id",
		"slot_x":          "slot_x",
		"slot_y":          "slot_y",
		"slot_is_active":  "slot_is_active",
		"slot_is_deleted": "slot_is_deleted",
	}
	SlotSortColumns = map[string]string{
		"slot_position":   "slot_position",
		"slot_created_at": "slot_created_at",
		"slot_updated_at": "slot_updated_at",
	}
)
