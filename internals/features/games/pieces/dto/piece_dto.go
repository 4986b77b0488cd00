package dto

import (
	"github.com/google/uuid"

	"gameku_backend/internals/features/games/pieces/model"
)

type CreatePieceRequest struct {
	PiecePosition   int        `json:"piece_position" validate:"gte=0,lte=64"`
	PieceTemplateID *uuid.UUID `json:"piece_template_id"`
	PieceIsActive   *bool      `json:"piece_is_active"`
}

type UpdatePieceRequest struct {
	PiecePosition   int        `json:"piece_position" validate:"gte=0,lte=64"`
	PieceTemplateID *uuid.UUID `json:"piece_template_id"`
	PieceIsActive   *bool      `json:"piece_is_active"`
}

func (r *CreatePieceRequest) ToModel(addedBy uuid.UUID) *model.PieceModel {
	m := &model.PieceModel{
		PiecePosition:   r.PiecePosition,
		PieceTemplateID: r.PieceTemplateID,
		PieceAddedBy:    addedBy,
		PieceUpdatedBy:  addedBy,
		PieceIsActive:   true,
	}
	if r.PieceIsActive != nil {
		m.PieceIsActive = *r.PieceIsActive
	}
	return m
}

func (r *UpdatePieceRequest) ToUpdates(updatedBy uuid.UUID) map[string]interface{} {
	updates := map[string]interface{}{
		"piece_position":    r.PiecePosition,
		"piece_template_id": r.PieceTemplateID,
		"piece_updated_by":  updatedBy,
	}
	if r.PieceIsActive != nil {
		updates["piece_is_active"] = *r.PieceIsActive
	}
	return updates
}

// Filter/sort whitelists for the list endpoint.
var (
	PieceFilterColumns = map[string]string{
		"piece_id":          "piece_id",
		"piece_position":    "piece_position",
		"piece_template_id": "piece_template_id",
		"piece_is_active":   "piece_is_active",
		"piece_is_deleted":  "piece_is_deleted",
		"piece_added_by":    "piece_added_by",
	}
	PieceSortColumns = map[string]string{
		"piece_position":   "piece_position",
		"piece_created_at": "piece_created_at",
		"piece_updated_at": "piece_updated_at",
	}
)
