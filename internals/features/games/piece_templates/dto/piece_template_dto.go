package dto

import (
	"github.com/google/uuid"

	m "gameku_backend/internals/features/games/piece_templates/model"
)

type CreatePieceTemplateRequest struct {
	PieceTemplateName  string `json:"piece_template_name" validate:"required,min=1,max=100"`
	PieceTemplateImage string `json:"piece_template_image" validate:"omitempty,max=2048"`
}

type UpdatePieceTemplateRequest struct {
	PieceTemplateName     string `json:"piece_template_name" validate:"required,min=1,max=100"`
	PieceTemplateImage    string `json:"piece_template_image" validate:"omitempty,max=2048"`
	PieceTemplateIsActive *bool  `json:"piece_template_is_active" validate:"omitempty"`
}

func (r *CreatePieceTemplateRequest) ToModel(addedBy uuid.UUID) *m.PieceTemplateModel {
	return &m.PieceTemplateModel{
		PieceTemplateName:      r.PieceTemplateName,
		PieceTemplateImage:     r.PieceTemplateImage,
		PieceTemplateIsActive:  true,
		PieceTemplateAddedBy:   addedBy,
		PieceTemplateUpdatedBy: addedBy,
	}
}

func (r *UpdatePieceTemplateRequest) ToUpdates(updatedBy uuid.UUID) map[string]interface{} {
	updates := map[string]interface{}{
		"piece_template_name":       r.PieceTemplateName,
		"piece_template_image":      r.PieceTemplateImage,
		"piece_template_updated_by": updatedBy,
	}
	if r.PieceTemplateIsActive != nil {
		updates["piece_template_is_active"] = *r.PieceTemplateIsActive
	}
	return updates
}

// Whitelists for list filtering and sorting.
var PieceTemplateFilterColumns = map[string]string{
	"piece_template_id":         "piece_template_id",
	"piece_template_name":       "piece_template_name",
	"piece_template_is_active":  "piece_template_is_active",
	"piece_template_is_deleted": "piece_template_is_deleted",
	"piece_template_added_by":   "piece_template_added_by",
	"piece_template_image":      "piece_template_image",
}

var PieceTemplateSortColumns = map[string]string{
	"piece_template_name":       "piece_template_name",
	"piece_template_created_at": "piece_template_created_at",
	"piece_template_updated_at": "piece_template_updated_at",
}
