package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PieceTemplateModel struct {
	PieceTemplateID        uuid.UUID `gorm:"column:piece_template_id;type:uuid;primaryKey" json:"piece_template_id"`
	PieceTemplateName      string    `gorm:"column:piece_template_name;size:100;not null" json:"piece_template_name"`
	PieceTemplateImage     string    `gorm:"column:piece_template_image;type:text" json:"piece_template_image"`
	PieceTemplateIsActive  bool      `gorm:"column:piece_template_is_active;not null;default:true" json:"piece_template_is_active"`
	PieceTemplateIsDeleted bool      `gorm:"column:piece_template_is_deleted;not null;default:false" json:"piece_template_is_deleted"`
	PieceTemplateAddedBy   uuid.UUID `gorm:"column:piece_template_added_by;type:uuid;not null" json:"piece_template_added_by"`
	PieceTemplateUpdatedBy uuid.UUID `gorm:"column:piece_template_updated_by;type:uuid;not null" json:"piece_template_updated_by"`
	PieceTemplateCreatedAt time.Time `gorm:"column:piece_template_created_at;autoCreateTime" json:"piece_template_created_at"`
	PieceTemplateUpdatedAt time.Time `gorm:"column:piece_template_updated_at;autoUpdateTime" json:"piece_template_updated_at"`
}

func (PieceTemplateModel) TableName() string {
	return "piece_templates"
}

func (m *PieceTemplateModel) BeforeCreate(tx *gorm.DB) error {
	if m.PieceTemplateID == uuid.Nil {
		m.PieceTemplateID = uuid.New()
	}
	return nil
}
