package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PieceModel is a unit that can occupy a board slot. piece_template_id points
// at the piece template it was stamped from.
type PieceModel struct {
	PieceID         uuid.UUID  `gorm:"column:piece_id;type:uuid;primaryKey" json:"piece_id"`
	PiecePosition   int        `gorm:"column:piece_position;not null;index" json:"piece_position"`
	PieceTemplateID *uuid.UUID `gorm:"column:piece_template_id;type:uuid;index" json:"piece_template_id"`
	PieceIsActive   bool       `gorm:"column:piece_is_active;not null;default:true" json:"piece_is_active"`
	PieceIsDeleted  bool       `gorm:"column:piece_is_deleted;not null;default:false" json:"piece_is_deleted"`
	PieceAddedBy    uuid.UUID  `gorm:"column:piece_added_by;type:uuid;not null" json:"piece_added_by"`
	PieceUpdatedBy  uuid.UUID  `gorm:"column:piece_updated_by;type:uuid;not null" json:"piece_updated_by"`
	PieceCreatedAt  time.Time  `gorm:"column:piece_created_at;autoCreateTime" json:"piece_created_at"`
	PieceUpdatedAt  time.Time  `gorm:"column:piece_updated_at;autoUpdateTime" json:"piece_updated_at"`
}

func (PieceModel) TableName() string {
	return "pieces"
}

func (m *PieceModel) BeforeCreate(tx *gorm.DB) error {
	if m.PieceID == uuid.Nil {
		m.PieceID = uuid.New()
	}
	return nil
}
