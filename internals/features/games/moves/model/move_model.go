package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MoveModel is the append-only record of a piece landing on a slot.
// move_target_slot_id stores the resolved slot row id, not the numeric board
// position the caller submitted.
type MoveModel struct {
	MoveID           uuid.UUID `gorm:"column:move_id;type:uuid;primaryKey" json:"move_id"`
	MovePieceID      uuid.UUID `gorm:"column:move_piece_id;type:uuid;not null;index" json:"move_piece_id"`
	MoveTargetSlotID uuid.UUID `gorm:"column:move_target_slot_id;type:uuid;not null;index" json:"move_target_slot_id"`
	MoveAddedBy      uuid.UUID `gorm:"column:move_added_by;type:uuid;not null" json:"move_added_by"`
	MoveDate         time.Time `gorm:"column:move_date;not null" json:"move_date"`
	MoveIsDeleted    bool      `gorm:"column:move_is_deleted;not null;default:false" json:"move_is_deleted"`
	MoveCreatedAt    time.Time `gorm:"column:move_created_at;autoCreateTime" json:"move_created_at"`
	MoveUpdatedAt    time.Time `gorm:"column:move_updated_at;autoUpdateTime" json:"move_updated_at"`
}

func (MoveModel) TableName() string {
	return "moves"
}

func (m *MoveModel) BeforeCreate(tx *gorm.DB) error {
	if m.MoveID == uuid.Nil {
		m.MoveID = uuid.New()
	}
	return nil
}
