package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SlotModel is one cell of an 8x8 table. slot_position runs 1..64
// (row*8+col+1) and is kept unique per table by the write paths, not by a
// database constraint. slot_piece_id is the current occupant, nil when empty.
type SlotModel struct {
	SlotID        uuid.UUID  `gorm:"column:slot_id;type:uuid;primaryKey" json:"slot_id"`
	SlotTableID   uuid.UUID  `gorm:"column:slot_table_id;type:uuid;not null;index" json:"slot_table_id"`
	SlotPosition  int        `gorm:"column:slot_position;not null;index" json:"slot_position"`
	SlotPieceID   *uuid.UUID `gorm:"column:slot_piece_id;type:uuid;index" json:"slot_piece_id"`
	SlotX         int        `gorm:"column:slot_x;not null" json:"slot_x"`
	SlotY         int        `gorm:"column:slot_y;not null" json:"slot_y"`
	SlotIsActive  bool       `gorm:"column:slot_is_active;not null;default:true" json:"slot_is_active"`
	SlotIsDeleted bool       `gorm:"column:slot_is_deleted;not null;default:false" json:"slot_is_deleted"`
	SlotAddedBy   uuid.UUID  `gorm:"column:slot_added_by;type:uuid;not null" json:"slot_added_by"`
	SlotUpdatedBy uuid.UUID  `gorm:"column:slot_updated_by;type:uuid;not null" json:"slot_updated_by"`
	SlotCreatedAt time.Time  `gorm:"column:slot_created_at;autoCreateTime" json:"slot_created_at"`
	SlotUpdatedAt time.Time  `gorm:"column:slot_updated_at;autoUpdateTime" json:"slot_updated_at"`
}

func (SlotModel) TableName() string {
	return "slots"
}

func (m *SlotModel) BeforeCreate(tx *gorm.DB) error {
	if m.SlotID == uuid.Nil {
		m.SlotID = uuid.New()
	}
	return nil
}
