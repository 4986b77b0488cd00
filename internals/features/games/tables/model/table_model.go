package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TableModel is one 8x8 board inside a game grid. table_coordinate is the
// flattened y*size+x index, unique per game.
type TableModel struct {
	TableID         uuid.UUID `gorm:"column:table_id;type:uuid;primaryKey" json:"table_id"`
	TableGameID     uuid.UUID `gorm:"column:table_game_id;type:uuid;not null;index" json:"table_game_id"`
	TableCoordinate int       `gorm:"column:table_coordinate;not null" json:"table_coordinate"`
	TableX          int       `gorm:"column:table_x;not null" json:"table_x"`
	TableY          int       `gorm:"column:table_y;not null" json:"table_y"`
	TableIsActive   bool      `gorm:"column:table_is_active;not null;default:true" json:"table_is_active"`
	TableIsDeleted  bool      `gorm:"column:table_is_deleted;not null;default:false" json:"table_is_deleted"`
	TableAddedBy    uuid.UUID `gorm:"column:table_added_by;type:uuid;not null" json:"table_added_by"`
	TableUpdatedBy  uuid.UUID `gorm:"column:table_updated_by;type:uuid;not null" json:"table_updated_by"`
	TableCreatedAt  time.Time `gorm:"column:table_created_at;autoCreateTime" json:"table_created_at"`
	TableUpdatedAt  time.Time `gorm:"column:table_updated_at;autoUpdateTime" json:"table_updated_at"`
}

func (TableModel) TableName() string {
	return "tables"
}

func (m *TableModel) BeforeCreate(tx *gorm.DB) error {
	if m.TableID == uuid.Nil {
		m.TableID = uuid.New()
	}
	return nil
}
