package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"gameku_backend/internals/constants"
)

// GameModel is one NxN arrangement of tables plus its chat channel and
// player list. Tables hang off game_id on their own rows; the playerlist
// stays a JSON array as in the source data model.
type GameModel struct {
	GameID         uuid.UUID      `gorm:"column:game_id;type:uuid;primaryKey" json:"game_id"`
	GameType       int            `gorm:"column:game_type;not null;default:1" json:"game_type"`
	GameSize       int            `gorm:"column:game_size;not null" json:"game_size"`
	GameTime       int            `gorm:"column:game_time;not null;default:1" json:"game_time"`
	GamePlayerlist datatypes.JSON `gorm:"column:game_playerlist" json:"game_playerlist"`
	GameChatID     *uuid.UUID     `gorm:"column:game_chat_id;type:uuid;index" json:"game_chat_id"`
	GameTimepast   int            `gorm:"column:game_timepast;not null;default:0" json:"game_timepast"`
	GameIsActive   bool           `gorm:"column:game_is_active;not null;default:true" json:"game_is_active"`
	GameIsDeleted  bool           `gorm:"column:game_is_deleted;not null;default:false" json:"game_is_deleted"`
	GameAddedBy    uuid.UUID      `gorm:"column:game_added_by;type:uuid;not null" json:"game_added_by"`
	GameUpdatedBy  uuid.UUID      `gorm:"column:game_updated_by;type:uuid;not null" json:"game_updated_by"`
	GameCreatedAt  time.Time      `gorm:"column:game_created_at;autoCreateTime" json:"game_created_at"`
	GameUpdatedAt  time.Time      `gorm:"column:game_updated_at;autoUpdateTime" json:"game_updated_at"`
}

func (GameModel) TableName() string {
	return "games"
}

func (m *GameModel) BeforeCreate(tx *gorm.DB) error {
	if m.GameID == uuid.Nil {
		m.GameID = uuid.New()
	}
	if m.GameType == 0 {
		m.GameType = constants.GameTypeNormal
	}
	if m.GameTime == 0 {
		m.GameTime = constants.GameTimeNormal
	}
	return nil
}
