package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "gameku_backend/internals/features/games/games/model"
)

// InitializeGameRequest is the payload for the game bootstrap endpoint.
// Size is a pointer so a missing field is distinguishable from zero.
type InitializeGameRequest struct {
	GameSize *int `json:"game_size"`
	GameType int  `json:"game_type" validate:"omitempty,min=1,max=2"`
	GameTime int  `json:"game_time" validate:"omitempty,min=1,max=3"`
}

type CreateGameRequest struct {
	GameType int    `json:"game_type" validate:"omitempty,min=1,max=2"`
	GameSize int    `json:"game_size" validate:"required,min=1,max=32"`
	GameTime int    `json:"game_time" validate:"omitempty,min=1,max=3"`
	GameChat string `json:"game_chat_id" validate:"omitempty,uuid"`
}

type UpdateGameRequest struct {
	GameType     int    `json:"game_type" validate:"omitempty,min=1,max=2"`
	GameTime     int    `json:"game_time" validate:"omitempty,min=1,max=3"`
	GameTimepast int    `json:"game_timepast" validate:"omitempty,min=0"`
	GamePlayers  string `json:"game_playerlist" validate:"omitempty,json"`
	GameIsActive *bool  `json:"game_is_active" validate:"omitempty"`
}

func (r *CreateGameRequest) ToModel(addedBy uuid.UUID) *m.GameModel {
	game := &m.GameModel{
		GameType:       r.GameType,
		GameSize:       r.GameSize,
		GameTime:       r.GameTime,
		GamePlayerlist: datatypes.JSON([]byte("[]")),
		GameIsActive:   true,
		GameAddedBy:    addedBy,
		GameUpdatedBy:  addedBy,
	}
	if r.GameChat != "" {
		if chatID, err := uuid.Parse(r.GameChat); err == nil {
			game.GameChatID = &chatID
		}
	}
	return game
}

func (r *UpdateGameRequest) ToUpdates(updatedBy uuid.UUID) map[string]interface{} {
	updates := map[string]interface{}{
		"game_updated_by": updatedBy,
	}
	if r.GameType != 0 {
		updates["game_type"] = r.GameType
	}
	if r.GameTime != 0 {
		updates["game_time"] = r.GameTime
	}
	if r.GameTimepast != 0 {
		updates["game_timepast"] = r.GameTimepast
	}
	if r.GamePlayers != "" {
		updates["game_playerlist"] = datatypes.JSON([]byte(r.GamePlayers))
	}
	if r.GameIsActive != nil {
		updates["game_is_active"] = *r.GameIsActive
	}
	return updates
}

var GameFilterColumns = map[string]string{
	"game_id":         "game_id",
	"game_type":       "game_type",
	"game_size":       "game_size",
	"game_time":       "game_time",
	"game_chat_id":    "game_chat_id",
	"game_is_active":  "game_is_active",
	"game_is_deleted": "game_is_deleted",
	"game_added_by":   "game_added_by",
	"game_timepast":   "game_timepast",
}

var GameSortColumns = map[string]string{
	"game_size":       "game_size",
	"game_type":       "game_type",
	"game_created_at": "game_created_at",
	"game_updated_at": "game_updated_at",
}
