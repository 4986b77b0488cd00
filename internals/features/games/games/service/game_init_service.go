package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"gameku_backend/internals/constants"
	chatGroupModel "gameku_backend/internals/features/chats/chat_groups/model"
	gameModel "gameku_backend/internals/features/games/games/model"
	slotModel "gameku_backend/internals/features/games/slots/model"
	tableModel "gameku_backend/internals/features/games/tables/model"
)

var ErrInvalidSize = errors.New("Size is required and must be a number")

// InitializeGameInput carries the game creation parameters.
type InitializeGameInput struct {
	Size    int
	Type    int
	Time    int
	AddedBy uuid.UUID
}

// InitializeGame creates one chat group, one game, size*size tables
// (coordinate = y*size+x) and 64 slots per table (position = row*8+col+1).
// The whole fan-out runs in one transaction so a mid-loop failure leaves
// nothing behind.
func InitializeGame(ctx context.Context, db *gorm.DB, in InitializeGameInput) (*gameModel.GameModel, error) {
	if in.Size <= 0 {
		return nil, ErrInvalidSize
	}
	if in.Type == 0 {
		in.Type = constants.GameTypeNormal
	}
	if in.Time == 0 {
		in.Time = constants.GameTimeNormal
	}

	var game gameModel.GameModel

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		chat := chatGroupModel.ChatGroupModel{
			ChatGroupName:      "Game Chat",
			ChatGroupCode:      uuid.NewString()[:8],
			ChatGroupAdminID:   in.AddedBy,
			ChatGroupAddedBy:   in.AddedBy,
			ChatGroupUpdatedBy: in.AddedBy,
		}
		if err := tx.Create(&chat).Error; err != nil {
			return err
		}

		game = gameModel.GameModel{
			GameType:       in.Type,
			GameSize:       in.Size,
			GameTime:       in.Time,
			GamePlayerlist: datatypes.JSON([]byte("[]")),
			GameChatID:     &chat.ChatGroupID,
			GameAddedBy:    in.AddedBy,
			GameUpdatedBy:  in.AddedBy,
		}
		if err := tx.Create(&game).Error; err != nil {
			return err
		}

		for y := 0; y < in.Size; y++ {
			for x := 0; x < in.Size; x++ {
				table := tableModel.TableModel{
					TableGameID:     game.GameID,
					TableCoordinate: y*in.Size + x,
					TableX:          x,
					TableY:          y,
					TableAddedBy:    in.AddedBy,
					TableUpdatedBy:  in.AddedBy,
				}
				if err := tx.Create(&table).Error; err != nil {
					return err
				}

				slots := make([]slotModel.SlotModel, 0, constants.SlotsPerBoard)
				for slotY := 0; slotY < constants.BoardSide; slotY++ {
					for slotX := 0; slotX < constants.BoardSide; slotX++ {
						slots = append(slots, slotModel.SlotModel{
							SlotTableID:   table.TableID,
							SlotPosition:  slotY*constants.BoardSide + slotX + 1,
							SlotX:         slotX,
							SlotY:         slotY,
							SlotAddedBy:   in.AddedBy,
							SlotUpdatedBy: in.AddedBy,
						})
					}
				}
				if err := tx.Create(&slots).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return &game, nil
}
