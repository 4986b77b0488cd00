package cascade

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	chatGroupModel "gameku_backend/internals/features/chats/chat_groups/model"
	chatMessageModel "gameku_backend/internals/features/chats/chat_messages/model"
	gameModel "gameku_backend/internals/features/games/games/model"
	moveModel "gameku_backend/internals/features/games/moves/model"
	pieceModel "gameku_backend/internals/features/games/pieces/model"
	slotModel "gameku_backend/internals/features/games/slots/model"
	tableModel "gameku_backend/internals/features/games/tables/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&chatGroupModel.ChatGroupModel{},
		&chatMessageModel.ChatMessageModel{},
		&gameModel.GameModel{},
		&tableModel.TableModel{},
		&slotModel.SlotModel{},
		&pieceModel.PieceModel{},
		&moveModel.MoveModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return db
}

// seedChain builds game → table → slot → move with one piece occupying
// the slot.
func seedChain(t *testing.T, db *gorm.DB) (gameModel.GameModel, tableModel.TableModel, slotModel.SlotModel, pieceModel.PieceModel, moveModel.MoveModel) {
	t.Helper()
	actor := uuid.New()

	game := gameModel.GameModel{GameSize: 1, GameAddedBy: actor, GameUpdatedBy: actor}
	if err := db.Create(&game).Error; err != nil {
		t.Fatalf("seed game: %v", err)
	}
	table := tableModel.TableModel{TableGameID: game.GameID, TableAddedBy: actor, TableUpdatedBy: actor}
	if err := db.Create(&table).Error; err != nil {
		t.Fatalf("seed table: %v", err)
	}
	piece := pieceModel.PieceModel{PiecePosition: 1, PieceAddedBy: actor, PieceUpdatedBy: actor}
	if err := db.Create(&piece).Error; err != nil {
		t.Fatalf("seed piece: %v", err)
	}
	slot := slotModel.SlotModel{
		SlotTableID:   table.TableID,
		SlotPosition:  1,
		SlotPieceID:   &piece.PieceID,
		SlotAddedBy:   actor,
		SlotUpdatedBy: actor,
	}
	if err := db.Create(&slot).Error; err != nil {
		t.Fatalf("seed slot: %v", err)
	}
	move := moveModel.MoveModel{
		MovePieceID:      piece.PieceID,
		MoveTargetSlotID: slot.SlotID,
		MoveAddedBy:      actor,
	}
	if err := db.Create(&move).Error; err != nil {
		t.Fatalf("seed move: %v", err)
	}
	return game, table, slot, piece, move
}

func TestHardDeleteGameChain(t *testing.T) {
	db := openTestDB(t)
	game, _, _, _, _ := seedChain(t, db)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := HardDelete(tx, "games", []interface{}{game.GameID}); err != nil {
			return err
		}
		return tx.Where("game_id = ?", game.GameID).Delete(&gameModel.GameModel{}).Error
	})
	if err != nil {
		t.Fatalf("hard delete: %v", err)
	}

	var tables, slots, moves int64
	db.Model(&tableModel.TableModel{}).Count(&tables)
	db.Model(&slotModel.SlotModel{}).Count(&slots)
	db.Model(&moveModel.MoveModel{}).Count(&moves)
	if tables != 0 || slots != 0 || moves != 0 {
		t.Errorf("tables=%d slots=%d moves=%d after game delete, want all 0", tables, slots, moves)
	}

	// the piece survives; only board rows hang off the game
	var pieces int64
	db.Model(&pieceModel.PieceModel{}).Count(&pieces)
	if pieces != 1 {
		t.Errorf("piece count = %d, want 1", pieces)
	}
}

func TestSoftDeleteGameChain(t *testing.T) {
	db := openTestDB(t)
	game, table, slot, _, move := seedChain(t, db)

	err := db.Transaction(func(tx *gorm.DB) error {
		return SoftDelete(tx, "games", []interface{}{game.GameID})
	})
	if err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	var gotTable tableModel.TableModel
	if err := db.Where("table_id = ?", table.TableID).First(&gotTable).Error; err != nil {
		t.Fatalf("reload table: %v", err)
	}
	if !gotTable.TableIsDeleted {
		t.Error("table not flagged deleted")
	}

	var gotSlot slotModel.SlotModel
	if err := db.Where("slot_id = ?", slot.SlotID).First(&gotSlot).Error; err != nil {
		t.Fatalf("reload slot: %v", err)
	}
	if !gotSlot.SlotIsDeleted {
		t.Error("slot not flagged deleted")
	}

	var gotMove moveModel.MoveModel
	if err := db.Where("move_id = ?", move.MoveID).First(&gotMove).Error; err != nil {
		t.Fatalf("reload move: %v", err)
	}
	if !gotMove.MoveIsDeleted {
		t.Error("move not flagged deleted")
	}
}

func TestDeletePieceNullifiesSlot(t *testing.T) {
	db := openTestDB(t)
	_, _, slot, piece, _ := seedChain(t, db)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := HardDelete(tx, "pieces", []interface{}{piece.PieceID}); err != nil {
			return err
		}
		return tx.Where("piece_id = ?", piece.PieceID).Delete(&pieceModel.PieceModel{}).Error
	})
	if err != nil {
		t.Fatalf("delete piece: %v", err)
	}

	var gotSlot slotModel.SlotModel
	if err := db.Where("slot_id = ?", slot.SlotID).First(&gotSlot).Error; err != nil {
		t.Fatalf("reload slot: %v", err)
	}
	if gotSlot.SlotPieceID != nil {
		t.Errorf("slot occupant = %v after piece delete, want nil", gotSlot.SlotPieceID)
	}

	// the piece's move history goes with it
	var moves int64
	db.Model(&moveModel.MoveModel{}).Count(&moves)
	if moves != 0 {
		t.Errorf("move count = %d after piece delete, want 0", moves)
	}
}

func TestDeleteChatGroupNullifiesGame(t *testing.T) {
	db := openTestDB(t)
	actor := uuid.New()

	chat := chatGroupModel.ChatGroupModel{
		ChatGroupName:      "Game Chat",
		ChatGroupCode:      "abc12345",
		ChatGroupAdminID:   actor,
		ChatGroupAddedBy:   actor,
		ChatGroupUpdatedBy: actor,
	}
	if err := db.Create(&chat).Error; err != nil {
		t.Fatalf("seed chat: %v", err)
	}
	game := gameModel.GameModel{GameSize: 1, GameChatID: &chat.ChatGroupID, GameAddedBy: actor, GameUpdatedBy: actor}
	if err := db.Create(&game).Error; err != nil {
		t.Fatalf("seed game: %v", err)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := HardDelete(tx, "chat_groups", []interface{}{chat.ChatGroupID}); err != nil {
			return err
		}
		return tx.Where("chat_group_id = ?", chat.ChatGroupID).Delete(&chatGroupModel.ChatGroupModel{}).Error
	})
	if err != nil {
		t.Fatalf("delete chat group: %v", err)
	}

	var got gameModel.GameModel
	if err := db.Where("game_id = ?", game.GameID).First(&got).Error; err != nil {
		t.Fatalf("reload game: %v", err)
	}
	if got.GameChatID != nil {
		t.Errorf("game chat id = %v after chat delete, want nil", got.GameChatID)
	}
}

func TestLeafParentIsNoop(t *testing.T) {
	db := openTestDB(t)
	_, _, _, _, move := seedChain(t, db)

	err := db.Transaction(func(tx *gorm.DB) error {
		return HardDelete(tx, "moves", []interface{}{move.MoveID})
	})
	if err != nil {
		t.Fatalf("leaf cascade: %v", err)
	}
}
