package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gameku_backend/internals/constants"
	chatGroupModel "gameku_backend/internals/features/chats/chat_groups/model"
	gameModel "gameku_backend/internals/features/games/games/model"
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
		&gameModel.GameModel{},
		&tableModel.TableModel{},
		&slotModel.SlotModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return db
}

func TestInitializeGame(t *testing.T) {
	db := openTestDB(t)
	actor := uuid.New()
	const size = 3

	game, err := InitializeGame(context.Background(), db, InitializeGameInput{
		Size:    size,
		AddedBy: actor,
	})
	if err != nil {
		t.Fatalf("InitializeGame: %v", err)
	}

	if game.GameSize != size {
		t.Errorf("game size = %d, want %d", game.GameSize, size)
	}
	if game.GameType != constants.GameTypeNormal {
		t.Errorf("game type = %d, want default %d", game.GameType, constants.GameTypeNormal)
	}
	if game.GameChatID == nil {
		t.Fatal("game has no chat group")
	}
	if string(game.GamePlayerlist) != "[]" {
		t.Errorf("playerlist = %s, want []", game.GamePlayerlist)
	}

	var chat chatGroupModel.ChatGroupModel
	if err := db.Where("chat_group_id = ?", game.GameChatID).First(&chat).Error; err != nil {
		t.Fatalf("load chat group: %v", err)
	}
	if chat.ChatGroupName != "Game Chat" {
		t.Errorf("chat name = %q", chat.ChatGroupName)
	}
	if chat.ChatGroupAdminID != actor {
		t.Errorf("chat admin = %s, want %s", chat.ChatGroupAdminID, actor)
	}

	var tables []tableModel.TableModel
	if err := db.Where("table_game_id = ?", game.GameID).
		Order("table_coordinate ASC").
		Find(&tables).Error; err != nil {
		t.Fatalf("load tables: %v", err)
	}
	if len(tables) != size*size {
		t.Fatalf("table count = %d, want %d", len(tables), size*size)
	}
	for i, tbl := range tables {
		if tbl.TableCoordinate != i {
			t.Errorf("table %d coordinate = %d", i, tbl.TableCoordinate)
		}
		if want := tbl.TableY*size + tbl.TableX; tbl.TableCoordinate != want {
			t.Errorf("coordinate %d does not match x=%d y=%d", tbl.TableCoordinate, tbl.TableX, tbl.TableY)
		}
	}

	var slotCount int64
	if err := db.Model(&slotModel.SlotModel{}).Count(&slotCount).Error; err != nil {
		t.Fatalf("count slots: %v", err)
	}
	if want := int64(size * size * constants.SlotsPerBoard); slotCount != want {
		t.Errorf("slot count = %d, want %d", slotCount, want)
	}

	// spot-check one board's positions run 1..64
	var slots []slotModel.SlotModel
	if err := db.Where("slot_table_id = ?", tables[0].TableID).
		Order("slot_position ASC").
		Find(&slots).Error; err != nil {
		t.Fatalf("load slots: %v", err)
	}
	if len(slots) != constants.SlotsPerBoard {
		t.Fatalf("board slot count = %d, want %d", len(slots), constants.SlotsPerBoard)
	}
	for i, s := range slots {
		if s.SlotPosition != i+1 {
			t.Fatalf("slot %d position = %d, want %d", i, s.SlotPosition, i+1)
		}
		if want := s.SlotY*constants.BoardSide + s.SlotX + 1; s.SlotPosition != want {
			t.Errorf("position %d does not match x=%d y=%d", s.SlotPosition, s.SlotX, s.SlotY)
		}
	}
}

func TestInitializeGameInvalidSize(t *testing.T) {
	db := openTestDB(t)

	for _, size := range []int{0, -1} {
		if _, err := InitializeGame(context.Background(), db, InitializeGameInput{
			Size:    size,
			AddedBy: uuid.New(),
		}); err != ErrInvalidSize {
			t.Errorf("size %d: err = %v, want ErrInvalidSize", size, err)
		}
	}

	// a rejected request writes nothing
	var games, chats int64
	db.Model(&gameModel.GameModel{}).Count(&games)
	db.Model(&chatGroupModel.ChatGroupModel{}).Count(&chats)
	if games != 0 || chats != 0 {
		t.Errorf("games=%d chats=%d after invalid size, want 0/0", games, chats)
	}
}

func TestInitializeGameFanOutFailureRollsBack(t *testing.T) {
	db := openTestDB(t)

	// break the slot insert so the transaction fails after the game,
	// chat group and tables were already written inside it
	if err := db.Migrator().DropTable(&slotModel.SlotModel{}); err != nil {
		t.Fatalf("drop slots: %v", err)
	}

	if _, err := InitializeGame(context.Background(), db, InitializeGameInput{
		Size:    2,
		AddedBy: uuid.New(),
	}); err == nil {
		t.Fatal("InitializeGame succeeded without a slots table")
	}

	var games, chats, tables int64
	db.Model(&gameModel.GameModel{}).Count(&games)
	db.Model(&chatGroupModel.ChatGroupModel{}).Count(&chats)
	db.Model(&tableModel.TableModel{}).Count(&tables)
	if games != 0 || chats != 0 || tables != 0 {
		t.Errorf("games=%d chats=%d tables=%d after failed init, want 0/0/0", games, chats, tables)
	}
}

func TestInitializeGameDefaults(t *testing.T) {
	db := openTestDB(t)

	game, err := InitializeGame(context.Background(), db, InitializeGameInput{
		Size:    1,
		Type:    constants.GameTypeRanked,
		Time:    constants.GameTimeBlitz,
		AddedBy: uuid.New(),
	})
	if err != nil {
		t.Fatalf("InitializeGame: %v", err)
	}
	if game.GameType != constants.GameTypeRanked {
		t.Errorf("game type = %d, want %d", game.GameType, constants.GameTypeRanked)
	}
	if game.GameTime != constants.GameTimeBlitz {
		t.Errorf("game time = %d, want %d", game.GameTime, constants.GameTimeBlitz)
	}
}
