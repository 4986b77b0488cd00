package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	moveModel "gameku_backend/internals/features/games/moves/model"
	pieceModel "gameku_backend/internals/features/games/pieces/model"
	slotModel "gameku_backend/internals/features/games/slots/model"
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
	if err := db.AutoMigrate(&pieceModel.PieceModel{}, &slotModel.SlotModel{}, &moveModel.MoveModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return db
}

func seedBoard(t *testing.T, db *gorm.DB) (pieceModel.PieceModel, slotModel.SlotModel) {
	t.Helper()
	actor := uuid.New()

	piece := pieceModel.PieceModel{
		PiecePosition:  1,
		PieceIsActive:  true,
		PieceAddedBy:   actor,
		PieceUpdatedBy: actor,
	}
	if err := db.Create(&piece).Error; err != nil {
		t.Fatalf("seed piece: %v", err)
	}

	slot := slotModel.SlotModel{
		SlotTableID:   uuid.New(),
		SlotPosition:  5,
		SlotX:         4,
		SlotY:         0,
		SlotIsActive:  true,
		SlotAddedBy:   actor,
		SlotUpdatedBy: actor,
	}
	if err := db.Create(&slot).Error; err != nil {
		t.Fatalf("seed slot: %v", err)
	}
	return piece, slot
}

func countMoves(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&moveModel.MoveModel{}).Count(&n).Error; err != nil {
		t.Fatalf("count moves: %v", err)
	}
	return n
}

func TestApplyMove(t *testing.T) {
	db := openTestDB(t)
	piece, slot := seedBoard(t, db)
	actor := uuid.New()

	move, err := ApplyMove(context.Background(), db, ApplyMoveInput{
		PieceID:        piece.PieceID,
		TargetPosition: slot.SlotPosition,
		AddedBy:        actor,
	})
	if err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}

	if move.MovePieceID != piece.PieceID {
		t.Errorf("move piece = %s, want %s", move.MovePieceID, piece.PieceID)
	}
	if move.MoveTargetSlotID != slot.SlotID {
		t.Errorf("move slot = %s, want %s", move.MoveTargetSlotID, slot.SlotID)
	}
	if move.MoveIsDeleted {
		t.Error("fresh move flagged as deleted")
	}
	if move.MoveDate.IsZero() {
		t.Error("move date not set")
	}

	var got slotModel.SlotModel
	if err := db.Where("slot_id = ?", slot.SlotID).First(&got).Error; err != nil {
		t.Fatalf("reload slot: %v", err)
	}
	if got.SlotPieceID == nil || *got.SlotPieceID != piece.PieceID {
		t.Errorf("slot occupant = %v, want %s", got.SlotPieceID, piece.PieceID)
	}
	if got.SlotUpdatedBy != actor {
		t.Errorf("slot updated_by = %s, want %s", got.SlotUpdatedBy, actor)
	}
}

func TestApplyMoveTwiceAppendsTwoRecords(t *testing.T) {
	db := openTestDB(t)
	piece, slot := seedBoard(t, db)
	actor := uuid.New()

	in := ApplyMoveInput{PieceID: piece.PieceID, TargetPosition: slot.SlotPosition, AddedBy: actor}
	if _, err := ApplyMove(context.Background(), db, in); err != nil {
		t.Fatalf("first ApplyMove: %v", err)
	}
	if _, err := ApplyMove(context.Background(), db, in); err != nil {
		t.Fatalf("second ApplyMove: %v", err)
	}

	if n := countMoves(t, db); n != 2 {
		t.Errorf("move count = %d, want 2", n)
	}

	// the slot ends up in the same state either way
	var got slotModel.SlotModel
	if err := db.Where("slot_id = ?", slot.SlotID).First(&got).Error; err != nil {
		t.Fatalf("reload slot: %v", err)
	}
	if got.SlotPieceID == nil || *got.SlotPieceID != piece.PieceID {
		t.Errorf("slot occupant = %v, want %s", got.SlotPieceID, piece.PieceID)
	}
}

func TestApplyMoveMissingFields(t *testing.T) {
	db := openTestDB(t)
	piece, slot := seedBoard(t, db)

	cases := []struct {
		name string
		in   ApplyMoveInput
	}{
		{"no piece", ApplyMoveInput{TargetPosition: slot.SlotPosition, AddedBy: uuid.New()}},
		{"no position", ApplyMoveInput{PieceID: piece.PieceID, AddedBy: uuid.New()}},
		{"no actor", ApplyMoveInput{PieceID: piece.PieceID, TargetPosition: slot.SlotPosition}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ApplyMove(context.Background(), db, tc.in); err != ErrMissingFields {
				t.Errorf("err = %v, want ErrMissingFields", err)
			}
		})
	}

	if n := countMoves(t, db); n != 0 {
		t.Errorf("move count = %d, want 0", n)
	}
}

func TestApplyMovePieceNotFound(t *testing.T) {
	db := openTestDB(t)
	_, slot := seedBoard(t, db)

	_, err := ApplyMove(context.Background(), db, ApplyMoveInput{
		PieceID:        uuid.New(),
		TargetPosition: slot.SlotPosition,
		AddedBy:        uuid.New(),
	})
	if err != ErrPieceNotFound {
		t.Fatalf("err = %v, want ErrPieceNotFound", err)
	}
	if n := countMoves(t, db); n != 0 {
		t.Errorf("move count = %d, want 0", n)
	}
}

func TestApplyMoveSlotNotFound(t *testing.T) {
	db := openTestDB(t)
	piece, slot := seedBoard(t, db)

	_, err := ApplyMove(context.Background(), db, ApplyMoveInput{
		PieceID:        piece.PieceID,
		TargetPosition: 63, // seeded board only has position 5
		AddedBy:        uuid.New(),
	})
	if err != ErrSlotNotFound {
		t.Fatalf("err = %v, want ErrSlotNotFound", err)
	}

	// nothing was written
	if n := countMoves(t, db); n != 0 {
		t.Errorf("move count = %d, want 0", n)
	}
	var got slotModel.SlotModel
	if err := db.Where("slot_id = ?", slot.SlotID).First(&got).Error; err != nil {
		t.Fatalf("reload slot: %v", err)
	}
	if got.SlotPieceID != nil {
		t.Errorf("slot occupant = %v, want nil", got.SlotPieceID)
	}
}

func TestApplyMoveSkipsDeletedRows(t *testing.T) {
	db := openTestDB(t)
	piece, slot := seedBoard(t, db)

	if err := db.Model(&pieceModel.PieceModel{}).
		Where("piece_id = ?", piece.PieceID).
		Update("piece_is_deleted", true).Error; err != nil {
		t.Fatalf("flag piece: %v", err)
	}

	_, err := ApplyMove(context.Background(), db, ApplyMoveInput{
		PieceID:        piece.PieceID,
		TargetPosition: slot.SlotPosition,
		AddedBy:        uuid.New(),
	})
	if err != ErrPieceNotFound {
		t.Fatalf("err = %v, want ErrPieceNotFound for soft-deleted piece", err)
	}
}
