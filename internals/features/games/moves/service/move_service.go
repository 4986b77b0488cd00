package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	moveModel "gameku_backend/internals/features/games/moves/model"
	pieceModel "gameku_backend/internals/features/games/pieces/model"
	slotModel "gameku_backend/internals/features/games/slots/model"
)

var (
	// ErrMissingFields is returned before any storage work happens.
	ErrMissingFields = errors.New("Missing required fields: pieceId, targetPosition, addedBy")
	ErrPieceNotFound = errors.New("Piece not found")
	ErrSlotNotFound  = errors.New("Target slot not found")
)

// ApplyMoveInput carries the three required move parameters.
type ApplyMoveInput struct {
	PieceID        uuid.UUID
	TargetPosition int
	AddedBy        uuid.UUID
}

// ApplyMove relocates a piece onto the slot at TargetPosition, atomically:
// load piece, load slot by board position, point the slot at the piece, and
// append one move record. Everything runs in one transaction; any failure
// rolls the whole thing back with no partial writes.
//
// The move record stores the resolved slot row id, not the numeric position
// the caller submitted. Slot lookup takes the first row matching the
// position; duplicate positions are a data-integrity violation the write
// paths guard against separately.
func ApplyMove(ctx context.Context, db *gorm.DB, in ApplyMoveInput) (*moveModel.MoveModel, error) {
	if in.PieceID == uuid.Nil || in.TargetPosition == 0 || in.AddedBy == uuid.Nil {
		return nil, ErrMissingFields
	}

	var move moveModel.MoveModel

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var piece pieceModel.PieceModel
		if err := tx.
			Where("piece_id = ? AND piece_is_deleted = ?", in.PieceID, false).
			First(&piece).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPieceNotFound
			}
			return err
		}

		var slot slotModel.SlotModel
		if err := tx.
			Where("slot_position = ? AND slot_is_deleted = ?", in.TargetPosition, false).
			First(&slot).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSlotNotFound
			}
			return err
		}

		if err := tx.Model(&slot).
			Updates(map[string]interface{}{
				"slot_piece_id":   piece.PieceID,
				"slot_updated_by": in.AddedBy,
			}).Error; err != nil {
			return err
		}

		move = moveModel.MoveModel{
			MovePieceID:      piece.PieceID,
			MoveTargetSlotID: slot.SlotID,
			MoveAddedBy:      in.AddedBy,
			MoveDate:         time.Now(),
			MoveIsDeleted:    false,
		}
		return tx.Create(&move).Error
	})
	if err != nil {
		return nil, err
	}
	return &move, nil
}
