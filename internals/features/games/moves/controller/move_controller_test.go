package controller

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	moveModel "gameku_backend/internals/features/games/moves/model"
	pieceModel "gameku_backend/internals/features/games/pieces/model"
	slotModel "gameku_backend/internals/features/games/slots/model"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
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

	app := fiber.New()
	ctl := New(db, validator.New())
	app.Post("/move/create", ctl.Create)
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("decode %q: %v", raw, err)
	}
	return resp.StatusCode, decoded
}

func TestCreateMoveMissingFields(t *testing.T) {
	app, _ := setupApp(t)

	bodies := []string{
		`{}`,
		`{"pieceId":"` + uuid.NewString() + `"}`,
		`{"pieceId":"` + uuid.NewString() + `","targetPosition":5}`,
		`{"targetPosition":5,"addedBy":"` + uuid.NewString() + `"}`,
	}
	for _, body := range bodies {
		status, got := postJSON(t, app, "/move/create", body)
		if status != fiber.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, status)
		}
		if got["error"] != "Missing required fields: pieceId, targetPosition, addedBy" {
			t.Errorf("body %s: error = %q", body, got["error"])
		}
	}
}

func TestCreateMovePieceNotFound(t *testing.T) {
	app, db := setupApp(t)

	actor := uuid.New()
	slot := slotModel.SlotModel{
		SlotTableID: uuid.New(), SlotPosition: 5,
		SlotAddedBy: actor, SlotUpdatedBy: actor,
	}
	if err := db.Create(&slot).Error; err != nil {
		t.Fatalf("seed slot: %v", err)
	}

	body := `{"pieceId":"` + uuid.NewString() + `","targetPosition":5,"addedBy":"` + actor.String() + `"}`
	status, got := postJSON(t, app, "/move/create", body)
	if status != fiber.StatusNotFound {
		t.Errorf("status = %d, want 404", status)
	}
	if got["error"] != "Piece not found" {
		t.Errorf("error = %q", got["error"])
	}
}

func TestCreateMoveSlotNotFound(t *testing.T) {
	app, db := setupApp(t)

	actor := uuid.New()
	piece := pieceModel.PieceModel{PiecePosition: 1, PieceAddedBy: actor, PieceUpdatedBy: actor}
	if err := db.Create(&piece).Error; err != nil {
		t.Fatalf("seed piece: %v", err)
	}

	body := `{"pieceId":"` + piece.PieceID.String() + `","targetPosition":9,"addedBy":"` + actor.String() + `"}`
	status, got := postJSON(t, app, "/move/create", body)
	if status != fiber.StatusNotFound {
		t.Errorf("status = %d, want 404", status)
	}
	if got["error"] != "Target slot not found" {
		t.Errorf("error = %q", got["error"])
	}

	var moves int64
	db.Model(&moveModel.MoveModel{}).Count(&moves)
	if moves != 0 {
		t.Errorf("move count = %d after failed create, want 0", moves)
	}
}

func TestCreateMoveSuccess(t *testing.T) {
	app, db := setupApp(t)

	actor := uuid.New()
	piece := pieceModel.PieceModel{PiecePosition: 1, PieceAddedBy: actor, PieceUpdatedBy: actor}
	if err := db.Create(&piece).Error; err != nil {
		t.Fatalf("seed piece: %v", err)
	}
	slot := slotModel.SlotModel{
		SlotTableID: uuid.New(), SlotPosition: 12,
		SlotAddedBy: actor, SlotUpdatedBy: actor,
	}
	if err := db.Create(&slot).Error; err != nil {
		t.Fatalf("seed slot: %v", err)
	}

	body := `{"pieceId":"` + piece.PieceID.String() + `","targetPosition":12,"addedBy":"` + actor.String() + `"}`
	status, got := postJSON(t, app, "/move/create", body)
	if status != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201", status)
	}
	if got["message"] != "Move registered successfully" {
		t.Errorf("message = %q", got["message"])
	}
	if _, hasData := got["data"]; hasData {
		t.Error("success body carries unexpected data field")
	}

	var gotSlot slotModel.SlotModel
	if err := db.Where("slot_id = ?", slot.SlotID).First(&gotSlot).Error; err != nil {
		t.Fatalf("reload slot: %v", err)
	}
	if gotSlot.SlotPieceID == nil || *gotSlot.SlotPieceID != piece.PieceID {
		t.Errorf("slot occupant = %v, want %s", gotSlot.SlotPieceID, piece.PieceID)
	}
}

func TestCreateMoveInvalidUUIDs(t *testing.T) {
	app, _ := setupApp(t)

	status, got := postJSON(t, app, "/move/create",
		`{"pieceId":"not-a-uuid","targetPosition":5,"addedBy":"`+uuid.NewString()+`"}`)
	if status != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", status)
	}
	if got["error"] != "invalid pieceId" {
		t.Errorf("error = %q", got["error"])
	}
}
