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
	// stand-in for the auth middleware
	actor := uuid.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", actor)
		return c.Next()
	})
	ctl := New(db, validator.New())
	app.Post("/piece/create", ctl.Create)
	app.Post("/piece/list", ctl.List)
	app.Put("/piece/softDelete/:id", ctl.SoftDelete)
	return app, db
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
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

func TestCreatePieceUniquePosition(t *testing.T) {
	app, db := setupApp(t)

	status, _ := do(t, app, "POST", "/piece/create", `{"piece_position":7}`)
	if status != fiber.StatusCreated {
		t.Fatalf("first create status = %d, want 201", status)
	}

	status, got := do(t, app, "POST", "/piece/create", `{"piece_position":7}`)
	if status != fiber.StatusBadRequest {
		t.Errorf("dup create status = %d, want 400", status)
	}
	if got["error"] != "7 already exists.Only unique piece_position are allowed." {
		t.Errorf("error = %q", got["error"])
	}

	var count int64
	db.Model(&pieceModel.PieceModel{}).Count(&count)
	if count != 1 {
		t.Errorf("piece count = %d, want 1", count)
	}
}

func TestListPiecesFilterWhitelist(t *testing.T) {
	app, _ := setupApp(t)

	if status, _ := do(t, app, "POST", "/piece/create", `{"piece_position":3}`); status != fiber.StatusCreated {
		t.Fatalf("create failed: %d", status)
	}

	status, got := do(t, app, "POST", "/piece/list", `{"query":{"piece_position":3}}`)
	if status != fiber.StatusOK {
		t.Fatalf("list status = %d, want 200", status)
	}
	data, _ := got["data"].([]interface{})
	if len(data) != 1 {
		t.Errorf("list returned %d rows, want 1", len(data))
	}

	status, got = do(t, app, "POST", "/piece/list", `{"query":{"user_password":"x"}}`)
	if status != fiber.StatusBadRequest {
		t.Errorf("unlisted filter status = %d, want 400", status)
	}
	if msg, _ := got["error"].(string); !strings.Contains(msg, "not allowed") {
		t.Errorf("error = %q", got["error"])
	}
}

func TestListPiecesEmpty(t *testing.T) {
	app, _ := setupApp(t)

	status, got := do(t, app, "POST", "/piece/list", `{}`)
	if status != fiber.StatusNotFound {
		t.Errorf("status = %d, want 404", status)
	}
	if got["error"] != "Record not found" {
		t.Errorf("error = %q", got["error"])
	}
}

func TestSoftDeletePieceCascades(t *testing.T) {
	app, db := setupApp(t)
	actor := uuid.New()

	piece := pieceModel.PieceModel{PiecePosition: 4, PieceAddedBy: actor, PieceUpdatedBy: actor}
	if err := db.Create(&piece).Error; err != nil {
		t.Fatalf("seed piece: %v", err)
	}
	move := moveModel.MoveModel{
		MovePieceID:      piece.PieceID,
		MoveTargetSlotID: uuid.New(),
		MoveAddedBy:      actor,
	}
	if err := db.Create(&move).Error; err != nil {
		t.Fatalf("seed move: %v", err)
	}

	status, _ := do(t, app, "PUT", "/piece/softDelete/"+piece.PieceID.String(), `{}`)
	if status != fiber.StatusOK {
		t.Fatalf("soft delete status = %d, want 200", status)
	}

	var gotPiece pieceModel.PieceModel
	if err := db.Where("piece_id = ?", piece.PieceID).First(&gotPiece).Error; err != nil {
		t.Fatalf("reload piece: %v", err)
	}
	if !gotPiece.PieceIsDeleted {
		t.Error("piece not flagged deleted")
	}

	var gotMove moveModel.MoveModel
	if err := db.Where("move_id = ?", move.MoveID).First(&gotMove).Error; err != nil {
		t.Fatalf("reload move: %v", err)
	}
	if !gotMove.MoveIsDeleted {
		t.Error("move not flagged deleted with its piece")
	}
}
