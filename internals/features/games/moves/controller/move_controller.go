package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "gameku_backend/internals/features/games/moves/dto"
	m "gameku_backend/internals/features/games/moves/model"
	"gameku_backend/internals/features/games/moves/service"
	"gameku_backend/internals/features/utils/cascade"
	helper "gameku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type MoveController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *MoveController {
	return &MoveController{DB: db, Validate: v}
}

/* =========================
   Create — the move transaction
   ========================= */

// Create runs the whole move as one transaction: piece lookup, slot lookup
// by board position, occupant update, move insert. Not-found aborts with no
// partial writes; unexpected failures roll back and surface a generic 500
// with the detail logged server-side.
func (ctl *MoveController) Create(c *fiber.Ctx) error {
	var req d.CreateMoveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if strings.TrimSpace(req.PieceID) == "" || req.TargetPosition == 0 || strings.TrimSpace(req.AddedBy) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Missing required fields: pieceId, targetPosition, addedBy")
	}

	pieceID, err := uuid.Parse(req.PieceID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid pieceId")
	}
	addedBy, err := uuid.Parse(req.AddedBy)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid addedBy")
	}

	_, err = service.ApplyMove(c.Context(), ctl.DB, service.ApplyMoveInput{
		PieceID:        pieceID,
		TargetPosition: req.TargetPosition,
		AddedBy:        addedBy,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPieceNotFound), errors.Is(err, service.ErrSlotNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrMissingFields):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		default:
			log.Printf("[Move.Create] transaction failed: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Move registered successfully",
	})
}

/* =========================
   List / Count / GetByID
   ========================= */

func (ctl *MoveController) List(c *fiber.Ctx) error {
	var req helper.ListRequest
	if err := c.BodyParser(&req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize(20, 100)

	tx := ctl.DB.WithContext(c.Context()).Model(&m.MoveModel{})
	tx, err := helper.ApplyFilter(tx, req.Query, d.MoveFilterColumns)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if req.IsCountOnly {
		return helper.JsonOK(c, "OK", fiber.Map{"totalRecords": total})
	}

	order, err := helper.SafeOrderClause(req.Options.Sort, d.MoveSortColumns, "move_date DESC")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var moves []m.MoveModel
	if err := tx.Order(order).Limit(req.Options.Limit).Offset(req.Offset()).Find(&moves).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if len(moves) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}

	return helper.JsonList(c, moves, helper.BuildPaginationFromPage(total, req.Options.Page, req.Options.Limit))
}

func (ctl *MoveController) Count(c *fiber.Ctx) error {
	var req helper.ListRequest
	if err := c.BodyParser(&req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	tx := ctl.DB.WithContext(c.Context()).Model(&m.MoveModel{})
	tx, err := helper.ApplyFilter(tx, req.Query, d.MoveFilterColumns)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", fiber.Map{"totalRecords": total})
}

func (ctl *MoveController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var move m.MoveModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("move_id = ?", id).
		First(&move).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", move)
}

/* =========================
   SoftDelete / Delete (+ bulk)
   Moves are append-only; the flag flip is the only mutation allowed.
   ========================= */

func (ctl *MoveController) SoftDelete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	return ctl.softDeleteMany(c, []interface{}{id})
}

func (ctl *MoveController) SoftDeleteMany(c *fiber.Ctx) error {
	ids, err := parseIDsBody(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return ctl.softDeleteMany(c, ids)
}

func (ctl *MoveController) softDeleteMany(c *fiber.Ctx, ids []interface{}) error {
	res := ctl.DB.WithContext(c.Context()).
		Model(&m.MoveModel{}).
		Where("move_id IN ?", ids).
		Update("move_is_deleted", true)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}
	return helper.JsonOK(c, "Move deleted successfully", fiber.Map{"count": res.RowsAffected})
}

func (ctl *MoveController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	return ctl.deleteMany(c, []interface{}{id})
}

func (ctl *MoveController) DeleteMany(c *fiber.Ctx) error {
	ids, err := parseIDsBody(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return ctl.deleteMany(c, ids)
}

func (ctl *MoveController) deleteMany(c *fiber.Ctx, ids []interface{}) error {
	var affected int64
	err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := cascade.HardDelete(tx, "moves", ids); err != nil {
			return err
		}
		res := tx.Where("move_id IN ?", ids).Delete(&m.MoveModel{})
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}
	return helper.JsonOK(c, "Move deleted successfully", fiber.Map{"count": affected})
}

func parseIDsBody(c *fiber.Ctx) ([]interface{}, error) {
	var body struct {
		IDs []string `json:"ids"`
	}
	if err := c.BodyParser(&body); err != nil {
		return nil, err
	}
	if len(body.IDs) == 0 {
		return nil, errors.New("ids is required")
	}
	ids := make([]interface{}, 0, len(body.IDs))
	for _, raw := range body.IDs {
		ids = append(ids, raw)
	}
	return ids, nil
}
