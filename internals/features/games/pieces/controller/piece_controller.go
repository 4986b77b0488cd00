package controller

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "gameku_backend/internals/features/games/pieces/dto"
	m "gameku_backend/internals/features/games/pieces/model"
	"gameku_backend/internals/features/utils/cascade"
	helper "gameku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type PieceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *PieceController {
	return &PieceController{DB: db, Validate: v}
}

// checkUniquePosition is the write-time uniqueness guard on piece_position.
// excludeID skips the row being updated.
func (ctl *PieceController) checkUniquePosition(tx *gorm.DB, position int, excludeID interface{}) error {
	q := tx.Model(&m.PieceModel{}).
		Where("piece_position = ? AND piece_is_deleted = ?", position, false)
	if excludeID != nil {
		q = q.Where("piece_id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%d already exists.Only unique piece_position are allowed.", position)
	}
	return nil
}

/* =========================
   Create
   ========================= */

func (ctl *PieceController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req d.CreatePieceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	piece := req.ToModel(userID)

	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := ctl.checkUniquePosition(tx, piece.PiecePosition, nil); err != nil {
			return err
		}
		return tx.Create(piece).Error
	})
	if err != nil {
		log.Printf("[Piece.Create] %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	return helper.JsonCreated(c, "Piece created successfully", piece)
}

/* =========================
   AddBulk
   ========================= */

func (ctl *PieceController) AddBulk(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body struct {
		Data []d.CreatePieceRequest `json:"data" validate:"required,min=1,dive"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	pieces := make([]*m.PieceModel, 0, len(body.Data))
	seen := map[int]bool{}
	for _, item := range body.Data {
		if seen[item.PiecePosition] {
			return helper.JsonError(c, fiber.StatusBadRequest,
				fmt.Sprintf("%d already exists.Only unique piece_position are allowed.", item.PiecePosition))
		}
		seen[item.PiecePosition] = true
		pieces = append(pieces, item.ToModel(userID))
	}

	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		for _, p := range pieces {
			if err := ctl.checkUniquePosition(tx, p.PiecePosition, nil); err != nil {
				return err
			}
		}
		return tx.Create(&pieces).Error
	})
	if err != nil {
		log.Printf("[Piece.AddBulk] %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	return helper.JsonCreated(c, "Pieces created successfully", fiber.Map{"count": len(pieces)})
}

/* =========================
   List / Count
   ========================= */

func (ctl *PieceController) List(c *fiber.Ctx) error {
	var req helper.ListRequest
	if err := c.BodyParser(&req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize(20, 100)

	tx := ctl.DB.WithContext(c.Context()).Model(&m.PieceModel{})
	tx, err := helper.ApplyFilter(tx, req.Query, d.PieceFilterColumns)
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

	order, err := helper.SafeOrderClause(req.Options.Sort, d.PieceSortColumns, "piece_created_at DESC")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var pieces []m.PieceModel
	if err := tx.Order(order).Limit(req.Options.Limit).Offset(req.Offset()).Find(&pieces).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if len(pieces) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}

	return helper.JsonList(c, pieces, helper.BuildPaginationFromPage(total, req.Options.Page, req.Options.Limit))
}

func (ctl *PieceController) Count(c *fiber.Ctx) error {
	var req helper.ListRequest
	if err := c.BodyParser(&req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	tx := ctl.DB.WithContext(c.Context()).Model(&m.PieceModel{})
	tx, err := helper.ApplyFilter(tx, req.Query, d.PieceFilterColumns)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", fiber.Map{"totalRecords": total})
}

/* =========================
   GetByID
   ========================= */

func (ctl *PieceController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var piece m.PieceModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("piece_id = ?", id).
		First(&piece).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", piece)
}

/* =========================
   Update / PartialUpdate / UpdateBulk
   ========================= */

func (ctl *PieceController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var req d.UpdatePieceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var piece m.PieceModel
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("piece_id = ?", id).First(&piece).Error; err != nil {
			return err
		}
		if err := ctl.checkUniquePosition(tx, req.PiecePosition, id); err != nil {
			return err
		}
		return tx.Model(&piece).Updates(req.ToUpdates(userID)).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	return helper.JsonOK(c, "Piece updated successfully", piece)
}

// PartialUpdate only touches the fields present in the body.
func (ctl *PieceController) PartialUpdate(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	updates := map[string]interface{}{"piece_updated_by": userID}
	for key, val := range body {
		col, ok := d.PieceFilterColumns[key]
		if !ok || col == "piece_id" {
			continue
		}
		updates[col] = val
	}

	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if pos, ok := updates["piece_position"]; ok {
			if posNum, ok := pos.(float64); ok {
				if err := ctl.checkUniquePosition(tx, int(posNum), id); err != nil {
					return err
				}
			}
		}
		res := tx.Model(&m.PieceModel{}).Where("piece_id = ?", id).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	return helper.JsonOK(c, "Piece updated successfully", fiber.Map{"piece_id": id})
}

func (ctl *PieceController) UpdateBulk(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body struct {
		Filter map[string]interface{} `json:"filter"`
		Data   map[string]interface{} `json:"data" validate:"required,min=1"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{"piece_updated_by": userID}
	for key, val := range body.Data {
		col, ok := d.PieceFilterColumns[key]
		if !ok || col == "piece_id" {
			continue
		}
		updates[col] = val
	}
	// bulk position writes would collide with the uniqueness rule
	if _, ok := updates["piece_position"]; ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "piece_position cannot be bulk-updated")
	}

	tx := ctl.DB.WithContext(c.Context()).Model(&m.PieceModel{})
	tx, err = helper.ApplyFilter(tx, body.Filter, d.PieceFilterColumns)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := tx.Updates(updates)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	return helper.JsonOK(c, "Pieces updated successfully", fiber.Map{"count": res.RowsAffected})
}

/* =========================
   SoftDelete / Delete (+ bulk) with cascade
   ========================= */

func (ctl *PieceController) SoftDelete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	return ctl.softDeleteMany(c, []interface{}{id})
}

func (ctl *PieceController) SoftDeleteMany(c *fiber.Ctx) error {
	ids, err := parseIDsBody(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return ctl.softDeleteMany(c, ids)
}

func (ctl *PieceController) softDeleteMany(c *fiber.Ctx, ids []interface{}) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var affected int64
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := cascade.SoftDelete(tx, "pieces", ids); err != nil {
			return err
		}
		res := tx.Model(&m.PieceModel{}).
			Where("piece_id IN ?", ids).
			Updates(map[string]interface{}{"piece_is_deleted": true, "piece_updated_by": userID})
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}
	return helper.JsonOK(c, "Piece deleted successfully", fiber.Map{"count": affected})
}

func (ctl *PieceController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	return ctl.deleteMany(c, []interface{}{id})
}

func (ctl *PieceController) DeleteMany(c *fiber.Ctx) error {
	ids, err := parseIDsBody(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return ctl.deleteMany(c, ids)
}

func (ctl *PieceController) deleteMany(c *fiber.Ctx, ids []interface{}) error {
	var affected int64
	err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := cascade.HardDelete(tx, "pieces", ids); err != nil {
			return err
		}
		res := tx.Where("piece_id IN ?", ids).Delete(&m.PieceModel{})
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}
	return helper.JsonOK(c, "Piece deleted successfully", fiber.Map{"count": affected})
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
