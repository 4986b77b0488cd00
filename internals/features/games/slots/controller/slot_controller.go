package controller

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "gameku_backend/internals/features/games/slots/dto"
	m "gameku_backend/internals/features/games/slots/model"
	"gameku_backend/internals/features/utils/cascade"
	helper "gameku_backend/internals/helpers"
)

type SlotController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *SlotController {
	return &SlotController{DB: db, Validate: v}
}

// checkUniquePosition guards slot_position uniqueness within one table.
func (ctl *SlotController) checkUniquePosition(tx *gorm.DB, tableID uuid.UUID, position int, excludeID interface{}) error {
	q := tx.Model(&m.SlotModel{}).
		Where("slot_table_id = ? AND slot_position = ? AND slot_is_deleted = ?", tableID, position, false)
	if excludeID != nil {
		q = q.Where("slot_id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%d already exists.Only unique slot_position are allowed.", position)
	}
	return nil
}

/* =========================
   Create / AddBulk
   ========================= */

func (ctl *SlotController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req d.CreateSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	slot := req.ToModel(userID)
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := ctl.checkUniquePosition(tx, slot.SlotTableID, slot.SlotPosition, nil); err != nil {
			return err
		}
		return tx.Create(slot).Error
	})
	if err != nil {
		log.Printf("[Slot.Create] %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	return helper.JsonCreated(c, "Slot created successfully", slot)
}

func (ctl *SlotController) AddBulk(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body struct {
		Data []d.CreateSlotRequest `json:"data" validate:"required,min=1,dive"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	slots := make([]*m.SlotModel, 0, len(body.Data))
	type key struct {
		table    uuid.UUID
		position int
	}
	seen := map[key]bool{}
	for _, item := range body.Data {
		k := key{item.SlotTableID, item.SlotPosition}
		if seen[k] {
			return helper.JsonError(c, fiber.StatusBadRequest,
				fmt.Sprintf("%d already exists.Only unique slot_position are allowed.", item.SlotPosition))
		}
		seen[k] = true
		slots = append(slots, item.ToModel(userID))
	}

	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		for _, s := range slots {
			if err := ctl.checkUniquePosition(tx, s.SlotTableID, s.SlotPosition, nil); err != nil {
				return err
			}
		}
		return tx.Create(&slots).Error
	})
	if err != nil {
		log.Printf("[Slot.AddBulk] %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	return helper.JsonCreated(c, "Slots created successfully", fiber.Map{"count": len(slots)})
}

/* =========================
   List / Count / GetByID
   ========================= */

func (ctl *SlotController) List(c *fiber.Ctx) error {
	var req helper.ListRequest
	if err := c.BodyParser(&req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize(64, 200)

	tx := ctl.DB.WithContext(c.Context()).Model(&m.SlotModel{})
	tx, err := helper.ApplyFilter(tx, req.Query, d.SlotFilterColumns)
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

	order, err := helper.SafeOrderClause(req.Options.Sort, d.SlotSortColumns, "slot_position ASC")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var slots []m.SlotModel
	if err := tx.Order(order).Limit(req.Options.Limit).Offset(req.Offset()).Find(&slots).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if len(slots) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}

	return helper.JsonList(c, slots, helper.BuildPaginationFromPage(total, req.Options.Page, req.Options.Limit))
}

func (ctl *SlotController) Count(c *fiber.Ctx) error {
	var req helper.ListRequest
	if err := c.BodyParser(&req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	tx := ctl.DB.WithContext(c.Context()).Model(&m.SlotModel{})
	tx, err := helper.ApplyFilter(tx, req.Query, d.SlotFilterColumns)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", fiber.Map{"totalRecords": total})
}

func (ctl *SlotController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var slot m.SlotModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("slot_id = ?", id).
		First(&slot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", slot)
}

/* =========================
   Update / PartialUpdate / UpdateBulk
   ========================= */

func (ctl *SlotController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var req d.UpdateSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var slot m.SlotModel
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("slot_id = ?", id).First(&slot).Error; err != nil {
			return err
		}
		if err := ctl.checkUniquePosition(tx, slot.SlotTableID, req.SlotPosition, id); err != nil {
			return err
		}
		return tx.Model(&slot).Updates(req.ToUpdates(userID)).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	return helper.JsonOK(c, "Slot updated successfully", slot)
}

func (ctl *SlotController) PartialUpdate(c *fiber.Ctx) error {
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

	updates := map[string]interface{}{"slot_updated_by": userID}
	for key, val := range body {
		col, ok := d.SlotFilterColumns[key]
		if !ok || col == "slot_id" || col == "slot_table_id" {
			continue
		}
		updates[col] = val
	}

	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var slot m.SlotModel
		if err := tx.Where("slot_id = ?", id).First(&slot).Error; err != nil {
			return err
		}
		if pos, ok := updates["slot_position"]; ok {
			if posNum, ok := pos.(float64); ok {
				if err := ctl.checkUniquePosition(tx, slot.SlotTableID, int(posNum), id); err != nil {
					return err
				}
			}
		}
		return tx.Model(&slot).Updates(updates).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	return helper.JsonOK(c, "Slot updated successfully", fiber.Map{"slot_id": id})
}

func (ctl *SlotController) UpdateBulk(c *fiber.Ctx) error {
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

	updates := map[string]interface{}{"slot_updated_by": userID}
	for key, val := range body.Data {
		col, ok := d.SlotFilterColumns[key]
		if !ok || col == "slot_id" {
			continue
		}
		updates[col] = val
	}
	if _, ok := updates["slot_position"]; ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "slot_position cannot be bulk-updated")
	}

	tx := ctl.DB.WithContext(c.Context()).Model(&m.SlotModel{})
	tx, err = helper.ApplyFilter(tx, body.Filter, d.SlotFilterColumns)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := tx.Updates(updates)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	return helper.JsonOK(c, "Slots updated successfully", fiber.Map{"count": res.RowsAffected})
}

/* =========================
   SoftDelete / Delete (+ bulk)
   ========================= */

func (ctl *SlotController) SoftDelete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	return ctl.softDeleteMany(c, []interface{}{id})
}

func (ctl *SlotController) SoftDeleteMany(c *fiber.Ctx) error {
	ids, err := parseIDsBody(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return ctl.softDeleteMany(c, ids)
}

func (ctl *SlotController) softDeleteMany(c *fiber.Ctx, ids []interface{}) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var affected int64
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := cascade.SoftDelete(tx, "slots", ids); err != nil {
			return err
		}
		res := tx.Model(&m.SlotModel{}).
			Where("slot_id IN ?", ids).
			Updates(map[string]interface{}{"slot_is_deleted": true, "slot_updated_by": userID})
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}
	return helper.JsonOK(c, "Slot deleted successfully", fiber.Map{"count": affected})
}

func (ctl *SlotController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	return ctl.deleteMany(c, []interface{}{id})
}

func (ctl *SlotController) DeleteMany(c *fiber.Ctx) error {
	ids, err := parseIDsBody(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return ctl.deleteMany(c, ids)
}

func (ctl *SlotController) deleteMany(c *fiber.Ctx, ids []interface{}) error {
	var affected int64
	err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := cascade.HardDelete(tx, "slots", ids); err != nil {
			return err
		}
		res := tx.Where("slot_id IN ?", ids).Delete(&m.SlotModel{})
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}
	return helper.JsonOK(c, "Slot deleted successfully", fiber.Map{"count": affected})
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
