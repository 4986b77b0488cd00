package controller

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "gameku_backend/internals/features/games/tables/dto"
	m "gameku_backend/internals/features/games/tables/model"
	"gameku_backend/internals/features/utils/cascade"
	helper "gameku_backend/internals/helpers"
)

type TableController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *TableController {
	return &TableController{DB: db, Validate: v}
}

// checkUniqueCoordinate guards table_coordinate uniqueness within one game.
func (ctl *TableController) checkUniqueCoordinate(tx *gorm.DB, gameID uuid.UUID, coordinate int, excludeID interface{}) error {
	q := tx.Model(&m.TableModel{}).
		Where("table_game_id = ? AND table_coordinate = ? AND table_is_deleted = ?", gameID, coordinate, false)
	if excludeID != nil {
		q = q.Where("table_id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%d already exists.Only unique table_coordinate are allowed.", coordinate)
	}
	return nil
}

func (ctl *TableController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req d.CreateTableRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	table := req.ToModel(userID)
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := ctl.checkUniqueCoordinate(tx, table.TableGameID, table.TableCoordinate, nil); err != nil {
			return err
		}
		return tx.Create(table).Error
	})
	if err != nil {
		log.Printf("[Table.Create] %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	return helper.JsonCreated(c, "Table created successfully", table)
}

func (ctl *TableController) AddBulk(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body struct {
		Data []d.CreateTableRequest `json:"data" validate:"required,min=1,dive"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	tables := make([]*m.TableModel, 0, len(body.Data))
	for _, item := range body.Data {
		tables = append(tables, item.ToModel(userID))
	}

	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		for _, t := range tables {
			if err := ctl.checkUniqueCoordinate(tx, t.TableGameID, t.TableCoordinate, nil); err != nil {
				return err
			}
		}
		return tx.Create(&tables).Error
	})
	if err != nil {
		log.Printf("[Table.AddBulk] %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	return helper.JsonCreated(c, "Tables created successfully", fiber.Map{"count": len(tables)})
}

func (ctl *TableController) List(c *fiber.Ctx) error {
	var req helper.ListRequest
	if err := c.BodyParser(&req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize(20, 100)

	tx := ctl.DB.WithContext(c.Context()).Model(&m.TableModel{})
	tx, err := helper.ApplyFilter(tx, req.Query, d.TableFilterColumns)
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

	order, err := helper.SafeOrderClause(req.Options.Sort, d.TableSortColumns, "table_coordinate ASC")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var tables []m.TableModel
	if err := tx.Order(order).Limit(req.Options.Limit).Offset(req.Offset()).Find(&tables).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if len(tables) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}

	return helper.JsonList(c, tables, helper.BuildPaginationFromPage(total, req.Options.Page, req.Options.Limit))
}

func (ctl *TableController) Count(c *fiber.Ctx) error {
	var req helper.ListRequest
	if err := c.BodyParser(&req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	tx := ctl.DB.WithContext(c.Context()).Model(&m.TableModel{})
	tx, err := helper.ApplyFilter(tx, req.Query, d.TableFilterColumns)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", fiber.Map{"totalRecords": total})
}

func (ctl *TableController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var table m.TableModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("table_id = ?", id).
		First(&table).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", table)
}

func (ctl *TableController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var req d.UpdateTableRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var table m.TableModel
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("table_id = ?", id).First(&table).Error; err != nil {
			return err
		}
		if err := ctl.checkUniqueCoordinate(tx, table.TableGameID, req.TableCoordinate, id); err != nil {
			return err
		}
		return tx.Model(&table).Updates(req.ToUpdates(userID)).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	return helper.JsonOK(c, "Table updated successfully", table)
}

func (ctl *TableController) PartialUpdate(c *fiber.Ctx) error {
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

	updates := map[string]interface{}{"table_updated_by": userID}
	for key, val := range body {
		col, ok := d.TableFilterColumns[key]
		if !ok || col == "table_id" || col == "table_game_id" {
			continue
		}
		updates[col] = val
	}

	res := ctl.DB.WithContext(c.Context()).
		Model(&m.TableModel{}).
		Where("table_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}

	return helper.JsonOK(c, "Table updated successfully", fiber.Map{"table_id": id})
}

func (ctl *TableController) UpdateBulk(c *fiber.Ctx) error {
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

	updates := map[string]interface{}{"table_updated_by": userID}
	for key, val := range body.Data {
		col, ok := d.TableFilterColumns[key]
		if !ok || col == "table_id" {
			continue
		}
		updates[col] = val
	}
	if _, ok := updates["table_coordinate"]; ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "table_coordinate cannot be bulk-updated")
	}

	tx := ctl.DB.WithContext(c.Context()).Model(&m.TableModel{})
	tx, err = helper.ApplyFilter(tx, body.Filter, d.TableFilterColumns)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := tx.Updates(updates)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	return helper.JsonOK(c, "Tables updated successfully", fiber.Map{"count": res.RowsAffected})
}

func (ctl *TableController) SoftDelete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	return ctl.softDeleteMany(c, []interface{}{id})
}

func (ctl *TableController) SoftDeleteMany(c *fiber.Ctx) error {
	ids, err := parseIDsBody(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return ctl.softDeleteMany(c, ids)
}

func (ctl *TableController) softDeleteMany(c *fiber.Ctx, ids []interface{}) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var affected int64
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := cascade.SoftDelete(tx, "tables", ids); err != nil {
			return err
		}
		res := tx.Model(&m.TableModel{}).
			Where("table_id IN ?", ids).
			Updates(map[string]interface{}{"table_is_deleted": true, "table_updated_by": userID})
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}
	return helper.JsonOK(c, "Table deleted successfully", fiber.Map{"count": affected})
}

func (ctl *TableController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	return ctl.deleteMany(c, []interface{}{id})
}

func (ctl *TableController) DeleteMany(c *fiber.Ctx) error {
	ids, err := parseIDsBody(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return ctl.deleteMany(c, ids)
}

func (ctl *TableController) deleteMany(c *fiber.Ctx, ids []interface{}) error {
	var affected int64
	err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := cascade.HardDelete(tx, "tables", ids); err != nil {
			return err
		}
		res := tx.Where("table_id IN ?", ids).Delete(&m.TableModel{})
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}
	return helper.JsonOK(c, "Table deleted successfully", fiber.Map{"count": affected})
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
