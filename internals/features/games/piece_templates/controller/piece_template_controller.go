package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "gameku_backend/internals/features/games/piece_templates/dto"
	m "gameku_backend/internals/features/games/piece_templates/model"
	"gameku_backend/internals/features/utils/cascade"
	helper "gameku_backend/internals/helpers"
)

type PieceTemplateController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *PieceTemplateController {
	return &PieceTemplateController{DB: db, Validate: v}
}

func (ctl *PieceTemplateController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req d.CreatePieceTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	tpl := req.ToModel(userID)
	if err := ctl.DB.WithContext(c.Context()).Create(tpl).Error; err != nil {
		log.Printf("[PieceTemplate.Create] %v", err)
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Piecetemplate created successfully", tpl)
}

func (ctl *PieceTemplateController) AddBulk(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body struct {
		Data []d.CreatePieceTemplateRequest `json:"data" validate:"required,min=1,dive"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	tpls := make([]*m.PieceTemplateModel, 0, len(body.Data))
	for _, item := range body.Data {
		tpls = append(tpls, item.ToModel(userID))
	}

	if err := ctl.DB.WithContext(c.Context()).Create(&tpls).Error; err != nil {
		log.Printf("[PieceTemplate.AddBulk] %v", err)
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Piecetemplates created successfully", fiber.Map{"count": len(tpls)})
}

func (ctl *PieceTemplateController) List(c *fiber.Ctx) error {
	var req helper.ListRequest
	if err := c.BodyParser(&req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize(20, 100)

	tx := ctl.DB.WithContext(c.Context()).Model(&m.PieceTemplateModel{})
	tx, err := helper.ApplyFilter(tx, req.Query, d.PieceTemplateFilterColumns)
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

	order, err := helper.SafeOrderClause(req.Options.Sort, d.PieceTemplateSortColumns, "piece_template_created_at DESC")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var tpls []m.PieceTemplateModel
	if err := tx.Order(order).Limit(req.Options.Limit).Offset(req.Offset()).Find(&tpls).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if len(tpls) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}

	return helper.JsonList(c, tpls, helper.BuildPaginationFromPage(total, req.Options.Page, req.Options.Limit))
}

func (ctl *PieceTemplateController) Count(c *fiber.Ctx) error {
	var req helper.ListRequest
	if err := c.BodyParser(&req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	tx := ctl.DB.WithContext(c.Context()).Model(&m.PieceTemplateModel{})
	tx, err := helper.ApplyFilter(tx, req.Query, d.PieceTemplateFilterColumns)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", fiber.Map{"totalRecords": total})
}

func (ctl *PieceTemplateController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var tpl m.PieceTemplateModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("piece_template_id = ?", id).
		First(&tpl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", tpl)
}

func (ctl *PieceTemplateController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var req d.UpdatePieceTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var tpl m.PieceTemplateModel
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("piece_template_id = ?", id).First(&tpl).Error; err != nil {
			return err
		}
		return tx.Model(&tpl).Updates(req.ToUpdates(userID)).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.WritePGError(c, err)
	}

	return helper.JsonOK(c, "Piecetemplate updated successfully", tpl)
}

func (ctl *PieceTemplateController) PartialUpdate(c *fiber.Ctx) error {
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

	updates := map[string]interface{}{"piece_template_updated_by": userID}
	for key, val := range body {
		col, ok := d.PieceTemplateFilterColumns[key]
		if !ok || col == "piece_template_id" {
			continue
		}
		updates[col] = val
	}

	res := ctl.DB.WithContext(c.Context()).
		Model(&m.PieceTemplateModel{}).
		Where("piece_template_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}

	return helper.JsonOK(c, "Piecetemplate updated successfully", fiber.Map{"piece_template_id": id})
}

func (ctl *PieceTemplateController) UpdateBulk(c *fiber.Ctx) error {
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

	updates := map[string]interface{}{"piece_template_updated_by": userID}
	for key, val := range body.Data {
		col, ok := d.PieceTemplateFilterColumns[key]
		if !ok || col == "piece_template_id" {
			continue
		}
		updates[col] = val
	}

	tx := ctl.DB.WithContext(c.Context()).Model(&m.PieceTemplateModel{})
	tx, err = helper.ApplyFilter(tx, body.Filter, d.PieceTemplateFilterColumns)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := tx.Updates(updates)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	return helper.JsonOK(c, "Piecetemplates updated successfully", fiber.Map{"count": res.RowsAffected})
}

func (ctl *PieceTemplateController) SoftDelete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	return ctl.softDeleteMany(c, []interface{}{id})
}

func (ctl *PieceTemplateController) SoftDeleteMany(c *fiber.Ctx) error {
	ids, err := parseIDsBody(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return ctl.softDeleteMany(c, ids)
}

func (ctl *PieceTemplateController) softDeleteMany(c *fiber.Ctx, ids []interface{}) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var affected int64
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := cascade.SoftDelete(tx, "piece_templates", ids); err != nil {
			return err
		}
		res := tx.Model(&m.PieceTemplateModel{}).
			Where("piece_template_id IN ?", ids).
			Updates(map[string]interface{}{"piece_template_is_deleted": true, "piece_template_updated_by": userID})
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}
	return helper.JsonOK(c, "Piecetemplate deleted successfully", fiber.Map{"count": affected})
}

func (ctl *PieceTemplateController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	return ctl.deleteMany(c, []interface{}{id})
}

func (ctl *PieceTemplateController) DeleteMany(c *fiber.Ctx) error {
	ids, err := parseIDsBody(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return ctl.deleteMany(c, ids)
}

func (ctl *PieceTemplateController) deleteMany(c *fiber.Ctx, ids []interface{}) error {
	var affected int64
	err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := cascade.HardDelete(tx, "piece_templates", ids); err != nil {
			return err
		}
		res := tx.Where("piece_template_id IN ?", ids).Delete(&m.PieceTemplateModel{})
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}
	return helper.JsonOK(c, "Piecetemplate deleted successfully", fiber.Map{"count": affected})
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
