package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "gameku_backend/internals/features/chats/chat_groups/dto"
	m "gameku_backend/internals/features/chats/chat_groups/model"
	"gameku_backend/internals/features/utils/cascade"
	helper "gameku_backend/internals/helpers"
)

type ChatGroupController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ChatGroupController {
	return &ChatGroupController{DB: db, Validate: v}
}

func (ctl *ChatGroupController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req d.CreateChatGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	group := req.ToModel(userID)
	if err := ctl.DB.WithContext(c.Context()).Create(group).Error; err != nil {
		log.Printf("[ChatGroup.Create] %v", err)
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Chat_group created successfully", group)
}

func (ctl *ChatGroupController) AddBulk(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body struct {
		Data []d.CreateChatGroupRequest `json:"data" validate:"required,min=1,dive"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	groups := make([]*m.ChatGroupModel, 0, len(body.Data))
	for _, item := range body.Data {
		groups = append(groups, item.ToModel(userID))
	}

	if err := ctl.DB.WithContext(c.Context()).Create(&groups).Error; err != nil {
		log.Printf("[ChatGroup.AddBulk] %v", err)
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Chat_groups created successfully", fiber.Map{"count": len(groups)})
}

func (ctl *ChatGroupController) List(c *fiber.Ctx) error {
	var req helper.ListRequest
	if err := c.BodyParser(&req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize(20, 100)

	tx := ctl.DB.WithContext(c.Context()).Model(&m.ChatGroupModel{})
	tx, err := helper.ApplyFilter(tx, req.Query, d.ChatGroupFilterColumns)
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

	order, err := helper.SafeOrderClause(req.Options.Sort, d.ChatGroupSortColumns, "chat_group_created_at DESC")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var groups []m.ChatGroupModel
	if err := tx.Order(order).Limit(req.Options.Limit).Offset(req.Offset()).Find(&groups).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if len(groups) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}

	return helper.JsonList(c, groups, helper.BuildPaginationFromPage(total, req.Options.Page, req.Options.Limit))
}

func (ctl *ChatGroupController) Count(c *fiber.Ctx) error {
	var req helper.ListRequest
	if err := c.BodyParser(&req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	tx := ctl.DB.WithContext(c.Context()).Model(&m.ChatGroupModel{})
	tx, err := helper.ApplyFilter(tx, req.Query, d.ChatGroupFilterColumns)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", fiber.Map{"totalRecords": total})
}

func (ctl *ChatGroupController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var group m.ChatGroupModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("chat_group_id = ?", id).
		First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", group)
}

func (ctl *ChatGroupController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var req d.UpdateChatGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var group m.ChatGroupModel
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("chat_group_id = ?", id).First(&group).Error; err != nil {
			return err
		}
		return tx.Model(&group).Updates(req.ToUpdates(userID)).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.WritePGError(c, err)
	}

	return helper.JsonOK(c, "Chat_group updated successfully", group)
}

func (ctl *ChatGroupController) PartialUpdate(c *fiber.Ctx) error {
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

	updates := map[string]interface{}{"chat_group_updated_by": userID}
	for key, val := range body {
		col, ok := d.ChatGroupFilterColumns[key]
		if !ok || col == "chat_group_id" {
			continue
		}
		updates[col] = val
	}

	res := ctl.DB.WithContext(c.Context()).
		Model(&m.ChatGroupModel{}).
		Where("chat_group_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}

	return helper.JsonOK(c, "Chat_group updated successfully", fiber.Map{"chat_group_id": id})
}

func (ctl *ChatGroupController) UpdateBulk(c *fiber.Ctx) error {
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

	updates := map[string]interface{}{"chat_group_updated_by": userID}
	for key, val := range body.Data {
		col, ok := d.ChatGroupFilterColumns[key]
		if !ok || col == "chat_group_id" {
			continue
		}
		updates[col] = val
	}

	tx := ctl.DB.WithContext(c.Context()).Model(&m.ChatGroupModel{})
	tx, err = helper.ApplyFilter(tx, body.Filter, d.ChatGroupFilterColumns)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := tx.Updates(updates)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	return helper.JsonOK(c, "Chat_groups updated successfully", fiber.Map{"count": res.RowsAffected})
}

func (ctl *ChatGroupController) SoftDelete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	return ctl.softDeleteMany(c, []interface{}{id})
}

func (ctl *ChatGroupController) SoftDeleteMany(c *fiber.Ctx) error {
	ids, err := parseIDsBody(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return ctl.softDeleteMany(c, ids)
}

func (ctl *ChatGroupController) softDeleteMany(c *fiber.Ctx, ids []interface{}) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var affected int64
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := cascade.SoftDelete(tx, "chat_groups", ids); err != nil {
			return err
		}
		res := tx.Model(&m.ChatGroupModel{}).
			Where("chat_group_id IN ?", ids).
			Updates(map[string]interface{}{"chat_group_is_deleted": true, "chat_group_updated_by": userID})
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}
	return helper.JsonOK(c, "Chat_group deleted successfully", fiber.Map{"count": affected})
}

func (ctl *ChatGroupController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	return ctl.deleteMany(c, []interface{}{id})
}

func (ctl *ChatGroupController) DeleteMany(c *fiber.Ctx) error {
	ids, err := parseIDsBody(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return ctl.deleteMany(c, ids)
}

func (ctl *ChatGroupController) deleteMany(c *fiber.Ctx, ids []interface{}) error {
	var affected int64
	err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := cascade.HardDelete(tx, "chat_groups", ids); err != nil {
			return err
		}
		res := tx.Where("chat_group_id IN ?", ids).Delete(&m.ChatGroupModel{})
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}
	return helper.JsonOK(c, "Chat_group deleted successfully", fiber.Map{"count": affected})
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
