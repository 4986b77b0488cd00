package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "gameku_backend/internals/features/chats/chat_messages/dto"
	m "gameku_backend/internals/features/chats/chat_messages/model"
	"gameku_backend/internals/features/utils/cascade"
	helper "gameku_backend/internals/helpers"
)

type ChatMessageController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ChatMessageController {
	return &ChatMessageController{DB: db, Validate: v}
}

func (ctl *ChatMessageController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req d.CreateChatMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	msg := req.ToModel(userID)
	if err := ctl.DB.WithContext(c.Context()).Create(msg).Error; err != nil {
		log.Printf("[ChatMessage.Create] %v", err)
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Chat_message created successfully", msg)
}

func (ctl *ChatMessageController) AddBulk(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body struct {
		Data []d.CreateChatMessageRequest `json:"data" validate:"required,min=1,dive"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	msgs := make([]*m.ChatMessageModel, 0, len(body.Data))
	for _, item := range body.Data {
		msgs = append(msgs, item.ToModel(userID))
	}

	if err := ctl.DB.WithContext(c.Context()).Create(&msgs).Error; err != nil {
		log.Printf("[ChatMessage.AddBulk] %v", err)
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Chat_messages created successfully", fiber.Map{"count": len(msgs)})
}

func (ctl *ChatMessageController) List(c *fiber.Ctx) error {
	var req helper.ListRequest
	if err := c.BodyParser(&req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize(50, 200)

	tx := ctl.DB.WithContext(c.Context()).Model(&m.ChatMessageModel{})
	tx, err := helper.ApplyFilter(tx, req.Query, d.ChatMessageFilterColumns)
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

	order, err := helper.SafeOrderClause(req.Options.Sort, d.ChatMessageSortColumns, "chat_message_created_at DESC")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var msgs []m.ChatMessageModel
	if err := tx.Order(order).Limit(req.Options.Limit).Offset(req.Offset()).Find(&msgs).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if len(msgs) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}

	return helper.JsonList(c, msgs, helper.BuildPaginationFromPage(total, req.Options.Page, req.Options.Limit))
}

func (ctl *ChatMessageController) Count(c *fiber.Ctx) error {
	var req helper.ListRequest
	if err := c.BodyParser(&req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	tx := ctl.DB.WithContext(c.Context()).Model(&m.ChatMessageModel{})
	tx, err := helper.ApplyFilter(tx, req.Query, d.ChatMessageFilterColumns)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", fiber.Map{"totalRecords": total})
}

func (ctl *ChatMessageController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var msg m.ChatMessageModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("chat_message_id = ?", id).
		First(&msg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", msg)
}

func (ctl *ChatMessageController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var req d.UpdateChatMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var msg m.ChatMessageModel
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("chat_message_id = ?", id).First(&msg).Error; err != nil {
			return err
		}
		return tx.Model(&msg).Updates(req.ToUpdates(userID)).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.WritePGError(c, err)
	}

	return helper.JsonOK(c, "Chat_message updated successfully", msg)
}

func (ctl *ChatMessageController) PartialUpdate(c *fiber.Ctx) error {
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

	updates := map[string]interface{}{"chat_message_updated_by": userID}
	for key, val := range body {
		col, ok := d.ChatMessageFilterColumns[key]
		if !ok || col == "chat_message_id" || col == "chat_message_group_id" {
			continue
		}
		updates[col] = val
	}

	res := ctl.DB.WithContext(c.Context()).
		Model(&m.ChatMessageModel{}).
		Where("chat_message_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}

	return helper.JsonOK(c, "Chat_message updated successfully", fiber.Map{"chat_message_id": id})
}

func (ctl *ChatMessageController) UpdateBulk(c *fiber.Ctx) error {
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

	updates := map[string]interface{}{"chat_message_updated_by": userID}
	for key, val := range body.Data {
		col, ok := d.ChatMessageFilterColumns[key]
		if !ok || col == "chat_message_id" {
			continue
		}
		updates[col] = val
	}

	tx := ctl.DB.WithContext(c.Context()).Model(&m.ChatMessageModel{})
	tx, err = helper.ApplyFilter(tx, body.Filter, d.ChatMessageFilterColumns)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := tx.Updates(updates)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	return helper.JsonOK(c, "Chat_messages updated successfully", fiber.Map{"count": res.RowsAffected})
}

func (ctl *ChatMessageController) SoftDelete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	return ctl.softDeleteMany(c, []interface{}{id})
}

func (ctl *ChatMessageController) SoftDeleteMany(c *fiber.Ctx) error {
	ids, err := parseIDsBody(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return ctl.softDeleteMany(c, ids)
}

func (ctl *ChatMessageController) softDeleteMany(c *fiber.Ctx, ids []interface{}) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	res := ctl.DB.WithContext(c.Context()).
		Model(&m.ChatMessageModel{}).
		Where("chat_message_id IN ?", ids).
		Updates(map[string]interface{}{"chat_message_is_deleted": true, "chat_message_updated_by": userID})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}
	return helper.JsonOK(c, "Chat_message deleted successfully", fiber.Map{"count": res.RowsAffected})
}

func (ctl *ChatMessageController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	return ctl.deleteMany(c, []interface{}{id})
}

func (ctl *ChatMessageController) DeleteMany(c *fiber.Ctx) error {
	ids, err := parseIDsBody(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return ctl.deleteMany(c, ids)
}

func (ctl *ChatMessageController) deleteMany(c *fiber.Ctx, ids []interface{}) error {
	var affected int64
	err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := cascade.HardDelete(tx, "chat_messages", ids); err != nil {
			return err
		}
		res := tx.Where("chat_message_id IN ?", ids).Delete(&m.ChatMessageModel{})
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}
	return helper.JsonOK(c, "Chat_message deleted successfully", fiber.Map{"count": affected})
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
