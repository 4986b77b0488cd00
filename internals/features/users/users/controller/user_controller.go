package controller

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	d "gameku_backend/internals/features/users/users/dto"
	m "gameku_backend/internals/features/users/users/model"
	"gameku_backend/internals/features/utils/cascade"
	helper "gameku_backend/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *UserController {
	return &UserController{DB: db, Validate: v}
}

func (ctl *UserController) checkUniqueUsername(tx *gorm.DB, username string, excludeID interface{}) error {
	q := tx.Model(&m.UserModel{}).Where("user_username = ?", username)
	if excludeID != nil {
		q = q.Where("user_id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%s already exists.Only unique user_username are allowed.", username)
	}
	return nil
}

func (ctl *UserController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req d.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[User.Create] hash: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	user := req.ToModel(userID)
	user.UserPassword = string(hash)

	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := ctl.checkUniqueUsername(tx, user.UserUsername, nil); err != nil {
			return err
		}
		return tx.Create(user).Error
	})
	if err != nil {
		log.Printf("[User.Create] %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	return helper.JsonCreated(c, "User created successfully", user)
}

func (ctl *UserController) AddBulk(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body struct {
		Data []d.CreateUserRequest `json:"data" validate:"required,min=1,dive"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	seen := make(map[string]bool, len(body.Data))
	users := make([]*m.UserModel, 0, len(body.Data))
	for _, item := range body.Data {
		if seen[item.UserUsername] {
			return helper.JsonError(c, fiber.StatusBadRequest,
				fmt.Sprintf("%s already exists.Only unique user_username are allowed.", item.UserUsername))
		}
		seen[item.UserUsername] = true

		hash, err := bcrypt.GenerateFromPassword([]byte(item.UserPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("[User.AddBulk] hash: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
		}
		user := item.ToModel(userID)
		user.UserPassword = string(hash)
		users = append(users, user)
	}

	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		for _, u := range users {
			if err := ctl.checkUniqueUsername(tx, u.UserUsername, nil); err != nil {
				return err
			}
		}
		return tx.Create(&users).Error
	})
	if err != nil {
		log.Printf("[User.AddBulk] %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	return helper.JsonCreated(c, "Users created successfully", fiber.Map{"count": len(users)})
}

func (ctl *UserController) List(c *fiber.Ctx) error {
	var req helper.ListRequest
	if err := c.BodyParser(&req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize(20, 100)

	tx := ctl.DB.WithContext(c.Context()).Model(&m.UserModel{})
	tx, err := helper.ApplyFilter(tx, req.Query, d.UserFilterColumns)
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

	order, err := helper.SafeOrderClause(req.Options.Sort, d.UserSortColumns, "user_created_at DESC")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var users []m.UserModel
	if err := tx.Order(order).Limit(req.Options.Limit).Offset(req.Offset()).Find(&users).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if len(users) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}

	return helper.JsonList(c, users, helper.BuildPaginationFromPage(total, req.Options.Page, req.Options.Limit))
}

func (ctl *UserController) Count(c *fiber.Ctx) error {
	var req helper.ListRequest
	if err := c.BodyParser(&req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	tx := ctl.DB.WithContext(c.Context()).Model(&m.UserModel{})
	tx, err := helper.ApplyFilter(tx, req.Query, d.UserFilterColumns)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", fiber.Map{"totalRecords": total})
}

func (ctl *UserController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var user m.UserModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("user_id = ?", id).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", user)
}

// Me returns the authenticated caller's own record.
func (ctl *UserController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user m.UserModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("user_id = ?", userID).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", user)
}

func (ctl *UserController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var req d.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user m.UserModel
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).First(&user).Error; err != nil {
			return err
		}
		if err := ctl.checkUniqueUsername(tx, req.UserUsername, id); err != nil {
			return err
		}
		return tx.Model(&user).Updates(req.ToUpdates(userID)).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	return helper.JsonOK(c, "User updated successfully", user)
}

func (ctl *UserController) PartialUpdate(c *fiber.Ctx) error {
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

	updates := map[string]interface{}{"user_updated_by": userID}
	for key, val := range body {
		col, ok := d.UserFilterColumns[key]
		if !ok || col == "user_id" {
			continue
		}
		updates[col] = val
	}

	var affected int64
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if username, ok := updates["user_username"].(string); ok {
			if err := ctl.checkUniqueUsername(tx, username, id); err != nil {
				return err
			}
		}
		res := tx.Model(&m.UserModel{}).Where("user_id = ?", id).Updates(updates)
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}

	return helper.JsonOK(c, "User updated successfully", fiber.Map{"user_id": id})
}

func (ctl *UserController) UpdateBulk(c *fiber.Ctx) error {
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

	updates := map[string]interface{}{"user_updated_by": userID}
	for key, val := range body.Data {
		col, ok := d.UserFilterColumns[key]
		if !ok || col == "user_id" {
			continue
		}
		updates[col] = val
	}
	if _, ok := updates["user_username"]; ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_username cannot be bulk-updated")
	}

	tx := ctl.DB.WithContext(c.Context()).Model(&m.UserModel{})
	tx, err = helper.ApplyFilter(tx, body.Filter, d.UserFilterColumns)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := tx.Updates(updates)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	return helper.JsonOK(c, "Users updated successfully", fiber.Map{"count": res.RowsAffected})
}

func (ctl *UserController) SoftDelete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	return ctl.softDeleteMany(c, []interface{}{id})
}

func (ctl *UserController) SoftDeleteMany(c *fiber.Ctx) error {
	ids, err := parseIDsBody(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return ctl.softDeleteMany(c, ids)
}

func (ctl *UserController) softDeleteMany(c *fiber.Ctx, ids []interface{}) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var affected int64
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := cascade.SoftDelete(tx, "users", ids); err != nil {
			return err
		}
		res := tx.Model(&m.UserModel{}).
			Where("user_id IN ?", ids).
			Updates(map[string]interface{}{"user_is_deleted": true, "user_is_active": false, "user_updated_by": userID})
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}
	return helper.JsonOK(c, "User deleted successfully", fiber.Map{"count": affected})
}

func (ctl *UserController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	return ctl.deleteMany(c, []interface{}{id})
}

func (ctl *UserController) DeleteMany(c *fiber.Ctx) error {
	ids, err := parseIDsBody(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return ctl.deleteMany(c, ids)
}

func (ctl *UserController) deleteMany(c *fiber.Ctx, ids []interface{}) error {
	var affected int64
	err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := cascade.HardDelete(tx, "users", ids); err != nil {
			return err
		}
		res := tx.Where("user_id IN ?", ids).Delete(&m.UserModel{})
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}
	return helper.JsonOK(c, "User deleted successfully", fiber.Map{"count": affected})
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
