package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "gameku_backend/internals/features/games/games/dto"
	m "gameku_backend/internals/features/games/games/model"
	"gameku_backend/internals/features/games/games/service"
	"gameku_backend/internals/features/utils/cascade"
	helper "gameku_backend/internals/helpers"
)

type GameController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *GameController {
	return &GameController{DB: db, Validate: v}
}

/* =========================================
   Initialize — board + chat fan-out
========================================= */

// Initialize bootstraps one game: its chat group, size*size tables and
// 64 slots per table, all inside a single transaction.
func (ctl *GameController) Initialize(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req d.InitializeGameRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, service.ErrInvalidSize.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.GameSize == nil || *req.GameSize <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, service.ErrInvalidSize.Error())
	}

	game, err := service.InitializeGame(c.Context(), ctl.DB, service.InitializeGameInput{
		Size:    *req.GameSize,
		Type:    req.GameType,
		Time:    req.GameTime,
		AddedBy: userID,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidSize) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		log.Printf("[Game.Initialize] %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.JsonCreated(c, "Game created successfully", game)
}

/* =========================================
   CRUD
========================================= */

func (ctl *GameController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req d.CreateGameRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	game := req.ToModel(userID)
	if err := ctl.DB.WithContext(c.Context()).Create(game).Error; err != nil {
		log.Printf("[Game.Create] %v", err)
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Game created successfully", game)
}

func (ctl *GameController) AddBulk(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body struct {
		Data []d.CreateGameRequest `json:"data" validate:"required,min=1,dive"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	games := make([]*m.GameModel, 0, len(body.Data))
	for _, item := range body.Data {
		games = append(games, item.ToModel(userID))
	}

	if err := ctl.DB.WithContext(c.Context()).Create(&games).Error; err != nil {
		log.Printf("[Game.AddBulk] %v", err)
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Games created successfully", fiber.Map{"count": len(games)})
}

func (ctl *GameController) List(c *fiber.Ctx) error {
	var req helper.ListRequest
	if err := c.BodyParser(&req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize(20, 100)

	tx := ctl.DB.WithContext(c.Context()).Model(&m.GameModel{})
	tx, err := helper.ApplyFilter(tx, req.Query, d.GameFilterColumns)
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

	order, err := helper.SafeOrderClause(req.Options.Sort, d.GameSortColumns, "game_created_at DESC")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var games []m.GameModel
	if err := tx.Order(order).Limit(req.Options.Limit).Offset(req.Offset()).Find(&games).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if len(games) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}

	return helper.JsonList(c, games, helper.BuildPaginationFromPage(total, req.Options.Page, req.Options.Limit))
}

func (ctl *GameController) Count(c *fiber.Ctx) error {
	var req helper.ListRequest
	if err := c.BodyParser(&req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	tx := ctl.DB.WithContext(c.Context()).Model(&m.GameModel{})
	tx, err := helper.ApplyFilter(tx, req.Query, d.GameFilterColumns)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", fiber.Map{"totalRecords": total})
}

func (ctl *GameController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var game m.GameModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("game_id = ?", id).
		First(&game).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", game)
}

func (ctl *GameController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var req d.UpdateGameRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var game m.GameModel
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("game_id = ?", id).First(&game).Error; err != nil {
			return err
		}
		return tx.Model(&game).Updates(req.ToUpdates(userID)).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.WritePGError(c, err)
	}

	return helper.JsonOK(c, "Game updated successfully", game)
}

func (ctl *GameController) PartialUpdate(c *fiber.Ctx) error {
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

	updates := map[string]interface{}{"game_updated_by": userID}
	for key, val := range body {
		col, ok := d.GameFilterColumns[key]
		if !ok || col == "game_id" {
			continue
		}
		updates[col] = val
	}

	res := ctl.DB.WithContext(c.Context()).
		Model(&m.GameModel{}).
		Where("game_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}

	return helper.JsonOK(c, "Game updated successfully", fiber.Map{"game_id": id})
}

func (ctl *GameController) UpdateBulk(c *fiber.Ctx) error {
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

	updates := map[string]interface{}{"game_updated_by": userID}
	for key, val := range body.Data {
		col, ok := d.GameFilterColumns[key]
		if !ok || col == "game_id" {
			continue
		}
		updates[col] = val
	}

	tx := ctl.DB.WithContext(c.Context()).Model(&m.GameModel{})
	tx, err = helper.ApplyFilter(tx, body.Filter, d.GameFilterColumns)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := tx.Updates(updates)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	return helper.JsonOK(c, "Games updated successfully", fiber.Map{"count": res.RowsAffected})
}

func (ctl *GameController) SoftDelete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	return ctl.softDeleteMany(c, []interface{}{id})
}

func (ctl *GameController) SoftDeleteMany(c *fiber.Ctx) error {
	ids, err := parseIDsBody(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return ctl.softDeleteMany(c, ids)
}

func (ctl *GameController) softDeleteMany(c *fiber.Ctx, ids []interface{}) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var affected int64
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := cascade.SoftDelete(tx, "games", ids); err != nil {
			return err
		}
		res := tx.Model(&m.GameModel{}).
			Where("game_id IN ?", ids).
			Updates(map[string]interface{}{"game_is_deleted": true, "game_updated_by": userID})
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}
	return helper.JsonOK(c, "Game deleted successfully", fiber.Map{"count": affected})
}

func (ctl *GameController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	return ctl.deleteMany(c, []interface{}{id})
}

func (ctl *GameController) DeleteMany(c *fiber.Ctx) error {
	ids, err := parseIDsBody(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return ctl.deleteMany(c, ids)
}

func (ctl *GameController) deleteMany(c *fiber.Ctx, ids []interface{}) error {
	var affected int64
	err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := cascade.HardDelete(tx, "games", ids); err != nil {
			return err
		}
		res := tx.Where("game_id IN ?", ids).Delete(&m.GameModel{})
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}
	return helper.JsonOK(c, "Game deleted successfully", fiber.Map{"count": affected})
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
