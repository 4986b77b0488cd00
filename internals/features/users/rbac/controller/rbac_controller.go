package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "gameku_backend/internals/features/users/rbac/dto"
	m "gameku_backend/internals/features/users/rbac/model"
	"gameku_backend/internals/features/utils/cascade"
	helper "gameku_backend/internals/helpers"
)

// RbacController serves the four access-control tables. These are small
// admin-only surfaces, so each entity gets create/list/get/update/delete
// rather than the full bulk suite.
type RbacController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *RbacController {
	return &RbacController{DB: db, Validate: v}
}

/* =========================
   Roles
   ========================= */

func (ctl *RbacController) CreateRole(c *fiber.Ctx) error {
	var req d.CreateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	role := m.RoleModel{RoleName: req.RoleName, RoleCode: req.RoleCode, RoleIsActive: true}
	if err := ctl.DB.WithContext(c.Context()).Create(&role).Error; err != nil {
		log.Printf("[Rbac.CreateRole] %v", err)
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Role created successfully", role)
}

func (ctl *RbacController) ListRoles(c *fiber.Ctx) error {
	var roles []m.RoleModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("role_is_deleted = ?", false).
		Order("role_code ASC").
		Find(&roles).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", roles)
}

func (ctl *RbacController) GetRole(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var role m.RoleModel
	if err := ctl.DB.WithContext(c.Context()).Where("role_id = ?", id).First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", role)
}

func (ctl *RbacController) UpdateRole(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var req d.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{"role_name": req.RoleName}
	if req.RoleCode != 0 {
		updates["role_code"] = req.RoleCode
	}
	if req.RoleIsActive != nil {
		updates["role_is_active"] = *req.RoleIsActive
	}

	res := ctl.DB.WithContext(c.Context()).
		Model(&m.RoleModel{}).
		Where("role_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}
	return helper.JsonOK(c, "Role updated successfully", fiber.Map{"role_id": id})
}

func (ctl *RbacController) DeleteRole(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var affected int64
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := cascade.HardDelete(tx, "roles", []interface{}{id}); err != nil {
			return err
		}
		res := tx.Where("role_id = ?", id).Delete(&m.RoleModel{})
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}
	return helper.JsonOK(c, "Role deleted successfully", fiber.Map{"role_id": id})
}

/* =========================
   Project routes
   ========================= */

func (ctl *RbacController) CreateProjectRoute(c *fiber.Ctx) error {
	var req d.CreateProjectRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	route := m.ProjectRouteModel{
		ProjectRouteName:     req.ProjectRouteName,
		ProjectRouteMethod:   req.ProjectRouteMethod,
		ProjectRoutePath:     req.ProjectRoutePath,
		ProjectRoutePlatform: req.ProjectRoutePlatform,
		ProjectRouteIsActive: true,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&route).Error; err != nil {
		log.Printf("[Rbac.CreateProjectRoute] %v", err)
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "ProjectRoute created successfully", route)
}

func (ctl *RbacController) ListProjectRoutes(c *fiber.Ctx) error {
	var routes []m.ProjectRouteModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("project_route_is_deleted = ?", false).
		Order("project_route_path ASC").
		Find(&routes).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", routes)
}

func (ctl *RbacController) GetProjectRoute(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var route m.ProjectRouteModel
	if err := ctl.DB.WithContext(c.Context()).Where("project_route_id = ?", id).First(&route).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", route)
}

func (ctl *RbacController) DeleteProjectRoute(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var affected int64
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := cascade.HardDelete(tx, "project_routes", []interface{}{id}); err != nil {
			return err
		}
		res := tx.Where("project_route_id = ?", id).Delete(&m.ProjectRouteModel{})
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}
	return helper.JsonOK(c, "ProjectRoute deleted successfully", fiber.Map{"project_route_id": id})
}

/* =========================
   Route-role bindings
   ========================= */

func (ctl *RbacController) CreateRouteRole(c *fiber.Ctx) error {
	var req d.CreateRouteRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	routeID, _ := uuid.Parse(req.RouteRoleRouteID)
	roleID, _ := uuid.Parse(req.RouteRoleRoleID)
	binding := m.RouteRoleModel{
		RouteRoleRouteID:  routeID,
		RouteRoleRoleID:   roleID,
		RouteRoleIsActive: true,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&binding).Error; err != nil {
		log.Printf("[Rbac.CreateRouteRole] %v", err)
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "RouteRole created successfully", binding)
}

func (ctl *RbacController) ListRouteRoles(c *fiber.Ctx) error {
	var bindings []m.RouteRoleModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("route_role_is_deleted = ?", false).
		Find(&bindings).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", bindings)
}

func (ctl *RbacController) DeleteRouteRole(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	res := ctl.DB.WithContext(c.Context()).Where("route_role_id = ?", id).Delete(&m.RouteRoleModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}
	return helper.JsonOK(c, "RouteRole deleted successfully", fiber.Map{"route_role_id": id})
}

/* =========================
   User-role bindings
   ========================= */

func (ctl *RbacController) CreateUserRole(c *fiber.Ctx) error {
	var req d.CreateUserRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	userID, _ := uuid.Parse(req.UserRoleUserID)
	roleID, _ := uuid.Parse(req.UserRoleRoleID)
	binding := m.UserRoleModel{
		UserRoleUserID:   userID,
		UserRoleRoleID:   roleID,
		UserRoleIsActive: true,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&binding).Error; err != nil {
		log.Printf("[Rbac.CreateUserRole] %v", err)
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "UserRole created successfully", binding)
}

func (ctl *RbacController) ListUserRoles(c *fiber.Ctx) error {
	var bindings []m.UserRoleModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("user_role_is_deleted = ?", false).
		Find(&bindings).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", bindings)
}

func (ctl *RbacController) DeleteUserRole(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	res := ctl.DB.WithContext(c.Context()).Where("user_role_id = ?", id).Delete(&m.UserRoleModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}
	return helper.JsonOK(c, "UserRole deleted successfully", fiber.Map{"user_role_id": id})
}
