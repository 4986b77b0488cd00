package seeds

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"gameku_backend/internals/constants"
	rbacModel "gameku_backend/internals/features/users/rbac/model"
)

// adminRouteSeeds lists the admin-surface routes that stay locked to
// System_User. Routes absent from project_routes are not gated, so only
// the sensitive ones need rows here.
var adminRouteSeeds = []struct {
	Name   string
	Method string
	Path   string
}{
	{"create role", "POST", "/admin/role/create"},
	{"delete role", "DELETE", "/admin/role/delete/:id"},
	{"create project route", "POST", "/admin/projectroute/create"},
	{"delete project route", "DELETE", "/admin/projectroute/delete/:id"},
	{"create route role", "POST", "/admin/routerole/create"},
	{"delete route role", "DELETE", "/admin/routerole/delete/:id"},
	{"create user role", "POST", "/admin/userrole/create"},
	{"delete user role", "DELETE", "/admin/userrole/delete/:id"},
	{"delete user", "DELETE", "/admin/user/delete/:id"},
	{"bulk delete users", "DELETE", "/admin/user/deleteMany"},
}

// SeedProjectRoutes registers the admin route rows and binds each to the
// System_User role.
func SeedProjectRoutes(db *gorm.DB) error {
	var sysRole rbacModel.RoleModel
	if err := db.Where("role_name = ?", constants.RoleSystemUser).First(&sysRole).Error; err != nil {
		return fmt.Errorf("seed project routes: %w", err)
	}

	for _, seed := range adminRouteSeeds {
		var route rbacModel.ProjectRouteModel
		err := db.Where("project_route_path = ? AND project_route_method = ? AND project_route_platform = ?",
			seed.Path, seed.Method, constants.PlatformAdmin).
			First(&route).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			route = rbacModel.ProjectRouteModel{
				ProjectRouteName:     seed.Name,
				ProjectRouteMethod:   seed.Method,
				ProjectRoutePath:     seed.Path,
				ProjectRoutePlatform: constants.PlatformAdmin,
				ProjectRouteIsActive: true,
			}
			if err := db.Create(&route).Error; err != nil {
				return err
			}
			log.Printf("[SEED] project route %s %s registered", seed.Method, seed.Path)
		} else if err != nil {
			return err
		}

		var binding rbacModel.RouteRoleModel
		err = db.Where("route_role_route_id = ? AND route_role_role_id = ?",
			route.ProjectRouteID, sysRole.RoleID).
			First(&binding).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			binding = rbacModel.RouteRoleModel{
				RouteRoleRouteID:  route.ProjectRouteID,
				RouteRoleRoleID:   sysRole.RoleID,
				RouteRoleIsActive: true,
			}
			if err := db.Create(&binding).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}
	return nil
}
