package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	rbacModel "gameku_backend/internals/features/users/rbac/model"
)

// CanAccessRoute checks whether any of the user's roles is bound to the
// project route matching (path, method, platform). Routes that were never
// registered in project_routes are not gated here; the role middleware in
// front of each platform group still applies.
func CanAccessRoute(db *gorm.DB, userID uuid.UUID, path, method, platform string) (bool, error) {
	var route rbacModel.ProjectRouteModel
	err := db.
		Where("project_route_path = ? AND project_route_method = ? AND project_route_platform = ?",
			path, method, platform).
		Where("project_route_is_active = ? AND project_route_is_deleted = ?", true, false).
		First(&route).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return true, nil
		}
		return false, err
	}

	var count int64
	err = db.Model(&rbacModel.RouteRoleModel{}).
		Where("route_role_route_id = ? AND route_role_is_active = ? AND route_role_is_deleted = ?",
			route.ProjectRouteID, true, false).
		Where("route_role_role_id IN (?)",
			db.Model(&rbacModel.UserRoleModel{}).
				Select("user_role_role_id").
				Where("user_role_user_id = ? AND user_role_is_active = ? AND user_role_is_deleted = ?",
					userID, true, false),
		).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// RoleNameForUser returns the first active role name bound to the user
// (used by the login flow when stamping the JWT role claim).
func RoleNameForUser(db *gorm.DB, userID uuid.UUID) (string, error) {
	var roleName string
	err := db.Model(&rbacModel.UserRoleModel{}).
		Select("roles.role_name").
		Joins("JOIN roles ON roles.role_id = user_roles.user_role_role_id").
		Where("user_roles.user_role_user_id = ? AND user_roles.user_role_is_active = ? AND user_roles.user_role_is_deleted = ?",
			userID, true, false).
		Limit(1).
		Scan(&roleName).Error
	return roleName, err
}

// AssignRole binds a role to a user by role name, creating nothing if the
// binding already exists.
func AssignRole(db *gorm.DB, userID uuid.UUID, roleName string) error {
	var role rbacModel.RoleModel
	if err := db.Where("role_name = ?", roleName).First(&role).Error; err != nil {
		return err
	}

	var existing rbacModel.UserRoleModel
	err := db.
		Where("user_role_user_id = ? AND user_role_role_id = ?", userID, role.RoleID).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	binding := rbacModel.UserRoleModel{
		UserRoleUserID: userID,
		UserRoleRoleID: role.RoleID,
	}
	return db.Create(&binding).Error
}
