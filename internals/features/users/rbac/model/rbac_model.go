package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Role
   ========================= */

type RoleModel struct {
	RoleID        uuid.UUID `gorm:"column:role_id;type:uuid;primaryKey" json:"role_id"`
	RoleName      string    `gorm:"column:role_name;size:50;not null;uniqueIndex" json:"role_name"`
	RoleCode      int       `gorm:"column:role_code;not null" json:"role_code"`
	RoleIsActive  bool      `gorm:"column:role_is_active;not null;default:true" json:"role_is_active"`
	RoleIsDeleted bool      `gorm:"column:role_is_deleted;not null;default:false" json:"role_is_deleted"`
	RoleCreatedAt time.Time `gorm:"column:role_created_at;autoCreateTime" json:"role_created_at"`
	RoleUpdatedAt time.Time `gorm:"column:role_updated_at;autoUpdateTime" json:"role_updated_at"`
}

func (RoleModel) TableName() string { return "roles" }

func (m *RoleModel) BeforeCreate(tx *gorm.DB) error {
	if m.RoleID == uuid.Nil {
		m.RoleID = uuid.New()
	}
	return nil
}

/* =========================
   ProjectRoute
   ========================= */

type ProjectRouteModel struct {
	ProjectRouteID        uuid.UUID `gorm:"column:project_route_id;type:uuid;primaryKey" json:"project_route_id"`
	ProjectRouteName      string    `gorm:"column:project_route_name;size:100" json:"project_route_name"`
	ProjectRouteMethod    string    `gorm:"column:project_route_method;size:10;not null" json:"project_route_method"`
	ProjectRoutePath      string    `gorm:"column:project_route_path;size:200;not null;index" json:"project_route_path"`
	ProjectRoutePlatform  string    `gorm:"column:project_route_platform;size:20;not null" json:"project_route_platform"`
	ProjectRouteIsActive  bool      `gorm:"column:project_route_is_active;not null;default:true" json:"project_route_is_active"`
	ProjectRouteIsDeleted bool      `gorm:"column:project_route_is_deleted;not null;default:false" json:"project_route_is_deleted"`
	ProjectRouteCreatedAt time.Time `gorm:"column:project_route_created_at;autoCreateTime" json:"project_route_created_at"`
	ProjectRouteUpdatedAt time.Time `gorm:"column:project_route_updated_at;autoUpdateTime" json:"project_route_updated_at"`
}

func (ProjectRouteModel) TableName() string { return "project_routes" }

func (m *ProjectRouteModel) BeforeCreate(tx *gorm.DB) error {
	if m.ProjectRouteID == uuid.Nil {
		m.ProjectRouteID = uuid.New()
	}
	return nil
}

/* =========================
   RouteRole — which roles may hit a route
   ========================= */

type RouteRoleModel struct {
	RouteRoleID        uuid.UUID `gorm:"column:route_role_id;type:uuid;primaryKey" json:"route_role_id"`
	RouteRoleRouteID   uuid.UUID `gorm:"column:route_role_route_id;type:uuid;not null;index" json:"route_role_route_id"`
	RouteRoleRoleID    uuid.UUID `gorm:"column:route_role_role_id;type:uuid;not null;index" json:"route_role_role_id"`
	RouteRoleIsActive  bool      `gorm:"column:route_role_is_active;not null;default:true" json:"route_role_is_active"`
	RouteRoleIsDeleted bool      `gorm:"column:route_role_is_deleted;not null;default:false" json:"route_role_is_deleted"`
	RouteRoleCreatedAt time.Time `gorm:"column:route_role_created_at;autoCreateTime" json:"route_role_created_at"`
	RouteRoleUpdatedAt time.Time `gorm:"column:route_role_updated_at;autoUpdateTime" json:"route_role_updated_at"`
}

func (RouteRoleModel) TableName() string { return "route_roles" }

func (m *RouteRoleModel) BeforeCreate(tx *gorm.DB) error {
	if m.RouteRoleID == uuid.Nil {
		m.RouteRoleID = uuid.New()
	}
	return nil
}

/* =========================
   UserRole — which roles a user holds
   ========================= */

type UserRoleModel struct {
	UserRoleID        uuid.UUID `gorm:"column:user_role_id;type:uuid;primaryKey" json:"user_role_id"`
	UserRoleUserID    uuid.UUID `gorm:"column:user_role_user_id;type:uuid;not null;index" json:"user_role_user_id"`
	UserRoleRoleID    uuid.UUID `gorm:"column:user_role_role_id;type:uuid;not null;index" json:"user_role_role_id"`
	UserRoleIsActive  bool      `gorm:"column:user_role_is_active;not null;default:true" json:"user_role_is_active"`
	UserRoleIsDeleted bool      `gorm:"column:user_role_is_deleted;not null;default:false" json:"user_role_is_deleted"`
	UserRoleCreatedAt time.Time `gorm:"column:user_role_created_at;autoCreateTime" json:"user_role_created_at"`
	UserRoleUpdatedAt time.Time `gorm:"column:user_role_updated_at;autoUpdateTime" json:"user_role_updated_at"`
}

func (UserRoleModel) TableName() string { return "user_roles" }

func (m *UserRoleModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserRoleID == uuid.Nil {
		m.UserRoleID = uuid.New()
	}
	return nil
}
