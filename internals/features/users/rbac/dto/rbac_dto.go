package dto

type CreateRoleRequest struct {
	RoleName string `json:"role_name" validate:"required,min=1,max=50"`
	RoleCode int    `json:"role_code" validate:"required,min=1"`
}

type UpdateRoleRequest struct {
	RoleName     string `json:"role_name" validate:"required,min=1,max=50"`
	RoleCode     int    `json:"role_code" validate:"omitempty,min=1"`
	RoleIsActive *bool  `json:"role_is_active" validate:"omitempty"`
}

type CreateProjectRouteRequest struct {
	ProjectRouteName     string `json:"project_route_name" validate:"omitempty,max=100"`
	ProjectRouteMethod   string `json:"project_route_method" validate:"required,oneof=GET POST PUT PATCH DELETE"`
	ProjectRoutePath     string `json:"project_route_path" validate:"required,max=200"`
	ProjectRoutePlatform string `json:"project_route_platform" validate:"required,oneof=admin client device"`
}

type CreateRouteRoleRequest struct {
	RouteRoleRouteID string `json:"route_role_route_id" validate:"required,uuid"`
	RouteRoleRoleID  string `json:"route_role_role_id" validate:"required,uuid"`
}

type CreateUserRoleRequest struct {
	UserRoleUserID string `json:"user_role_user_id" validate:"required,uuid"`
	UserRoleRoleID string `json:"user_role_role_id" validate:"required,uuid"`
}
