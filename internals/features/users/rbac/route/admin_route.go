package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	rbacController "gameku_backend/internals/features/users/rbac/controller"
)

func RbacRoutes(router fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := rbacController.New(db, v)

	role := router.Group("/role")
	role.Post("/create", ctl.CreateRole)
	role.Get("/list", ctl.ListRoles)
	role.Get("/:id", ctl.GetRole)
	role.Put("/update/:id", ctl.UpdateRole)
	role.Delete("/delete/:id", ctl.DeleteRole)

	projectRoute := router.Group("/projectroute")
	projectRoute.Post("/create", ctl.CreateProjectRoute)
	projectRoute.Get("/list", ctl.ListProjectRoutes)
	projectRoute.Get("/:id", ctl.GetProjectRoute)
	projectRoute.Delete("/delete/:id", ctl.DeleteProjectRoute)

	routeRole := router.Group("/routerole")
	routeRole.Post("/create", ctl.CreateRouteRole)
	routeRole.Get("/list", ctl.ListRouteRoles)
	routeRole.Delete("/delete/:id", ctl.DeleteRouteRole)

	userRole := router.Group("/userrole")
	userRole.Post("/create", ctl.CreateUserRole)
	userRole.Get("/list", ctl.ListUserRoles)
	userRole.Delete("/delete/:id", ctl.DeleteUserRole)
}
