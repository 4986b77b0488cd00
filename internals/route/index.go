package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gameku_backend/internals/constants"
	authRoute "gameku_backend/internals/features/users/auth/route"
	authMiddleware "gameku_backend/internals/middlewares/auth"
	"gameku_backend/internals/route/details"
)

// SetupRoutes wires the three platform surfaces plus the public auth
// endpoints. Admin requires the System_User role; client and device only
// require a valid session, with per-route RBAC on top.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	v := validator.New()

	api := app.Group("/api")
	authRoute.AuthRoutes(api, db, v)

	admin := app.Group("/admin",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorSystemUser("admin endpoints"), constants.AdminOnly...),
		authMiddleware.CheckRolePermission(db, constants.PlatformAdmin),
	)
	details.RegisterAdminRoutes(admin, db, v)

	client := app.Group("/client/api/v1",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.CheckRolePermission(db, constants.PlatformClient),
	)
	details.RegisterClientRoutes(client, db, v)

	device := app.Group("/device/api/v1",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.CheckRolePermission(db, constants.PlatformDevice),
	)
	details.RegisterDeviceRoutes(device, db, v)
}
