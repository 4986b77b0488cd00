// internals/middlewares/auth/permission_middleware.go
package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	rbacService "gameku_backend/internals/features/users/rbac/service"
	helper "gameku_backend/internals/helpers"
)

// CheckRolePermission gates a request on the route-role bindings stored in
// project_routes/route_roles. Runs after AuthMiddleware, so user_id is in
// Locals. The matched Fiber route pattern (with :params) is what gets looked
// up, mirroring how the routes were registered.
func CheckRolePermission(db *gorm.DB, platform string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := helper.GetUserID(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing user")
		}

		allowed, err := rbacService.CanAccessRoute(db, userID, c.Route().Path, c.Method(), platform)
		if err != nil {
			log.Println("[ERROR] route permission lookup failed:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}
		if !allowed {
			return fiber.NewError(fiber.StatusForbidden, "You are not having permission to access this route!")
		}
		return c.Next()
	}
}
