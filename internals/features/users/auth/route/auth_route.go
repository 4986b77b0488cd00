package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "gameku_backend/internals/features/users/auth/controller"
	"gameku_backend/internals/middlewares"
	authMiddleware "gameku_backend/internals/middlewares/auth"
)

// AuthRoutes registers the public register/login endpoints plus the
// authenticated logout.
func AuthRoutes(router fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := authController.New(db, v)

	r := router.Group("/auth")
	r.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	r.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	r.Post("/logout", authMiddleware.AuthMiddleware(db), ctl.Logout)
}
