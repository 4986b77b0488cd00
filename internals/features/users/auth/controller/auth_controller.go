package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "gameku_backend/internals/features/users/auth/dto"
	"gameku_backend/internals/features/users/auth/service"
	helper "gameku_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *AuthController {
	return &AuthController{DB: db, Validate: v}
}

func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req d.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := service.Register(c.Context(), ctl.DB, req.UserUsername, req.UserEmail, req.UserPassword)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		}
		log.Printf("[Auth.Register] %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.JsonCreated(c, "User registered successfully", user)
}

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req d.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	token, _, err := service.Login(c.Context(), ctl.DB, req.UserUsername, req.UserPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		case errors.Is(err, service.ErrUserInactive):
			return helper.JsonError(c, fiber.StatusForbidden, err.Error())
		default:
			log.Printf("[Auth.Login] %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
		}
	}

	return helper.JsonOK(c, "Login successful", d.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(service.TokenTTL.Seconds()),
	})
}

// Logout blacklists the caller's current token. Runs behind the auth
// middleware, which stores the raw token in locals.
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	raw, _ := c.Locals("token_string").(string)
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	if err := service.Logout(c.Context(), ctl.DB, raw, service.TokenExpiry(raw)); err != nil {
		log.Printf("[Auth.Logout] %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.JsonOK(c, "Logout successful", nil)
}
