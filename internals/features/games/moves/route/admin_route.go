package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	moveController "gameku_backend/internals/features/games/moves/controller"
)

func MoveRoutes(router fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := moveController.New(db, v)
	r := router.Group("/move")

	r.Post("/create", ctl.Create)
	r.Post("/list", ctl.List)
	r.Post("/count", ctl.Count)
	r.Get("/:id", ctl.GetByID)
	r.Put("/softDelete/:id", ctl.SoftDelete)
	r.Put("/softDeleteMany", ctl.SoftDeleteMany)
	r.Delete("/delete/:id", ctl.Delete)
	r.Post("/deleteMany", ctl.DeleteMany)
}
