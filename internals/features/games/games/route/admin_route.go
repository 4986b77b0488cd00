package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gameController "gameku_backend/internals/features/games/games/controller"
)

func GameRoutes(router fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := gameController.New(db, v)

	r := router.Group("/game")
	r.Post("/initialize", ctl.Initialize)
	r.Post("/create", ctl.Create)
	r.Post("/addBulk", ctl.AddBulk)
	r.Post("/list", ctl.List)
	r.Post("/count", ctl.Count)
	r.Get("/:id", ctl.GetByID)
	r.Put("/update/:id", ctl.Update)
	r.Put("/partial-update/:id", ctl.PartialUpdate)
	r.Put("/updateBulk", ctl.UpdateBulk)
	r.Put("/softDelete/:id", ctl.SoftDelete)
	r.Put("/softDeleteMany", ctl.SoftDeleteMany)
	r.Delete("/delete/:id", ctl.Delete)
	r.Delete("/deleteMany", ctl.DeleteMany)
}
