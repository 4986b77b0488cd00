package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pieceController "gameku_backend/internals/features/games/pieces/controller"
)

// PieceRoutes registers the piece CRUD surface under the given group.
func PieceRoutes(router fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := pieceController.New(db, v)
	r := router.Group("/piece")

	r.Post("/create", ctl.Create)
	r.Post("/addBulk", ctl.AddBulk)
	r.Post("/list", ctl.List)
	r.Post("/count", ctl.Count)
	r.Get("/:id", ctl.GetByID)
	r.Put("/update/:id", ctl.Update)
	r.Put("/updateBulk", ctl.UpdateBulk)
	r.Put("/partial-update/:id", ctl.PartialUpdate)
	r.Put("/softDelete/:id", ctl.SoftDelete)
	r.Put("/softDeleteMany", ctl.SoftDeleteMany)
	r.Delete("/delete/:id", ctl.Delete)
	r.Post("/deleteMany", ctl.DeleteMany)
}
