package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	chatGroupRoute "gameku_backend/internals/features/chats/chat_groups/route"
	chatMessageRoute "gameku_backend/internals/features/chats/chat_messages/route"
	gameRoute "gameku_backend/internals/features/games/games/route"
	moveRoute "gameku_backend/internals/features/games/moves/route"
	pieceRoute "gameku_backend/internals/features/games/pieces/route"
	pieceTemplateRoute "gameku_backend/internals/features/games/piece_templates/route"
	slotRoute "gameku_backend/internals/features/games/slots/route"
	tableRoute "gameku_backend/internals/features/games/tables/route"
	rbacRoute "gameku_backend/internals/features/users/rbac/route"
	userRoute "gameku_backend/internals/features/users/users/route"
)

// registerEntityRoutes mounts the shared entity surface; every platform
// serves the same CRUD set and RBAC decides who may actually call what.
func registerEntityRoutes(router fiber.Router, db *gorm.DB, v *validator.Validate) {
	userRoute.UserRoutes(router, db, v)
	gameRoute.GameRoutes(router, db, v)
	tableRoute.TableRoutes(router, db, v)
	slotRoute.SlotRoutes(router, db, v)
	pieceRoute.PieceRoutes(router, db, v)
	pieceTemplateRoute.PieceTemplateRoutes(router, db, v)
	moveRoute.MoveRoutes(router, db, v)
	chatGroupRoute.ChatGroupRoutes(router, db, v)
	chatMessageRoute.ChatMessageRoutes(router, db, v)
}

// RegisterAdminRoutes adds the access-control tables on top of the
// entity surface.
func RegisterAdminRoutes(router fiber.Router, db *gorm.DB, v *validator.Validate) {
	registerEntityRoutes(router, db, v)
	rbacRoute.RbacRoutes(router, db, v)
}

func RegisterClientRoutes(router fiber.Router, db *gorm.DB, v *validator.Validate) {
	registerEntityRoutes(router, db, v)
}

func RegisterDeviceRoutes(router fiber.Router, db *gorm.DB, v *validator.Validate) {
	registerEntityRoutes(router, db, v)
}
