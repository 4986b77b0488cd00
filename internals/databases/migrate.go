package database

import (
	"log"

	"gorm.io/gorm"

	chatGroupModel "gameku_backend/internals/features/chats/chat_groups/model"
	chatMessageModel "gameku_backend/internals/features/chats/chat_messages/model"
	gameModel "gameku_backend/internals/features/games/games/model"
	moveModel "gameku_backend/internals/features/games/moves/model"
	pieceTemplateModel "gameku_backend/internals/features/games/piece_templates/model"
	pieceModel "gameku_backend/internals/features/games/pieces/model"
	slotModel "gameku_backend/internals/features/games/slots/model"
	tableModel "gameku_backend/internals/features/games/tables/model"
	authModel "gameku_backend/internals/features/users/auth/model"
	rbacModel "gameku_backend/internals/features/users/rbac/model"
	userModel "gameku_backend/internals/features/users/users/model"
)

// Migrate runs AutoMigrate for every collection the app owns.
func Migrate(db *gorm.DB) error {
	log.Println("[INFO] Running migrations...")
	return db.AutoMigrate(
		&userModel.UserModel{},
		&authModel.TokenBlacklist{},
		&rbacModel.RoleModel{},
		&rbacModel.ProjectRouteModel{},
		&rbacModel.RouteRoleModel{},
		&rbacModel.UserRoleModel{},
		&gameModel.GameModel{},
		&tableModel.TableModel{},
		&slotModel.SlotModel{},
		&pieceModel.PieceModel{},
		&pieceTemplateModel.PieceTemplateModel{},
		&moveModel.MoveModel{},
		&chatGroupModel.ChatGroupModel{},
		&chatMessageModel.ChatMessageModel{},
	)
}
