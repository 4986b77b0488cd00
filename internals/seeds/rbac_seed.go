package seeds

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gameku_backend/internals/configs"
	"gameku_backend/internals/constants"
	rbacModel "gameku_backend/internals/features/users/rbac/model"
	rbacService "gameku_backend/internals/features/users/rbac/service"
	userModel "gameku_backend/internals/features/users/users/model"
)

// SeedRoles makes sure the two built-in roles exist.
func SeedRoles(db *gorm.DB) error {
	roles := []rbacModel.RoleModel{
		{RoleName: constants.RoleSystemUser, RoleCode: 1, RoleIsActive: true},
		{RoleName: constants.RoleUser, RoleCode: 2, RoleIsActive: true},
	}
	for i := range roles {
		var existing rbacModel.RoleModel
		err := db.Where("role_name = ?", roles[i].RoleName).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&roles[i]).Error; err != nil {
			return err
		}
		log.Printf("[SEED] role %s created", roles[i].RoleName)
	}
	return nil
}

// SeedAdminUser creates the bootstrap System_User account when no user
// carries that role yet. Credentials come from ADMIN_USERNAME and
// ADMIN_PASSWORD.
func SeedAdminUser(db *gorm.DB) error {
	username := configs.GetEnv("ADMIN_USERNAME", "admin")
	password := configs.GetEnv("ADMIN_PASSWORD", "")
	if password == "" {
		log.Println("[SEED] ADMIN_PASSWORD not set, skipping admin user")
		return nil
	}

	var existing userModel.UserModel
	err := db.Where("user_username = ?", username).First(&existing).Error
	if err == nil {
		return rbacService.AssignRole(db, existing.UserID, constants.RoleSystemUser)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := userModel.UserModel{
		UserUsername: username,
		UserPassword: string(hash),
		UserIsActive: true,
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}
		if err := rbacService.AssignRole(tx, admin.UserID, constants.RoleSystemUser); err != nil {
			return err
		}
		log.Printf("[SEED] admin user %s created", username)
		return nil
	})
}
