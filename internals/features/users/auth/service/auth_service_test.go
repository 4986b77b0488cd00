package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gameku_backend/internals/configs"
	"gameku_backend/internals/constants"
	authModel "gameku_backend/internals/features/users/auth/model"
	rbacModel "gameku_backend/internals/features/users/rbac/model"
	userModel "gameku_backend/internals/features/users/users/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&rbacModel.RoleModel{},
		&rbacModel.UserRoleModel{},
		&authModel.TokenBlacklist{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	for i, name := range []string{constants.RoleSystemUser, constants.RoleUser} {
		role := rbacModel.RoleModel{RoleName: name, RoleCode: i + 1, RoleIsActive: true}
		if err := db.Create(&role).Error; err != nil {
			t.Fatalf("seed role %s: %v", name, err)
		}
	}
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return db
}

func TestRegisterAndLogin(t *testing.T) {
	db := openTestDB(t)
	configs.JWTSecret = "test-secret"

	user, err := Register(context.Background(), db, "player_one", "p1@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.UserPassword == "correct-horse" {
		t.Error("password stored in plaintext")
	}

	// registration binds the default role
	var bindings int64
	db.Model(&rbacModel.UserRoleModel{}).
		Where("user_role_user_id = ?", user.UserID).
		Count(&bindings)
	if bindings != 1 {
		t.Errorf("role bindings = %d, want 1", bindings)
	}

	token, got, err := Login(context.Background(), db, "player_one", "correct-horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got.UserID != user.UserID {
		t.Errorf("login user = %s, want %s", got.UserID, user.UserID)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("parse token: %v", err)
	}
	if claims["sub"] != user.UserID.String() {
		t.Errorf("sub = %v", claims["sub"])
	}
	if claims["role"] != constants.RoleUser {
		t.Errorf("role = %v, want %s", claims["role"], constants.RoleUser)
	}
	if claims["user_name"] != "player_one" {
		t.Errorf("user_name = %v", claims["user_name"])
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := openTestDB(t)

	if _, err := Register(context.Background(), db, "player_one", "", "correct-horse"); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, err := Register(context.Background(), db, "player_one", "", "other-password"); err != ErrUsernameTaken {
		t.Errorf("err = %v, want ErrUsernameTaken", err)
	}

	var users int64
	db.Model(&userModel.UserModel{}).Count(&users)
	if users != 1 {
		t.Errorf("user count = %d, want 1", users)
	}
}

func TestLoginFailures(t *testing.T) {
	db := openTestDB(t)
	configs.JWTSecret = "test-secret"

	user, err := Register(context.Background(), db, "player_one", "", "correct-horse")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, _, err := Login(context.Background(), db, "player_one", "wrong"); err != ErrInvalidCredentials {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := Login(context.Background(), db, "nobody", "correct-horse"); err != ErrInvalidCredentials {
		t.Errorf("unknown user: err = %v, want ErrInvalidCredentials", err)
	}

	if err := db.Model(&userModel.UserModel{}).
		Where("user_id = ?", user.UserID).
		Update("user_is_active", false).Error; err != nil {
		t.Fatalf("deactivate user: %v", err)
	}
	if _, _, err := Login(context.Background(), db, "player_one", "correct-horse"); err != ErrUserInactive {
		t.Errorf("inactive user: err = %v, want ErrUserInactive", err)
	}
}

func TestLogoutAndCleanup(t *testing.T) {
	db := openTestDB(t)

	expired := time.Now().Add(-time.Hour)
	live := time.Now().Add(time.Hour)

	if err := Logout(context.Background(), db, "token-expired", expired); err != nil {
		t.Fatalf("Logout expired: %v", err)
	}
	if err := Logout(context.Background(), db, "token-live", live); err != nil {
		t.Fatalf("Logout live: %v", err)
	}

	n, err := CleanupExpiredTokens(db)
	if err != nil {
		t.Fatalf("CleanupExpiredTokens: %v", err)
	}
	if n != 1 {
		t.Errorf("removed = %d, want 1", n)
	}

	var remaining []authModel.TokenBlacklist
	if err := db.Find(&remaining).Error; err != nil {
		t.Fatalf("load blacklist: %v", err)
	}
	if len(remaining) != 1 || remaining[0].Token != "token-live" {
		t.Errorf("remaining = %+v, want only token-live", remaining)
	}
}
