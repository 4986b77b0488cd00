package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gameku_backend/internals/configs"
	"gameku_backend/internals/constants"
	authModel "gameku_backend/internals/features/users/auth/model"
	rbacService "gameku_backend/internals/features/users/rbac/service"
	userModel "gameku_backend/internals/features/users/users/model"
)

var (
	ErrUsernameTaken      = errors.New("Username already taken")
	ErrInvalidCredentials = errors.New("Invalid username or password")
	ErrUserInactive       = errors.New("Your account is inactive")
)

const TokenTTL = 24 * time.Hour

// Register creates the user with a bcrypt-hashed password and binds the
// default role inside one transaction.
func Register(ctx context.Context, db *gorm.DB, username, email, password string) (*userModel.UserModel, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := userModel.UserModel{
		UserUsername: username,
		UserEmail:    email,
		UserPassword: string(hash),
		UserIsActive: true,
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&userModel.UserModel{}).
			Where("user_username = ?", username).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrUsernameTaken
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return rbacService.AssignRole(tx, user.UserID, constants.RoleUser)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Login verifies the password and issues an HS256 access token carrying
// the user id, role name and username.
func Login(ctx context.Context, db *gorm.DB, username, password string) (string, *userModel.UserModel, error) {
	var user userModel.UserModel
	err := db.WithContext(ctx).
		Where("user_username = ? AND user_is_deleted = ?", username, false).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !user.UserIsActive {
		return "", nil, ErrUserInactive
	}
	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	roleName, err := rbacService.RoleNameForUser(db.WithContext(ctx), user.UserID)
	if err != nil {
		return "", nil, err
	}
	if roleName == "" {
		roleName = constants.RoleUser
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":       user.UserID.String(),
		"role":      roleName,
		"user_name": user.UserUsername,
		"iat":       now.Unix(),
		"exp":       now.Add(TokenTTL).Unix(),
	})
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", nil, err
	}
	return signed, &user, nil
}

// Logout blacklists the raw token until its own expiry.
func Logout(ctx context.Context, db *gorm.DB, rawToken string, expiredAt time.Time) error {
	if rawToken == "" {
		return errors.New("missing token")
	}
	if expiredAt.IsZero() {
		expiredAt = time.Now().Add(TokenTTL)
	}
	entry := authModel.TokenBlacklist{
		Token:     rawToken,
		ExpiredAt: expiredAt,
	}
	// a token blacklisted twice is still just blacklisted
	err := db.WithContext(ctx).Create(&entry).Error
	if err != nil && isUniqueViolation(err) {
		return nil
	}
	return err
}

// CleanupExpiredTokens drops blacklist rows whose tokens are past expiry.
func CleanupExpiredTokens(db *gorm.DB) (int64, error) {
	res := db.Unscoped().
		Where("expired_at < ?", time.Now()).
		Delete(&authModel.TokenBlacklist{})
	return res.RowsAffected, res.Error
}

// TokenExpiry reads the exp claim without verifying the signature; the
// caller already went through the auth middleware.
func TokenExpiry(rawToken string) time.Time {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(rawToken, claims); err != nil {
		return time.Time{}
	}
	if exp, ok := claims["exp"].(float64); ok {
		return time.Unix(int64(exp), 0)
	}
	return time.Time{}
}

type uniqueErr interface {
	SQLState() string
}

func isUniqueViolation(err error) bool {
	var sqlErr uniqueErr
	if errors.As(err, &sqlErr) {
		return sqlErr.SQLState() == "23505"
	}
	return false
}
