package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID        uuid.UUID  `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	UserUsername  string     `gorm:"column:user_username;size:50;not null;uniqueIndex" json:"user_username"`
	UserEmail     string     `gorm:"column:user_email;size:100" json:"user_email"`
	UserPassword  string     `gorm:"column:user_password;not null" json:"-"`
	UserIsActive  bool       `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`
	UserIsDeleted bool       `gorm:"column:user_is_deleted;not null;default:false" json:"user_is_deleted"`
	UserAddedBy   *uuid.UUID `gorm:"column:user_added_by;type:uuid" json:"user_added_by"`
	UserUpdatedBy *uuid.UUID `gorm:"column:user_updated_by;type:uuid" json:"user_updated_by"`
	UserCreatedAt time.Time  `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time  `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	return nil
}
