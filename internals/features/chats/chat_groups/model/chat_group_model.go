package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatGroupModel struct {
	ChatGroupID        uuid.UUID `gorm:"column:chat_group_id;type:uuid;primaryKey" json:"chat_group_id"`
	ChatGroupName      string    `gorm:"column:chat_group_name;size:100;not null" json:"chat_group_name"`
	ChatGroupCode      string    `gorm:"column:chat_group_code;size:50;not null" json:"chat_group_code"`
	ChatGroupAdminID   uuid.UUID `gorm:"column:chat_group_admin_id;type:uuid;not null" json:"chat_group_admin_id"`
	ChatGroupIsActive  bool      `gorm:"column:chat_group_is_active;not null;default:true" json:"chat_group_is_active"`
	ChatGroupIsDeleted bool      `gorm:"column:chat_group_is_deleted;not null;default:false" json:"chat_group_is_deleted"`
	ChatGroupAddedBy   uuid.UUID `gorm:"column:chat_group_added_by;type:uuid;not null" json:"chat_group_added_by"`
	ChatGroupUpdatedBy uuid.UUID `gorm:"column:chat_group_updated_by;type:uuid;not null" json:"chat_group_updated_by"`
	ChatGroupCreatedAt time.Time `gorm:"column:chat_group_created_at;autoCreateTime" json:"chat_group_created_at"`
	ChatGroupUpdatedAt time.Time `gorm:"column:chat_group_updated_at;autoUpdateTime" json:"chat_group_updated_at"`
}

func (ChatGroupModel) TableName() string {
	return "chat_groups"
}

func (m *ChatGroupModel) BeforeCreate(tx *gorm.DB) error {
	if m.ChatGroupID == uuid.Nil {
		m.ChatGroupID = uuid.New()
	}
	return nil
}
