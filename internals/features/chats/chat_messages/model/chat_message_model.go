package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatMessageModel struct {
	ChatMessageID        uuid.UUID `gorm:"column:chat_message_id;type:uuid;primaryKey" json:"chat_message_id"`
	ChatMessageGroupID   uuid.UUID `gorm:"column:chat_message_group_id;type:uuid;not null;index" json:"chat_message_group_id"`
	ChatMessageSenderID  uuid.UUID `gorm:"column:chat_message_sender_id;type:uuid;not null" json:"chat_message_sender_id"`
	ChatMessageText      string    `gorm:"column:chat_message_text;type:text;not null" json:"chat_message_text"`
	ChatMessageIsActive  bool      `gorm:"column:chat_message_is_active;not null;default:true" json:"chat_message_is_active"`
	ChatMessageIsDeleted bool      `gorm:"column:chat_message_is_deleted;not null;default:false" json:"chat_message_is_deleted"`
	ChatMessageAddedBy   uuid.UUID `gorm:"column:chat_message_added_by;type:uuid;not null" json:"chat_message_added_by"`
	ChatMessageUpdatedBy uuid.UUID `gorm:"column:chat_message_updated_by;type:uuid;not null" json:"chat_message_updated_by"`
	ChatMessageCreatedAt time.Time `gorm:"column:chat_message_created_at;autoCreateTime" json:"chat_message_created_at"`
	ChatMessageUpdatedAt time.Time `gorm:"column:chat_message_updated_at;autoUpdateTime" json:"chat_message_updated_at"`
}

func (ChatMessageModel) TableName() string {
	return "chat_messages"
}

func (m *ChatMessageModel) BeforeCreate(tx *gorm.DB) error {
	if m.ChatMessageID == uuid.Nil {
		m.ChatMessageID = uuid.New()
	}
	return nil
}
