package dto

import (
	"github.com/google/uuid"

	m "gameku_backend/internals/features/chats/chat_messages/model"
)

type CreateChatMessageRequest struct {
	ChatMessageGroupID string `json:"chat_message_group_id" validate:"required,uuid"`
	ChatMessageText    string `json:"chat_message_text" validate:"required,min=1"`
}

type UpdateChatMessageRequest struct {
	ChatMessageText     string `json:"chat_message_text" validate:"required,min=1"`
	ChatMessageIsActive *bool  `json:"chat_message_is_active" validate:"omitempty"`
}

func (r *CreateChatMessageRequest) ToModel(addedBy uuid.UUID) *m.ChatMessageModel {
	groupID, _ := uuid.Parse(r.ChatMessageGroupID)
	return &m.ChatMessageModel{
		ChatMessageGroupID:   groupID,
		ChatMessageSenderID:  addedBy,
		ChatMessageText:      r.ChatMessageText,
		ChatMessageIsActive:  true,
		ChatMessageAddedBy:   addedBy,
		ChatMessageUpdatedBy: addedBy,
	}
}

func (r *UpdateChatMessageRequest) ToUpdates(updatedBy uuid.UUID) map[string]interface{} {
	updates := map[string]interface{}{
		"chat_message_text":       r.ChatMessageText,
		"chat_message_updated_by": updatedBy,
	}
	if r.ChatMessageIsActive != nil {
		updates["chat_message_is_active"] = *r.ChatMessageIsActive
	}
	return updates
}

var ChatMessageFilterColumns = map[string]string{
	"chat_message_id":         "chat_message_id",
	"chat_message_group_id":   "chat_message_group_id",
	"chat_message_sender_id":  "chat_message_sender_id",
	"chat_message_is_active":  "chat_message_is_active",
	"chat_message_is_deleted": "chat_message_is_deleted",
	"chat_message_added_by":   "chat_message_added_by",
	"chat_message_text":       "chat_message_text",
}

var ChatMessageSortColumns = map[string]string{
	"chat_message_created_at": "chat_message_created_at",
	"chat_message_updated_at": "chat_message_updated_at",
}
