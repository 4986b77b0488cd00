package dto

import (
	"github.com/google/uuid"

	m "gameku_backend/internals/features/chats/chat_groups/model"
)

type CreateChatGroupRequest struct {
	ChatGroupName    string `json:"chat_group_name" validate:"required,min=1,max=100"`
	ChatGroupCode    string `json:"chat_group_code" validate:"omitempty,max=50"`
	ChatGroupAdminID string `json:"chat_group_admin_id" validate:"omitempty,uuid"`
}

type UpdateChatGroupRequest struct {
	ChatGroupName     string `json:"chat_group_name" validate:"required,min=1,max=100"`
	ChatGroupCode     string `json:"chat_group_code" validate:"omitempty,max=50"`
	ChatGroupIsActive *bool  `json:"chat_group_is_active" validate:"omitempty"`
}

func (r *CreateChatGroupRequest) ToModel(addedBy uuid.UUID) *m.ChatGroupModel {
	group := &m.ChatGroupModel{
		ChatGroupName:      r.ChatGroupName,
		ChatGroupCode:      r.ChatGroupCode,
		ChatGroupAdminID:   addedBy,
		ChatGroupIsActive:  true,
		ChatGroupAddedBy:   addedBy,
		ChatGroupUpdatedBy: addedBy,
	}
	if r.ChatGroupCode == "" {
		group.ChatGroupCode = uuid.NewString()[:8]
	}
	if r.ChatGroupAdminID != "" {
		if adminID, err := uuid.Parse(r.ChatGroupAdminID); err == nil {
			group.ChatGroupAdminID = adminID
		}
	}
	return group
}

func (r *UpdateChatGroupRequest) ToUpdates(updatedBy uuid.UUID) map[string]interface{} {
	updates := map[string]interface{}{
		"chat_group_name":       r.ChatGroupName,
		"chat_group_updated_by": updatedBy,
	}
	if r.ChatGroupCode != "" {
		updates["chat_group_code"] = r.ChatGroupCode
	}
	if r.ChatGroupIsActive != nil {
		updates["chat_group_is_active"] = *r.ChatGroupIsActive
	}
	return updates
}

var ChatGroupFilterColumns = map[string]string{
	"chat_group_id":         "chat_group_id",
	"chat_group_name":       "chat_group_name",
	"chat_group_code":       "chat_group_code",
	"chat_group_admin_id":   "chat_group_admin_id",
	"chat_group_is_active":  "chat_group_is_active",
	"chat_group_is_deleted": "chat_group_is_deleted",
	"chat_group_added_by":   "chat_group_added_by",
}

var ChatGroupSortColumns = map[string]string{
	"chat_group_name":       "chat_group_name",
	"chat_group_created_at": "chat_group_created_at",
	"chat_group_updated_at": "chat_group_updated_at",
}
