package dto

import (
	"github.com/google/uuid"

	m "gameku_backend/internals/features/users/users/model"
)

type CreateUserRequest struct {
	UserUsername string `json:"user_username" validate:"required,min=3,max=50"`
	UserEmail    string `json:"user_email" validate:"omitempty,email,max=100"`
	UserPassword string `json:"user_password" validate:"required,min=8,max=72"`
}

type UpdateUserRequest struct {
	UserUsername string `json:"user_username" validate:"required,min=3,max=50"`
	UserEmail    string `json:"user_email" validate:"omitempty,email,max=100"`
	UserIsActive *bool  `json:"user_is_active" validate:"omitempty"`
}

// ToModel leaves UserPassword raw; the controller hashes before insert.
func (r *CreateUserRequest) ToModel(addedBy uuid.UUID) *m.UserModel {
	return &m.UserModel{
		UserUsername:  r.UserUsername,
		UserEmail:     r.UserEmail,
		UserPassword:  r.UserPassword,
		UserIsActive:  true,
		UserAddedBy:   &addedBy,
		UserUpdatedBy: &addedBy,
	}
}

func (r *UpdateUserRequest) ToUpdates(updatedBy uuid.UUID) map[string]interface{} {
	updates := map[string]interface{}{
		"user_username":   r.UserUsername,
		"user_updated_by": updatedBy,
	}
	if r.UserEmail != "" {
		updates["user_email"] = r.UserEmail
	}
	if r.UserIsActive != nil {
		updates["user_is_active"] = *r.UserIsActive
	}
	return updates
}

// Whitelists for list filtering and sorting. user_password stays out.
var UserFilterColumns = map[string]string{
	"user_id":         "user_id",
	"user_username":   "user_username",
	"user_email":      "user_email",
	"user_is_active":  "user_is_active",
	"user_is_deleted": "user_is_deleted",
	"user_added_by":   "user_added_by",
}

var UserSortColumns = map[string]string{
	"user_username":   "user_username",
	"user_created_at": "user_created_at",
	"user_updated_at": "user_updated_at",
}
