package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Validator instance
var validate = validator.New()

type UserResponse struct {
	UserID                       uuid.UUID  `json:"user_id"`
	UserName                     string     `json:"user_name"`
	UserEmail                    string     `json:"user_email"`
	UserIsAdmin                  bool       `json:"user_is_admin"`
	UserBusinessUnitID           *uuid.UUID `json:"user_business_unit_id,omitempty"`
	UserCommunicationPreferences []string   `json:"user_communication_preferences"`
	RoleNames                    []string   `json:"role_names"`
}

type AssignRolesRequest struct {
	RoleIDs []uuid.UUID `json:"role_ids" validate:"required,min=1"`
}

func (r *AssignRolesRequest) Validate() error {
	return validate.Struct(r)
}

type CreateBusinessUnitRequest struct {
	BusinessUnitName string `json:"business_unit_name" validate:"required,min=1,max=100"`
}

func (r *CreateBusinessUnitRequest) Validate() error {
	return validate.Struct(r)
}

type UpdatePreferencesRequest struct {
	CommunicationPreferences []string `json:"communication_preferences" validate:"required"`
}

func (r *UpdatePreferencesRequest) Validate() error {
	return validate.Struct(r)
}
