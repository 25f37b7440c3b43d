package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserName     string    `gorm:"column:user_name;size:100;not null" json:"user_name" validate:"required,min=3,max=100"`
	UserEmail    string    `gorm:"column:user_email;size:255;unique;not null" json:"user_email" validate:"required,email"`
	UserPassword string    `gorm:"column:user_password;not null" json:"-" validate:"required,min=8"`
	UserIsAdmin  bool      `gorm:"column:user_is_admin;not null;default:false" json:"user_is_admin"`

	UserBusinessUnitID *uuid.UUID         `gorm:"column:user_business_unit_id;type:uuid;index" json:"user_business_unit_id,omitempty"`
	BusinessUnit       *BusinessUnitModel `gorm:"foreignKey:UserBusinessUnitID;references:BusinessUnitID" json:"business_unit,omitempty"`

	// Cara user mau dihubungi kalau dia muncul sebagai "expert"
	// (mis. "email", "slack"). Kosong = jangan dihubungi.
	UserCommunicationPreferences pq.StringArray `gorm:"column:user_communication_preferences;type:text[]" json:"user_communication_preferences"`

	Roles []RoleModel `gorm:"many2many:user_roles;foreignKey:UserID;joinForeignKey:UserID;references:RoleID;joinReferences:RoleID" json:"roles,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}
