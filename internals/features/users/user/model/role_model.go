package model

import (
	"time"

	"github.com/google/uuid"
)

// RoleModel merepresentasikan kategori skill (tabel roles).
// Tepat satu role punya role_is_default=true ("General") dan otomatis
// melekat ke semua user.
type RoleModel struct {
	RoleID        uuid.UUID `gorm:"column:role_id;type:uuid;default:gen_random_uuid();primaryKey" json:"role_id"`
	RoleName      string    `gorm:"column:role_name;size:100;unique;not null" json:"role_name" validate:"required,min=1,max=100"`
	RoleIsDefault bool      `gorm:"column:role_is_default;not null;default:false" json:"role_is_default"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (RoleModel) TableName() string {
	return "roles"
}
