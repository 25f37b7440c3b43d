package model

import (
	"time"

	"github.com/google/uuid"
)

// BusinessUnitModel: grouping sekunder, ortogonal terhadap role.
type BusinessUnitModel struct {
	BusinessUnitID   uuid.UUID `gorm:"column:business_unit_id;type:uuid;default:gen_random_uuid();primaryKey" json:"business_unit_id"`
	BusinessUnitName string    `gorm:"column:business_unit_name;size:100;unique;not null" json:"business_unit_name" validate:"required,min=1,max=100"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (BusinessUnitModel) TableName() string {
	return "business_units"
}
