package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SurveyModel: satu versi kuesioner. Versi "latest" = survey_date paling baru;
// hanya pertanyaan dari versi itu yang live untuk dijawab.
type SurveyModel struct {
	SurveyID   uuid.UUID `gorm:"column:survey_id;type:uuid;default:gen_random_uuid();primaryKey" json:"survey_id"`
	SurveyName string    `gorm:"column:survey_name;size:255;not null" json:"survey_name"`
	SurveyDate time.Time `gorm:"column:survey_date;not null;index" json:"survey_date"`

	// Payload upload mentah disimpan apa adanya untuk audit trail migrasi.
	SurveyPayload datatypes.JSON `gorm:"column:survey_payload" json:"survey_payload,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SurveyModel) TableName() string {
	return "surveys"
}
