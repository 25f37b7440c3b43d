package model

import (
	"time"

	"github.com/google/uuid"

	userModel "skillsmap_backend/internals/features/users/user/model"
)

// QuestionModel: pertanyaan milik tepat satu survey. Teks yang sama boleh
// muncul lagi di versi survey berikutnya sebagai entity BARU (id beda) —
// history jawaban dibawa oleh migration engine, bukan dengan share id.
type QuestionModel struct {
	QuestionID       uuid.UUID `gorm:"column:question_id;type:uuid;default:gen_random_uuid();primaryKey" json:"question_id"`
	QuestionText     string    `gorm:"column:question_text;type:text;not null" json:"question_text"`
	QuestionSurveyID uuid.UUID `gorm:"column:question_survey_id;type:uuid;not null;index" json:"question_survey_id"`

	Survey *SurveyModel `gorm:"foreignKey:QuestionSurveyID;references:SurveyID" json:"survey,omitempty"`

	Roles []userModel.RoleModel `gorm:"many2many:question_roles;foreignKey:QuestionID;joinForeignKey:QuestionID;references:RoleID;joinReferences:RoleID" json:"roles,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (QuestionModel) TableName() string {
	return "questions"
}
