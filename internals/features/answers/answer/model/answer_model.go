package model

import (
	"time"

	"github.com/google/uuid"

	surveyModel "skillsmap_backend/internals/features/surveys/survey/model"
	userModel "skillsmap_backend/internals/features/users/user/model"
)

// AnswerModel: maksimal SATU baris per (user, question) — write selalu lewat
// upsert (ON CONFLICT DO UPDATE), tidak pernah append.
type AnswerModel struct {
	AnswerID             uuid.UUID `gorm:"column:answer_id;type:uuid;default:gen_random_uuid();primaryKey" json:"answer_id"`
	AnswerUserID         uuid.UUID `gorm:"column:answer_user_id;type:uuid;not null;uniqueIndex:uq_answers_user_question;index" json:"answer_user_id"`
	AnswerQuestionID     uuid.UUID `gorm:"column:answer_question_id;type:uuid;not null;uniqueIndex:uq_answers_user_question;index" json:"answer_question_id"`
	AnswerAnswerOptionID uuid.UUID `gorm:"column:answer_answer_option_id;type:uuid;not null" json:"answer_answer_option_id"`

	User         *userModel.UserModel           `gorm:"foreignKey:AnswerUserID;references:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Question     *surveyModel.QuestionModel     `gorm:"foreignKey:AnswerQuestionID;references:QuestionID;constraint:OnDelete:CASCADE" json:"question,omitempty"`
	AnswerOption *surveyModel.AnswerOptionModel `gorm:"foreignKey:AnswerAnswerOptionID;references:AnswerOptionID" json:"answer_option,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AnswerModel) TableName() string {
	return "answers"
}
