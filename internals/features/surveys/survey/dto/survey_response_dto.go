package dto

import (
	"time"

	"github.com/google/uuid"
)

type RoleResponse struct {
	RoleID        uuid.UUID `json:"role_id"`
	RoleName      string    `json:"role_name"`
	RoleIsDefault bool      `json:"role_is_default"`
}

type QuestionResponse struct {
	QuestionID   uuid.UUID      `json:"question_id"`
	QuestionText string         `json:"question_text"`
	Roles        []RoleResponse `json:"roles"`
}

type AnswerOptionResponse struct {
	AnswerOptionID      uuid.UUID `json:"answer_option_id"`
	AnswerOptionLabel   string    `json:"answer_option_label"`
	AnswerOptionOrdinal int       `json:"answer_option_ordinal"`
}

type LatestSurveyResponse struct {
	SurveyID      uuid.UUID              `json:"survey_id"`
	SurveyName    string                 `json:"survey_name"`
	SurveyDate    time.Time              `json:"survey_date"`
	Questions     []QuestionResponse     `json:"questions"`
	AnswerOptions []AnswerOptionResponse `json:"answer_options"`
}
