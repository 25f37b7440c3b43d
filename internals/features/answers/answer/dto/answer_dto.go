package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Validator instance
var validate = validator.New()

/* =========================================================
   REQUEST
========================================================= */

// AnswerSubmitRequest: satu jawaban (dipakai single & batch).
type AnswerSubmitRequest struct {
	QuestionID     uuid.UUID `json:"question_id" validate:"required"`
	AnswerOptionID uuid.UUID `json:"answer_option_id" validate:"required"`
}

func (r *AnswerSubmitRequest) Validate() error {
	return validate.Struct(r)
}

/* =========================================================
   RESPONSE
========================================================= */

type AnswerSubmitResponse struct {
	QuestionID      uuid.UUID `json:"question_id"`
	WasNewlyCreated bool      `json:"was_newly_created"`
}

// BatchItemResult: hasil per item — kalau gagal, klien bisa retry
// cuma item yang failed.
type BatchItemResult struct {
	QuestionID      uuid.UUID `json:"question_id"`
	OK              bool      `json:"ok"`
	WasNewlyCreated bool      `json:"was_newly_created"`
	Error           string    `json:"error,omitempty"`
}

type BatchSubmitResponse struct {
	Results        []BatchItemResult `json:"results"`
	SucceededCount int               `json:"succeeded_count"`
	FailedCount    int               `json:"failed_count"`
}
