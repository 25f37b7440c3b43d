// file: internals/features/surveys/survey/dto/survey_upload_dto.go
package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate = validator.New()

/* =========================================================
   UPLOAD PAYLOAD (aksi admin: ganti survey "latest")
========================================================= */

type SurveyUploadRole struct {
	Role      string `json:"role" validate:"required,min=1,max=100"`
	IsDefault bool   `json:"is_default"`
}

type SurveyUploadQuestion struct {
	QuestionText string             `json:"question_text" validate:"required,min=1"`
	Roles        []SurveyUploadRole `json:"roles" validate:"required,min=1,dive"`
}

type SurveyUploadRequest struct {
	SurveyName string                 `json:"survey_name" validate:"required,min=1,max=255"`
	SurveyDate string                 `json:"survey_date" validate:"required,datetime=2006-01-02"`
	Questions  []SurveyUploadQuestion `json:"questions" validate:"required,min=1,dive"`
}

// Validate menjalankan validasi tag + aturan semantik:
//   - tepat SATU nama role ber-is_default=true di seluruh payload;
//   - satu nama role tidak boleh sekali default, sekali bukan
//     (duplicate role name mismatch).
func (r *SurveyUploadRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}

	defaultByName := map[string]bool{}
	for _, q := range r.Questions {
		for _, role := range q.Roles {
			name := strings.TrimSpace(role.Role)
			if name == "" {
				return errors.New("nama role tidak boleh kosong")
			}
			if seen, ok := defaultByName[name]; ok {
				if seen != role.IsDefault {
					return errors.New("role '" + name + "' ditandai default dan non-default sekaligus")
				}
				continue
			}
			defaultByName[name] = role.IsDefault
		}
	}

	defaults := 0
	for _, isDefault := range defaultByName {
		if isDefault {
			defaults++
		}
	}
	if defaults != 1 {
		return errors.New("payload harus punya tepat satu role default")
	}
	return nil
}

/* =========================================================
   RESPONSE
========================================================= */

type SurveyUploadResponse struct {
	SurveyID          string `json:"survey_id"`
	QuestionCount     int    `json:"question_count"`
	CarriedQuestions  int    `json:"carried_questions"`
	CarriedAnswerRows int    `json:"carried_answer_rows"`
}
