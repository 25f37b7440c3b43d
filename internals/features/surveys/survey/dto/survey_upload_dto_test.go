package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUpload() SurveyUploadRequest {
	return SurveyUploadRequest{
		SurveyName: "Skills Survey 2026",
		SurveyDate: "2026-09-01",
		Questions: []SurveyUploadQuestion{
			{
				QuestionText: "Kubernetes",
				Roles: []SurveyUploadRole{
					{Role: "General", IsDefault: true},
					{Role: "DevOps"},
				},
			},
			{
				QuestionText: "Go",
				Roles:        []SurveyUploadRole{{Role: "DevOps"}},
			},
		},
	}
}

func TestSurveyUploadValidate_OK(t *testing.T) {
	req := validUpload()
	require.NoError(t, req.Validate())
}

func TestSurveyUploadValidate_RejectsBadDate(t *testing.T) {
	req := validUpload()
	req.SurveyDate = "01-09-2026"
	assert.Error(t, req.Validate())
}

func TestSurveyUploadValidate_RequiresExactlyOneDefaultRole(t *testing.T) {
	req := validUpload()
	req.Questions[0].Roles[0].IsDefault = false
	assert.Error(t, req.Validate(), "tanpa role default harus ditolak")

	req = validUpload()
	req.Questions[1].Roles[0].IsDefault = true // DevOps ikut default → dua default
	assert.Error(t, req.Validate())
}

func TestSurveyUploadValidate_RejectsDefaultMismatchForSameName(t *testing.T) {
	req := validUpload()
	// "DevOps" sekali non-default, sekali default → mismatch
	req.Questions = append(req.Questions, SurveyUploadQuestion{
		QuestionText: "Terraform",
		Roles:        []SurveyUploadRole{{Role: "DevOps", IsDefault: true}},
	})
	assert.Error(t, req.Validate())
}

func TestSurveyUploadValidate_RejectsEmptyQuestions(t *testing.T) {
	req := validUpload()
	req.Questions = nil
	assert.Error(t, req.Validate())
}
