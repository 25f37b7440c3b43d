package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"skillsmap_backend/internals/features/surveys/survey/dto"
	"skillsmap_backend/internals/features/surveys/survey/model"
	"skillsmap_backend/internals/features/surveys/survey/service"
	helper "skillsmap_backend/internals/helpers"
)

type SurveyController struct {
	DB        *gorm.DB
	Migration *service.SurveyMigrationService
}

func NewSurveyController(db *gorm.DB) *SurveyController {
	return &SurveyController{
		DB:        db,
		Migration: service.NewSurveyMigrationService(db),
	}
}

// 📤 UploadSurvey: aksi admin — survey baru menggantikan yang "latest",
// jawaban lama yang teksnya match dibawa serta (lihat migration service).
func (ctrl *SurveyController) UploadSurvey(c *fiber.Ctx) error {
	var input dto.SurveyUploadRequest
	if err := c.BodyParser(&input); err != nil {
		log.Println("[ERROR] Failed to parse survey upload:", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := input.Validate(); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return helper.JsonValidationError(c, err)
		}
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	result, err := ctrl.Migration.MigrateSurvey(c.UserContext(), &input)
	if err != nil {
		if errors.Is(err, service.ErrDefaultRoleMismatch) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		log.Println("[ERROR] Survey migration failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Migrasi survey gagal, tidak ada perubahan yang tersimpan")
	}

	return helper.JsonCreated(c, "Survey berhasil diunggah", result)
}

// 📋 GetLatestSurvey: survey aktif + pertanyaan (dengan role) + skala jawaban.
func (ctrl *SurveyController) GetLatestSurvey(c *fiber.Ctx) error {
	var survey model.SurveyModel
	err := ctrl.DB.WithContext(c.UserContext()).
		Order("survey_date DESC, created_at DESC").
		First(&survey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Belum ada survey aktif")
	}
	if err != nil {
		log.Println("[ERROR] Failed to load latest survey:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat survey")
	}

	var questions []model.QuestionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Preload("Roles").
		Where("question_survey_id = ?", survey.SurveyID).
		Order("created_at ASC").
		Find(&questions).Error; err != nil {
		log.Println("[ERROR] Failed to load questions:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat pertanyaan")
	}

	var options []model.AnswerOptionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("answer_option_ordinal ASC").
		Find(&options).Error; err != nil {
		log.Println("[ERROR] Failed to load answer options:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat opsi jawaban")
	}

	resp := dto.LatestSurveyResponse{
		SurveyID:   survey.SurveyID,
		SurveyName: survey.SurveyName,
		SurveyDate: survey.SurveyDate,
	}
	for _, q := range questions {
		qr := dto.QuestionResponse{
			QuestionID:   q.QuestionID,
			QuestionText: q.QuestionText,
			Roles:        make([]dto.RoleResponse, 0, len(q.Roles)),
		}
		for _, r := range q.Roles {
			qr.Roles = append(qr.Roles, dto.RoleResponse{
				RoleID:        r.RoleID,
				RoleName:      r.RoleName,
				RoleIsDefault: r.RoleIsDefault,
			})
		}
		resp.Questions = append(resp.Questions, qr)
	}
	for _, o := range options {
		resp.AnswerOptions = append(resp.AnswerOptions, dto.AnswerOptionResponse{
			AnswerOptionID:      o.AnswerOptionID,
			AnswerOptionLabel:   o.AnswerOptionLabel,
			AnswerOptionOrdinal: o.AnswerOptionOrdinal,
		})
	}

	return helper.JsonOK(c, "OK", resp)
}
