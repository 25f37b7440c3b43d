package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	answerModel "skillsmap_backend/internals/features/answers/answer/model"
	"skillsmap_backend/internals/features/surveys/progression/dto"
	"skillsmap_backend/internals/features/surveys/progression/service"
	surveyModel "skillsmap_backend/internals/features/surveys/survey/model"
	userModel "skillsmap_backend/internals/features/users/user/model"
	helper "skillsmap_backend/internals/helpers"
)

type ProgressionController struct {
	DB *gorm.DB
}

func NewProgressionController(db *gorm.DB) *ProgressionController {
	return &ProgressionController{DB: db}
}

// 📊 GetProgression: status penyelesaian per role untuk user login.
// Query param opsional: ?current_role_id= untuk menandai section aktif
// (dipakai hitung "role berikutnya").
func (ctrl *ProgressionController) GetProgression(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	currentRoleID := uuid.Nil
	if raw := strings.TrimSpace(c.Query("current_role_id")); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "current_role_id tidak valid")
		}
		currentRoleID = parsed
	}

	db := ctrl.DB.WithContext(c.UserContext())

	// 1) survey aktif
	var survey surveyModel.SurveyModel
	err = db.Order("survey_date DESC, created_at DESC").First(&survey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Belum ada survey aktif")
	}
	if err != nil {
		log.Println("[ERROR] Failed to load latest survey:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat survey")
	}

	// 2) katalog pertanyaan + role survey aktif
	var questions []surveyModel.QuestionModel
	if err := db.Preload("Roles").
		Where("question_survey_id = ?", survey.SurveyID).
		Order("created_at ASC").
		Find(&questions).Error; err != nil {
		log.Println("[ERROR] Failed to load question catalog:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat katalog pertanyaan")
	}

	allQuestions := make([]dto.QuestionInfo, 0, len(questions))
	seenRole := map[uuid.UUID]bool{}
	roleCatalog := []dto.RoleInfo{}
	for _, q := range questions {
		info := dto.QuestionInfo{QuestionID: q.QuestionID}
		for _, r := range q.Roles {
			info.RoleIDs = append(info.RoleIDs, r.RoleID)
			if !seenRole[r.RoleID] {
				seenRole[r.RoleID] = true
				roleCatalog = append(roleCatalog, dto.RoleInfo{
					RoleID:    r.RoleID,
					RoleName:  r.RoleName,
					IsDefault: r.RoleIsDefault,
				})
			}
		}
		allQuestions = append(allQuestions, info)
	}

	// role default user selalu ikut walau tidak ada pertanyaannya
	var defaultRole userModel.RoleModel
	if err := db.Where("role_is_default = ?", true).First(&defaultRole).Error; err == nil {
		if !seenRole[defaultRole.RoleID] {
			roleCatalog = append([]dto.RoleInfo{{
				RoleID:    defaultRole.RoleID,
				RoleName:  defaultRole.RoleName,
				IsDefault: true,
			}}, roleCatalog...)
		}
	}

	// 3) jawaban user untuk pertanyaan survey aktif (join role pertanyaan)
	var answers []answerModel.AnswerModel
	if err := db.Preload("Question.Roles").
		Joins("JOIN questions ON questions.question_id = answers.answer_question_id").
		Where("answers.answer_user_id = ? AND questions.question_survey_id = ?", userID, survey.SurveyID).
		Find(&answers).Error; err != nil {
		log.Println("[ERROR] Failed to load user answers:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat jawaban user")
	}

	userAnswers := make([]dto.AnswerInfo, 0, len(answers))
	for _, a := range answers {
		info := dto.AnswerInfo{QuestionID: a.AnswerQuestionID}
		if a.Question != nil {
			for _, r := range a.Question.Roles {
				info.RoleIDs = append(info.RoleIDs, r.RoleID)
			}
		}
		userAnswers = append(userAnswers, info)
	}

	// 4) hitung progression (pure)
	sections := service.ComputeProgression(userAnswers, allQuestions, roleCatalog, currentRoleID)
	resp := dto.ProgressionResponse{
		Sections:          sections,
		NextSection:       service.NextSection(sections),
		CompletionPercent: service.CompletionPercent(sections),
	}
	if currentRoleID != uuid.Nil {
		resp.CurrentRoleID = &currentRoleID
	}

	return helper.JsonOK(c, "OK", resp)
}
