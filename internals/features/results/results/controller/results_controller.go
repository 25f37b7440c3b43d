package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	answerModel "skillsmap_backend/internals/features/answers/answer/model"
	"skillsmap_backend/internals/features/results/results/dto"
	"skillsmap_backend/internals/features/results/results/service"
	surveyModel "skillsmap_backend/internals/features/surveys/survey/model"
	userModel "skillsmap_backend/internals/features/users/user/model"
	helper "skillsmap_backend/internals/helpers"
)

type ResultsController struct {
	DB *gorm.DB
}

func NewResultsController(db *gorm.DB) *ResultsController {
	return &ResultsController{DB: db}
}

/* =========================================================
   ENDPOINT LAPORAN (admin)
========================================================= */

// 📋 GetDetailTable: role → pertanyaan → daftar (user, jawaban), terurut.
func (ctrl *ResultsController) GetDetailTable(c *fiber.Ctx) error {
	seed := resolveSeed(c)

	rows, users, options, err := ctrl.loadSnapshot(c)
	if err != nil {
		return err
	}

	tables := service.BuildTables(rows, users, options)

	// ranking per (role, pertanyaan): ordinal asc, tie diacak (seeded)
	ranked := make(map[uuid.UUID]map[string][]dto.DetailEntry, len(tables.Detail))
	for roleID, byQuestion := range tables.Detail {
		rankedQuestions := make(map[string][]dto.DetailEntry, len(byQuestion))
		for questionText, entries := range byQuestion {
			rankedQuestions[questionText] = service.RankDetail(entries, seed)
		}
		ranked[roleID] = rankedQuestions
	}

	roleNames, err := ctrl.loadRoleNames(c)
	if err != nil {
		return err
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"detail":     ranked,
		"role_names": roleNames,
		"legend":     service.OrdinalLegend(),
		"seed":       seed,
	})
}

// 🏆 GetExperts: ranking "find the expert" per role.
func (ctrl *ResultsController) GetExperts(c *fiber.Ctx) error {
	seed := resolveSeed(c)

	rows, users, options, err := ctrl.loadSnapshot(c)
	if err != nil {
		return err
	}

	tables := service.BuildTables(rows, users, options)

	ranked := make(map[uuid.UUID][]*dto.AggregateRow, len(tables.Aggregate))
	for roleID, byUser := range tables.Aggregate {
		flat := make([]*dto.AggregateRow, 0, len(byUser))
		for _, row := range byUser {
			flat = append(flat, row)
		}
		ranked[roleID] = service.RankAggregate(flat, seed)
	}

	roleNames, err := ctrl.loadRoleNames(c)
	if err != nil {
		return err
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"experts":    ranked,
		"role_names": roleNames,
		"legend":     service.OrdinalLegend(),
		"seed":       seed,
	})
}

// 🕵️ GetAnonymizedHistogram: cube counts-only, filter role XOR business unit.
func (ctrl *ResultsController) GetAnonymizedHistogram(c *fiber.Ctx) error {
	filter := service.HistogramFilter{}
	if raw := strings.TrimSpace(c.Query("role_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "role_id tidak valid")
		}
		filter.RoleID = &id
	}
	if raw := strings.TrimSpace(c.Query("business_unit_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "business_unit_id tidak valid")
		}
		filter.BusinessUnitID = &id
	}
	if filter.RoleID != nil && filter.BusinessUnitID != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, service.ErrAmbiguousFilter.Error())
	}

	rows, options, err := ctrl.loadFilteredRows(c, filter)
	if err != nil {
		return err
	}

	hist, err := service.BuildAnonymizedHistogram(rows, options, filter)
	if err != nil {
		if errors.Is(err, service.ErrAmbiguousFilter) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		log.Println("[ERROR] Failed to build histogram:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membangun histogram")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"histogram": hist,
		"legend":    service.OrdinalLegend(),
	})
}

/* =========================================================
   SNAPSHOT LOADERS
========================================================= */

// loadSnapshot memuat jawaban survey aktif (join pertanyaan + role),
// lookup user, dan lookup opsi jawaban.
func (ctrl *ResultsController) loadSnapshot(c *fiber.Ctx) ([]dto.AnswerRow, dto.UserMap, dto.AnswerOptionMap, error) {
	db := ctrl.DB.WithContext(c.UserContext())

	latestID, err := ctrl.latestSurveyID(c)
	if err != nil {
		return nil, nil, nil, err
	}

	var answers []answerModel.AnswerModel
	if err := db.Preload("Question.Roles").
		Joins("JOIN questions ON questions.question_id = answers.answer_question_id").
		Where("questions.question_survey_id = ?", latestID).
		Find(&answers).Error; err != nil {
		log.Println("[ERROR] Failed to load answers:", err)
		return nil, nil, nil, helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat jawaban")
	}

	rows := make([]dto.AnswerRow, 0, len(answers))
	for _, a := range answers {
		row := dto.AnswerRow{
			UserID:         a.AnswerUserID,
			QuestionID:     a.AnswerQuestionID,
			AnswerOptionID: a.AnswerAnswerOptionID,
		}
		if a.Question != nil {
			row.QuestionText = a.Question.QuestionText
			for _, r := range a.Question.Roles {
				row.QuestionRoleIDs = append(row.QuestionRoleIDs, r.RoleID)
			}
		}
		rows = append(rows, row)
	}

	users, err := ctrl.loadUserMap(c)
	if err != nil {
		return nil, nil, nil, err
	}
	options, err := ctrl.loadOptionMap(c)
	if err != nil {
		return nil, nil, nil, err
	}
	return rows, users, options, nil
}

// loadFilteredRows: baris untuk histogram anonim, dibatasi role ATAU unit.
// Tanpa filter → slice kosong (builder memang harus balikin histogram kosong).
func (ctrl *ResultsController) loadFilteredRows(c *fiber.Ctx, filter service.HistogramFilter) ([]dto.AnswerRow, dto.AnswerOptionMap, error) {
	db := ctrl.DB.WithContext(c.UserContext())

	options, err := ctrl.loadOptionMap(c)
	if err != nil {
		return nil, nil, err
	}
	if filter.RoleID == nil && filter.BusinessUnitID == nil {
		return nil, options, nil
	}

	latestID, err := ctrl.latestSurveyID(c)
	if err != nil {
		return nil, nil, err
	}

	query := db.Preload("Question").
		Joins("JOIN questions ON questions.question_id = answers.answer_question_id").
		Where("questions.question_survey_id = ?", latestID)

	if filter.RoleID != nil {
		query = query.
			Joins("JOIN question_roles ON question_roles.question_id = questions.question_id").
			Where("question_roles.role_id = ?", *filter.RoleID)
	} else {
		query = query.
			Joins("JOIN users ON users.user_id = answers.answer_user_id").
			Where("users.user_business_unit_id = ?", *filter.BusinessUnitID)
	}

	var answers []answerModel.AnswerModel
	if err := query.Find(&answers).Error; err != nil {
		log.Println("[ERROR] Failed to load filtered answers:", err)
		return nil, nil, helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat jawaban")
	}

	rows := make([]dto.AnswerRow, 0, len(answers))
	for _, a := range answers {
		row := dto.AnswerRow{
			UserID:         a.AnswerUserID,
			QuestionID:     a.AnswerQuestionID,
			AnswerOptionID: a.AnswerAnswerOptionID,
		}
		if a.Question != nil {
			row.QuestionText = a.Question.QuestionText
		}
		rows = append(rows, row)
	}
	return rows, options, nil
}

func (ctrl *ResultsController) loadUserMap(c *fiber.Ctx) (dto.UserMap, error) {
	var users []userModel.UserModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Preload("Roles").
		Find(&users).Error; err != nil {
		log.Println("[ERROR] Failed to load users:", err)
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat user")
	}

	out := make(dto.UserMap, len(users))
	for _, u := range users {
		info := dto.UserInfo{
			Name:                     u.UserName,
			CommunicationPreferences: u.UserCommunicationPreferences,
		}
		for _, r := range u.Roles {
			info.RoleIDs = append(info.RoleIDs, r.RoleID)
			info.RoleNames = append(info.RoleNames, r.RoleName)
		}
		out[u.UserID] = info
	}
	return out, nil
}

func (ctrl *ResultsController) loadOptionMap(c *fiber.Ctx) (dto.AnswerOptionMap, error) {
	var options []surveyModel.AnswerOptionModel
	if err := ctrl.DB.WithContext(c.UserContext()).Find(&options).Error; err != nil {
		log.Println("[ERROR] Failed to load answer options:", err)
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat opsi jawaban")
	}
	out := make(dto.AnswerOptionMap, len(options))
	for _, o := range options {
		out[o.AnswerOptionID] = o.AnswerOptionOrdinal
	}
	return out, nil
}

func (ctrl *ResultsController) loadRoleNames(c *fiber.Ctx) (dto.RoleNameIndex, error) {
	var roles []userModel.RoleModel
	if err := ctrl.DB.WithContext(c.UserContext()).Find(&roles).Error; err != nil {
		log.Println("[ERROR] Failed to load roles:", err)
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat role")
	}
	out := make(dto.RoleNameIndex, len(roles))
	for _, r := range roles {
		out[r.RoleID] = r.RoleName
	}
	return out, nil
}

func (ctrl *ResultsController) latestSurveyID(c *fiber.Ctx) (uuid.UUID, error) {
	var survey surveyModel.SurveyModel
	err := ctrl.DB.WithContext(c.UserContext()).
		Order("survey_date DESC, created_at DESC").
		Select("survey_id").
		First(&survey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, helper.JsonError(c, fiber.StatusNotFound, "Belum ada survey aktif")
	}
	if err != nil {
		log.Println("[ERROR] Failed to find latest survey:", err)
		return uuid.Nil, helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat survey")
	}
	return survey.SurveyID, nil
}

// resolveSeed: ?seed= untuk hasil deterministik (test/debug);
// default seed per call supaya tie-break tidak pernah macet di urutan sama.
func resolveSeed(c *fiber.Ctx) int64 {
	if raw := strings.TrimSpace(c.Query("seed")); raw != "" {
		if seed, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return seed
		}
	}
	return time.Now().UnixNano()
}
