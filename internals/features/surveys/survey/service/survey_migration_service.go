// file: internals/features/surveys/survey/service/survey_migration_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	answerModel "skillsmap_backend/internals/features/answers/answer/model"
	"skillsmap_backend/internals/features/surveys/survey/dto"
	"skillsmap_backend/internals/features/surveys/survey/model"
	userModel "skillsmap_backend/internals/features/users/user/model"
)

/* =========================================================
   SURVEY MIGRATION ENGINE
   Upload survey baru = 3 langkah dalam SATU transaksi:
   1. resolve role (find-or-create by name)
   2. insert survey + pertanyaan baru (entity fresh, id baru)
   3. carry-forward jawaban dari pertanyaan lama yang teksnya
      persis sama (history lama tidak disentuh, append-only)
   Gagal di langkah manapun → rollback total, tidak ada
   survey setengah jadi.
========================================================= */

// ErrDefaultRoleMismatch: nama role sudah ada di DB dengan status default
// yang beda dari payload.
var ErrDefaultRoleMismatch = errors.New("status default role di payload tidak cocok dengan role yang sudah ada")

type SurveyMigrationService struct {
	DB *gorm.DB
}

func NewSurveyMigrationService(db *gorm.DB) *SurveyMigrationService {
	return &SurveyMigrationService{DB: db}
}

// MigrateSurvey menjalankan migrasi penuh dan mengembalikan ringkasan.
// Payload diasumsikan sudah lolos req.Validate() di controller.
func (s *SurveyMigrationService) MigrateSurvey(ctx context.Context, req *dto.SurveyUploadRequest) (*dto.SurveyUploadResponse, error) {
	surveyDate, err := time.Parse("2006-01-02", req.SurveyDate)
	if err != nil {
		return nil, fmt.Errorf("survey_date tidak valid: %w", err)
	}

	resp := &dto.SurveyUploadResponse{}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Survey "latest" lama dicatat SEBELUM survey baru masuk,
		// karena survey baru biasanya langsung jadi latest.
		priorSurveyID, err := findLatestSurveyID(tx)
		if err != nil {
			return fmt.Errorf("migrasi: cari survey sebelumnya: %w", err)
		}

		// ---- Step 1: resolve roles ----
		roleByName, err := resolveRoles(tx, req)
		if err != nil {
			return fmt.Errorf("migrasi step 1 (resolve roles): %w", err)
		}

		// ---- Step 2: survey + questions baru ----
		rawPayload, err := json.Marshal(req)
		if err != nil {
			return fmt.Errorf("migrasi step 2 (serialize payload): %w", err)
		}
		survey := model.SurveyModel{
			SurveyName:    req.SurveyName,
			SurveyDate:    surveyDate,
			SurveyPayload: datatypes.JSON(rawPayload),
		}
		if err := tx.Create(&survey).Error; err != nil {
			return fmt.Errorf("migrasi step 2 (insert survey): %w", err)
		}

		newQuestions := make([]model.QuestionModel, 0, len(req.Questions))
		for _, q := range req.Questions {
			roles := make([]userModel.RoleModel, 0, len(q.Roles))
			for _, r := range q.Roles {
				roles = append(roles, roleByName[strings.TrimSpace(r.Role)])
			}
			question := model.QuestionModel{
				QuestionText:     q.QuestionText,
				QuestionSurveyID: survey.SurveyID,
				Roles:            roles,
			}
			if err := tx.Create(&question).Error; err != nil {
				return fmt.Errorf("migrasi step 2 (insert question): %w", err)
			}
			newQuestions = append(newQuestions, question)
		}
		resp.SurveyID = survey.SurveyID.String()
		resp.QuestionCount = len(newQuestions)

		// ---- Step 3: carry-forward history ----
		if priorSurveyID == nil {
			log.Printf("[MIGRATE] survey pertama, tidak ada history untuk dibawa")
			return nil
		}
		carriedQuestions, carriedRows, err := carryForwardAnswers(tx, *priorSurveyID, newQuestions)
		if err != nil {
			return fmt.Errorf("migrasi step 3 (carry-forward): %w", err)
		}
		resp.CarriedQuestions = carriedQuestions
		resp.CarriedAnswerRows = carriedRows
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[MIGRATE] survey=%s questions=%d carried_q=%d carried_rows=%d",
		resp.SurveyID, resp.QuestionCount, resp.CarriedQuestions, resp.CarriedAnswerRows)
	return resp, nil
}

// findLatestSurveyID: survey dengan survey_date paling baru, nil kalau belum ada.
func findLatestSurveyID(tx *gorm.DB) (*uuid.UUID, error) {
	var survey model.SurveyModel
	err := tx.Order("survey_date DESC, created_at DESC").First(&survey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &survey.SurveyID, nil
}

// resolveRoles: connect-or-create per nama role. Identitas role = nama,
// jadi upload yang pakai nama lama otomatis reuse Role + asosiasinya.
func resolveRoles(tx *gorm.DB, req *dto.SurveyUploadRequest) (map[string]userModel.RoleModel, error) {
	wantDefault := map[string]bool{}
	for _, q := range req.Questions {
		for _, r := range q.Roles {
			wantDefault[strings.TrimSpace(r.Role)] = r.IsDefault
		}
	}

	payloadDefault := ""
	for name, isDefault := range wantDefault {
		if isDefault {
			payloadDefault = name
		}
	}

	roleByName := make(map[string]userModel.RoleModel, len(wantDefault))
	for name, isDefault := range wantDefault {
		role := userModel.RoleModel{
			RoleName:      name,
			RoleIsDefault: isDefault,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "role_name"}},
			DoNothing: true,
		}).Create(&role).Error; err != nil {
			return nil, fmt.Errorf("create role %q: %w", name, err)
		}

		// reload: row bisa berasal dari insert barusan ATAU row lama
		var resolved userModel.RoleModel
		if err := tx.Where("role_name = ?", name).First(&resolved).Error; err != nil {
			return nil, fmt.Errorf("reload role %q: %w", name, err)
		}
		if resolved.RoleIsDefault != isDefault {
			return nil, fmt.Errorf("role %q: %w", name, ErrDefaultRoleMismatch)
		}
		roleByName[name] = resolved
	}

	// Invariant katalog: tepat SATU role default. Cek per nama di atas
	// tidak cukup — role default lama yang tidak disebut payload juga
	// harus ketahuan, kalau tidak katalog bisa punya dua default.
	var existingDefaults []userModel.RoleModel
	if err := tx.Where("role_is_default = ?", true).Find(&existingDefaults).Error; err != nil {
		return nil, fmt.Errorf("load role default lama: %w", err)
	}
	names := make([]string, 0, len(existingDefaults))
	for _, r := range existingDefaults {
		names = append(names, r.RoleName)
	}
	if stray := findStrayDefaults(names, payloadDefault); len(stray) > 0 {
		return nil, fmt.Errorf("role %q masih default di katalog: %w", stray[0], ErrDefaultRoleMismatch)
	}
	return roleByName, nil
}

// findStrayDefaults: nama role yang berstatus default di katalog tapi
// BUKAN default menurut payload. Hasil non-kosong = migrasi ditolak.
func findStrayDefaults(existingDefaults []string, payloadDefault string) []string {
	var stray []string
	for _, name := range existingDefaults {
		if name != payloadDefault {
			stray = append(stray, name)
		}
	}
	return stray
}

// carryForwardAnswers meng-clone jawaban dari pertanyaan lama (teks sama
// persis) ke id pertanyaan baru. Baris lama tidak diubah sama sekali.
func carryForwardAnswers(tx *gorm.DB, priorSurveyID uuid.UUID, newQuestions []model.QuestionModel) (int, int, error) {
	var priorQuestions []model.QuestionModel
	if err := tx.Where("question_survey_id = ?", priorSurveyID).Find(&priorQuestions).Error; err != nil {
		return 0, 0, fmt.Errorf("load pertanyaan lama: %w", err)
	}
	if len(priorQuestions) == 0 {
		return 0, 0, nil
	}

	newRefs := make([]QuestionRef, 0, len(newQuestions))
	for _, q := range newQuestions {
		newRefs = append(newRefs, QuestionRef{ID: q.QuestionID, Text: q.QuestionText})
	}
	priorRefs := make([]QuestionRef, 0, len(priorQuestions))
	for _, q := range priorQuestions {
		priorRefs = append(priorRefs, QuestionRef{ID: q.QuestionID, Text: q.QuestionText})
	}

	matched := MatchPriorQuestions(newRefs, priorRefs)
	carriedQuestions, carriedRows := 0, 0

	for newID, priorID := range matched {
		var priorAnswers []answerModel.AnswerModel
		if err := tx.Where("answer_question_id = ?", priorID).Find(&priorAnswers).Error; err != nil {
			return 0, 0, fmt.Errorf("load jawaban lama question=%s: %w", priorID, err)
		}
		if len(priorAnswers) == 0 {
			continue
		}

		clones := make([]answerModel.AnswerModel, 0, len(priorAnswers))
		for _, a := range priorAnswers {
			clones = append(clones, answerModel.AnswerModel{
				AnswerUserID:         a.AnswerUserID,
				AnswerQuestionID:     newID,
				AnswerAnswerOptionID: a.AnswerAnswerOptionID,
			})
		}
		if err := tx.CreateInBatches(&clones, 100).Error; err != nil {
			return 0, 0, fmt.Errorf("clone jawaban ke question=%s: %w", newID, err)
		}
		carriedQuestions++
		carriedRows += len(clones)
	}
	return carriedQuestions, carriedRows, nil
}
