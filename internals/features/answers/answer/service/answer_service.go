// file: internals/features/answers/answer/service/answer_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"skillsmap_backend/internals/features/answers/answer/dto"
	answerModel "skillsmap_backend/internals/features/answers/answer/model"
	surveyModel "skillsmap_backend/internals/features/surveys/survey/model"
)

/* =========================================================
   ANSWER SERVICE
   Write path satu-satunya untuk jawaban: upsert idempoten
   dengan key unik (user_id, question_id). Submit ulang =
   replace nilai, tidak pernah nambah baris.
========================================================= */

var (
	ErrQuestionNotFound = errors.New("pertanyaan tidak ditemukan")
	ErrOptionNotFound   = errors.New("opsi jawaban tidak ditemukan")
	ErrQuestionNotLive  = errors.New("pertanyaan bukan bagian dari survey terbaru")
)

type AnswerService struct {
	DB *gorm.DB
}

func NewAnswerService(db *gorm.DB) *AnswerService {
	return &AnswerService{DB: db}
}

// Upsert menyimpan/mengganti jawaban user untuk satu pertanyaan.
// Return wasNewlyCreated=true kalau (user, question) belum pernah dijawab.
// Concurrent submit untuk pasangan yang sama: last-write-wins, key unik
// menjamin tetap satu baris.
func (s *AnswerService) Upsert(ctx context.Context, userID, questionID, optionID uuid.UUID) (bool, error) {
	db := s.DB.WithContext(ctx)

	latestID, err := s.latestSurveyID(ctx)
	if err != nil {
		return false, err
	}
	return s.upsertOne(db, userID, questionID, optionID, latestID)
}

// SubmitBatch menjalankan upsert per item secara INDEPENDEN (bukan satu
// transaksi): sebagian gagal tidak membatalkan yang sukses. Kondisi
// "partially answered" dilaporkan lewat hasil per item.
func (s *AnswerService) SubmitBatch(ctx context.Context, userID uuid.UUID, items []dto.AnswerSubmitRequest) *dto.BatchSubmitResponse {
	db := s.DB.WithContext(ctx)

	latestID, err := s.latestSurveyID(ctx)
	if err != nil {
		// tanpa survey latest semua item pasti gagal dengan alasan sama
		return buildBatchResponse(items, func(dto.AnswerSubmitRequest) (bool, error) {
			return false, err
		})
	}

	return buildBatchResponse(items, func(item dto.AnswerSubmitRequest) (bool, error) {
		return s.upsertOne(db, userID, item.QuestionID, item.AnswerOptionID, latestID)
	})
}

// buildBatchResponse merakit laporan per item dari hasil upsert. Dipisah
// supaya bentuk laporan partial-failure bisa diuji tanpa database.
func buildBatchResponse(items []dto.AnswerSubmitRequest, upsert func(dto.AnswerSubmitRequest) (bool, error)) *dto.BatchSubmitResponse {
	resp := &dto.BatchSubmitResponse{
		Results: make([]dto.BatchItemResult, 0, len(items)),
	}
	for _, item := range items {
		created, err := upsert(item)
		result := dto.BatchItemResult{
			QuestionID:      item.QuestionID,
			OK:              err == nil,
			WasNewlyCreated: created,
		}
		if err != nil {
			result.Error = err.Error()
			resp.FailedCount++
			log.Printf("[AnswerService] batch item gagal question=%s: %v", item.QuestionID, err)
		} else {
			resp.SucceededCount++
		}
		resp.Results = append(resp.Results, result)
	}
	return resp
}

func (s *AnswerService) upsertOne(db *gorm.DB, userID, questionID, optionID, latestSurveyID uuid.UUID) (bool, error) {
	// 1) pertanyaan harus ada DAN live (milik survey terbaru)
	var question surveyModel.QuestionModel
	if err := db.Select("question_id", "question_survey_id").
		First(&question, "question_id = ?", questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrQuestionNotFound
		}
		return false, fmt.Errorf("load question: %w", err)
	}
	if question.QuestionSurveyID != latestSurveyID {
		return false, ErrQuestionNotLive
	}

	// 2) opsi jawaban harus ada
	var optCount int64
	if err := db.Model(&surveyModel.AnswerOptionModel{}).
		Where("answer_option_id = ?", optionID).Count(&optCount).Error; err != nil {
		return false, fmt.Errorf("load answer option: %w", err)
	}
	if optCount == 0 {
		return false, ErrOptionNotFound
	}

	// 3) cek sudah pernah jawab atau belum (untuk wasNewlyCreated)
	var existing int64
	if err := db.Model(&answerModel.AnswerModel{}).
		Where("answer_user_id = ? AND answer_question_id = ?", userID, questionID).
		Count(&existing).Error; err != nil {
		return false, fmt.Errorf("cek jawaban lama: %w", err)
	}

	// 4) upsert: ON CONFLICT (user, question) DO UPDATE option
	row := answerModel.AnswerModel{
		AnswerUserID:         userID,
		AnswerQuestionID:     questionID,
		AnswerAnswerOptionID: optionID,
	}
	if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "answer_user_id"},
			{Name: "answer_question_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"answer_answer_option_id", "updated_at"}),
	}).Create(&row).Error; err != nil {
		return false, fmt.Errorf("upsert jawaban: %w", err)
	}

	return existing == 0, nil
}

func (s *AnswerService) latestSurveyID(ctx context.Context) (uuid.UUID, error) {
	var survey surveyModel.SurveyModel
	err := s.DB.WithContext(ctx).
		Order("survey_date DESC, created_at DESC").
		Select("survey_id").
		First(&survey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, errors.New("belum ada survey aktif")
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("cari survey terbaru: %w", err)
	}
	return survey.SurveyID, nil
}
