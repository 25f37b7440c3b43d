//go:build integration

// Jalankan dengan: go test -tags integration ./... (butuh Postgres,
// set TEST_DATABASE_DSN).
package service

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	answerModel "skillsmap_backend/internals/features/answers/answer/model"
	surveyModel "skillsmap_backend/internals/features/surveys/survey/model"
	userModel "skillsmap_backend/internals/features/users/user/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN tidak diset")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&userModel.RoleModel{},
		&userModel.BusinessUnitModel{},
		&userModel.UserModel{},
		&surveyModel.SurveyModel{},
		&surveyModel.QuestionModel{},
		&surveyModel.AnswerOptionModel{},
		&answerModel.AnswerModel{},
	))
	return db
}

// Idempotensi upsert beneran di Postgres: submit ulang pasangan
// (user, question) yang sama TIDAK menambah baris, cuma mengganti opsi.
func TestUpsert_IdempotentAgainstPostgres(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	user := userModel.UserModel{
		UserName:     "integrasi",
		UserEmail:    fmt.Sprintf("integrasi-%s@example.com", uuid.NewString()),
		UserPassword: "hash-dummy",
	}
	require.NoError(t, db.Create(&user).Error)

	// tanggal jauh di depan supaya survey ini pasti jadi latest
	survey := surveyModel.SurveyModel{
		SurveyName: "integrasi-upsert",
		SurveyDate: time.Date(2999, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&survey).Error)

	question := surveyModel.QuestionModel{
		QuestionText:     "Terraform",
		QuestionSurveyID: survey.SurveyID,
	}
	require.NoError(t, db.Create(&question).Error)

	optExpert := ensureOption(t, db, 0, "Expert")
	optNovice := ensureOption(t, db, 3, "Not familiar")

	t.Cleanup(func() {
		db.Where("answer_user_id = ?", user.UserID).Delete(&answerModel.AnswerModel{})
		db.Delete(&question)
		db.Delete(&survey)
		db.Delete(&user)
	})

	svc := NewAnswerService(db)

	created, err := svc.Upsert(ctx, user.UserID, question.QuestionID, optExpert)
	require.NoError(t, err)
	assert.True(t, created)

	// submit ulang dengan opsi beda: replace, bukan baris baru
	created, err = svc.Upsert(ctx, user.UserID, question.QuestionID, optNovice)
	require.NoError(t, err)
	assert.False(t, created)

	var rows []answerModel.AnswerModel
	require.NoError(t, db.
		Where("answer_user_id = ? AND answer_question_id = ?", user.UserID, question.QuestionID).
		Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, optNovice, rows[0].AnswerAnswerOptionID)
}

// ensureOption: ordinal unik di seluruh DB, jadi reuse baris seed kalau
// sudah ada.
func ensureOption(t *testing.T, db *gorm.DB, ordinal int, label string) uuid.UUID {
	t.Helper()
	opt := surveyModel.AnswerOptionModel{
		AnswerOptionLabel:   label,
		AnswerOptionOrdinal: ordinal,
	}
	require.NoError(t, db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "answer_option_ordinal"}},
		DoNothing: true,
	}).Create(&opt).Error)

	var resolved surveyModel.AnswerOptionModel
	require.NoError(t, db.Where("answer_option_ordinal = ?", ordinal).First(&resolved).Error)
	return resolved.AnswerOptionID
}
