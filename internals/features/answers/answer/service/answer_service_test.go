package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillsmap_backend/internals/features/answers/answer/dto"
)

func TestBuildBatchResponse_PartialFailure(t *testing.T) {
	qOK := uuid.New()
	qNew := uuid.New()
	qBad := uuid.New()

	items := []dto.AnswerSubmitRequest{
		{QuestionID: qOK, AnswerOptionID: uuid.New()},
		{QuestionID: qBad, AnswerOptionID: uuid.New()},
		{QuestionID: qNew, AnswerOptionID: uuid.New()},
	}

	resp := buildBatchResponse(items, func(item dto.AnswerSubmitRequest) (bool, error) {
		switch item.QuestionID {
		case qBad:
			return false, ErrQuestionNotFound
		case qNew:
			return true, nil
		default:
			return false, nil
		}
	})

	require.Len(t, resp.Results, 3)
	assert.Equal(t, 2, resp.SucceededCount)
	assert.Equal(t, 1, resp.FailedCount)

	// urutan hasil mengikuti urutan input
	assert.True(t, resp.Results[0].OK)
	assert.False(t, resp.Results[0].WasNewlyCreated)

	assert.False(t, resp.Results[1].OK)
	assert.Equal(t, qBad, resp.Results[1].QuestionID)
	assert.Equal(t, ErrQuestionNotFound.Error(), resp.Results[1].Error)

	assert.True(t, resp.Results[2].OK)
	assert.True(t, resp.Results[2].WasNewlyCreated)
}

func TestBuildBatchResponse_AllFailSameReason(t *testing.T) {
	boom := errors.New("belum ada survey aktif")
	items := []dto.AnswerSubmitRequest{
		{QuestionID: uuid.New(), AnswerOptionID: uuid.New()},
		{QuestionID: uuid.New(), AnswerOptionID: uuid.New()},
	}

	resp := buildBatchResponse(items, func(dto.AnswerSubmitRequest) (bool, error) {
		return false, boom
	})

	assert.Equal(t, 0, resp.SucceededCount)
	assert.Equal(t, 2, resp.FailedCount)
	for _, r := range resp.Results {
		assert.False(t, r.OK)
		assert.Equal(t, boom.Error(), r.Error)
	}
}

func TestBuildBatchResponse_EmptyInput(t *testing.T) {
	resp := buildBatchResponse(nil, func(dto.AnswerSubmitRequest) (bool, error) {
		t.Fatal("tidak boleh dipanggil")
		return false, nil
	})

	assert.Empty(t, resp.Results)
	assert.Equal(t, 0, resp.SucceededCount)
	assert.Equal(t, 0, resp.FailedCount)
}
