package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "skillsmap_backend/internals/features/results/results/dto"
)

func TestBuildAnonymizedHistogram_NoFilterReturnsEmpty(t *testing.T) {
	rows := []dto.AnswerRow{{
		UserID:         uuid.New(),
		QuestionID:     uuid.New(),
		AnswerOptionID: uuid.New(),
		QuestionText:   "Go",
	}}

	// tanpa filter TIDAK ada view global — privacy guard
	hist, err := BuildAnonymizedHistogram(rows, dto.AnswerOptionMap{}, HistogramFilter{})
	require.NoError(t, err)
	assert.Empty(t, hist)
}

func TestBuildAnonymizedHistogram_BothFiltersRejected(t *testing.T) {
	roleID := uuid.New()
	unitID := uuid.New()

	_, err := BuildAnonymizedHistogram(nil, dto.AnswerOptionMap{}, HistogramFilter{
		RoleID:         &roleID,
		BusinessUnitID: &unitID,
	})
	assert.ErrorIs(t, err, ErrAmbiguousFilter)
}

func TestBuildAnonymizedHistogram_CountsByOrdinal(t *testing.T) {
	roleID := uuid.New()
	optExpert := uuid.New()
	optNovice := uuid.New()
	options := dto.AnswerOptionMap{optExpert: 0, optNovice: 3}

	rows := []dto.AnswerRow{
		{UserID: uuid.New(), QuestionID: uuid.New(), AnswerOptionID: optExpert, QuestionText: "Go"},
		{UserID: uuid.New(), QuestionID: uuid.New(), AnswerOptionID: optExpert, QuestionText: "Go"},
		{UserID: uuid.New(), QuestionID: uuid.New(), AnswerOptionID: optNovice, QuestionText: "Go"},
		{UserID: uuid.New(), QuestionID: uuid.New(), AnswerOptionID: optExpert, QuestionText: "SQL"},
	}

	hist, err := BuildAnonymizedHistogram(rows, options, HistogramFilter{RoleID: &roleID})
	require.NoError(t, err)

	group := hist[roleID.String()]
	require.NotNil(t, group)
	assert.Equal(t, 2, group["Go"]["0"])
	assert.Equal(t, 1, group["Go"]["3"])
	assert.Equal(t, 1, group["SQL"]["0"])

	// tidak ada identitas user di output: cuma string counts
	for _, byOrdinal := range group {
		for key := range byOrdinal {
			assert.NotContains(t, key, "-") // bukan uuid
		}
	}
}

func TestBuildAnonymizedHistogram_BusinessUnitKey(t *testing.T) {
	unitID := uuid.New()
	opt := uuid.New()

	rows := []dto.AnswerRow{
		{UserID: uuid.New(), QuestionID: uuid.New(), AnswerOptionID: opt, QuestionText: "Go"},
	}

	hist, err := BuildAnonymizedHistogram(rows, dto.AnswerOptionMap{opt: 1}, HistogramFilter{BusinessUnitID: &unitID})
	require.NoError(t, err)
	assert.Contains(t, hist, unitID.String())
	assert.Equal(t, 1, hist[unitID.String()]["Go"]["1"])
}
