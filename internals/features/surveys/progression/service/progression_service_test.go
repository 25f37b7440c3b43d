package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "skillsmap_backend/internals/features/surveys/progression/dto"
)

func newCatalog() (general, devops dto.RoleInfo, questions []dto.QuestionInfo) {
	general = dto.RoleInfo{RoleID: uuid.New(), RoleName: "General", IsDefault: true}
	devops = dto.RoleInfo{RoleID: uuid.New(), RoleName: "DevOps"}

	// General: 3 pertanyaan, DevOps: 2 pertanyaan
	for i := 0; i < 3; i++ {
		questions = append(questions, dto.QuestionInfo{
			QuestionID: uuid.New(),
			RoleIDs:    []uuid.UUID{general.RoleID},
		})
	}
	for i := 0; i < 2; i++ {
		questions = append(questions, dto.QuestionInfo{
			QuestionID: uuid.New(),
			RoleIDs:    []uuid.UUID{devops.RoleID},
		})
	}
	return general, devops, questions
}

func answersFor(questions []dto.QuestionInfo, idx ...int) []dto.AnswerInfo {
	var out []dto.AnswerInfo
	for _, i := range idx {
		out = append(out, dto.AnswerInfo{
			QuestionID: questions[i].QuestionID,
			RoleIDs:    questions[i].RoleIDs,
		})
	}
	return out
}

func TestIsRoleComplete_ZeroQuestionsIsVacuouslyComplete(t *testing.T) {
	_, _, questions := newCatalog()
	emptyRole := uuid.New()

	assert.True(t, IsRoleComplete(nil, emptyRole, questions))
	assert.True(t, IsRoleComplete(nil, emptyRole, nil))
}

func TestIsRoleComplete_FlipsOnNthDistinctAnswer(t *testing.T) {
	general, _, questions := newCatalog()

	assert.False(t, IsRoleComplete(answersFor(questions, 0), general.RoleID, questions))
	assert.False(t, IsRoleComplete(answersFor(questions, 0, 1), general.RoleID, questions))
	assert.True(t, IsRoleComplete(answersFor(questions, 0, 1, 2), general.RoleID, questions))
}

func TestIsRoleComplete_ReplacedAnswerStaysComplete(t *testing.T) {
	general, _, questions := newCatalog()

	// upsert = replace, bukan append: jawaban ganda ke pertanyaan yang sama
	// tetap dihitung satu pertanyaan distinct
	answers := answersFor(questions, 0, 1, 2, 2)
	assert.True(t, IsRoleComplete(answers, general.RoleID, questions))
}

func TestHasRoleStarted(t *testing.T) {
	general, devops, questions := newCatalog()

	answers := answersFor(questions, 0)
	assert.True(t, HasRoleStarted(answers, general.RoleID))
	assert.False(t, HasRoleStarted(answers, devops.RoleID))
	assert.False(t, HasRoleStarted(nil, general.RoleID))
}

func TestComputeProgression_ExampleScenario(t *testing.T) {
	general, devops, questions := newCatalog()
	catalog := []dto.RoleInfo{devops, general} // sengaja default di belakang

	// user jawab semua General + 1 DevOps
	answers := answersFor(questions, 0, 1, 2, 3)

	sections := ComputeProgression(answers, questions, catalog, general.RoleID)
	require.Len(t, sections, 2)

	// role default selalu duluan walau katalog urutannya beda
	assert.Equal(t, general.RoleID, sections[0].RoleID)
	assert.True(t, sections[0].IsCompleted)
	assert.True(t, sections[0].IsCurrent)

	assert.Equal(t, devops.RoleID, sections[1].RoleID)
	assert.False(t, sections[1].IsCompleted)
	assert.True(t, sections[1].HasStarted)

	assert.InDelta(t, 50.0, CompletionPercent(sections), 0.001)

	next := NextSection(sections)
	require.NotNil(t, next)
	assert.Equal(t, devops.RoleID, next.RoleID)
}

func TestNextSection_NilAtEndOrWithoutCurrent(t *testing.T) {
	general, devops, questions := newCatalog()
	catalog := []dto.RoleInfo{general, devops}

	// current = role terakhir → tidak ada next
	sections := ComputeProgression(nil, questions, catalog, devops.RoleID)
	assert.Nil(t, NextSection(sections))

	// tanpa current sama sekali
	sections = ComputeProgression(nil, questions, catalog, uuid.Nil)
	assert.Nil(t, NextSection(sections))
}
