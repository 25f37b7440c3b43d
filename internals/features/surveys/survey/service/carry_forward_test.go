package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchPriorQuestions_ExactTextMatch(t *testing.T) {
	newQ := QuestionRef{ID: uuid.New(), Text: "Kubernetes"}
	newFresh := QuestionRef{ID: uuid.New(), Text: "Pulumi"}
	priorQ := QuestionRef{ID: uuid.New(), Text: "Kubernetes"}
	priorGone := QuestionRef{ID: uuid.New(), Text: "Chef"}

	matched := MatchPriorQuestions(
		[]QuestionRef{newQ, newFresh},
		[]QuestionRef{priorQ, priorGone},
	)

	require.Len(t, matched, 1)
	assert.Equal(t, priorQ.ID, matched[newQ.ID])

	// pertanyaan baru tanpa pasangan mulai dari nol
	_, ok := matched[newFresh.ID]
	assert.False(t, ok)
}

func TestMatchPriorQuestions_TrimsEdgeWhitespace(t *testing.T) {
	newQ := QuestionRef{ID: uuid.New(), Text: "  Kubernetes "}
	priorQ := QuestionRef{ID: uuid.New(), Text: "Kubernetes"}

	matched := MatchPriorQuestions([]QuestionRef{newQ}, []QuestionRef{priorQ})
	assert.Equal(t, priorQ.ID, matched[newQ.ID])
}

func TestMatchPriorQuestions_InnerPunctuationBreaksLink(t *testing.T) {
	// perubahan teks di tengah = link history putus (perilaku yang disengaja)
	newQ := QuestionRef{ID: uuid.New(), Text: "Kubernetes!"}
	priorQ := QuestionRef{ID: uuid.New(), Text: "Kubernetes"}

	matched := MatchPriorQuestions([]QuestionRef{newQ}, []QuestionRef{priorQ})
	assert.Empty(t, matched)
}

func TestMatchPriorQuestions_DuplicatePriorTextFirstWins(t *testing.T) {
	newQ := QuestionRef{ID: uuid.New(), Text: "Go"}
	prior1 := QuestionRef{ID: uuid.New(), Text: "Go"}
	prior2 := QuestionRef{ID: uuid.New(), Text: "Go"}

	matched := MatchPriorQuestions([]QuestionRef{newQ}, []QuestionRef{prior1, prior2})
	assert.Equal(t, prior1.ID, matched[newQ.ID])
}
