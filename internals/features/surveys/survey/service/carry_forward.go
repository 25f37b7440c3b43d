// file: internals/features/surveys/survey/service/carry_forward.go
package service

import (
	"strings"

	"github.com/google/uuid"
)

// QuestionRef: potongan minimal pertanyaan untuk matching carry-forward.
type QuestionRef struct {
	ID   uuid.UUID
	Text string
}

// MatchPriorQuestions memetakan pertanyaan BARU → pertanyaan lama dengan
// teks yang persis sama (setelah trim whitespace pinggir). Pertanyaan baru
// tanpa pasangan tidak masuk map — mulai dari nol, user jawab ulang.
//
// Catatan: matching by teks memang rapuh terhadap perubahan
// tanda baca/spasi; kalau teks berubah, link history putus diam-diam.
func MatchPriorQuestions(newQs, priorQs []QuestionRef) map[uuid.UUID]uuid.UUID {
	priorByText := make(map[string]uuid.UUID, len(priorQs))
	for _, q := range priorQs {
		text := strings.TrimSpace(q.Text)
		if _, exists := priorByText[text]; exists {
			continue // teks duplikat di survey lama: yang pertama menang
		}
		priorByText[text] = q.ID
	}

	matched := make(map[uuid.UUID]uuid.UUID)
	for _, q := range newQs {
		if priorID, ok := priorByText[strings.TrimSpace(q.Text)]; ok {
			matched[q.ID] = priorID
		}
	}
	return matched
}
