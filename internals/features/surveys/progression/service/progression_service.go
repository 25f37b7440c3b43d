// file: internals/features/surveys/progression/service/progression_service.go
package service

import (
	"github.com/google/uuid"

	dto "skillsmap_backend/internals/features/surveys/progression/dto"
)

/* =========================================================
   PROGRESSION TRACKER
   Murni atas snapshot (jawaban user + katalog pertanyaan),
   tidak menyentuh DB. Controller yang ambil snapshot-nya.
========================================================= */

// IsRoleComplete: answered (distinct) >= total pertanyaan ber-tag role.
// Role tanpa pertanyaan dianggap complete (vacuous).
func IsRoleComplete(userAnswers []dto.AnswerInfo, roleID uuid.UUID, allQuestions []dto.QuestionInfo) bool {
	total := 0
	for _, q := range allQuestions {
		if hasRole(q.RoleIDs, roleID) {
			total++
		}
	}
	if total == 0 {
		return true
	}

	answered := map[uuid.UUID]struct{}{}
	for _, a := range userAnswers {
		if hasRole(a.RoleIDs, roleID) {
			answered[a.QuestionID] = struct{}{}
		}
	}
	return len(answered) >= total
}

// HasRoleStarted: ada minimal satu jawaban untuk pertanyaan ber-tag role.
func HasRoleStarted(userAnswers []dto.AnswerInfo, roleID uuid.UUID) bool {
	for _, a := range userAnswers {
		if hasRole(a.RoleIDs, roleID) {
			return true
		}
	}
	return false
}

// ComputeProgression membangun daftar section per role:
// role default selalu paling depan, sisanya mengikuti urutan katalog.
func ComputeProgression(
	userAnswers []dto.AnswerInfo,
	allQuestions []dto.QuestionInfo,
	roleCatalog []dto.RoleInfo,
	currentRoleID uuid.UUID,
) []dto.Section {
	ordered := make([]dto.RoleInfo, 0, len(roleCatalog))
	for _, r := range roleCatalog {
		if r.IsDefault {
			ordered = append(ordered, r)
		}
	}
	for _, r := range roleCatalog {
		if !r.IsDefault {
			ordered = append(ordered, r)
		}
	}

	sections := make([]dto.Section, 0, len(ordered))
	for _, r := range ordered {
		sections = append(sections, dto.Section{
			RoleID:      r.RoleID,
			Href:        "/survey/roles/" + r.RoleID.String(),
			Label:       r.RoleName,
			IsCurrent:   r.RoleID == currentRoleID,
			IsCompleted: IsRoleComplete(userAnswers, r.RoleID, allQuestions),
			HasStarted:  HasRoleStarted(userAnswers, r.RoleID),
		})
	}
	return sections
}

// NextSection: section pertama SETELAH section current; nil kalau current
// ada di paling belakang atau tidak ada section current sama sekali.
func NextSection(sections []dto.Section) *dto.Section {
	for i, s := range sections {
		if s.IsCurrent && i+1 < len(sections) {
			next := sections[i+1]
			return &next
		}
	}
	return nil
}

// CompletionPercent = role complete / total role × 100.
// Katalog dijamin punya ≥1 role (invariant seeder), tapi tetap guard 0.
func CompletionPercent(sections []dto.Section) float64 {
	if len(sections) == 0 {
		return 0
	}
	completed := 0
	for _, s := range sections {
		if s.IsCompleted {
			completed++
		}
	}
	return float64(completed) / float64(len(sections)) * 100
}

func hasRole(roleIDs []uuid.UUID, roleID uuid.UUID) bool {
	for _, id := range roleIDs {
		if id == roleID {
			return true
		}
	}
	return false
}
