// file: internals/features/results/results/service/grouping_service.go
package service

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"skillsmap_backend/internals/constants"
	dto "skillsmap_backend/internals/features/results/results/dto"
)

/* =========================================================
   GROUPING ENGINE
   Satu pass atas stream jawaban → dua struktur:
   1. Detail  : role → pertanyaan → [entri (user, jawaban)]
   2. Aggregate: role → user → histogram counts[4]
========================================================= */

type GroupingResult struct {
	Detail    dto.DetailTable
	Aggregate dto.AggregateTable
}

// BuildTables mengelompokkan jawaban per role.
//
// Aturan keanggotaan: entri hanya masuk ke role kalau user penjawab
// memang terdaftar di role itu — meskipun pertanyaannya ditag lebih
// banyak role. Ini mencegah jawaban "bocor" ke role yang tidak diikuti
// user. Pengecualian: user yang tidak ditemukan di lookup (referential
// gap di feed) tampil sebagai "Unknown User" di semua role pertanyaan,
// karena keanggotaannya memang tidak bisa diperiksa.
//
// Lookup yang gagal tidak pernah bikin error — degrade ke sentinel.
func BuildTables(rows []dto.AnswerRow, users dto.UserMap, options dto.AnswerOptionMap) GroupingResult {
	res := GroupingResult{
		Detail:    make(dto.DetailTable),
		Aggregate: make(dto.AggregateTable),
	}

	for _, row := range rows {
		user, known := users[row.UserID]
		if !known {
			user = dto.UserInfo{Name: constants.SentinelUnknownUser}
		}

		prefs := normalizePreferences(user.CommunicationPreferences)

		ordinal, hasOrdinal := options[row.AnswerOptionID]
		answerLabel := constants.SentinelUnknownAnswer
		if hasOrdinal {
			answerLabel = strconv.Itoa(ordinal)
		}

		for _, roleID := range row.QuestionRoleIDs {
			// filter keanggotaan (skip untuk unknown user, lihat doc di atas)
			if known && !user.HasRoleID(roleID) {
				continue
			}

			// --- detail ---
			byQuestion, ok := res.Detail[roleID]
			if !ok {
				byQuestion = make(map[string][]dto.DetailEntry)
				res.Detail[roleID] = byQuestion
			}
			entry := dto.DetailEntry{
				Name:                     user.Name,
				CommunicationPreferences: prefs,
				Answer:                   answerLabel,
				AnswerOrdinal:            constants.AnswerOrdinalMax + 1, // unknown sort paling bawah
				Roles:                    user.RoleNames,
			}
			if hasOrdinal {
				entry.AnswerOrdinal = ordinal
			}
			byQuestion[row.QuestionText] = append(byQuestion[row.QuestionText], entry)

			// --- aggregate ---
			byUser, ok := res.Aggregate[roleID]
			if !ok {
				byUser = make(map[uuid.UUID]*dto.AggregateRow)
				res.Aggregate[roleID] = byUser
			}
			agg, ok := byUser[row.UserID]
			if !ok {
				agg = &dto.AggregateRow{
					UserID:                   row.UserID,
					Name:                     user.Name,
					CommunicationPreferences: prefs,
				}
				byUser[row.UserID] = agg
			}
			// ordinal di luar 0..3 (atau option tak dikenal) tidak dihitung
			if hasOrdinal && ordinal >= constants.AnswerOrdinalMin && ordinal <= constants.AnswerOrdinalMax {
				agg.Counts[ordinal]++
			}
		}
	}

	return res
}

// normalizePreferences: preferensi kosong/blank semua diganti sentinel
// supaya kontrak rendering downstream stabil (tidak pernah slice kosong).
func normalizePreferences(prefs []string) []string {
	out := make([]string, 0, len(prefs))
	for _, p := range prefs {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{constants.SentinelDoNotContact}
	}
	return out
}
