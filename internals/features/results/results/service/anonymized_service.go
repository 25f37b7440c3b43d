// file: internals/features/results/results/service/anonymized_service.go
package service

import (
	"errors"
	"strconv"

	"github.com/google/uuid"

	"skillsmap_backend/internals/constants"
	dto "skillsmap_backend/internals/features/results/results/dto"
)

/* =========================================================
   ANONYMIZED HISTOGRAM BUILDER
   Cube counts-only: groupKey → pertanyaan → ordinal → count.
   Filter wajib tepat satu (role XOR business unit).
========================================================= */

// ErrAmbiguousFilter: role dan business unit diisi dua-duanya.
var ErrAmbiguousFilter = errors.New("pilih salah satu filter: role atau business unit, bukan keduanya")

type HistogramFilter struct {
	RoleID         *uuid.UUID
	BusinessUnitID *uuid.UUID
}

// BuildAnonymizedHistogram menghitung distribusi jawaban tanpa identitas.
// Baris input sudah dibatasi caller sesuai filter (query by role / by unit);
// fungsi ini menjaga kontraknya:
//   - dua filter sekaligus → ErrAmbiguousFilter (tolak eksplisit);
//   - tanpa filter → histogram kosong. Tidak ada view "semua" global,
//     supaya grup kecil tidak gampang di-reidentifikasi.
func BuildAnonymizedHistogram(rows []dto.AnswerRow, options dto.AnswerOptionMap, f HistogramFilter) (dto.Histogram, error) {
	if f.RoleID != nil && f.BusinessUnitID != nil {
		return nil, ErrAmbiguousFilter
	}

	hist := make(dto.Histogram)
	if f.RoleID == nil && f.BusinessUnitID == nil {
		return hist, nil
	}

	groupKey := ""
	if f.RoleID != nil {
		groupKey = f.RoleID.String()
	} else {
		groupKey = f.BusinessUnitID.String()
	}

	for _, row := range rows {
		ordinalKey := constants.SentinelUnknownAnswer
		if ord, ok := options[row.AnswerOptionID]; ok {
			ordinalKey = strconv.Itoa(ord)
		}

		byQuestion, ok := hist[groupKey]
		if !ok {
			byQuestion = make(map[string]map[string]int)
			hist[groupKey] = byQuestion
		}
		byOrdinal, ok := byQuestion[row.QuestionText]
		if !ok {
			byOrdinal = make(map[string]int)
			byQuestion[row.QuestionText] = byOrdinal
		}
		byOrdinal[ordinalKey]++
	}

	return hist, nil
}
