// file: internals/features/results/results/service/ranking_service.go
package service

import (
	"math/rand"
	"sort"
	"strconv"

	"skillsmap_backend/internals/constants"
	dto "skillsmap_backend/internals/features/results/results/dto"
)

/* =========================================================
   RANKING ENGINE
   Urutan deterministik by histogram; tie di-shuffle per call.
   Shuffle-nya anti-starvation: user yang seri tidak boleh
   menempati slot teratas terus-menerus di tiap render.
   Seed dipass per call supaya test bisa inject seed fix.
========================================================= */

// RankAggregate mengurutkan baris histogram experts-first:
// counts[0] desc, tie lanjut ke counts[1], [2], [3].
// Baris yang seri di keempat bucket diacak (seeded).
func RankAggregate(rows []*dto.AggregateRow, seed int64) []*dto.AggregateRow {
	out := make([]*dto.AggregateRow, len(rows))
	copy(out, rows)

	// Acak dulu seluruh slice, lalu stable sort: grup yang seri
	// mempertahankan urutan acaknya, yang beda counts tetap deterministik.
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })

	sort.SliceStable(out, func(i, j int) bool {
		for b := 0; b < constants.AnswerBucketCount; b++ {
			if out[i].Counts[b] != out[j].Counts[b] {
				return out[i].Counts[b] > out[j].Counts[b]
			}
		}
		return false
	})
	return out
}

// RankDetail mengurutkan entri detail by ordinal jawaban ascending
// (expert dulu); jawaban identik diacak dengan alasan yang sama.
func RankDetail(entries []dto.DetailEntry, seed int64) []dto.DetailEntry {
	out := make([]dto.DetailEntry, len(entries))
	copy(out, entries)

	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AnswerOrdinal < out[j].AnswerOrdinal
	})
	return out
}

// OrdinalLegend: legenda jawaban selalu urut ordinal 0→3,
// tidak pernah alfabetis.
func OrdinalLegend() []string {
	legend := make([]string, 0, constants.AnswerBucketCount)
	for ord := constants.AnswerOrdinalMin; ord <= constants.AnswerOrdinalMax; ord++ {
		legend = append(legend, strconv.Itoa(ord))
	}
	return legend
}
