package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "skillsmap_backend/internals/features/results/results/dto"
)

func aggRow(name string, counts [4]int) *dto.AggregateRow {
	return &dto.AggregateRow{UserID: uuid.New(), Name: name, Counts: counts}
}

func TestRankAggregate_ExpertsFirst(t *testing.T) {
	rows := []*dto.AggregateRow{
		aggRow("mid", [4]int{1, 2, 0, 0}),
		aggRow("top", [4]int{3, 0, 0, 0}),
		aggRow("low", [4]int{0, 0, 1, 4}),
	}

	ranked := RankAggregate(rows, 42)
	require.Len(t, ranked, 3)
	assert.Equal(t, "top", ranked[0].Name)
	assert.Equal(t, "mid", ranked[1].Name)
	assert.Equal(t, "low", ranked[2].Name)
}

func TestRankAggregate_SecondaryBucketBreaksTie(t *testing.T) {
	rows := []*dto.AggregateRow{
		aggRow("b", [4]int{2, 1, 0, 0}),
		aggRow("a", [4]int{2, 3, 0, 0}),
	}

	ranked := RankAggregate(rows, 1)
	assert.Equal(t, "a", ranked[0].Name)
	assert.Equal(t, "b", ranked[1].Name)
}

func TestRankAggregate_StableForDistinctCounts(t *testing.T) {
	rows := []*dto.AggregateRow{
		aggRow("c", [4]int{0, 1, 0, 0}),
		aggRow("a", [4]int{5, 0, 0, 0}),
		aggRow("b", [4]int{3, 0, 0, 0}),
	}

	// counts semua beda → urutan tidak boleh tergantung seed
	first := RankAggregate(rows, 7)
	for _, seed := range []int64{11, 99, 12345} {
		again := RankAggregate(rows, seed)
		for i := range first {
			assert.Equal(t, first[i].Name, again[i].Name)
		}
	}
}

func TestRankAggregate_TiesShuffleDeterministicallyPerSeed(t *testing.T) {
	rows := []*dto.AggregateRow{
		aggRow("tie1", [4]int{1, 1, 1, 1}),
		aggRow("tie2", [4]int{1, 1, 1, 1}),
		aggRow("tie3", [4]int{1, 1, 1, 1}),
		aggRow("winner", [4]int{9, 0, 0, 0}),
	}

	// seed sama → urutan sama
	a := RankAggregate(rows, 42)
	b := RankAggregate(rows, 42)
	for i := range a {
		assert.Equal(t, a[i].Name, b[i].Name)
	}

	// yang tidak seri tetap di posisinya apapun seed-nya
	for _, seed := range []int64{1, 2, 3, 4, 5} {
		ranked := RankAggregate(rows, seed)
		assert.Equal(t, "winner", ranked[0].Name)
	}

	// anti-starvation: lintas seed, grup seri berubah urutan minimal sekali
	changed := false
	for seed := int64(1); seed <= 20 && !changed; seed++ {
		ranked := RankAggregate(rows, seed)
		if ranked[1].Name != a[1].Name {
			changed = true
		}
	}
	assert.True(t, changed, "tie order should vary across seeds")
}

func TestRankDetail_OrdinalAscendingUnknownLast(t *testing.T) {
	entries := []dto.DetailEntry{
		{Name: "novice", Answer: "3", AnswerOrdinal: 3},
		{Name: "unknown", Answer: "Unknown Answer", AnswerOrdinal: 4},
		{Name: "expert", Answer: "0", AnswerOrdinal: 0},
	}

	ranked := RankDetail(entries, 5)
	require.Len(t, ranked, 3)
	assert.Equal(t, "expert", ranked[0].Name)
	assert.Equal(t, "novice", ranked[1].Name)
	assert.Equal(t, "unknown", ranked[2].Name)
}

func TestOrdinalLegend_NeverAlphabetical(t *testing.T) {
	assert.Equal(t, []string{"0", "1", "2", "3"}, OrdinalLegend())
}
