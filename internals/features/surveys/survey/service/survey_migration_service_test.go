package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindStrayDefaults_ExistingDefaultUnderAbsentName(t *testing.T) {
	// katalog sudah punya default "General"; payload tidak menyebut
	// "General" dan menunjuk "Basics" sebagai default → harus ditolak,
	// kalau tidak katalog punya DUA role default.
	stray := findStrayDefaults([]string{"General", "Basics"}, "Basics")
	assert.Equal(t, []string{"General"}, stray)
}

func TestFindStrayDefaults_SameDefaultNoConflict(t *testing.T) {
	stray := findStrayDefaults([]string{"General"}, "General")
	assert.Empty(t, stray)
}

func TestFindStrayDefaults_EmptyCatalog(t *testing.T) {
	// katalog kosong (survey pertama): default payload jadi satu-satunya
	assert.Empty(t, findStrayDefaults(nil, "General"))
}
