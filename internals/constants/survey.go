package constants

import "fmt"

// ==========================
// ✅ Role bawaan survei
// ==========================
const (
	// Role default yang otomatis melekat ke semua user.
	DefaultRoleName = "General"
)

// ==========================
// ✅ Skala jawaban (ordinal)
// ==========================
// 0 = paling expert, 3 = paling awam. Urutan ini dipakai untuk sorting,
// jangan pernah diperlakukan sebagai id biasa.
const (
	AnswerOrdinalExpert = 0
	AnswerOrdinalMin    = 0
	AnswerOrdinalMax    = 3
	AnswerBucketCount   = AnswerOrdinalMax - AnswerOrdinalMin + 1
)

// Label default untuk tiap ordinal (dipakai seeder).
var AnswerOrdinalLabels = map[int]string{
	0: "Expert",
	1: "Advanced",
	2: "Familiar",
	3: "No experience",
}

// ==========================
// ✅ Sentinel nilai tampilan
// ==========================
// Kontrak stabil untuk rendering: lookup yang gagal tidak boleh bikin
// aggregation error, cukup jatuh ke sentinel ini.
const (
	SentinelUnknownUser   = "Unknown User"
	SentinelUnknownAnswer = "Unknown Answer"
	SentinelDoNotContact  = "Do not contact"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}
