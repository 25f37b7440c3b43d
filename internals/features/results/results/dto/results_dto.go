package dto

import "github.com/google/uuid"

/* =========================================================
   SNAPSHOT INPUT
   Baris jawaban hasil join (answer + question + roles) plus
   lookup map. Service hasil laporan murni atas snapshot ini,
   tidak pegang koneksi DB.
========================================================= */

// AnswerRow: satu jawaban yang sudah di-join dengan pertanyaannya.
type AnswerRow struct {
	UserID          uuid.UUID
	QuestionID      uuid.UUID
	AnswerOptionID  uuid.UUID
	QuestionText    string
	QuestionRoleIDs []uuid.UUID
}

// UserInfo: data user yang dibutuhkan tabel laporan.
type UserInfo struct {
	Name                     string
	CommunicationPreferences []string
	RoleIDs                  []uuid.UUID
	RoleNames                []string
}

func (u UserInfo) HasRoleID(roleID uuid.UUID) bool {
	for _, id := range u.RoleIDs {
		if id == roleID {
			return true
		}
	}
	return false
}

// UserMap: userID → info. AnswerOptionMap: optionID → ordinal 0..3.
type UserMap map[uuid.UUID]UserInfo
type AnswerOptionMap map[uuid.UUID]int

// RoleNameIndex: roleID → nama tampilan. Kunci agregasi tetap UUID supaya
// dua role dengan label sama lintas versi tidak saling tabrak.
type RoleNameIndex map[uuid.UUID]string

/* =========================================================
   OUTPUT: DETAIL TABLE
========================================================= */

// DetailEntry: satu (user, jawaban) pada satu pertanyaan.
type DetailEntry struct {
	Name                     string   `json:"name"`
	CommunicationPreferences []string `json:"communication_preferences"`
	Answer                   string   `json:"answer"` // ordinal sebagai string
	AnswerOrdinal            int      `json:"answer_ordinal"`
	Roles                    []string `json:"roles"`
}

// DetailTable: roleID → teks pertanyaan → daftar entri.
type DetailTable map[uuid.UUID]map[string][]DetailEntry

/* =========================================================
   OUTPUT: AGGREGATE TABLE ("find the expert")
========================================================= */

// AggregateRow: histogram per-user dalam satu role.
// Counts[i] = jumlah jawaban user dengan ordinal == i.
type AggregateRow struct {
	UserID                   uuid.UUID `json:"user_id"`
	Name                     string    `json:"name"`
	CommunicationPreferences []string  `json:"communication_preferences"`
	Counts                   [4]int    `json:"counts"`
}

// AggregateTable: roleID → userID → baris histogram.
type AggregateTable map[uuid.UUID]map[uuid.UUID]*AggregateRow

/* =========================================================
   OUTPUT: ANONYMIZED HISTOGRAM
========================================================= */

// Histogram: groupKey (role XOR business unit) → teks pertanyaan →
// ordinal-string → count. Tanpa identitas user sama sekali.
type Histogram map[string]map[string]map[string]int
