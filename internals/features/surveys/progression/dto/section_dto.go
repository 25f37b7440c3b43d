package dto

import "github.com/google/uuid"

/* =========================================================
   SNAPSHOT INPUT (katalog + jawaban user)
========================================================= */

// RoleInfo: satu role di katalog survey terbaru, urutan slice = urutan katalog.
type RoleInfo struct {
	RoleID    uuid.UUID
	RoleName  string
	IsDefault bool
}

// QuestionInfo: pertanyaan katalog + role yang men-tag-nya.
type QuestionInfo struct {
	QuestionID uuid.UUID
	RoleIDs    []uuid.UUID
}

// AnswerInfo: jawaban user yang sudah di-join dengan role pertanyaannya.
type AnswerInfo struct {
	QuestionID uuid.UUID
	RoleIDs    []uuid.UUID
}

/* =========================================================
   OUTPUT
========================================================= */

// Section: status satu role untuk navigasi multi-role.
type Section struct {
	RoleID      uuid.UUID `json:"role_id"`
	Href        string    `json:"href"`
	Label       string    `json:"label"`
	IsCurrent   bool      `json:"is_current"`
	IsCompleted bool      `json:"is_completed"`
	HasStarted  bool      `json:"has_started"`
}

// ProgressionResponse: payload GET /progression.
type ProgressionResponse struct {
	Sections          []Section  `json:"sections"`
	NextSection       *Section   `json:"next_section,omitempty"`
	CompletionPercent float64    `json:"completion_percent"`
	CurrentRoleID     *uuid.UUID `json:"current_role_id,omitempty"`
}
