package model

import (
	"time"

	"github.com/google/uuid"
)

// AnswerOptionModel: skala jawaban ordinal 0..3 (0 = Expert, 3 = paling awam).
// Ordinal punya makna urutan — dipakai sort & histogram, bukan sekadar id.
type AnswerOptionModel struct {
	AnswerOptionID      uuid.UUID `gorm:"column:answer_option_id;type:uuid;default:gen_random_uuid();primaryKey" json:"answer_option_id"`
	AnswerOptionLabel   string    `gorm:"column:answer_option_label;size:100;not null" json:"answer_option_label"`
	AnswerOptionOrdinal int       `gorm:"column:answer_option_ordinal;not null;uniqueIndex" json:"answer_option_ordinal" validate:"min=0,max=3"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AnswerOptionModel) TableName() string {
	return "answer_options"
}
