package model

import "time"

// ApplicationAnswer holds the stored value for one (application, question)
// pair. The composite unique index backs the upsert: re-submitting a value
// for the same question overwrites instead of duplicating.
type ApplicationAnswer struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	ApplicationID uint      `json:"application_id" gorm:"not null;uniqueIndex:idx_application_question"`
	QuestionID    uint      `json:"question_id" gorm:"not null;uniqueIndex:idx_application_question"`
	Question      Question  `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	Answer        string    `json:"answer" gorm:"type:text;not null"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
