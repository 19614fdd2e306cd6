package model

import "time"

// Comment is an append-only reviewer/admin note on an application.
// Displayed newest-first with the author preloaded.
type Comment struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	ApplicationID uint      `json:"application_id" gorm:"not null;index"`
	UserID        uint      `json:"user_id" gorm:"not null;index"`
	User          User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Body          string    `json:"body" gorm:"type:text;not null"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
