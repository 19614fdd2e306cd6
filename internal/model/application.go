package model

import "time"

// Application is an insurance application moving through the review
// workflow. UserID is the submitting owner; AssignedUserID is the optional
// reviewer/admin responsible for it (settable by admins only).
type Application struct {
	ID             uint                `gorm:"primarykey" json:"id"`
	Name           string              `json:"name" gorm:"not null"`
	Email          string              `json:"email" gorm:"not null;index"`
	Status         Status              `json:"status" gorm:"type:varchar(32);not null;default:'Submitted'"`
	UserID         uint                `json:"user_id" gorm:"not null;index"`
	AssignedUserID *uint               `json:"assigned_user_id" gorm:"index"`
	Answers        []ApplicationAnswer `json:"answers,omitempty" gorm:"foreignKey:ApplicationID"`
	Comments       []Comment           `json:"comments,omitempty" gorm:"foreignKey:ApplicationID"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// IsOwnerOrAssignee reports whether the given user submitted the application
// or is currently assigned to it.
func (a *Application) IsOwnerOrAssignee(userID uint) bool {
	if a.UserID == userID {
		return true
	}
	return a.AssignedUserID != nil && *a.AssignedUserID == userID
}
