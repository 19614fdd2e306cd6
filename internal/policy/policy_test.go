package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coverly/intake/internal/model"
)

func user(id uint, role model.Role) *model.User {
	return &model.User{ID: id, Name: "u", Role: role}
}

func app(status model.Status, ownerID uint, assignedID *uint) *model.Application {
	return &model.Application{ID: 1, Status: status, UserID: ownerID, AssignedUserID: assignedID}
}

func TestCanView(t *testing.T) {
	assigned := uint(9)

	tests := []struct {
		name string
		user *model.User
		app  *model.Application
		want bool
	}{
		{"admin sees everything", user(1, model.RoleAdmin), app(model.StatusSubmitted, 2, nil), true},
		{"reviewer sees under review", user(1, model.RoleReviewer), app(model.StatusUnderReview, 2, nil), true},
		{"reviewer sees reviewed", user(1, model.RoleReviewer), app(model.StatusReviewed, 2, nil), true},
		{"reviewer blocked from submitted", user(1, model.RoleReviewer), app(model.StatusSubmitted, 2, nil), false},
		{"reviewer blocked from approved", user(1, model.RoleReviewer), app(model.StatusApproved, 2, nil), false},
		{"assigned reviewer sees submitted", user(9, model.RoleReviewer), app(model.StatusSubmitted, 2, &assigned), true},
		{"owner sees own", user(2, model.RoleUser), app(model.StatusSubmitted, 2, nil), true},
		{"assignee sees assigned", user(9, model.RoleUser), app(model.StatusApproved, 2, &assigned), true},
		{"stranger blocked", user(3, model.RoleUser), app(model.StatusUnderReview, 2, nil), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanView(tt.user, tt.app))
		})
	}
}

func TestCanUpdate(t *testing.T) {
	tests := []struct {
		name string
		user *model.User
		app  *model.Application
		want bool
	}{
		{"admin always", user(1, model.RoleAdmin), app(model.StatusApproved, 2, nil), true},
		{"reviewer while under review", user(1, model.RoleReviewer), app(model.StatusUnderReview, 2, nil), true},
		{"reviewer blocked otherwise", user(1, model.RoleReviewer), app(model.StatusReviewed, 2, nil), false},
		{"owner during needs update", user(2, model.RoleUser), app(model.StatusNeedsUpdate, 2, nil), true},
		{"owner blocked while submitted", user(2, model.RoleUser), app(model.StatusSubmitted, 2, nil), false},
		{"owner blocked once approved", user(2, model.RoleUser), app(model.StatusApproved, 2, nil), false},
		{"stranger blocked during needs update", user(3, model.RoleUser), app(model.StatusNeedsUpdate, 2, nil), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanUpdate(tt.user, tt.app))
		})
	}
}

func TestCanUpdateIsPure(t *testing.T) {
	u := user(1, model.RoleReviewer)
	a := app(model.StatusUnderReview, 2, nil)
	first := CanUpdate(u, a)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, CanUpdate(u, a))
	}
}

func TestCanComment(t *testing.T) {
	assert.True(t, CanComment(user(1, model.RoleAdmin)))
	assert.True(t, CanComment(user(1, model.RoleReviewer)))
	assert.False(t, CanComment(user(1, model.RoleUser)))
}

func TestCanApprove(t *testing.T) {
	assert.True(t, CanApprove(user(1, model.RoleAdmin)))
	assert.False(t, CanApprove(user(1, model.RoleReviewer)))
	assert.False(t, CanApprove(user(1, model.RoleUser)))
}

func TestCanDeleteApplication(t *testing.T) {
	assert.True(t, CanDeleteApplication(user(1, model.RoleAdmin), app(model.StatusSubmitted, 2, nil)))
	assert.True(t, CanDeleteApplication(user(2, model.RoleUser), app(model.StatusSubmitted, 2, nil)))
	assert.False(t, CanDeleteApplication(user(3, model.RoleUser), app(model.StatusSubmitted, 2, nil)))
	assert.False(t, CanDeleteApplication(user(3, model.RoleReviewer), app(model.StatusUnderReview, 2, nil)))
}

func TestCanModifyComment(t *testing.T) {
	comment := &model.Comment{ID: 1, UserID: 5}
	assert.True(t, CanModifyComment(user(5, model.RoleReviewer), comment))
	assert.True(t, CanModifyComment(user(1, model.RoleAdmin), comment))
	assert.False(t, CanModifyComment(user(6, model.RoleReviewer), comment))
	assert.False(t, CanModifyComment(user(6, model.RoleUser), comment))
}
