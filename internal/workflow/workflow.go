// Package workflow centralizes the status override rules and assignment
// resolution so they exist in exactly one place instead of being duplicated
// per handler.
package workflow

import "github.com/coverly/intake/internal/model"

// NextStatus decides the stored status for a create or update. User edits
// always re-enter the queue as Submitted, reviewer edits always land on
// Reviewed, and admins have full authority over the five values. On create,
// current is the zero value.
func NextStatus(role model.Role, requested, current model.Status) model.Status {
	switch role {
	case model.RoleUser:
		return model.StatusSubmitted
	case model.RoleReviewer:
		return model.StatusReviewed
	case model.RoleAdmin:
		if requested.IsValid() {
			return requested
		}
	}
	if current.IsValid() {
		return current
	}
	return model.StatusSubmitted
}

// ResolveAssignee returns the assigned user id to store. Only admins may
// pick an assignee (nil clears it); everyone else is always assigned to
// themselves.
func ResolveAssignee(actor *model.User, requested *uint) *uint {
	if actor.Role.IsAdmin() {
		return requested
	}
	id := actor.ID
	return &id
}
