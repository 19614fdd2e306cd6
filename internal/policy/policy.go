// Package policy holds the pure authorization predicates. Every function is
// total and side-effect free: for fixed inputs it always returns the same
// boolean. A false result at the HTTP boundary becomes apperr.ErrUnauthorized.
package policy

import "github.com/coverly/intake/internal/model"

// CanView allows admins, the application's owner or assignee, and reviewers
// once the application has entered the review pipeline.
func CanView(user *model.User, app *model.Application) bool {
	switch user.Role {
	case model.RoleAdmin:
		return true
	case model.RoleReviewer:
		if app.Status == model.StatusUnderReview || app.Status == model.StatusReviewed {
			return true
		}
		return app.IsOwnerOrAssignee(user.ID)
	case model.RoleUser:
		return app.IsOwnerOrAssignee(user.ID)
	}
	return false
}

// CanUpdate allows admins always, owners/assignees with the user role only
// while the application needs an update, and reviewers only while it is
// under review.
func CanUpdate(user *model.User, app *model.Application) bool {
	switch user.Role {
	case model.RoleAdmin:
		return true
	case model.RoleReviewer:
		return app.Status == model.StatusUnderReview
	case model.RoleUser:
		return app.Status == model.StatusNeedsUpdate && app.IsOwnerOrAssignee(user.ID)
	}
	return false
}

// CanComment restricts comments to reviewers and admins.
func CanComment(user *model.User) bool {
	return user.Role.IsAdmin() || user.Role.IsReviewer()
}

// CanApprove is admin-only.
func CanApprove(user *model.User) bool {
	return user.Role.IsAdmin()
}

// CanDeleteApplication allows the owner or an admin to hard-delete.
func CanDeleteApplication(user *model.User, app *model.Application) bool {
	return user.Role.IsAdmin() || app.UserID == user.ID
}

// CanModifyComment gates both comment edit and delete: author or admin.
func CanModifyComment(user *model.User, comment *model.Comment) bool {
	return user.Role.IsAdmin() || comment.UserID == user.ID
}
