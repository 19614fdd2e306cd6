package model

// Status is the application lifecycle field. Admins may set any value
// explicitly; user and reviewer edits are forced to Submitted and Reviewed
// respectively by the workflow package.
type Status string

const (
	StatusSubmitted   Status = "Submitted"
	StatusUnderReview Status = "Under Review"
	StatusReviewed    Status = "Reviewed"
	StatusApproved    Status = "Approved"
	StatusNeedsUpdate Status = "Needs Update"
)

func AllStatuses() []Status {
	return []Status{
		StatusSubmitted,
		StatusUnderReview,
		StatusReviewed,
		StatusApproved,
		StatusNeedsUpdate,
	}
}

func (s Status) IsValid() bool {
	switch s {
	case StatusSubmitted, StatusUnderReview, StatusReviewed, StatusApproved, StatusNeedsUpdate:
		return true
	}
	return false
}
