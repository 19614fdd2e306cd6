package dto

// ApplicationRequest is used for both create and update. Field-level
// validation is done by the validation engine against the live question
// registry, not by binding tags, so that every violation comes back at once.
type ApplicationRequest struct {
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	Status         string            `json:"status"`
	AssignedUserID *uint             `json:"assigned_user_id"`
	Answers        map[string]string `json:"answers"`
}

// ApplicationSummary is the list-view shape: no answers, no comments.
type ApplicationSummary struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Status         string `json:"status"`
	UserID         uint   `json:"user_id"`
	AssignedUserID *uint  `json:"assigned_user_id"`
	CreatedAt      string `json:"created_at"`
}

// ApplicationDetail carries the answer map keyed by question key plus the
// comment thread (newest first). Stale answers for questions no longer in
// the registry are still included; the questions list drives rendering.
type ApplicationDetail struct {
	ID             uint               `json:"id"`
	Name           string             `json:"name"`
	Email          string             `json:"email"`
	Status         string             `json:"status"`
	UserID         uint               `json:"user_id"`
	AssignedUserID *uint              `json:"assigned_user_id"`
	Answers        map[string]string  `json:"answers"`
	Comments       []CommentResponse  `json:"comments"`
	Questions      []QuestionResponse `json:"questions"`
}
