package dto

type CommentRequest struct {
	Body string `json:"body"`
}

type CommentUser struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type CommentResponse struct {
	ID        uint        `json:"id"`
	Body      string      `json:"body"`
	User      CommentUser `json:"user"`
	CreatedAt string      `json:"created_at"`
	UpdatedAt string      `json:"updated_at"`
}
