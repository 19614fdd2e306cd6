package dto

// QuestionRequest creates or updates a registry question. Options arrives as
// the raw comma-separated string an admin types; the service normalizes it.
type QuestionRequest struct {
	Label      string `json:"label" binding:"required"`
	Key        string `json:"key" binding:"required"`
	Type       string `json:"type" binding:"required,oneof=text number textarea select"`
	Options    string `json:"options"`
	Order      int    `json:"order"`
	IsRequired bool   `json:"is_required"`
}

type QuestionResponse struct {
	ID         uint     `json:"id"`
	Key        string   `json:"key"`
	Label      string   `json:"label"`
	Type       string   `json:"type"`
	Options    []string `json:"options"`
	Order      int      `json:"order"`
	IsRequired bool     `json:"is_required"`
}
