package dto

type NotePayload struct {
	Id        string  `json:"id"`
	Source    string  `json:"source" validate:"required"`
	Content   string  `json:"content" validate:"required"`
	Context   *string `json:"context,omitempty"`
	Pinned    bool    `json:"pinned"`
	CreatedAt *string `json:"created_at,omitempty"`
}

type DeleteNoteResponse struct {
	Status string `json:"status"`
}
