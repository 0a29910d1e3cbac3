package dto

type HomileticsPayload struct {
	Id           string                   `json:"id"`
	CentralIdea  string                   `json:"central_idea" validate:"required"`
	Divisions    []map[string]interface{} `json:"divisions"`
	Applications []map[string]interface{} `json:"applications"`
}
