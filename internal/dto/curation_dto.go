package dto

type CurationSourcePayload struct {
	Id           string `json:"id" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Url          string `json:"url" validate:"required"`
	Tradition    string `json:"tradition" validate:"required"`
	MaterialType string `json:"material_type" validate:"required"`
	Frequency    string `json:"frequency" validate:"required"`
	Weight       int    `json:"weight"`
	Active       bool   `json:"active"`
}

type CurationItemPayload struct {
	Id            string   `json:"id" validate:"required"`
	Title         string   `json:"title" validate:"required"`
	Author        *string  `json:"author,omitempty"`
	Institution   *string  `json:"institution,omitempty"`
	Tags          []string `json:"tags"`
	MaterialLevel string   `json:"material_level" validate:"required"`
	Abstract      *string  `json:"abstract,omitempty"`
	PublishedAt   string   `json:"published_at" validate:"required"`
	SourceId      *string  `json:"source_id,omitempty"`
}
