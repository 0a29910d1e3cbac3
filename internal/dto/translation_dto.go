package dto

import "encoding/json"

type TranslationUploadRequest struct {
	Id           string          `json:"id" validate:"required"`
	Name         string          `json:"name" validate:"required"`
	Abbreviation string          `json:"abbreviation" validate:"required"`
	Data         json.RawMessage `json:"data" validate:"required"`
}

type TranslationSummary struct {
	Id           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	CreatedAt    string `json:"created_at"`
}
