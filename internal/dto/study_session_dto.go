package dto

import (
	"encoding/json"
	"fmt"
)

type VersePayload struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// VerseList normalizes the two verse shapes a chapter response may carry:
// an array of plain strings (verse number implied by 1-based position) or an
// array of {number, text} records. Anything that is not an array degrades to
// an empty list; an array element matching neither shape is an error.
type VerseList []VersePayload

func (v *VerseList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// Missing chapters come back with a non-array verses field; treat
		// that as absence of content, not failure.
		*v = VerseList{}
		return nil
	}

	out := make(VerseList, 0, len(raw))
	for i, item := range raw {
		var text string
		if err := json.Unmarshal(item, &text); err == nil {
			out = append(out, VersePayload{Number: i + 1, Text: text})
			continue
		}
		var record VersePayload
		if err := json.Unmarshal(item, &record); err != nil {
			return fmt.Errorf("verse %d matches neither string nor record shape: %w", i+1, err)
		}
		out = append(out, record)
	}
	*v = out
	return nil
}

type ChapterResponse struct {
	Book    string    `json:"book"`
	Chapter int       `json:"chapter"`
	Verses  VerseList `json:"verses"`
}

type HighlightPayload struct {
	Id    string `json:"id"`
	Verse int    `json:"verse"`
	Text  string `json:"text"`
	Color string `json:"color"`
}

type StudySessionPayload struct {
	Id                  string             `json:"id" validate:"required"`
	Translation         string             `json:"translation" validate:"required,oneof=ACF ARA"`
	Book                string             `json:"book" validate:"required"`
	Chapter             int                `json:"chapter" validate:"required,gt=0"`
	VerseRange          *string            `json:"verseRange,omitempty"`
	Stage               string             `json:"stage" validate:"required,oneof=observation grammar semantics theology canonical-correlation homiletics"`
	Verses              []VersePayload     `json:"verses"`
	Notes               []NotePayload      `json:"notes"`
	Highlights          []HighlightPayload `json:"highlights"`
	UnresolvedQuestions []string           `json:"unresolvedQuestions"`
	LastAccessed        string             `json:"lastAccessed" validate:"required"`
}
