package dto

import (
	"encoding/json"
	"testing"
)

func TestVerseListUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []VersePayload
		wantErr bool
	}{
		{
			name:  "record shape",
			input: `[{"number": 21, "text": "Mas agora"}, {"number": 22, "text": "Isto é"}]`,
			want:  []VersePayload{{21, "Mas agora"}, {22, "Isto é"}},
		},
		{
			name:  "string shape gets positional numbers",
			input: `["No princípio", "E a terra era sem forma"]`,
			want:  []VersePayload{{1, "No princípio"}, {2, "E a terra era sem forma"}},
		},
		{
			name:  "mixed shapes",
			input: `["No princípio", {"number": 2, "text": "E a terra"}]`,
			want:  []VersePayload{{1, "No princípio"}, {2, "E a terra"}},
		},
		{
			name:  "empty array",
			input: `[]`,
			want:  []VersePayload{},
		},
		{
			name:  "non-array degrades to empty",
			input: `null`,
			want:  []VersePayload{},
		},
		{
			name:  "object degrades to empty",
			input: `{"21": "Mas agora"}`,
			want:  []VersePayload{},
		},
		{
			name:    "element of neither shape",
			input:   `[42]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got VerseList
			err := json.Unmarshal([]byte(tt.input), &got)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(got) != len(tt.want) {
				t.Fatalf("got %d verses, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("verse %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestChapterResponseUnmarshal(t *testing.T) {
	raw := `{"book": "Romans", "chapter": 3, "verses": ["a", "b", "c"]}`

	var resp ChapterResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Book != "Romans" || resp.Chapter != 3 {
		t.Errorf("reference = %s %d, want Romans 3", resp.Book, resp.Chapter)
	}
	if len(resp.Verses) != 3 || resp.Verses[2].Number != 3 {
		t.Errorf("verses = %+v, want three positionally numbered verses", resp.Verses)
	}
}
