package entity

import (
	"testing"
)

func TestStudyStageOrdinal(t *testing.T) {
	tests := []struct {
		stage StudyStage
		want  int
	}{
		{StageObservation, 0},
		{StageGrammar, 1},
		{StageSemantics, 2},
		{StageTheology, 3},
		{StageCanonicalCorrelation, 4},
		{StageHomiletics, 5},
		{StudyStage("exegesis"), -1},
		{StudyStage(""), -1},
	}

	for _, tt := range tests {
		t.Run(string(tt.stage), func(t *testing.T) {
			if got := tt.stage.Ordinal(); got != tt.want {
				t.Errorf("Ordinal() = %d, want %d", got, tt.want)
			}
			if got := tt.stage.Valid(); got != (tt.want >= 0) {
				t.Errorf("Valid() = %v, want %v", got, tt.want >= 0)
			}
		})
	}
}

func TestCanAccessStage(t *testing.T) {
	tests := []struct {
		name    string
		current StudyStage
		target  StudyStage
		want    bool
	}{
		{"same stage", StageObservation, StageObservation, true},
		{"earlier stage", StageTheology, StageGrammar, true},
		{"first stage always open", StageHomiletics, StageObservation, true},
		{"next stage locked", StageObservation, StageGrammar, false},
		{"homiletics locked from theology", StageTheology, StageHomiletics, false},
		{"last stage opens everything", StageHomiletics, StageCanonicalCorrelation, true},
		{"unknown current", StudyStage("exegesis"), StageObservation, false},
		{"unknown target", StageHomiletics, StudyStage("exegesis"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAccessStage(tt.current, tt.target); got != tt.want {
				t.Errorf("CanAccessStage(%s, %s) = %v, want %v", tt.current, tt.target, got, tt.want)
			}
		})
	}
}

func TestCanAccessStageCoversWholeOrder(t *testing.T) {
	// For every current stage, everything at or before it is open and
	// everything strictly after it is locked.
	for ci, current := range StageOrder {
		for ti, target := range StageOrder {
			want := ti <= ci
			if got := CanAccessStage(current, target); got != want {
				t.Errorf("CanAccessStage(%s, %s) = %v, want %v", current, target, got, want)
			}
		}
	}
}

func TestStudySessionClone(t *testing.T) {
	ctx := "margin"
	original := &StudySession{
		Id:          "session-1",
		Translation: TranslationACF,
		Book:        "Romans",
		Chapter:     3,
		Stage:       StageGrammar,
		Verses:      []Verse{{Number: 21, Text: "Mas agora se manifestou"}},
		Notes:       []Note{{Id: "n1", Source: "observation", Content: "first", Context: &ctx}},
		Highlights:  []Highlight{{Id: "hl1", Verse: 21, Text: "justiça", Color: "yellow"}},
	}

	clone := original.Clone()
	clone.Verses[0].Text = "changed"
	clone.Notes = append(clone.Notes, Note{Id: "n2"})
	clone.Highlights[0].Color = "green"

	if original.Verses[0].Text != "Mas agora se manifestou" {
		t.Error("Clone shares the verses slice with the original")
	}
	if len(original.Notes) != 1 {
		t.Error("Clone shares the notes slice with the original")
	}
	if original.Highlights[0].Color != "yellow" {
		t.Error("Clone shares the highlights slice with the original")
	}

	var nilSession *StudySession
	if nilSession.Clone() != nil {
		t.Error("Clone of nil session should be nil")
	}
}
