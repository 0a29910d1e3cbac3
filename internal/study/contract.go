package study

import (
	"context"

	"github.com/heversonalves/canon/internal/entity"
)

// SessionStore is the remote persistence facade for study sessions. Each call
// is a single round trip; failures are surfaced to the caller unmodified.
type SessionStore interface {
	// GetLast returns the most recently accessed session, or nil when the
	// store holds none.
	GetLast(ctx context.Context) (*entity.StudySession, error)
	GetByID(ctx context.Context, id string) (*entity.StudySession, error)
	// Upsert creates or replaces the session keyed on its Id and returns the
	// canonical stored object.
	Upsert(ctx context.Context, session *entity.StudySession) (*entity.StudySession, error)
}

// ChapterSource fetches the ordered verse sequence for a reference. A chapter
// the source does not know degrades to an empty slice, not an error.
type ChapterSource interface {
	GetChapter(ctx context.Context, translation entity.Translation, book string, chapter int) ([]entity.Verse, error)
}

// NoteStore backs the notes side panel. It is a store parallel to the
// session's own Notes field; the two are intentionally not reconciled.
type NoteStore interface {
	List(ctx context.Context, source string) ([]entity.Note, error)
	Save(ctx context.Context, note entity.Note) (*entity.Note, error)
	Delete(ctx context.Context, id string) error
}
