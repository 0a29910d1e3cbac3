package contract

import (
	"context"

	"github.com/heversonalves/canon/internal/entity"
)

type BibleVerseRepository interface {
	// FindChapter returns the verse rows of one chapter ordered by verse
	// number ascending; empty when the chapter is not seeded.
	FindChapter(ctx context.Context, translation, book string, chapter int) ([]*entity.BibleVerse, error)
	CreateBatch(ctx context.Context, verses []*entity.BibleVerse) error
	Count(ctx context.Context, translation string) (int64, error)
}
