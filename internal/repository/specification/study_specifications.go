package specification

import "gorm.io/gorm"

// NoteBySource filters notes by the view/workflow stage that created them.
type NoteBySource struct {
	Source string
}

func (s NoteBySource) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("source = ?", s.Source)
}

// ByChapterReference filters verse rows to one (translation, book, chapter).
type ByChapterReference struct {
	Translation string
	Book        string
	Chapter     int
}

func (s ByChapterReference) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("translation = ? AND book = ? AND chapter = ?", s.Translation, s.Book, s.Chapter)
}

// ItemBySourceId filters curation items by their originating source feed.
type ItemBySourceId struct {
	SourceId string
}

func (s ItemBySourceId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("source_id = ?", s.SourceId)
}
