package entity

import "time"

// BibleVerse is one canonical verse row of a seeded translation.
type BibleVerse struct {
	Translation string
	Book        string
	Chapter     int
	Verse       int
	Text        string
}

// BibleTranslation is an uploaded translation package: the raw book/chapter
// tree is kept verbatim as JSON because upload shapes vary (see the bible
// service's tree resolution).
type BibleTranslation struct {
	Id           string
	Name         string
	Abbreviation string
	Data         []byte
	CreatedAt    time.Time
}
