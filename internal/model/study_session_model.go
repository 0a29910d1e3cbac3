package model

import "gorm.io/datatypes"

type StudySession struct {
	Id                      string  `gorm:"type:varchar(64);primaryKey"`
	Translation             string  `gorm:"type:varchar(8);not null"`
	Book                    string  `gorm:"type:varchar(64);not null"`
	Chapter                 int     `gorm:"not null"`
	VerseRange              *string `gorm:"type:varchar(32)"`
	Stage                   string  `gorm:"type:varchar(32);not null"`
	VersesJson              datatypes.JSON
	NotesJson               datatypes.JSON
	HighlightsJson          datatypes.JSON
	UnresolvedQuestionsJson datatypes.JSON
	LastAccessed            string `gorm:"type:varchar(64);not null;index"`
}

func (StudySession) TableName() string {
	return "study_sessions"
}
