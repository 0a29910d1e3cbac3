package model

type BibleVerse struct {
	Translation string `gorm:"type:varchar(16);primaryKey"`
	Book        string `gorm:"type:varchar(64);primaryKey"`
	Chapter     int    `gorm:"primaryKey"`
	Verse       int    `gorm:"primaryKey"`
	Text        string `gorm:"type:text;not null"`
}

func (BibleVerse) TableName() string {
	return "bible_verses"
}
