package model

import (
	"time"

	"gorm.io/datatypes"
)

type BibleTranslation struct {
	Id           string `gorm:"type:varchar(64);primaryKey"`
	Name         string `gorm:"type:varchar(128);not null"`
	Abbreviation string `gorm:"type:varchar(16);not null"`
	DataJson     datatypes.JSON
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (BibleTranslation) TableName() string {
	return "bible_translations"
}
