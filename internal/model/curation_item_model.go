package model

import (
	"time"

	"gorm.io/datatypes"
)

type CurationItem struct {
	Id            string  `gorm:"type:varchar(64);primaryKey"`
	Title         string  `gorm:"type:varchar(255);not null"`
	Author        *string `gorm:"type:varchar(128)"`
	Institution   *string `gorm:"type:varchar(128)"`
	TagsJson      datatypes.JSON
	MaterialLevel string    `gorm:"type:varchar(64);not null"`
	Abstract      *string   `gorm:"type:text"`
	PublishedAt   string    `gorm:"type:varchar(64);not null;index"`
	SourceId      *string   `gorm:"type:varchar(64);index"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (CurationItem) TableName() string {
	return "curadoria_items"
}
