package model

import "time"

type CurationSource struct {
	Id           string    `gorm:"type:varchar(64);primaryKey"`
	Name         string    `gorm:"type:varchar(128);not null"`
	Url          string    `gorm:"type:varchar(512);not null"`
	Tradition    string    `gorm:"type:varchar(64);not null"`
	MaterialType string    `gorm:"type:varchar(64);not null"`
	Frequency    string    `gorm:"type:varchar(32);not null"`
	Weight       int       `gorm:"not null"`
	Active       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (CurationSource) TableName() string {
	return "curadoria_sources"
}
