package model

import (
	"time"

	"gorm.io/datatypes"
)

type HomileticsOutline struct {
	Id               string `gorm:"type:varchar(64);primaryKey"`
	CentralIdea      string `gorm:"type:text;not null"`
	DivisionsJson    datatypes.JSON
	ApplicationsJson datatypes.JSON
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

func (HomileticsOutline) TableName() string {
	return "homiletics"
}
