package model

type Note struct {
	Id        string  `gorm:"type:varchar(64);primaryKey"`
	Source    string  `gorm:"type:varchar(64);not null;index"`
	Content   string  `gorm:"type:text;not null"`
	Context   *string `gorm:"type:text"`
	Pinned    bool    `gorm:"not null;default:false"`
	CreatedAt string  `gorm:"type:varchar(64);not null;index"`
}

func (Note) TableName() string {
	return "notes"
}
