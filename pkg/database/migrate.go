package database

import (
	"github.com/heversonalves/canon/internal/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every persisted aggregate.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.StudySession{},
		&model.Note{},
		&model.BibleVerse{},
		&model.BibleTranslation{},
		&model.HomileticsOutline{},
		&model.CurationSource{},
		&model.CurationItem{},
	)
}
