package main

import (
	"log"

	"github.com/heversonalves/canon/internal/config"
	"github.com/heversonalves/canon/pkg/database"

	"github.com/fatih/color"
)

// Seeds the configured database with the bundled ACF passages so a fresh
// install has readable chapters before any translation upload.
func main() {
	cfg := config.Load()

	db, err := database.NewGormDB(cfg.Database)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Unable to migrate schema: %v", err)
	}

	n, err := database.SeedDefaultVerses(db)
	if err != nil {
		log.Fatalf("Unable to seed verses: %v", err)
	}

	if n == 0 {
		color.Yellow("ACF verses already present, nothing to do")
		return
	}
	color.Green("Seeded %d ACF verses (Romans 3, Genesis 1)", n)
}
