package main

import (
	"context"
	"log"

	"github.com/heversonalves/canon/internal/bootstrap"
	"github.com/heversonalves/canon/internal/config"
	"github.com/heversonalves/canon/internal/server"
	"github.com/heversonalves/canon/internal/tracer"
	"github.com/heversonalves/canon/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDB(cfg.Database)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}
	if err := database.Migrate(gormDB); err != nil {
		log.Panicf("Unable to migrate schema: %v", err)
	}
	if cfg.Database.SeedOnStart {
		if n, err := database.SeedDefaultVerses(gormDB); err != nil {
			log.Panicf("Unable to seed default verses: %v", err)
		} else if n > 0 {
			log.Printf("Seeded %d default verses", n)
		}
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
