package main

import (
	"context"
	"log"

	"notes-be/internal/bootstrap"
	"notes-be/internal/config"
	"notes-be/internal/model"
	"notes-be/internal/seeder"
	"notes-be/internal/server"
	"notes-be/internal/tracer"
	"notes-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDB(cfg.Database.Path)
	if err != nil {
		log.Panicf("Unable to open database: %v", err)
	}
	if err := model.Migrate(gormDB); err != nil {
		log.Panicf("Unable to migrate schema: %v", err)
	}

	// 3. Optional Demo Data
	if cfg.App.SeedOnStartup {
		n, err := seeder.Seed(context.Background(), gormDB)
		if err != nil {
			log.Printf("Seeding failed: %v", err)
		} else if n > 0 {
			log.Printf("Seeded %d demo notes", n)
		}
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 5. Start Audit Consumer
	if err := container.AuditService.Consume(context.Background()); err != nil {
		log.Printf("Audit consumer error: %v", err)
	}

	// 6. Initialize and Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
