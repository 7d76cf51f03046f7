package main

import (
	"context"
	"log"

	"github.com/atlanteavila/trashpanda-sub000/internal/bootstrap"
	"github.com/atlanteavila/trashpanda-sub000/internal/config"
	"github.com/atlanteavila/trashpanda-sub000/internal/server"
	"github.com/atlanteavila/trashpanda-sub000/internal/tracer"
	"github.com/atlanteavila/trashpanda-sub000/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	if err := container.NotificationService.Start(context.Background()); err != nil {
		log.Printf("Background Notification Worker Error: %v", err)
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
