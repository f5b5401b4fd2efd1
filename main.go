package main

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"godrift/adapters/postgres"
	"godrift/adapters/stats/comparators"
	"godrift/adapters/tabular"
	"godrift/api"
	"godrift/app"
	"godrift/internal"
	"godrift/internal/config"
	"godrift/internal/report"
	"godrift/ports"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := internal.NewDefaultLogger()
	writer := report.NewWriter(cfg.Drift.OutputDir)

	var history ports.CheckHistory
	if cfg.Database.URL != "" {
		db, err := sqlx.Connect("postgres", cfg.Database.URL)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		impl := postgres.NewCheckHistory(db)
		if err := impl.EnsureSchema(context.Background()); err != nil {
			log.Fatalf("database: %v", err)
		}
		history = impl
		logger.Info("check history enabled")
	}

	service := app.NewDriftService(
		cfg.Drift,
		func(path string) ports.TableReader { return tabular.NewReader(path) },
		comparators.NewRegistry(),
		writer,
		history,
		logger,
	)

	server := api.NewServer(service, writer, history, logger)
	if err := server.Run(cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
