package main

import (
	"log"

	"github.com/joho/godotenv"

	"godrift/internal"
	"godrift/internal/config"
	"godrift/internal/report"
	"godrift/ui"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := internal.NewDefaultLogger()
	app := ui.NewApp(report.NewWriter(cfg.Drift.OutputDir), logger)
	if err := app.Run(ui.Config{Port: cfg.Server.UIPort}); err != nil {
		log.Fatalf("ui: %v", err)
	}
}
