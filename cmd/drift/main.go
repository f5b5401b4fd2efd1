package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"godrift/adapters/stats/comparators"
	"godrift/adapters/tabular"
	"godrift/app"
	"godrift/internal"
	"godrift/internal/config"
	"godrift/internal/report"
	"godrift/ports"
)

// One-shot drift check from the command line. Exits nonzero on fatal errors
// and on HIGH risk so it can gate a pipeline.
func main() {
	referencePath := flag.String("reference", "", "reference dataset (csv or xlsx); defaults to REFERENCE_FILE")
	productionPath := flag.String("production", "", "production dataset (csv or xlsx); defaults to PRODUCTION_FILE")
	threshold := flag.Float64("threshold", 0, "p-value drift cutoff in (0, 1]; defaults to DRIFT_THRESHOLD")
	strictSchema := flag.Bool("strict-schema", false, "fail when the datasets share no comparable columns")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ref := *referencePath
	if ref == "" {
		ref = cfg.Drift.ReferenceFile
	}
	prod := *productionPath
	if prod == "" {
		prod = cfg.Drift.ProductionFile
	}

	logger := internal.NewDefaultLogger()
	service := app.NewDriftService(
		cfg.Drift,
		func(path string) ports.TableReader { return tabular.NewReader(path) },
		comparators.NewRegistry(),
		report.NewWriter(cfg.Drift.OutputDir),
		nil,
		logger,
	)

	result, err := service.RunCheck(context.Background(), app.CheckRequest{
		ReferencePath:  ref,
		ProductionPath: prod,
		Threshold:      *threshold,
		StrictSchema:   *strictSchema,
	})
	if err != nil && result == nil {
		log.Fatalf("drift check failed: %v", err)
	}
	if err != nil {
		logger.Warn("report not persisted: %v", err)
	}

	a := result.Assessment
	fmt.Printf("features analyzed: %d\n", a.TotalFeatures)
	fmt.Printf("features drifted:  %d (%.2f%%)\n", a.DriftedCount, a.DriftPercentage)
	fmt.Printf("risk level:        %s\n", a.RiskLevel)
	if result.ArtifactPath != "" {
		fmt.Printf("report:            %s\n", result.ArtifactPath)
	}

	if a.RiskLevel == "HIGH" {
		os.Exit(2)
	}
}
