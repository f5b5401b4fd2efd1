package config

import (
	"os"
	"strconv"
	"strings"

	"godrift/domain/core"
	"godrift/domain/drift"
	"godrift/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Drift    DriftConfig
	Server   ServerConfig
	Database DatabaseConfig
}

// DriftConfig holds the drift engine settings
type DriftConfig struct {
	Threshold       float64
	OutputDir       string
	ExcludedColumns []string
	ReferenceFile   string
	ProductionFile  string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port   string
	UIPort string
}

// DatabaseConfig holds the optional report-history database settings.
// History is skipped entirely when URL is empty.
type DatabaseConfig struct {
	URL string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Drift: DriftConfig{
			Threshold:       getEnvFloatOrDefault("DRIFT_THRESHOLD", drift.DefaultThreshold),
			OutputDir:       getEnvOrDefault("DRIFT_OUTPUT_DIR", "drift_reports"),
			ExcludedColumns: splitList(getEnvOrDefault("DRIFT_EXCLUDED_COLUMNS", "Exited")),
			ReferenceFile:   getEnvOrDefault("REFERENCE_FILE", "data/bank_churn.csv"),
			ProductionFile:  getEnvOrDefault("PRODUCTION_FILE", "data/production_data.csv"),
		},
		Server: ServerConfig{
			Port:   getEnvOrDefault("PORT", "8080"),
			UIPort: getEnvOrDefault("UI_PORT", "8081"),
		},
		Database: DatabaseConfig{
			URL: getEnvOrDefault("DATABASE_URL", ""),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// ExcludedSet returns the excluded columns as a lookup set.
func (c DriftConfig) ExcludedSet() map[core.FeatureName]bool {
	set := make(map[core.FeatureName]bool, len(c.ExcludedColumns))
	for _, name := range c.ExcludedColumns {
		set[core.FeatureName(name)] = true
	}
	return set
}

func validateConfig(config *Config) error {
	if err := drift.ValidateThreshold(config.Drift.Threshold); err != nil {
		return errors.ConfigInvalid("DRIFT_THRESHOLD must be in (0, 1]")
	}
	if config.Drift.OutputDir == "" {
		return errors.ConfigInvalid("DRIFT_OUTPUT_DIR is required")
	}
	return nil
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
