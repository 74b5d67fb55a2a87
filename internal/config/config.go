package config

import (
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Port  string
	Debug bool

	// BigQuery configuration
	GCPProjectID    string
	BQDataset       string
	BQMentionsTable string

	// Firestore configuration
	FirestoreDatabase string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:  getEnv("PORT", "8080"),
		Debug: getBoolEnv("DEBUG", false),

		GCPProjectID:    getEnv("GCP_PROJECT_ID", "your-gcp-project"),
		BQDataset:       getEnv("BQ_DATASET", "your_dataset"),
		BQMentionsTable: getEnv("BQ_MENTIONS_TABLE", "mentions"),

		FirestoreDatabase: getEnv("FIRESTORE_DATABASE", "notification-system"),
	}

	return cfg, nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
