package config

import (
	"os"
	"time"
)

// Config holds the runtime configuration, read once at startup.
type Config struct {
	Port            string
	DBPath          string
	DataPath        string
	MigrationsPath  string
	RateLimit       int
	RateLimitWindow time.Duration
}

// Load reads configuration from the environment, falling back to defaults
// suitable for running next to the bundled dataset.
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/geochem.db"
	}

	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = "./data/df_transicion.csv"
	}

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "./migrations"
	}

	return &Config{
		Port:            port,
		DBPath:          dbPath,
		DataPath:        dataPath,
		MigrationsPath:  migrationsPath,
		RateLimit:       120,
		RateLimitWindow: time.Minute,
	}
}
