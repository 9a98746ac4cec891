// Package config reads RIVERS' environment-variable configuration. None of
// the four required snapshot sources (§6.2) are required here — a
// deployment may run entirely off a CSV directory with no database or
// cache configured at all.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all engine configuration.
type Config struct {
	Environment string

	// DatabaseURL, when set, points snapshot.LoadFromPostgres at a
	// Postgres instance holding the four snapshot collections.
	DatabaseURL string

	// RedisURL, when set, enables internal/predictioncache.
	RedisURL string

	// WeatherAPIKey is unused by the scoring core; it exists for an
	// external weather-ingestion collaborator (out of scope per spec §1)
	// to populate domain.WeatherContext values before a request is made.
	WeatherAPIKey string

	// SnapshotCSVDir, when set, points snapshot.LoadFromCSV at a directory
	// of plays.csv / injuries.csv / team_grades.csv / player_grades.csv.
	SnapshotCSVDir string

	DBMaxConns int32
	DBMinConns int32
}

// LoadConfig reads configuration from environment variables, panicking on
// failure. Convenience wrapper for callers (cmd/predict) that have no
// sensible recovery path from a misconfigured environment.
func LoadConfig() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// Load reads configuration from environment variables. At least one of
// DatabaseURL or SnapshotCSVDir must be set, since the engine needs some
// way to populate a snapshot.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Environment:    getEnv("ENVIRONMENT", "development"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		RedisURL:       getEnv("REDIS_URL", ""),
		WeatherAPIKey:  getEnv("WEATHER_API_KEY", ""),
		SnapshotCSVDir: getEnv("SNAPSHOT_CSV_DIR", ""),
		DBMaxConns:     int32(getEnvInt("DB_MAX_CONNS", 25)),
		DBMinConns:     int32(getEnvInt("DB_MIN_CONNS", 5)),
	}

	if cfg.DatabaseURL == "" && cfg.SnapshotCSVDir == "" {
		return nil, fmt.Errorf("one of DATABASE_URL or SNAPSHOT_CSV_DIR is required")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
