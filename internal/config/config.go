package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort        string
	DatabaseType      string // sqlite (default), postgres, mysql
	DatabasePath      string // sqlite only
	DatabaseURL       string // postgres/mysql only
	MigrationsPath    string
	DatasetPath       string
	PlayerTokenSecret string
	BaseURL           string
}

// Load reads configuration from environment variables with sensible
// defaults. A .env file in the working directory is applied first when
// present.
func Load() *Config {
	// Missing .env is fine; real environments set variables directly
	_ = godotenv.Load()

	return &Config{
		ServerPort:        getEnv("PORT", "8080"),
		DatabaseType:      getEnv("DB_TYPE", "sqlite"),
		DatabasePath:      getEnv("DB_PATH", "./wikiguess.db"),
		DatabaseURL:       getEnv("DB_URL", ""),
		MigrationsPath:    getEnv("MIGRATIONS_PATH", "./migrations"),
		DatasetPath:       getEnv("DATASET_PATH", "./data/puzzles.json"),
		PlayerTokenSecret: getEnv("PLAYER_TOKEN_SECRET", "dev-only-insecure-secret"),
		BaseURL:           getEnv("BASE_URL", "http://localhost:8080"),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
