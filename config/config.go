package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings read from the environment.
type Config struct {
	DBPath   string
	Port     string
	LogLevel string
}

// Load reads .env if present and builds the Config from the environment.
// A missing .env file is fine; the defaults cover local development.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		DBPath:   GetEnv("DB_PATH", "food_manager.db"),
		Port:     GetEnv("PORT", "8080"),
		LogLevel: GetEnv("LOG_LEVEL", "info"),
	}
}

// GetEnv returns the value of the environment variable key, or fallback if
// it is unset or empty.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
