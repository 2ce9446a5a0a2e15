package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	DatabaseURL string
	RedisURL    string

	ProgressCacheTTL time.Duration

	// EstimatedEventsPerYear seeds the engine's fallback event population.
	EstimatedEventsPerYear int
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
	}

	var err error
	cfg.ProgressCacheTTL, err = time.ParseDuration(getEnv("PROGRESS_CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid PROGRESS_CACHE_TTL: %w", err)
	}

	cfg.EstimatedEventsPerYear, err = strconv.Atoi(getEnv("ESTIMATED_EVENTS_PER_YEAR", "24"))
	if err != nil {
		return nil, fmt.Errorf("invalid ESTIMATED_EVENTS_PER_YEAR: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
