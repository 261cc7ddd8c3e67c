package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config carries the server settings read from the environment.
type Config struct {
	Addr string
	// LogLevel is a zerolog level name ("debug", "info", ...).
	LogLevel string
	// HazardInterval is the spawn delay at difficulty 1.0; it shrinks as the
	// difficulty ramps.
	HazardInterval time.Duration
}

// Load reads an optional .env file and the process environment, filling in
// defaults for anything unset.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Addr:           ":8000",
		LogLevel:       "info",
		HazardInterval: 3 * time.Second,
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		cfg.LogLevel = lvl
	}
	if raw := os.Getenv("HAZARD_INTERVAL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.HazardInterval = d
		}
	}
	return cfg
}
