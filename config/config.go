// Package config loads environment-driven defaults for the arena
// snapshotting and logging concerns that sit around the core rating
// library: minimum rating floor, an optional Postgres DSN, and the log
// level.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"elote-go/competitor"
	"elote-go/internal/rlog"
)

// Config holds the process-wide defaults read from the environment.
type Config struct {
	// MinimumRating is the floor cmd/elotectl hands to its arena
	// factory. Library constructors such as competitor.NewElo do not read
	// it; they use competitor.DefaultMinimumRating.
	MinimumRating float64
	// PostgresDSN, when non-empty, enables arena snapshotting via
	// store.PostgresStore.
	PostgresDSN string
	// LogLevel is one of "debug"|"info"|"warn"|"error"; it gates
	// internal/rlog's Warnf output.
	LogLevel string
}

// Load reads a .env file if present (silently ignored if absent, same
// as a container that supplies real environment variables instead) and
// then layers ELOTE_-prefixed environment variables over the published
// defaults.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		MinimumRating: competitor.DefaultMinimumRating,
		PostgresDSN:   os.Getenv("ELOTE_POSTGRES_DSN"),
		LogLevel:      getenv("ELOTE_LOG_LEVEL", "info"),
	}
	if v := strings.TrimSpace(os.Getenv("ELOTE_MIN_RATING")); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.MinimumRating = f
		}
	}
	rlog.SetLevel(cfg.LogLevel)
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
