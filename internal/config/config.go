package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/multierr"
)

type Config struct {
	Port string

	// Auth
	APIKey string

	// Sessions
	SessionTTL  time.Duration
	MaxSessions int

	// Upload limits
	MaxUploadBytes int64

	// Compiled deck cache
	DeckCacheTTL time.Duration

	// Rate limiting, requests per second per server
	RateLimit float64
	RateBurst int

	// Import pagination
	ImportMaxWords int

	// Presentation config file (YAML); empty uses the built-in defaults
	PresentationConfig string
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		APIKey: os.Getenv("SLIDEDECK_API_KEY"),

		SessionTTL:  envDuration("SESSION_TTL", 1*time.Hour),
		MaxSessions: envInt("MAX_SESSIONS", 1000),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		DeckCacheTTL: envDuration("DECK_CACHE_TTL", 10*time.Minute),

		RateLimit: envFloat("RATE_LIMIT", 20),
		RateBurst: envInt("RATE_BURST", 40),

		ImportMaxWords: envInt("IMPORT_MAX_WORDS", 120),

		PresentationConfig: os.Getenv("PRESENTATION_CONFIG"),
	}

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 1 * time.Hour
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = 1000
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.DeckCacheTTL <= 0 {
		cfg.DeckCacheTTL = 10 * time.Minute
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 20
	}
	if cfg.RateBurst <= 0 {
		cfg.RateBurst = 40
	}
	if cfg.ImportMaxWords <= 0 {
		cfg.ImportMaxWords = 120
	}

	return cfg
}

// Validate reports every configuration problem at once.
func (c Config) Validate() error {
	var err error
	if c.APIKey == "" {
		err = multierr.Append(err, fmt.Errorf("SLIDEDECK_API_KEY is required"))
	}
	if p, perr := strconv.Atoi(c.Port); perr != nil || p <= 0 || p > 65535 {
		err = multierr.Append(err, fmt.Errorf("PORT %q is not a valid port", c.Port))
	}
	if c.PresentationConfig != "" {
		if _, serr := os.Stat(c.PresentationConfig); serr != nil {
			err = multierr.Append(err, fmt.Errorf("PRESENTATION_CONFIG: %w", serr))
		}
	}
	return err
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
