package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures the runtime configuration for the VideoBase backend service.
type Config struct {
	AppPort        int
	DatabaseURL    string
	TokenSecret    string
	SessionTTL     time.Duration
	PlaybackTTL    time.Duration
	DashboardLimit int
	CORSOrigins    []string
	LogLevel       string
}

// Load reads configuration from environment variables, applying sensible
// defaults for local development. The token signing secret has no default: a
// deployment that forgets to set one must fail to start rather than sign
// credentials with a known value.
func Load() (Config, error) {
	cfg := Config{
		AppPort:        getInt("VIDEOBASE_PORT", 8080),
		DatabaseURL:    getString("VIDEOBASE_DATABASE_URL", ""),
		TokenSecret:    getString("VIDEOBASE_JWT_SECRET", ""),
		SessionTTL:     getDuration("VIDEOBASE_SESSION_TTL", 24*time.Hour),
		PlaybackTTL:    getDuration("VIDEOBASE_PLAYBACK_TTL", time.Hour),
		DashboardLimit: getInt("VIDEOBASE_DASHBOARD_LIMIT", 2),
		CORSOrigins:    getList("VIDEOBASE_CORS_ORIGINS", []string{"*"}),
		LogLevel:       getString("VIDEOBASE_LOG_LEVEL", "info"),
	}

	if cfg.TokenSecret == "" {
		return Config{}, errors.New("config: VIDEOBASE_JWT_SECRET must be set")
	}

	return cfg, nil
}

func getString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return i
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}

func getList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return fallback
	}
	return items
}
