package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration, populated from the environment.
type Config struct {
	Server        ServerConfig
	Nominatim     NominatimConfig
	Timezone      TimezoneConfig
	Observability ObservabilityConfig
	Log           LogConfig
}

type ServerConfig struct {
	Addr               string
	RateLimitPerSecond int
	RateLimitBurst     int
	AllowedOrigins     []string
}

type NominatimConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

type TimezoneConfig struct {
	Endpoint string
	Timeout  time.Duration
}

type ObservabilityConfig struct {
	MetricsEnabled bool
}

type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from the environment, with an optional .env file
// for local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Addr:               envOr("SERVER_ADDR", ":8080"),
			RateLimitPerSecond: envIntOr("SERVER_RATE_LIMIT_PER_SECOND", 10),
			RateLimitBurst:     envIntOr("SERVER_RATE_LIMIT_BURST", 20),
			AllowedOrigins:     []string{envOr("SERVER_ALLOWED_ORIGIN", "http://localhost:3000")},
		},
		Nominatim: NominatimConfig{
			BaseURL:   envOr("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org"),
			UserAgent: envOr("NOMINATIM_USER_AGENT", "hearth/1.0 (https://github.com/cailurus/hearth)"),
			Timeout:   envDurationOr("NOMINATIM_TIMEOUT", 10*time.Second),
		},
		Timezone: TimezoneConfig{
			Endpoint: envOr("TIMEZONE_ENDPOINT", ""),
			Timeout:  envDurationOr("TIMEZONE_TIMEOUT", 5*time.Second),
		},
		Observability: ObservabilityConfig{
			MetricsEnabled: envBoolOr("METRICS_ENABLED", true),
		},
		Log: LogConfig{
			Level:  envOr("LOG_LEVEL", "info"),
			Format: envOr("LOG_FORMAT", "text"),
		},
	}

	if cfg.Nominatim.BaseURL == "" {
		return nil, fmt.Errorf("NOMINATIM_BASE_URL must not be empty")
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBoolOr(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
