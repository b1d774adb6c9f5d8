// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// RedisConfig provides settings for the Redis suggestion cache.
type RedisConfig interface {
	GetRedisURL() string
	IsRedisEnabled() bool
}

// GeocoderConfig provides settings for the external geocoding provider.
type GeocoderConfig interface {
	GetGeocoderBaseURL() string
	GetGeocoderUserAgent() string
	GetGeocoderCountryCodes() string
	GetGeocoderTimeout() time.Duration
	GetGeocoderRatePerSecond() float64
	IsGeocoderEnabled() bool
}

// SuggestConfig provides settings for the location suggestion pipeline.
type SuggestConfig interface {
	GetSuggestLimit() int
	GetSuggestMinChars() int
	GetSuggestCacheTTL() time.Duration
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                   string
	HTTPAddr              string
	DatabaseURL           string
	CORSAllowAll          bool
	CORSOrigins           []string
	CORSAllowCreds        bool
	RedisURL              string
	GeocoderBaseURL       string
	GeocoderUserAgent     string
	GeocoderCountryCodes  string
	GeocoderTimeout       time.Duration
	GeocoderRatePerSecond float64
	GeocoderEnabled       bool
	SuggestLimit          int
	SuggestMinChars       int
	SuggestCacheTTL       time.Duration
}

// =============================================================================
// Interface Implementations
// =============================================================================

// DatabaseConfig implementation
func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// RedisConfig implementation
func (c *Config) GetRedisURL() string { return c.RedisURL }
func (c *Config) IsRedisEnabled() bool {
	return c.RedisURL != ""
}

// GeocoderConfig implementation
func (c *Config) GetGeocoderBaseURL() string        { return c.GeocoderBaseURL }
func (c *Config) GetGeocoderUserAgent() string      { return c.GeocoderUserAgent }
func (c *Config) GetGeocoderCountryCodes() string   { return c.GeocoderCountryCodes }
func (c *Config) GetGeocoderTimeout() time.Duration { return c.GeocoderTimeout }
func (c *Config) GetGeocoderRatePerSecond() float64 { return c.GeocoderRatePerSecond }
func (c *Config) IsGeocoderEnabled() bool           { return c.GeocoderEnabled }

// SuggestConfig implementation
func (c *Config) GetSuggestLimit() int              { return c.SuggestLimit }
func (c *Config) GetSuggestMinChars() int           { return c.SuggestMinChars }
func (c *Config) GetSuggestCacheTTL() time.Duration { return c.SuggestCacheTTL }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                   getEnv("APP_ENV", "development"),
		HTTPAddr:              getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:           getEnv("DATABASE_URL", ""),
		CORSAllowAll:          corsAllowAll,
		CORSOrigins:           corsOrigins,
		CORSAllowCreds:        strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		RedisURL:              getEnv("REDIS_URL", ""),
		GeocoderBaseURL:       getEnv("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org"),
		GeocoderUserAgent:     getEnv("GEOCODER_USER_AGENT", "DriveFlex/1.0"),
		GeocoderCountryCodes:  getEnv("GEOCODER_COUNTRY_CODES", "us"),
		GeocoderTimeout:       mustDuration(getEnv("GEOCODER_TIMEOUT", "5s")),
		GeocoderRatePerSecond: mustFloat(getEnv("GEOCODER_RATE_PER_SECOND", "1")),
		GeocoderEnabled:       strings.EqualFold(getEnv("GEOCODER_ENABLED", "true"), "true"),
		SuggestLimit:          mustInt(getEnv("SUGGEST_LIMIT", "10")),
		SuggestMinChars:       mustInt(getEnv("SUGGEST_MIN_CHARS", "2")),
		SuggestCacheTTL:       mustDuration(getEnv("SUGGEST_CACHE_TTL", "5m")),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.GeocoderEnabled && cfg.GeocoderBaseURL == "" {
		return nil, fmt.Errorf("GEOCODER_BASE_URL is required when GEOCODER_ENABLED is true")
	}
	if cfg.SuggestLimit < 1 {
		return nil, fmt.Errorf("SUGGEST_LIMIT must be at least 1")
	}
	if cfg.SuggestMinChars < 1 {
		return nil, fmt.Errorf("SUGGEST_MIN_CHARS must be at least 1")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}

func mustFloat(value string) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return f
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}
