// Package config loads server configuration from the environment
package config

import (
	"log/slog"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/crusade-api/internal/errors"
)

// Store kinds
const (
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

// Catalog sources
const (
	CatalogEmbedded = "embedded"
	CatalogRedis    = "redis"
)

// Config is the runtime configuration of the server
type Config struct {
	HTTPAddr        string        `env:"CRUSADE_HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"CRUSADE_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	// AllowedOrigins are extra browser origins that may open a watch socket
	AllowedOrigins []string `env:"CRUSADE_ALLOWED_ORIGINS" envSeparator:","`

	Store      string `env:"CRUSADE_STORE" envDefault:"sqlite"`
	RedisAddr  string `env:"CRUSADE_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisTLS   bool   `env:"CRUSADE_REDIS_TLS"`
	SQLitePath string `env:"CRUSADE_SQLITE_PATH" envDefault:"crusade.db"`

	Catalog string `env:"CRUSADE_CATALOG" envDefault:"embedded"`

	OTelEndpoint string `env:"CRUSADE_OTEL_ENDPOINT"`
	LogLevel     string `env:"CRUSADE_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a Config and validates it
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.InvalidArgumentf("parse env: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the config for unsupported values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.HTTPAddr == "" {
		vb.RequiredField("HTTPAddr")
	}
	if !slices.Contains([]string{StoreRedis, StoreSQLite}, c.Store) {
		vb.Field("Store", "must be redis or sqlite")
	}
	if !slices.Contains([]string{CatalogEmbedded, CatalogRedis}, c.Catalog) {
		vb.Field("Catalog", "must be embedded or redis")
	}
	if c.UsesRedis() && c.RedisAddr == "" {
		vb.RequiredField("RedisAddr")
	}
	if c.Store == StoreSQLite && c.SQLitePath == "" {
		vb.RequiredField("SQLitePath")
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		vb.Field("LogLevel", "must be debug, info, warn or error")
	}
	if c.ShutdownTimeout <= 0 {
		vb.Field("ShutdownTimeout", "must be positive")
	}
	for _, origin := range c.AllowedOrigins {
		if origin == "*" {
			continue
		}
		if u, err := url.Parse(origin); err != nil || u.Scheme == "" || u.Host == "" {
			vb.Fieldf("AllowedOrigins", "%q is not an origin", origin)
		}
	}

	return vb.Build()
}

// UsesRedis reports whether any component needs a Redis connection
func (c *Config) UsesRedis() bool {
	return c.Store == StoreRedis || c.Catalog == CatalogRedis
}

// SlogLevel returns the configured log level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "", "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
