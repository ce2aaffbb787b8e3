package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/crusade-api/internal/config"
	"github.com/KirkDiggler/crusade-api/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, config.StoreSQLite, cfg.Store)
	assert.Equal(t, "crusade.db", cfg.SQLitePath)
	assert.Equal(t, config.CatalogEmbedded, cfg.Catalog)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	assert.False(t, cfg.UsesRedis())
	assert.Empty(t, cfg.OTelEndpoint)
	assert.Empty(t, cfg.AllowedOrigins)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CRUSADE_HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("CRUSADE_STORE", "redis")
	t.Setenv("CRUSADE_REDIS_ADDR", "redis:6379")
	t.Setenv("CRUSADE_CATALOG", "redis")
	t.Setenv("CRUSADE_LOG_LEVEL", "DEBUG")
	t.Setenv("CRUSADE_SHUTDOWN_TIMEOUT", "5s")
	t.Setenv("CRUSADE_ALLOWED_ORIGINS", "https://builder.example,http://localhost:3000")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr)
	assert.Equal(t, config.StoreRedis, cfg.Store)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.True(t, cfg.UsesRedis())
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"https://builder.example", "http://localhost:3000"}, cfg.AllowedOrigins)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "unknown store", key: "CRUSADE_STORE", val: "postgres"},
		{name: "unknown catalog", key: "CRUSADE_CATALOG", val: "http"},
		{name: "unknown log level", key: "CRUSADE_LOG_LEVEL", val: "chatty"},
		{name: "unparseable timeout", key: "CRUSADE_SHUTDOWN_TIMEOUT", val: "soon"},
		{name: "origin without scheme", key: "CRUSADE_ALLOWED_ORIGINS", val: "builder.example"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			_, err := config.Load()
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestValidateRequiresPaths(t *testing.T) {
	cfg := &config.Config{
		HTTPAddr:        ":8080",
		Store:           config.StoreSQLite,
		Catalog:         config.CatalogRedis,
		ShutdownTimeout: time.Second,
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SQLitePath")
	assert.Contains(t, err.Error(), "RedisAddr")
}
