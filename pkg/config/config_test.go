package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("warranty-api")
	require.NoError(t, err)

	assert.Equal(t, "warranty-api", cfg.ServiceName)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30, cfg.JWT.ExpirationMinutes)
	assert.Equal(t, 100, cfg.Pagination.DefaultPageSize)
	assert.Equal(t, 1000, cfg.Pagination.MaxPageSize)
	assert.Equal(t, "warranty-api", cfg.Metrics.Prefix)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	t.Setenv("DB_CONN_MAX_LIFETIME", "30m")
	t.Setenv("DB_LOG_LEVEL", "silent")
	t.Setenv("JWT_EXPIRATION_MINUTES", "5")
	t.Setenv("METRICS_PREFIX", "custom")

	cfg, err := Load("warranty-api")
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 25, cfg.DB.MaxOpenConns)
	assert.Equal(t, 30*time.Minute, cfg.DB.ConnMaxLifetime)
	assert.Equal(t, logger.Silent, cfg.DB.LogLevel)
	assert.Equal(t, 5, cfg.JWT.ExpirationMinutes)
	assert.Equal(t, "custom", cfg.Metrics.Prefix)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("DB_MAX_IDLE_CONNS", "not-a-number")

	cfg, err := Load("warranty-api")
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.DB.MaxIdleConns)
}

func TestGetDSN(t *testing.T) {
	cfg := DBConfig{
		Host: "localhost", Port: "5432", User: "postgres",
		Password: "secret", DBName: "warranty", SSLMode: "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=secret dbname=warranty sslmode=disable",
		cfg.GetDSN())
}
