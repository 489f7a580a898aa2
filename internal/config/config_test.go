package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"HTTP_ADDR", "APP_ENV", "LOG_LEVEL", "SHUTDOWN_TIMEOUT",
		"DB_DRIVER", "DATABASE_URL", "SQLITE_PATH", "DB_MAX_CONNS", "DB_CONNECT_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, ":8000", cfg.HTTPAddr)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "./test.db", cfg.SQLitePath)
	assert.Equal(t, int32(10), cfg.DBMaxConns)
	assert.Equal(t, 5*time.Second, cfg.DBConnectTimeout)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("APP_ENV", "Development")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/clients")
	t.Setenv("DB_MAX_CONNS", "4")
	t.Setenv("DB_CONNECT_TIMEOUT", "250ms")
	t.Setenv("SHUTDOWN_TIMEOUT", "1m")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "postgres://u:p@db:5432/clients", cfg.DatabaseURL)
	assert.Equal(t, int32(4), cfg.DBMaxConns)
	assert.Equal(t, 250*time.Millisecond, cfg.DBConnectTimeout)
	assert.Equal(t, time.Minute, cfg.ShutdownTimeout)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "-3")
	t.Setenv("DB_CONNECT_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, int32(10), cfg.DBMaxConns)
	assert.Equal(t, 5*time.Second, cfg.DBConnectTimeout)
}
