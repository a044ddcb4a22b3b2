package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "STATIC_DIR", "LOG_LEVEL", "DB_DRIVER", "DB_PATH", "PPROF_ENABLED", "AUTH_SECRET", "AUTH_TOKEN_TTL", "CORS_ALLOW_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "dist", cfg.StaticDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, DriverMemory, cfg.Database.Driver)
	assert.Equal(t, "notes.db", cfg.Database.Path)
	assert.False(t, cfg.EnablePprof)
	assert.False(t, cfg.Auth.Enabled())
	assert.Equal(t, 72*time.Hour, cfg.Auth.TokenTTL)
	assert.Empty(t, cfg.CORSAllowOrigins)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_PATH", "/tmp/x.db")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("AUTH_SECRET", "s3cret")
	t.Setenv("AUTH_TOKEN_TTL", "15m")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/x.db", cfg.Database.Path)
	assert.True(t, cfg.EnablePprof)
	assert.True(t, cfg.Auth.Enabled())
	assert.Equal(t, 15*time.Minute, cfg.Auth.TokenTTL)
}

func TestLoadIgnoresBadValues(t *testing.T) {
	t.Setenv("PPROF_ENABLED", "maybe")
	t.Setenv("AUTH_TOKEN_TTL", "-1h")

	cfg := Load()

	assert.False(t, cfg.EnablePprof)
	assert.Equal(t, 72*time.Hour, cfg.Auth.TokenTTL)
}
