package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 5555, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "memory", cfg.Session.Store)
	assert.Equal(t, "session", cfg.Session.CookieName)
	assert.Equal(t, "dev-secret", cfg.Session.Secret)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 8080
db:
  driver: postgres
  host: db.internal
  port: 5432
session:
  store: Redis
  secret: s3cret
  ttl_min: 30
ratelimit:
  rps: 0.5
  burst: 3
log:
  level: debug
  format: json
`), 0o644))
	t.Setenv("RECIPEVAULT_REDIS_ADDR", "cache:6380")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "redis", cfg.Session.Store)
	assert.Equal(t, "s3cret", cfg.Session.Secret)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr)
	assert.InDelta(t, 0.5, cfg.RateLimit.RPS, 1e-9)
	assert.Equal(t, 3, cfg.RateLimit.Burst)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestWatchReloadsOnFileChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o644))

	levels := make(chan string, 8)
	cfg, err := Watch(path, func(c *Config) {
		select {
		case levels <- c.Log.Level:
		default:
		}
	})
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)

	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case level := <-levels:
			// A write can surface as several events; the first may see a truncated file.
			if level == "debug" {
				return
			}
		case <-deadline:
			t.Fatal("config change was not delivered")
		}
	}
}
