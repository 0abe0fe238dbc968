package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := LoadConfig("")

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "SLH-2025", cfg.Pool.TicketPrefix)
		assert.Equal(t, 1000, cfg.Pool.FillerBatchSize)
		assert.Equal(t, 5, cfg.Pool.MaxClaimAttempts)
		assert.Equal(t, "@every 1m", cfg.Scheduler.ExpirySpec)
		assert.Same(t, cfg, AppConfig)
		assert.IsType(t, ServerConfig{}, cfg.App)
	})

	t.Run("YamlThenEnv", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		content := "pool:\n  ticketPrefix: LD-2026\n  fillerBatchSize: 250\nqueue:\n  claimMinIdleTime: 10s\ndatabase:\n  host: db.internal\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		t.Setenv("DB_HOST", "db.override")
		t.Setenv("REDIS_DB", "3")

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "LD-2026", cfg.Pool.TicketPrefix)
		assert.Equal(t, 250, cfg.Pool.FillerBatchSize)
		assert.Equal(t, 10*time.Second, cfg.Queue.ClaimMinIdleTime)
		assert.Equal(t, "db.override", cfg.Database.Host)
		assert.Equal(t, 3, cfg.Redis.DB)
		// 未設定的值保留預設
		assert.Equal(t, 20, cfg.Pool.TicketExpiryGraceDays)
	})

	t.Run("ExampleFile", func(t *testing.T) {
		cfg, err := LoadConfig("config.example.yaml")

		require.NoError(t, err)
		defaults := defaultConfig()
		assert.Equal(t, defaults.Pool, cfg.Pool)
		assert.Equal(t, defaults.Queue, cfg.Queue)
		assert.Equal(t, defaults.Scheduler, cfg.Scheduler)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}

func TestLoadTestConfig(t *testing.T) {
	cfg := LoadTestConfig()

	assert.Equal(t, "5433", cfg.Database.Port)
	assert.Equal(t, "test_db", cfg.Database.DBName)
	assert.Equal(t, "6380", cfg.Redis.Port)
	assert.Equal(t, "memory", cfg.Queue.Driver)
}
