package app

import (
	"os"
	"testing"

	"bankist/config"
	"bankist/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	logger.SetLevel("panic")
	os.Exit(m.Run())
}

func unreachableConfig(t *testing.T) config.Config {
	t.Helper()
	t.Setenv("JWT_SECRET_KEY", "app-test-secret")
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	cfg.Database.Host = "127.0.0.1"
	cfg.Database.Port = "1"
	cfg.Redis.Host = "127.0.0.1"
	cfg.Redis.Port = "1"
	return cfg
}

func TestRun_ReturnsStoreErrors(t *testing.T) {
	prev := config.AppConfig
	t.Cleanup(func() { config.AppConfig = prev })

	t.Run("postgres unreachable", func(t *testing.T) {
		cfg := unreachableConfig(t)
		cfg.Storage.Backend = "postgres"
		config.AppConfig = cfg

		err := run(cfg)
		assert.ErrorContains(t, err, "account store")
	})

	t.Run("redis unreachable", func(t *testing.T) {
		cfg := unreachableConfig(t)
		cfg.Redis.Enabled = true
		config.AppConfig = cfg

		err := run(cfg)
		assert.ErrorContains(t, err, "account store")
	})
}

func TestOpenStore_Memory(t *testing.T) {
	cfg := unreachableConfig(t)
	repo, cleanup, err := openStore(cfg)
	require.NoError(t, err)
	assert.NotNil(t, repo)
	cleanup()
}
