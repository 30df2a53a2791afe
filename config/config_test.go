package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "from-env")
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Storage.Backend)
	assert.Equal(t, time.Hour, cfg.JWT.TTL)
	assert.Equal(t, 10*time.Minute, cfg.Redis.TTL)
	assert.False(t, cfg.Redis.Enabled)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	body := `
server:
  port: "9090"
storage:
  backend: postgres
redis:
  enabled: true
  ttl: 30s
jwt:
  secret_key: s3cret
security:
  bcrypt_cost: 4
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(body), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Storage.Backend)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Redis.TTL)
	assert.Equal(t, "s3cret", cfg.JWT.SecretKey)
	assert.Equal(t, 4, cfg.Security.BcryptCost)
}

func TestLoad_Malformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte("server: [\n"), 0o600))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_EnvWithoutFile(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "from-env")
	t.Setenv("DATABASE_USER", "ledger")
	t.Setenv("DATABASE_PASSWORD", "pw")
	t.Setenv("REDIS_PASSWORD", "redis-pw")
	t.Setenv("SERVER_PORT", "9999")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.JWT.SecretKey)
	assert.Equal(t, "ledger", cfg.Database.User)
	assert.Equal(t, "pw", cfg.Database.Password)
	assert.Equal(t, "redis-pw", cfg.Redis.Password)
	assert.Equal(t, "9999", cfg.Server.Port)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte("jwt:\n  secret_key: from-file\n"), 0o600))
	t.Setenv("JWT_SECRET_KEY", "from-env")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.JWT.SecretKey)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := Load(t.TempDir())
	assert.ErrorIs(t, err, ErrMissingJWTSecret)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte("jwt:\n  secret_key: \"  \"\n"), 0o600))
	_, err = Load(dir)
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}
