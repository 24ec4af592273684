package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.Backend)
}

func TestLoadSQLiteConfig(t *testing.T) {
	path := writeConfig(t, `
backend: sqlite
sqlite:
  path: /tmp/habits.db
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, "/tmp/habits.db", cfg.SQLite.Path)
}

func TestLoadBadgerConfig(t *testing.T) {
	path := writeConfig(t, `
backend: badger
badger:
  path: /tmp/habits-badger
  sync_writes: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendBadger, cfg.Backend)
	assert.Equal(t, "/tmp/habits-badger", cfg.Badger.Path)
	assert.True(t, cfg.Badger.SyncWrites)
}

func TestLoadRedisConfig(t *testing.T) {
	path := writeConfig(t, `
backend: redis
redis:
  addr: localhost:6379
  db: 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendRedis, cfg.Backend)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	path := writeConfig(t, "backend: cassandra\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation")
}

func TestLoadRejectsNegativeRedisDB(t *testing.T) {
	path := writeConfig(t, `
backend: redis
redis:
  addr: localhost:6379
  db: -1
`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadEmptyFileUsesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.Backend)
}

func TestEnvOverrides(t *testing.T) {
	path := writeConfig(t, "backend: memory\n")

	t.Setenv("HABITKEEP_BACKEND", "sqlite")
	t.Setenv("HABITKEEP_SQLITE_PATH", "/data/h.db")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, "/data/h.db", cfg.SQLite.Path)
}

func TestEnvOverridesApplyWithoutFile(t *testing.T) {
	t.Setenv("HABITKEEP_BACKEND", "redis")
	t.Setenv("HABITKEEP_REDIS_ADDR", "redis:6379")
	t.Setenv("HABITKEEP_REDIS_DB", "3")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, BackendRedis, cfg.Backend)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Redis.DB)
}
