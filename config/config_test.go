package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lifeyears.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LIFEYEARS_CONFIG", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3001, cfg.Server.Port)
	assert.Equal(t, "http://localhost:3001", cfg.Client.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Client.HealthTimeout)
	assert.Equal(t, 10*time.Second, cfg.Client.RequestTimeout)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, DefaultStorageKey, cfg.Storage.Key)
	assert.Equal(t, ":3001", cfg.Server.Addr())
}

func TestLoadFileThenEnv(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 4000
client:
  base_url: http://api.internal:4000
  request_timeout: 3s
storage:
  backend: MEMORY
dashboard:
  today: "2024-11-14"
`)
	t.Setenv("LIFEYEARS_API_BASE_URL", "http://override:9000")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, "http://override:9000", cfg.Client.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Client.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Client.HealthTimeout)
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, "2024-11-14", cfg.Dashboard.Today)
}

func TestLoadEnvPort(t *testing.T) {
	t.Setenv("LIFEYEARS_CONFIG", "")
	t.Setenv("PORT", "8088")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8088, cfg.Server.Port)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadBadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "server: [oops"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port zero", func(c *Config) { c.Server.Port = 0 }},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }},
		{"unknown backend", func(c *Config) { c.Storage.Backend = "floppy" }},
		{"postgres without dsn", func(c *Config) { c.Storage.Backend = BackendPostgres }},
		{"s3 without bucket", func(c *Config) { c.Storage.Backend = BackendS3 }},
		{"zero timeout", func(c *Config) { c.Client.RequestTimeout = 0 }},
		{"empty key", func(c *Config) { c.Storage.Key = "" }},
		{"bad today", func(c *Config) { c.Dashboard.Today = "14/11/2024" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	cfg := Default()
	assert.NoError(t, cfg.Validate())
}

func TestOpenDBSQLite(t *testing.T) {
	db, err := OpenDB(StorageConfig{Backend: BackendSQLite, DSN: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	assert.True(t, db.Migrator().HasTable("storage_entries"))

	_, err = OpenDB(StorageConfig{Backend: BackendRedis})
	assert.Error(t, err)
}
