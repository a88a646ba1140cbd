package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())

	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, int32(25), cfg.Database.MaxConns)
	assert.Equal(t, "ns-stores", cfg.JWT.Issuer)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessTokenTTL)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte("server:\n  port: \"9090\"\ndatabase:\n  dsn: postgres://localhost/ns_stores\nlog:\n  level: debug\n")
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o644))

	cfg, err := Load(dir)

	assert.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "postgres://localhost/ns_stores", cfg.Database.DSN)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte("database:\n  dsn: postgres://localhost/from_file\n")
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o644))

	t.Setenv("DATABASE_DSN", "postgres://localhost/from_env")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := Load(dir)

	assert.NoError(t, err)
	assert.Equal(t, "postgres://localhost/from_env", cfg.Database.DSN)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
}
