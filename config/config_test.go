package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestNew(t *testing.T) {
	cfg := New()
	require.False(t, cfg.Reducer.LogUnsupported)
	require.Equal(t, "debug", cfg.Reducer.UnsupportedLevel)
	require.Equal(t, "info", cfg.Logger.Level)
	require.Equal(t, "2006-01-02 15:04:05", cfg.Logger.TimestampFormat)
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
reducer:
  log_unsupported: true
  unsupported_level: warn
logger:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.True(t, cfg.Reducer.LogUnsupported)
	require.Equal(t, "warn", cfg.Reducer.UnsupportedLevel)
	require.Equal(t, "debug", cfg.Logger.Level)
	require.Equal(t, "2006-01-02 15:04:05", cfg.Logger.TimestampFormat)
}

func TestLoadInvalidLevel(t *testing.T) {
	path := writeConfig(t, "logger:\n  level: loud\n")

	_, err := Load(path)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidLevel))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, "reducer: [1, 2\n")

	_, err := Load(path)
	require.Error(t, err)
}
