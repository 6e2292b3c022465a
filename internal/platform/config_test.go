package platform

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Missing File Is Empty", func(t *testing.T) {
		t.Setenv(DataDirEnv, "")
		t.Setenv(LogLevelEnv, "")

		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		assert.Equal(t, Config{}, cfg)

		lvl, err := cfg.Level()
		require.NoError(t, err)
		assert.Equal(t, slog.LevelInfo, lvl)
	})

	t.Run("YAML File", func(t *testing.T) {
		t.Setenv(DataDirEnv, "")
		t.Setenv(LogLevelEnv, "")
		path := filepath.Join(t.TempDir(), "noir.yaml")
		require.NoError(t, os.WriteFile(path, []byte("data_dir: /tmp/notes\nlog_level: debug\ndev_safety: false\nread_only: true\n"), 0644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "/tmp/notes", cfg.DataDir)
		require.NotNil(t, cfg.DevSafety)
		assert.False(t, *cfg.DevSafety)
		assert.True(t, cfg.ReadOnly)
		assert.Len(t, cfg.Options(), 2)

		lvl, err := cfg.Level()
		require.NoError(t, err)
		assert.Equal(t, slog.LevelDebug, lvl)
	})

	t.Run("Env Overrides File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "noir.yaml")
		require.NoError(t, os.WriteFile(path, []byte("data_dir: /from/file\n"), 0644))
		t.Setenv(DataDirEnv, "/from/env")
		t.Setenv(LogLevelEnv, "warn")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "/from/env", cfg.DataDir)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("Dotenv File", func(t *testing.T) {
		t.Setenv(DataDirEnv, "")
		t.Setenv(LogLevelEnv, "")
		// godotenv does not override variables that are already set, so
		// unset them for the duration of the test.
		os.Unsetenv(DataDirEnv)
		os.Unsetenv(LogLevelEnv)

		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("NOIR_DATA_DIR=/from/dotenv\nNOIR_LOG_LEVEL=error\n"), 0644))

		cfg, err := LoadConfig("", envFile, filepath.Join(t.TempDir(), "absent.env"))
		require.NoError(t, err)
		assert.Equal(t, "/from/dotenv", cfg.DataDir)

		lvl, err := cfg.Level()
		require.NoError(t, err)
		assert.Equal(t, slog.LevelError, lvl)
	})

	t.Run("Malformed YAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "noir.yaml")
		require.NoError(t, os.WriteFile(path, []byte("data_dir: [unterminated"), 0644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("Bad Level", func(t *testing.T) {
		_, err := Config{LogLevel: "loud"}.Level()
		assert.Error(t, err)
	})
}
