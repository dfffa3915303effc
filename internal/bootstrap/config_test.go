package bootstrap

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "level %q", tt.in)
	}
}

func TestInitLogger_JSONAndLevel(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := initLogger(&buf, "warn")
	logger.Info("dropped")
	logger.Warn("kept", "rows", 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
	assert.InDelta(t, 2, entry["rows"], 0)
	assert.Same(t, logger, slog.Default())
}

func TestLoadConfig(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile(".env", []byte("JSON_INDENT=2\nCATALOG_PATH=coins.json\n"), 0o600))
	// godotenv never overrides the environment, so make sure these are unset
	// while letting t.Setenv restore them afterwards.
	for _, key := range []string{"JSON_INDENT", "CATALOG_PATH"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Setenv("LOG_LEVEL", "Debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Files.JSONIndent)
	assert.Equal(t, "coins.json", cfg.Catalog.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_WithoutDotEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("JOBS_CONFIG_PATH", "jobs.json")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "jobs.json", cfg.Files.JobsConfigPath)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains: it changes
// the working directory and restores it when the test finishes.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
