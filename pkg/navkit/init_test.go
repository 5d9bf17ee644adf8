package navkit

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWritesConfiguredLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "navkit.log")
	t.Cleanup(func() {
		Close()
		require.NoError(t, Init(Options{}))
	})

	require.NoError(t, Init(Options{LogPath: logPath, LogLevel: "warn", InternalLogLevel: "debug", LogFormat: "json"}))

	ctx := context.Background()
	assert.False(t, GetLogger().Enabled(ctx, slog.LevelInfo))
	assert.True(t, GetInternalLogger().Enabled(ctx, slog.LevelDebug))

	GetLogger().Warn("low battery", "percent", 5)
	GetInternalLogger().Debug("push", "view", "Settings")
	Close()

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"low battery"`)
	assert.Contains(t, string(data), `"component":"navkit"`)
}

func TestInitFallsBackToEnvironment(t *testing.T) {
	t.Setenv("NAVKIT_LOG_LEVEL", "error")
	t.Setenv("NAVKIT_DEBUG", "1")
	t.Cleanup(func() {
		SetLogLevel(slog.LevelInfo)
		SetInternalLogLevel(slog.LevelError)
	})

	require.NoError(t, Init(Options{}))

	ctx := context.Background()
	assert.False(t, GetLogger().Enabled(ctx, slog.LevelWarn))
	assert.True(t, GetInternalLogger().Enabled(ctx, slog.LevelDebug))
}

func TestInitReportsUnopenableLogFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	err := Init(Options{LogPath: filepath.Join(blocker, "navkit.log")})
	assert.True(t, IsConfigError(err))
	require.NoError(t, Init(Options{}))
}
