package logging

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"personapilot/internal/config"
)

func TestNewDefaults(t *testing.T) {
	logger, err := New(config.LoggingConfig{Level: "info"})
	require.NoError(t, err)
	defer logger.Sync()

	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewUnknownLevelFallsBack(t *testing.T) {
	logger, err := New(config.LoggingConfig{Level: "shouty"})
	require.NoError(t, err)
	defer logger.Sync()

	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
}

func TestNewDebugMode(t *testing.T) {
	logger, err := New(config.LoggingConfig{Level: "warn", Debug: true})
	require.NoError(t, err)
	defer logger.Sync()

	// Debug mode wins over a higher configured level.
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewFileSink(t *testing.T) {
	file := filepath.Join(t.TempDir(), "app.log")
	logger, err := New(config.LoggingConfig{Level: "info", File: file})
	require.NoError(t, err)

	logger.Info("hello")
	_ = logger.Sync()

	assert.FileExists(t, file)
}
