package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/aliskhannn/flag-quiz-bot/internal/config"
)

func TestNew(t *testing.T) {
	lg, err := New(&config.Config{Env: "local"})
	require.NoError(t, err)
	assert.True(t, lg.Core().Enabled(zapcore.DebugLevel))

	lg, err = New(&config.Config{Env: "production"})
	require.NoError(t, err)
	assert.False(t, lg.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, lg.Core().Enabled(zapcore.InfoLevel))
}

func TestNewLevelOverride(t *testing.T) {
	lg, err := New(&config.Config{Env: "production", Log: config.Log{Level: "warn"}})
	require.NoError(t, err)
	assert.False(t, lg.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, lg.Core().Enabled(zapcore.WarnLevel))

	_, err = New(&config.Config{Log: config.Log{Level: "loud"}})
	assert.Error(t, err)
}
