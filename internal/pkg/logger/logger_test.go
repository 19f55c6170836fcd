package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerForwardsFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := New(zap.New(core))

	log.Debug("dispatching prompt", map[string]interface{}{"provider": "openai", "prompt_bytes": 120})
	log.Warn("config not persisted", nil)
	log.Error("provider request failed", errors.New("boom"), map[string]interface{}{"provider": "claude"})

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "openai", entries[0].ContextMap()["provider"])
	assert.EqualValues(t, 120, entries[0].ContextMap()["prompt_bytes"])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Empty(t, entries[1].Context)

	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "boom", entries[2].ContextMap()["error"])
}

func TestNewCLIQuietByDefault(t *testing.T) {
	log, err := NewCLI(false)
	require.NoError(t, err)
	assert.False(t, log.base.Core().Enabled(zapcore.ErrorLevel))

	verbose, err := NewCLI(true)
	require.NoError(t, err)
	assert.True(t, verbose.base.Core().Enabled(zapcore.DebugLevel))
}

func TestVerboseFromEnv(t *testing.T) {
	for _, value := range []string{"1", "true", "TRUE", " yes "} {
		assert.True(t, VerboseFromEnv(value), value)
	}
	for _, value := range []string{"", "0", "false", "nope"} {
		assert.False(t, VerboseFromEnv(value), value)
	}
}
