package logger

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitSetsDefaultLogger(t *testing.T) {
	Init()

	require.NotNil(t, Log)
	assert.Same(t, Log, slog.Default())
}

func TestInitRespectsDebugLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	Init()

	assert.True(t, Log.Enabled(t.Context(), slog.LevelDebug))
}
