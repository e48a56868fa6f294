package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/philipp01105/pipelog/core"
)

func TestZapErrorHandler(t *testing.T) {
	obs, logs := observer.New(zapcore.WarnLevel)
	h := NewZapErrorHandler(zap.New(obs))

	h(core.NewDestinationError("file:/tmp/app.log", errors.New("disk full")))
	h(errors.New("plain"))

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	assert.Equal(t, "appender failed", entries[0].Message)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "file:/tmp/app.log", ctx["appender"])
	assert.Equal(t, "disk full", ctx["cause"])

	assert.Equal(t, "plain", entries[1].ContextMap()["error"])
}

func TestDefaultErrorHandler(t *testing.T) {
	assert.NotNil(t, defaultErrorHandler())
	assert.NotPanics(t, func() { DiscardErrors(errors.New("ignored")) })
}
