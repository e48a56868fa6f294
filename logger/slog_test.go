package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/pipelog/core"
)

func TestSlogHandler_Enabled(t *testing.T) {
	var buf bytes.Buffer
	sh := NewSlogHandler(build(t, InfoLevel, &buf))
	ctx := context.Background()

	assert.False(t, sh.Enabled(ctx, slog.LevelDebug))
	assert.True(t, sh.Enabled(ctx, slog.LevelInfo))
	assert.True(t, sh.Enabled(ctx, slog.LevelWarn))
	assert.True(t, sh.Enabled(ctx, slog.LevelError))
}

func TestSlogHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	log := NewSlog(build(t, DebugLevel, &buf))

	log.Info("test message", "key", "value", "count", 42)

	output := buf.String()
	assert.Contains(t, output, "INFO]: test message")
	assert.Contains(t, output, "key=value")
	assert.Contains(t, output, "count=42")
}

func TestSlogHandler_Uint64(t *testing.T) {
	var buf bytes.Buffer
	log := NewSlog(build(t, DebugLevel, &buf))

	log.Info("sizes", slog.Uint64("small", 7), slog.Uint64("huge", 1<<63))

	output := buf.String()
	assert.Contains(t, output, "small=7")
	assert.Contains(t, output, "huge=9223372036854775808")
}

func TestSlogHandler_WithAttrsAndGroup(t *testing.T) {
	ca := &countingAppender{}
	l, err := NewRegistry().NewBuilder().SetName("slog").SetLevel(DebugLevel).AddAppender(ca).Build()
	require.NoError(t, err)

	log := NewSlog(l).With("service", "api").WithGroup("req")
	log.Warn("slow",
		"took", 2*time.Second,
		slog.Group("user", "id", 7),
		"err", errors.New("timeout"),
	)

	require.Equal(t, 1, ca.count())
	rec := ca.records[0]
	assert.Equal(t, core.WarningLevel, rec.Level)
	assert.Equal(t, "slog", rec.Logger)

	keys := make([]string, len(rec.Fields))
	for i, f := range rec.Fields {
		keys[i] = f.Key
	}
	assert.Equal(t, []string{"service", "req.took", "req.user.id", "req.err"}, keys)
	assert.Equal(t, core.DurationType, rec.Fields[1].Type)
	assert.Equal(t, core.ErrorType, rec.Fields[3].Type)
	assert.Equal(t, "timeout", rec.Fields[3].Str)
}

func TestSlogLevelToCore(t *testing.T) {
	assert.Equal(t, core.DebugLevel, slogLevelToCore(slog.LevelDebug))
	assert.Equal(t, core.InfoLevel, slogLevelToCore(slog.LevelInfo))
	assert.Equal(t, core.WarningLevel, slogLevelToCore(slog.LevelWarn))
	assert.Equal(t, core.ErrorLevel, slogLevelToCore(slog.LevelError))
	assert.Equal(t, core.CriticalLevel, slogLevelToCore(slog.LevelError+4))
}

func TestSlogHandler_LevelFiltered(t *testing.T) {
	var buf bytes.Buffer
	log := NewSlog(build(t, ErrorLevel, &buf))
	log.Info("dropped")
	assert.False(t, strings.Contains(buf.String(), "dropped"))
}
