package logger

import (
	"context"
	"log/slog"

	"github.com/philipp01105/pipelog/core"
)

// SlogHandler adapts a Logger to slog.Handler, so pipelog can serve as the
// backend of log/slog.
type SlogHandler struct {
	logger *Logger
	attrs  []core.Field
	group  string
}

// NewSlogHandler creates a slog.Handler that logs through l
func NewSlogHandler(l *Logger) *SlogHandler {
	return &SlogHandler{logger: l}
}

// NewSlog returns a *slog.Logger backed by l
func NewSlog(l *Logger) *slog.Logger {
	return slog.New(NewSlogHandler(l))
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.logger.Enabled(slogLevelToCore(level))
}

// Handle converts a slog.Record into a record and dispatches it. Appender
// failures go to the logger's error handler, so Handle always returns nil.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	level := slogLevelToCore(record.Level)
	if !s.logger.Enabled(level) {
		return nil
	}

	fields := make([]core.Field, 0, len(s.logger.fields)+len(s.attrs)+record.NumAttrs())
	fields = append(fields, s.logger.fields...)
	fields = append(fields, s.attrs...)
	record.Attrs(func(a slog.Attr) bool {
		fields = appendAttr(fields, s.group, a)
		return true
	})

	rec := &core.Record{
		Time:    record.Time,
		Level:   level,
		Message: record.Message,
		Logger:  s.logger.name,
		Fields:  fields,
	}
	s.logger.dispatch(rec)
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]core.Field, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		newAttrs = appendAttr(newAttrs, s.group, a)
	}
	return &SlogHandler{logger: s.logger, attrs: newAttrs, group: s.group}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{logger: s.logger, attrs: s.attrs, group: newGroup}
}

// slogLevelToCore converts a slog.Level to a core.Level. Levels above
// slog.LevelError map to CRITICAL.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level > slog.LevelError:
		return core.CriticalLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarningLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// appendAttr converts a slog.Attr to fields, flattening groups into
// dotted keys.
func appendAttr(fields []core.Field, group string, a slog.Attr) []core.Field {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return fields
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + a.Key
	} else if key == "" {
		key = group
	}

	switch a.Value.Kind() {
	case slog.KindString:
		return append(fields, String(key, a.Value.String()))
	case slog.KindInt64:
		return append(fields, Int64(key, a.Value.Int64()))
	case slog.KindUint64:
		return append(fields, uint64Field(key, a.Value.Uint64()))
	case slog.KindFloat64:
		return append(fields, Float64(key, a.Value.Float64()))
	case slog.KindBool:
		return append(fields, Bool(key, a.Value.Bool()))
	case slog.KindTime:
		return append(fields, Time(key, a.Value.Time()))
	case slog.KindDuration:
		return append(fields, Duration(key, a.Value.Duration()))
	case slog.KindGroup:
		for _, ga := range a.Value.Group() {
			fields = appendAttr(fields, key, ga)
		}
		return fields
	default:
		if err, ok := a.Value.Any().(error); ok {
			return append(fields, core.Field{Key: key, Type: core.ErrorType, Str: err.Error()})
		}
		return append(fields, Any(key, a.Value.Any()))
	}
}
