package logger

import (
	"fmt"

	"github.com/philipp01105/pipelog/appender"
	"github.com/philipp01105/pipelog/core"
	"github.com/philipp01105/pipelog/formatter"
)

// Builder provides a fluent API for building Logger instances. A built
// Logger is registered in the builder's registry under its name.
type Builder struct {
	registry  *Registry
	name      string
	level     core.Level
	formatter formatter.Formatter
	appenders []appender.Appender
	fields    []core.Field
	onError   ErrorHandler
}

// NewBuilder creates a builder that registers into the global registry
func NewBuilder() *Builder {
	return Global().NewBuilder()
}

// SetName sets the registry key of the logger (required)
func (b *Builder) SetName(name string) *Builder {
	b.name = name
	return b
}

// SetLevel sets the minimum level (default: INFO)
func (b *Builder) SetLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// SetFormatter sets the default formatter for appenders that have none
// (default: SimpleFormatter)
func (b *Builder) SetFormatter(f formatter.Formatter) *Builder {
	b.formatter = f
	return b
}

// AddAppender adds an appender; appenders receive records in the order
// they were added
func (b *Builder) AddAppender(a appender.Appender) *Builder {
	b.appenders = append(b.appenders, a)
	return b
}

// SetErrorHandler sets the receiver of appender failures (default: a zap
// logger on stderr)
func (b *Builder) SetErrorHandler(h ErrorHandler) *Builder {
	b.onError = h
	return b
}

// WithFields adds default fields to all records of the logger
func (b *Builder) WithFields(fields ...core.Field) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// Build creates the Logger and registers it, replacing any logger
// previously registered under the same name.
func (b *Builder) Build() (*Logger, error) {
	if b.name == "" {
		return nil, fmt.Errorf("%w: logger name must be set", core.ErrConfiguration)
	}
	if !b.level.Valid() {
		return nil, fmt.Errorf("%w: invalid level %d", core.ErrConfiguration, b.level)
	}

	fields := make([]core.Field, len(b.fields))
	copy(fields, b.fields)

	l := newLogger(b.name, b.level, b.formatter, b.onError, fields)
	for _, a := range b.appenders {
		l.AddAppender(a)
	}

	b.registry.Register(l)
	return l, nil
}
