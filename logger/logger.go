package logger

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/philipp01105/pipelog/appender"
	"github.com/philipp01105/pipelog/core"
	"github.com/philipp01105/pipelog/formatter"
)

// Logger routes records to an ordered list of appenders. It is safe for
// concurrent use. Loggers created by With share their parent's appenders,
// level and error handler.
type Logger struct {
	name   string
	fields []core.Field
	out    *output
}

// output is the state shared between a logger and its children.
type output struct {
	level atomic.Int32

	// appenders is replaced as a whole on every change so Log can read it
	// without locking.
	appenders atomic.Pointer[[]appender.Appender]
	mu        sync.Mutex

	defaultFormatter formatter.Formatter
	onError          ErrorHandler
	stats            Stats
}

func newLogger(name string, level core.Level, f formatter.Formatter, onError ErrorHandler, fields []core.Field) *Logger {
	if f == nil {
		f = formatter.NewSimpleFormatter(formatter.Config{})
	}
	if onError == nil {
		onError = defaultErrorHandler()
	}
	out := &output{defaultFormatter: f, onError: onError}
	out.level.Store(int32(level))
	empty := []appender.Appender{}
	out.appenders.Store(&empty)

	return &Logger{name: name, fields: fields, out: out}
}

// Name returns the registry key of the logger
func (l *Logger) Name() string {
	return l.name
}

// Level returns the minimum level that is dispatched
func (l *Logger) Level() core.Level {
	return core.Level(l.out.level.Load())
}

// SetLevel changes the minimum level
func (l *Logger) SetLevel(level core.Level) {
	l.out.level.Store(int32(level))
}

// Enabled reports whether records at level would be dispatched
func (l *Logger) Enabled(level core.Level) bool {
	return level >= l.Level()
}

// DefaultFormatter returns the formatter given to appenders that have none
func (l *Logger) DefaultFormatter() formatter.Formatter {
	return l.out.defaultFormatter
}

// Stats returns a snapshot of the logger's counters
func (l *Logger) Stats() Snapshot {
	return l.out.stats.GetSnapshot()
}

// AddAppender attaches a to the end of the appender list. An appender
// without a formatter receives the logger's default formatter.
func (l *Logger) AddAppender(a appender.Appender) {
	if fa, ok := a.(appender.Formattable); ok && fa.Formatter() == nil {
		fa.SetFormatter(l.out.defaultFormatter)
	}

	l.out.mu.Lock()
	defer l.out.mu.Unlock()

	cur := *l.out.appenders.Load()
	next := make([]appender.Appender, len(cur), len(cur)+1)
	copy(next, cur)
	next = append(next, a)
	l.out.appenders.Store(&next)
}

// RemoveAppender detaches a. The appender is not closed.
func (l *Logger) RemoveAppender(a appender.Appender) error {
	l.out.mu.Lock()
	defer l.out.mu.Unlock()

	cur := *l.out.appenders.Load()
	for i, existing := range cur {
		if existing == a {
			next := make([]appender.Appender, 0, len(cur)-1)
			next = append(next, cur[:i]...)
			next = append(next, cur[i+1:]...)
			l.out.appenders.Store(&next)
			return nil
		}
	}
	return fmt.Errorf("%w: appender %s is not attached to logger %q", core.ErrNotFound, appender.NameOf(a), l.name)
}

// ClearAppenders detaches all appenders without closing them
func (l *Logger) ClearAppenders() {
	l.out.mu.Lock()
	empty := []appender.Appender{}
	l.out.appenders.Store(&empty)
	l.out.mu.Unlock()
}

// Appenders returns a copy of the appender list in dispatch order
func (l *Logger) Appenders() []appender.Appender {
	cur := *l.out.appenders.Load()
	out := make([]appender.Appender, len(cur))
	copy(out, cur)
	return out
}

// With creates a child Logger that adds fields to every record
func (l *Logger) With(fields ...core.Field) *Logger {
	newFields := make([]core.Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	return &Logger{name: l.name, fields: newFields, out: l.out}
}

// Log logs a message at the specified level
func (l *Logger) Log(level core.Level, msg string, fields ...core.Field) {
	// Level check before any allocation
	if level < l.Level() {
		return
	}
	l.dispatch(core.NewRecord(l.name, level, msg, l.fields, fields))
}

// dispatch hands rec to every appender in order. Appender failures are
// reported to the error handler and never reach the caller.
func (l *Logger) dispatch(rec *core.Record) {
	l.out.stats.IncrementLogged()
	for _, a := range *l.out.appenders.Load() {
		if err := appender.SafeAppend(a, rec); err != nil {
			l.out.stats.IncrementFailed()
			l.out.report(err)
		}
	}
}

func (o *output) report(err error) {
	defer func() {
		// A broken error handler must not break logging.
		_ = recover()
	}()
	o.onError(err)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...core.Field) {
	l.Log(core.DebugLevel, msg, fields...)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...core.Field) {
	l.Log(core.InfoLevel, msg, fields...)
}

// Warning logs a warning message
func (l *Logger) Warning(msg string, fields ...core.Field) {
	l.Log(core.WarningLevel, msg, fields...)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...core.Field) {
	l.Log(core.ErrorLevel, msg, fields...)
}

// Critical logs a critical message. Unlike a fatal log it does not exit.
func (l *Logger) Critical(msg string, fields ...core.Field) {
	l.Log(core.CriticalLevel, msg, fields...)
}

// Logf logs a formatted message at the specified level
func (l *Logger) Logf(level core.Level, format string, args ...interface{}) {
	if level < l.Level() {
		return
	}
	l.dispatch(core.NewRecord(l.name, level, fmt.Sprintf(format, args...), l.fields))
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.Logf(core.DebugLevel, format, args...)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Logf(core.InfoLevel, format, args...)
}

// Warningf logs a warning message with formatting
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Logf(core.WarningLevel, format, args...)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Logf(core.ErrorLevel, format, args...)
}

// Criticalf logs a critical message with formatting
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.Logf(core.CriticalLevel, format, args...)
}

// Flush flushes every appender that buffers writes. Errors are wrapped
// per appender and joined.
func (l *Logger) Flush() error {
	var errs []error
	for _, a := range l.Appenders() {
		if fl, ok := a.(appender.Flusher); ok {
			if err := fl.Flush(); err != nil {
				errs = append(errs, core.NewDestinationError(appender.NameOf(a), err))
			}
		}
	}
	return errors.Join(errs...)
}

// Close closes every appender and joins their errors. The logger stays
// registered.
func (l *Logger) Close() error {
	var errs []error
	for _, a := range l.Appenders() {
		if err := a.Close(); err != nil {
			errs = append(errs, core.NewDestinationError(appender.NameOf(a), err))
		}
	}
	return errors.Join(errs...)
}
