package instrument

import (
	"time"

	"github.com/philipp01105/pipelog/core"
)

type options struct {
	level         core.Level
	message       string
	args          []any
	includeResult bool
	threshold     time.Duration
	reraise       bool
}

func newOptions(defaultLevel core.Level, opts []Option) options {
	o := options{
		level:         defaultLevel,
		includeResult: true,
		reraise:       true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option configures a wrapper
type Option func(*options)

// WithLevel sets the level of the wrapper's log lines. Logged and Timed
// default to INFO, Monitored to DEBUG, Recovered to ERROR.
func WithLevel(level core.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithMessage replaces the call message written by Logged
func WithMessage(msg string) Option {
	return func(o *options) {
		o.message = msg
	}
}

// WithArgs lists the arguments the wrapped closure was built with, so
// Logged can include them in the call message.
func WithArgs(args ...any) Option {
	return func(o *options) {
		o.args = args
	}
}

// WithoutResult stops Logged from writing the returned value
func WithoutResult() Option {
	return func(o *options) {
		o.includeResult = false
	}
}

// WithThreshold makes Timed log only calls that take at least d
func WithThreshold(d time.Duration) Option {
	return func(o *options) {
		o.threshold = d
	}
}

// WithReraise controls whether Recovered passes errors and panics on
// (default) or swallows them and returns the zero value.
func WithReraise(reraise bool) Option {
	return func(o *options) {
		o.reraise = reraise
	}
}
