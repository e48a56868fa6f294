package instrument

import (
	"fmt"
	"strings"
	"time"

	"github.com/philipp01105/pipelog/core"
	"github.com/philipp01105/pipelog/logger"
)

// Func is an operation that can be instrumented. Closures capture the
// operation's arguments.
type Func[T any] func() (T, error)

// Middleware wraps a Func with additional behavior
type Middleware[T any] func(Func[T]) Func[T]

// Wrapper is the signature shared by Logged, Timed, Monitored and
// Recovered.
type Wrapper[T any] func(log *logger.Logger, name string, fn Func[T], opts ...Option) Func[T]

// Bind fixes the logger, name and options of a wrapper so it can be used
// with Chain:
//
//	load := instrument.Chain(fetch,
//	    instrument.Bind(instrument.Recovered[[]byte], log, "fetch"),
//	    instrument.Bind(instrument.Timed[[]byte], log, "fetch"),
//	)
func Bind[T any](w Wrapper[T], log *logger.Logger, name string, opts ...Option) Middleware[T] {
	return func(fn Func[T]) Func[T] {
		return w(log, name, fn, opts...)
	}
}

// Chain applies middlewares to fn. The first middleware is the outermost
// one and runs first.
func Chain[T any](fn Func[T], mws ...Middleware[T]) Func[T] {
	for i := len(mws) - 1; i >= 0; i-- {
		fn = mws[i](fn)
	}
	return fn
}

func resolve(log *logger.Logger) *logger.Logger {
	if log == nil {
		return logger.GetGlobalLogger()
	}
	return log
}

func millis(d time.Duration) string {
	return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
}

// Logged logs each call of fn, then its result or error. A panic is
// logged and re-raised.
func Logged[T any](log *logger.Logger, name string, fn Func[T], opts ...Option) Func[T] {
	o := newOptions(core.InfoLevel, opts)
	return func() (result T, err error) {
		l := resolve(log)

		msg := o.message
		if msg == "" {
			msg = fmt.Sprintf("Calling function '%s'", name)
		}
		if len(o.args) > 0 {
			parts := make([]string, len(o.args))
			for i, a := range o.args {
				parts[i] = fmt.Sprintf("%#v", a)
			}
			msg += " with args: (" + strings.Join(parts, ", ") + ")"
		}
		l.Log(o.level, msg, logger.String("function", name))

		defer func() {
			if r := recover(); r != nil {
				l.Error(fmt.Sprintf("Function '%s' panicked: %v", name, r), logger.String("function", name))
				panic(r)
			}
		}()

		result, err = fn()
		if err != nil {
			l.Error(fmt.Sprintf("Function '%s' returned error: %v", name, err),
				logger.String("function", name), logger.Err(err))
			return result, err
		}
		if o.includeResult {
			l.Log(o.level, fmt.Sprintf("Function '%s' returned: %#v", name, result), logger.String("function", name))
		}
		return result, nil
	}
}

// Timed logs how long each call of fn took, whether it succeeded or not.
// With WithThreshold only calls at or above the threshold are logged.
func Timed[T any](log *logger.Logger, name string, fn Func[T], opts ...Option) Func[T] {
	o := newOptions(core.InfoLevel, opts)
	return func() (T, error) {
		start := time.Now()
		defer func() {
			elapsed := time.Since(start)
			if elapsed < o.threshold {
				return
			}
			resolve(log).Log(o.level,
				fmt.Sprintf("Function '%s' executed in %s", name, millis(elapsed)),
				logger.String("function", name),
				logger.Duration("duration", elapsed),
			)
		}()
		return fn()
	}
}

// Monitored writes an ENTER line before and an EXIT line with the outcome
// and duration after each call of fn. A panic is logged and re-raised.
func Monitored[T any](log *logger.Logger, name string, fn Func[T], opts ...Option) Func[T] {
	o := newOptions(core.DebugLevel, opts)
	return func() (result T, err error) {
		l := resolve(log)
		l.Log(o.level, "ENTER: "+name, logger.String("function", name))
		start := time.Now()

		defer func() {
			elapsed := time.Since(start)
			outcome := "success"
			r := recover()
			switch {
			case r != nil:
				outcome = fmt.Sprintf("panic: %v", r)
			case err != nil:
				outcome = fmt.Sprintf("error: %v", err)
			}
			l.Log(o.level, fmt.Sprintf("EXIT: %s (%s, %s)", name, outcome, millis(elapsed)),
				logger.String("function", name),
				logger.Duration("duration", elapsed),
			)
			if r != nil {
				panic(r)
			}
		}()

		return fn()
	}
}

// Recovered logs errors returned by fn and panics raised by it. By default
// both are passed on to the caller; WithReraise(false) swallows them and
// returns the zero value with a nil error.
func Recovered[T any](log *logger.Logger, name string, fn Func[T], opts ...Option) Func[T] {
	o := newOptions(core.ErrorLevel, opts)
	return func() (result T, err error) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			resolve(log).Log(o.level, fmt.Sprintf("Panic in '%s': %v", name, r), logger.String("function", name))
			if o.reraise {
				panic(r)
			}
			var zero T
			result, err = zero, nil
		}()

		result, err = fn()
		if err != nil {
			resolve(log).Log(o.level, fmt.Sprintf("Error in '%s': %v", name, err),
				logger.String("function", name), logger.Err(err))
			if !o.reraise {
				var zero T
				return zero, nil
			}
		}
		return result, err
	}
}
