// Package instrument wraps operations with logging.
//
// Each wrapper takes a logger, a name used in the log lines, the operation
// as a func() (T, error) and options, and returns an operation with the
// same signature:
//
//	fetch := instrument.Timed(log, "fetch", func() ([]byte, error) {
//	    return client.Get(url)
//	}, instrument.WithThreshold(100*time.Millisecond))
//
// A nil logger logs through the global logger. Wrappers compose with
// Bind and Chain.
//
// Recovered decides whether a failing operation's error reaches the
// caller. This is unrelated to appender failures, which loggers always
// keep away from the caller.
package instrument
