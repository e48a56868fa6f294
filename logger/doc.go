// Package logger is the public API of pipelog. Most users only need to
// import this package.
//
// A Logger has a name, a minimum level and an ordered list of appenders.
// Each log call at or above the minimum level creates one record and hands
// it to every appender in turn. Appender failures, including panics, are
// reported to the logger's ErrorHandler and never reach the caller.
//
// The package-level functions Info, Error, Debugf, etc. delegate to the
// global logger, which is created on first use (console, SimpleFormatter,
// INFO level), so simple programs can log without any setup:
//
//	logger.Info("ready", logger.Int("port", 8080))
//
// For custom configuration, use the Builder. A built logger is registered
// under its name, replacing any earlier logger of the same name:
//
//	log, err := logger.NewBuilder().
//	    SetName("api").
//	    SetLevel(logger.DebugLevel).
//	    SetFormatter(formatter.NewJSONFormatter(formatter.Config{})).
//	    AddAppender(fileAppender).
//	    Build()
//
// Loggers can also be built from a Config value, which is what the config
// package decodes from JSON, YAML and TOML files:
//
//	log, err := logger.FromConfig(cfg)
//
// Registries other than the global one can be created with NewRegistry,
// which keeps tests independent of process-wide state.
//
// Level checks happen before any allocation, so filtered-out
// messages cost only a single integer comparison.
package logger
