package logger

import "github.com/philipp01105/pipelog/core"

// GetGlobalLogger returns the global logger of the global registry
func GetGlobalLogger() *Logger {
	return Global().GlobalLogger()
}

// GetLogger looks up a logger in the global registry
func GetLogger(name string) (*Logger, error) {
	return Global().Get(name)
}

// Package-level convenience functions using the global logger

// Log logs a message at level using the global logger
func Log(level core.Level, msg string, fields ...core.Field) {
	GetGlobalLogger().Log(level, msg, fields...)
}

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...core.Field) {
	GetGlobalLogger().Debug(msg, fields...)
}

// Info logs an info message using the global logger
func Info(msg string, fields ...core.Field) {
	GetGlobalLogger().Info(msg, fields...)
}

// Warning logs a warning message using the global logger
func Warning(msg string, fields ...core.Field) {
	GetGlobalLogger().Warning(msg, fields...)
}

// Error logs an error message using the global logger
func Error(msg string, fields ...core.Field) {
	GetGlobalLogger().Error(msg, fields...)
}

// Critical logs a critical message using the global logger
func Critical(msg string, fields ...core.Field) {
	GetGlobalLogger().Critical(msg, fields...)
}

// Debugf logs a formatted debug message using the global logger
func Debugf(format string, args ...interface{}) {
	GetGlobalLogger().Debugf(format, args...)
}

// Infof logs a formatted info message using the global logger
func Infof(format string, args ...interface{}) {
	GetGlobalLogger().Infof(format, args...)
}

// Warningf logs a formatted warning message using the global logger
func Warningf(format string, args ...interface{}) {
	GetGlobalLogger().Warningf(format, args...)
}

// Errorf logs a formatted error message using the global logger
func Errorf(format string, args ...interface{}) {
	GetGlobalLogger().Errorf(format, args...)
}

// Criticalf logs a formatted critical message using the global logger
func Criticalf(format string, args ...interface{}) {
	GetGlobalLogger().Criticalf(format, args...)
}

// With creates a child of the global logger with additional fields
func With(fields ...core.Field) *Logger {
	return GetGlobalLogger().With(fields...)
}
