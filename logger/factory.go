package logger

import (
	"github.com/philipp01105/pipelog/appender"
	"github.com/philipp01105/pipelog/core"
)

// Shortcuts for the common single-destination setups. Each builds through
// the registry's Builder, so the logger is registered under name.

// NewConsoleLogger builds a logger writing to stdout
func (r *Registry) NewConsoleLogger(name string, level core.Level) (*Logger, error) {
	return r.NewBuilder().
		SetName(name).
		SetLevel(level).
		AddAppender(appender.NewConsole(appender.ConsoleConfig{})).
		Build()
}

// NewColoredConsoleLogger builds a logger writing colored lines to stdout.
// ColorNone selects a color per level.
func (r *Registry) NewColoredConsoleLogger(name string, level core.Level, color appender.Color) (*Logger, error) {
	a, err := appender.NewColoredConsole(appender.ColoredConsoleConfig{Color: color})
	if err != nil {
		return nil, err
	}
	return r.NewBuilder().SetName(name).SetLevel(level).AddAppender(a).Build()
}

// NewFileLogger builds a logger appending to the file at path
func (r *Registry) NewFileLogger(name string, level core.Level, path string) (*Logger, error) {
	a, err := appender.NewFile(appender.FileConfig{Path: path})
	if err != nil {
		return nil, err
	}
	l, err := r.NewBuilder().SetName(name).SetLevel(level).AddAppender(a).Build()
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	return l, nil
}

// NewCompositeLogger builds a logger fanning out to apps through a single
// Composite appender
func (r *Registry) NewCompositeLogger(name string, level core.Level, apps ...appender.Appender) (*Logger, error) {
	return r.NewBuilder().
		SetName(name).
		SetLevel(level).
		AddAppender(appender.NewComposite(apps)).
		Build()
}

// NewConsoleLogger builds a console logger in the global registry
func NewConsoleLogger(name string, level core.Level) (*Logger, error) {
	return Global().NewConsoleLogger(name, level)
}

// NewFileLogger builds a file logger in the global registry
func NewFileLogger(name string, level core.Level, path string) (*Logger, error) {
	return Global().NewFileLogger(name, level, path)
}
