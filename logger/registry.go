package logger

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/philipp01105/pipelog/appender"
	"github.com/philipp01105/pipelog/core"
	"github.com/philipp01105/pipelog/formatter"
)

// GlobalName is the registry key of the lazily created global logger.
const GlobalName = "global"

// Registry maps logger names to loggers. The zero value is not usable;
// create one with NewRegistry or use Global.
type Registry struct {
	mu      sync.RWMutex
	loggers map[string]*Logger
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{loggers: make(map[string]*Logger)}
}

var (
	globalRegistry     *Registry
	globalRegistryOnce sync.Once
)

// Global returns the process-wide registry, creating it on first use
func Global() *Registry {
	globalRegistryOnce.Do(func() {
		globalRegistry = NewRegistry()
	})
	return globalRegistry
}

// NewBuilder creates a builder that registers into r
func (r *Registry) NewBuilder() *Builder {
	return &Builder{registry: r, level: core.InfoLevel}
}

// Register adds l under its name, replacing any existing entry
func (r *Registry) Register(l *Logger) {
	r.mu.Lock()
	r.loggers[l.Name()] = l
	r.mu.Unlock()
}

// Get returns the logger registered under name
func (r *Registry) Get(name string) (*Logger, error) {
	r.mu.RLock()
	l, ok := r.loggers[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: logger %q", core.ErrNotFound, name)
	}
	return l, nil
}

// Remove unregisters the logger named name. The logger is not closed.
func (r *Registry) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.loggers[name]; !ok {
		return fmt.Errorf("%w: logger %q", core.ErrNotFound, name)
	}
	delete(r.loggers, name)
	return nil
}

// Names returns the registered names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.loggers))
	for name := range r.loggers {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Len returns the number of registered loggers
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.loggers)
}

// Each calls fn for every registered logger in name order. Iteration
// stops when fn returns false.
func (r *Registry) Each(fn func(l *Logger) bool) {
	for _, name := range r.Names() {
		l, err := r.Get(name)
		if err != nil {
			// removed while iterating
			continue
		}
		if !fn(l) {
			return
		}
	}
}

// GlobalLogger returns the logger registered as "global", creating a
// console logger at INFO level if there is none.
func (r *Registry) GlobalLogger() *Logger {
	r.mu.RLock()
	l, ok := r.loggers[GlobalName]
	r.mu.RUnlock()
	if ok {
		return l
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.loggers[GlobalName]; ok {
		return l
	}

	simple := formatter.NewSimpleFormatter(formatter.Config{})
	l = newLogger(GlobalName, core.InfoLevel, simple, nil, nil)
	l.AddAppender(appender.NewConsole(appender.ConsoleConfig{Writer: os.Stdout, Formatter: simple}))
	r.loggers[GlobalName] = l
	return l
}

// Close closes the appenders of every registered logger
func (r *Registry) Close() error {
	var errs []error
	r.Each(func(l *Logger) bool {
		if err := l.Close(); err != nil {
			errs = append(errs, err)
		}
		return true
	})
	return errors.Join(errs...)
}
