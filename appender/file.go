package appender

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/philipp01105/pipelog/core"
	"github.com/philipp01105/pipelog/filter"
	"github.com/philipp01105/pipelog/formatter"
)

// File appends one formatted line per record to a file. The file is opened
// when the appender is created and stays open until Close.
type File struct {
	Base
	path   string
	file   *os.File
	mu     sync.Mutex
	closed bool
}

// FileConfig holds configuration for the file appender
type FileConfig struct {
	// Path is the path to the log file
	Path string
	// Formatter to use (default: the logger's default formatter)
	Formatter formatter.Formatter
	// Filters gate which records are written
	Filters []filter.Filter
	// Perm is the mode used when the file is created (default: 0644)
	Perm os.FileMode
}

// NewFile opens cfg.Path in append mode, creating it and its parent
// directories if needed.
func NewFile(cfg FileConfig) (*File, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("%w: file path is required", core.ErrConfiguration)
	}
	if cfg.Perm == 0 {
		cfg.Perm = 0644
	}

	name := "file:" + cfg.Path

	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, core.NewDestinationError(name, err)
	}

	file, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, cfg.Perm)
	if err != nil {
		return nil, core.NewDestinationError(name, err)
	}

	return &File{
		Base: NewBase(cfg.Formatter, cfg.Filters...),
		path: cfg.Path,
		file: file,
	}, nil
}

// Name identifies the destination
func (f *File) Name() string {
	return "file:" + f.path
}

// Path returns the file path
func (f *File) Path() string {
	return f.path
}

// Append formats and writes a record followed by a newline
func (f *File) Append(rec *core.Record) error {
	if !f.Accepts(rec) {
		return nil
	}
	data, err := f.Render(rec)
	if err != nil {
		return f.done(core.NewDestinationError(f.Name(), err))
	}
	data = append(data, '\n')

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return f.done(core.NewDestinationError(f.Name(), os.ErrClosed))
	}
	if _, err := f.file.Write(data); err != nil {
		return f.done(core.NewDestinationError(f.Name(), err))
	}
	return f.done(nil)
}

// Flush commits written data to stable storage
func (f *File) Flush() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil
	}
	return f.file.Sync()
}

// Close syncs and closes the file. Calling Close twice is safe.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}
	f.closed = true

	syncErr := f.file.Sync()
	if err := f.file.Close(); err != nil {
		return err
	}
	return syncErr
}
