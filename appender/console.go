package appender

import (
	"io"
	"os"
	"sync"

	"github.com/philipp01105/pipelog/core"
	"github.com/philipp01105/pipelog/filter"
	"github.com/philipp01105/pipelog/formatter"
)

// Console writes one formatted line per record to stdout or another writer
type Console struct {
	Base
	writer io.Writer
	mu     sync.Mutex
}

// ConsoleConfig holds configuration for the console appender
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: the logger's default formatter)
	Formatter formatter.Formatter
	// Filters gate which records are written
	Filters []filter.Filter
}

// NewConsole creates a new console appender
func NewConsole(cfg ConsoleConfig) *Console {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	return &Console{
		Base:   NewBase(cfg.Formatter, cfg.Filters...),
		writer: cfg.Writer,
	}
}

// Name identifies the destination
func (c *Console) Name() string {
	return "console"
}

// Append formats and writes a record
func (c *Console) Append(rec *core.Record) error {
	if !c.Accepts(rec) {
		return nil
	}
	data, err := c.Render(rec)
	if err != nil {
		return c.done(err)
	}
	return c.done(c.writeLine(data))
}

// writeLine writes data plus a newline in a single call
func (c *Console) writeLine(data []byte) error {
	line := make([]byte, 0, len(data)+1)
	line = append(line, data...)
	line = append(line, '\n')

	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := c.writer.Write(line)
	return err
}

// Close is a no-op; the console writer is not owned by the appender
func (c *Console) Close() error {
	return nil
}
