package appender

import (
	"fmt"
	"sync"

	"github.com/philipp01105/pipelog/core"
	"github.com/philipp01105/pipelog/filter"
	"github.com/philipp01105/pipelog/formatter"
)

// Appender writes records to a destination.
type Appender interface {
	// Append writes a record. Records rejected by the appender's filters
	// are skipped without error.
	Append(rec *core.Record) error

	// Close releases the destination
	Close() error
}

// Formattable is implemented by appenders whose formatter can be replaced
// after construction. Builders use it to hand down a default formatter.
type Formattable interface {
	Formatter() formatter.Formatter
	SetFormatter(f formatter.Formatter)
}

// Flusher is implemented by appenders that buffer writes below the
// process, such as files.
type Flusher interface {
	Flush() error
}

// Named is implemented by appenders that describe their destination.
type Named interface {
	Name() string
}

// NameOf returns a's destination name, falling back to its Go type.
func NameOf(a Appender) string {
	if n, ok := a.(Named); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", a)
}

// SafeAppend calls a.Append and turns a panic into an error, so that one
// misbehaving appender cannot take down its caller.
func SafeAppend(a Appender, rec *core.Record) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = core.NewDestinationError(NameOf(a), fmt.Errorf("panic: %v", r))
		}
	}()
	return core.NewDestinationError(NameOf(a), a.Append(rec))
}

var fallbackFormatter = formatter.NewSimpleFormatter(formatter.Config{})

// Base carries the state every appender shares: a formatter, an ordered
// list of filters and counters. Embed it by value and use the appender by
// pointer.
type Base struct {
	mu        sync.RWMutex
	formatter formatter.Formatter
	filters   []filter.Filter
	stats     Stats
}

// NewBase creates a Base. A nil formatter is allowed; it is replaced by the
// logger's default formatter when the appender is attached, and by a
// SimpleFormatter as a last resort.
func NewBase(f formatter.Formatter, filters ...filter.Filter) Base {
	fs := make([]filter.Filter, len(filters))
	copy(fs, filters)
	return Base{formatter: f, filters: fs}
}

// Formatter returns the configured formatter, possibly nil.
func (b *Base) Formatter() formatter.Formatter {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.formatter
}

// SetFormatter replaces the formatter.
func (b *Base) SetFormatter(f formatter.Formatter) {
	b.mu.Lock()
	b.formatter = f
	b.mu.Unlock()
}

// Filters returns a copy of the filter list in evaluation order.
func (b *Base) Filters() []filter.Filter {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]filter.Filter, len(b.filters))
	copy(out, b.filters)
	return out
}

// AddFilter appends f to the end of the filter list.
func (b *Base) AddFilter(f filter.Filter) {
	b.mu.Lock()
	b.filters = append(b.filters, f)
	b.mu.Unlock()
}

// Accepts reports whether all filters pass rec. Rejections are counted.
func (b *Base) Accepts(rec *core.Record) bool {
	b.mu.RLock()
	ok := filter.All(b.filters, rec)
	b.mu.RUnlock()
	if !ok {
		b.stats.IncrementFiltered()
	}
	return ok
}

// Render formats rec with the configured formatter.
func (b *Base) Render(rec *core.Record) ([]byte, error) {
	f := b.Formatter()
	if f == nil {
		f = fallbackFormatter
	}
	return f.Format(rec)
}

// Stats returns a snapshot of the appender's counters.
func (b *Base) Stats() Snapshot {
	return b.stats.GetSnapshot()
}

// ResetStats zeroes the appender's counters.
func (b *Base) ResetStats() {
	b.stats.Reset()
}

// done records the outcome of a write.
func (b *Base) done(err error) error {
	if err != nil {
		b.stats.IncrementFailed()
		return err
	}
	b.stats.IncrementProcessed()
	return nil
}
