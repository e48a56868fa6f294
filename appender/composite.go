package appender

import (
	"errors"
	"sync"

	"github.com/philipp01105/pipelog/core"
	"github.com/philipp01105/pipelog/filter"
	"github.com/philipp01105/pipelog/formatter"
)

// Composite forwards each record to a list of child appenders. Its own
// filters are checked first; each child then applies its own. The
// composite has no formatter of its own.
type Composite struct {
	Base
	mu       sync.RWMutex
	children []Appender
}

// NewComposite creates a composite appender over children, in order
func NewComposite(children []Appender, filters ...filter.Filter) *Composite {
	cs := make([]Appender, len(children))
	copy(cs, children)
	return &Composite{
		Base:     NewBase(nil, filters...),
		children: cs,
	}
}

// Name identifies the destination
func (c *Composite) Name() string {
	return "composite"
}

// Add appends a child appender
func (c *Composite) Add(a Appender) {
	c.mu.Lock()
	c.children = append(c.children, a)
	c.mu.Unlock()
}

// Children returns a copy of the child list
func (c *Composite) Children() []Appender {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Appender, len(c.children))
	copy(out, c.children)
	return out
}

// Formatter always returns nil; children format records themselves.
func (c *Composite) Formatter() formatter.Formatter {
	return nil
}

// SetFormatter hands f to every child that has no formatter yet.
func (c *Composite) SetFormatter(f formatter.Formatter) {
	for _, child := range c.Children() {
		if fa, ok := child.(Formattable); ok && fa.Formatter() == nil {
			fa.SetFormatter(f)
		}
	}
}

// Append sends the record to every child. A failing child does not stop
// the others; all child errors are joined into the returned error.
func (c *Composite) Append(rec *core.Record) error {
	if !c.Accepts(rec) {
		return nil
	}

	var errs []error
	for _, child := range c.Children() {
		if err := SafeAppend(child, rec); err != nil {
			errs = append(errs, err)
		}
	}
	return c.done(errors.Join(errs...))
}

// Flush flushes every child that supports it
func (c *Composite) Flush() error {
	var errs []error
	for _, child := range c.Children() {
		if fl, ok := child.(Flusher); ok {
			if err := fl.Flush(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// Close closes all children
func (c *Composite) Close() error {
	var errs []error
	for _, child := range c.Children() {
		if err := child.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
