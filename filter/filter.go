package filter

import "github.com/philipp01105/pipelog/core"

// Filter decides whether a record may reach an appender.
type Filter interface {
	// Passes reports whether rec should be written
	Passes(rec *core.Record) bool
}

// Func adapts an ordinary function to the Filter interface.
type Func func(rec *core.Record) bool

// Passes calls f(rec).
func (f Func) Passes(rec *core.Record) bool {
	return f(rec)
}

// All reports whether every filter passes rec, evaluating them in order and
// stopping at the first rejection. An empty list passes everything.
func All(filters []Filter, rec *core.Record) bool {
	for _, f := range filters {
		if !f.Passes(rec) {
			return false
		}
	}
	return true
}
