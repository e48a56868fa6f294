package core

import "time"

// Record is a single log event. It is built once per log call and handed to
// appenders by pointer; appenders must treat it as read-only.
type Record struct {
	Time    time.Time
	Level   Level
	Message string
	// Logger is the name of the emitting logger (empty for ad hoc records)
	Logger string
	// Fields is the ordered metadata attached to the record
	Fields []Field
}

// NewRecord captures the current wall-clock time and builds a record.
// The fields slice is copied so later changes by the caller are not visible.
func NewRecord(logger string, level Level, msg string, fields ...[]Field) *Record {
	n := 0
	for _, fs := range fields {
		n += len(fs)
	}
	var all []Field
	if n > 0 {
		all = make([]Field, 0, n)
		for _, fs := range fields {
			all = append(all, fs...)
		}
	}
	return &Record{
		Time:    time.Now(),
		Level:   level,
		Message: msg,
		Logger:  logger,
		Fields:  all,
	}
}

// Metadata returns the record's fields as a map. Later keys win on duplicates.
func (r *Record) Metadata() map[string]any {
	m := make(map[string]any, len(r.Fields))
	for _, f := range r.Fields {
		m[f.Key] = f.Value()
	}
	return m
}
