package formatter

import (
	"bytes"

	"github.com/philipp01105/pipelog/core"
)

// SimpleFormatter renders records as human-readable lines:
//
//	[2026-02-18T13:00:00.000000Z INFO]: message key=value
type SimpleFormatter struct {
	Config
}

// NewSimpleFormatter creates a new simple formatter
func NewSimpleFormatter(cfg Config) *SimpleFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = DefaultTimestampFormat
	}
	return &SimpleFormatter{Config: cfg}
}

// Format formats a record as a single text line
func (f *SimpleFormatter) Format(rec *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(rec, buf)
	return detach(buf), nil
}

func (f *SimpleFormatter) formatToBuffer(rec *core.Record, buf *bytes.Buffer) {
	buf.WriteByte('[')
	buf.Write(rec.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	buf.WriteByte(' ')
	buf.WriteString(rec.Level.String())
	buf.WriteString("]: ")

	buf.WriteString(rec.Message)

	for _, field := range rec.Fields {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.WriteString(field.StringValue())
	}
}
