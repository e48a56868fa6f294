package formatter

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"time"

	"github.com/philipp01105/pipelog/core"
)

// reservedKeys are written by the formatter itself. Metadata using one of
// these keys is emitted as "fields.<key>".
var reservedKeys = map[string]struct{}{
	"timestamp": {},
	"level":     {},
	"message":   {},
	"logger":    {},
}

// JSONFormatter formats records as one JSON object each
type JSONFormatter struct {
	Config
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(cfg Config) *JSONFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = DefaultTimestampFormat
	}
	return &JSONFormatter{Config: cfg}
}

// Format formats a record as JSON
func (f *JSONFormatter) Format(rec *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatJSONToBuffer(rec, buf)
	return detach(buf), nil
}

// formatJSONToBuffer builds JSON manually into the buffer without allocations
func (f *JSONFormatter) formatJSONToBuffer(rec *core.Record, buf *bytes.Buffer) {
	buf.WriteString(`{"timestamp":"`)
	buf.Write(rec.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	buf.WriteString(`","level":"`)
	buf.WriteString(rec.Level.String())

	buf.WriteString(`","message":"`)
	appendJSONString(buf, rec.Message)
	buf.WriteByte('"')

	if rec.Logger != "" {
		buf.WriteString(`,"logger":"`)
		appendJSONString(buf, rec.Logger)
		buf.WriteByte('"')
	}

	for _, field := range rec.Fields {
		buf.WriteString(`,"`)
		if _, ok := reservedKeys[field.Key]; ok {
			buf.WriteString("fields.")
		}
		appendJSONString(buf, field.Key)
		buf.WriteString(`":`)
		appendJSONFieldValue(buf, field)
	}

	buf.WriteByte('}')
}

// EncodeFields renders fields as a JSON object. Nil or empty input yields "{}".
func EncodeFields(fields []core.Field) []byte {
	buf := getBuffer()
	defer putBuffer(buf)

	buf.WriteByte('{')
	for i, field := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		appendJSONString(buf, field.Key)
		buf.WriteString(`":`)
		appendJSONFieldValue(buf, field)
	}
	buf.WriteByte('}')
	return detach(buf)
}

// appendJSONString writes a JSON-escaped string (without surrounding quotes) to the buffer
func appendJSONString(buf *bytes.Buffer, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		if start < i {
			buf.WriteString(s[start:i])
		}
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexChars[c>>4])
			buf.WriteByte(hexChars[c&0x0f])
		}
		start = i + 1
	}
	if start < len(s) {
		buf.WriteString(s[start:])
	}
}

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}

// appendJSONFieldValue writes a JSON-encoded field value to the buffer
func appendJSONFieldValue(buf *bytes.Buffer, field core.Field) {
	switch field.Type {
	case core.StringType, core.ErrorType:
		buf.WriteByte('"')
		appendJSONString(buf, field.Str)
		buf.WriteByte('"')
	case core.IntType, core.Int64Type:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), field.Int64, 10))
	case core.Float64Type:
		// JSON has no literal for these; quote them the way StringValue prints them.
		if math.IsNaN(field.Float64) || math.IsInf(field.Float64, 0) {
			buf.WriteByte('"')
			buf.WriteString(field.StringValue())
			buf.WriteByte('"')
			return
		}
		buf.Write(strconv.AppendFloat(buf.AvailableBuffer(), field.Float64, 'f', -1, 64))
	case core.BoolType:
		buf.Write(strconv.AppendBool(buf.AvailableBuffer(), field.Int64 == 1))
	case core.TimeType:
		buf.WriteByte('"')
		buf.Write(time.Unix(0, field.Int64).AppendFormat(buf.AvailableBuffer(), time.RFC3339Nano))
		buf.WriteByte('"')
	case core.DurationType:
		buf.WriteByte('"')
		buf.WriteString(time.Duration(field.Int64).String())
		buf.WriteByte('"')
	case core.AnyType:
		appendJSONAny(buf, field)
	default:
		buf.WriteByte('"')
		appendJSONString(buf, field.StringValue())
		buf.WriteByte('"')
	}
}

// appendJSONAny keeps maps, slices and structs as nested JSON. Values
// encoding/json rejects fall back to their quoted %v form.
func appendJSONAny(buf *bytes.Buffer, field core.Field) {
	data, err := json.Marshal(field.Any)
	if err != nil {
		buf.WriteByte('"')
		appendJSONString(buf, field.StringValue())
		buf.WriteByte('"')
		return
	}
	buf.Write(data)
}
