package formatter

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/philipp01105/pipelog/core"
)

// DefaultTimestampFormat is ISO 8601 with microsecond precision.
const DefaultTimestampFormat = "2006-01-02T15:04:05.000000Z07:00"

// Formatter renders a record. Implementations must be pure: the same record
// always yields the same bytes. The output carries no trailing newline.
type Formatter interface {
	// Format formats a log record into bytes
	Format(rec *core.Record) ([]byte, error)
}

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat specifies the time layout (empty for DefaultTimestampFormat)
	TimestampFormat string
}

// Kind names a built-in formatter for configuration-driven construction.
type Kind string

const (
	KindSimple Kind = "simple"
	KindJSON   Kind = "json"
)

// New returns the built-in formatter named by kind. Class-style names such
// as "SimpleFormatter" and "JSONFormatter" are accepted too.
func New(kind string, cfg Config) (Formatter, error) {
	k := strings.ToLower(strings.TrimSpace(kind))
	k = strings.TrimSuffix(k, "formatter")
	switch Kind(k) {
	case "", KindSimple, "text":
		return NewSimpleFormatter(cfg), nil
	case KindJSON:
		return NewJSONFormatter(cfg), nil
	default:
		return nil, fmt.Errorf("%w: unknown formatter type %q", core.ErrConfiguration, kind)
	}
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// detach copies the buffer content so the buffer can go back to the pool.
func detach(buf *bytes.Buffer) []byte {
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result
}
