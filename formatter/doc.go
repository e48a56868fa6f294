// Package formatter defines how log records are rendered into bytes.
//
// Two formatters are built in. SimpleFormatter produces one human-readable
// line per record in the form
//
//	[<timestamp> <LEVEL>]: <message> key=value ...
//
// and JSONFormatter produces one JSON object with the keys timestamp, level
// and message followed by the record's metadata, flattened into the same
// object. Metadata keys that collide with the formatter's own keys are
// prefixed with "fields.".
//
// Formatting is pure. Both formatters use a pooled bytes.Buffer internally
// and rely on Go's Append-style functions (time.AppendFormat,
// strconv.AppendInt) so the common path does not allocate beyond the
// returned slice. Buffers larger than 64 KiB are not returned to the pool.
//
// Use New to select a formatter by its configuration name.
package formatter
