// Package core defines the shared types used across pipelog.
//
// It provides the Level type for severity comparison, the Record type that
// represents a single log event, the Field type for ordered key-value
// metadata, and the error taxonomy every other package wraps.
//
// Levels carry numeric severities (DEBUG=10 through CRITICAL=50) so that
// threshold checks are a single integer comparison.
//
// A Record is created once per log call, stamped with the wall-clock time,
// and passed by pointer to every appender. Appenders never mutate it.
//
// Errors are reported through four sentinels: ErrConfiguration,
// ErrDestination, ErrNotFound and ErrValidation. A DestinationError names
// the appender that failed and matches both ErrDestination and its cause
// under errors.Is.
package core
