package logger

import "github.com/philipp01105/pipelog/core"

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	DebugLevel    = core.DebugLevel
	InfoLevel     = core.InfoLevel
	WarningLevel  = core.WarningLevel
	ErrorLevel    = core.ErrorLevel
	CriticalLevel = core.CriticalLevel
)

// ParseLevel converts a level name to a Level. Unknown names fail with
// core.ErrValidation.
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}
