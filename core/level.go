package core

import (
	"fmt"
	"strings"
)

// Level represents the severity of a log record. Values are ordered so that
// a plain integer comparison answers "is this at least as severe as".
type Level int8

const (
	// DebugLevel for detailed debugging information
	DebugLevel Level = 10
	// InfoLevel for general informational messages (default)
	InfoLevel Level = 20
	// WarningLevel for conditions that deserve attention
	WarningLevel Level = 30
	// ErrorLevel for failed operations
	ErrorLevel Level = 40
	// CriticalLevel for failures the application may not recover from
	CriticalLevel Level = 50
)

var levels = [...]Level{DebugLevel, InfoLevel, WarningLevel, ErrorLevel, CriticalLevel}

// Levels returns every defined level, least severe first.
func Levels() []Level {
	out := make([]Level, len(levels))
	copy(out, levels[:])
	return out
}

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case CriticalLevel:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	switch l {
	case DebugLevel, InfoLevel, WarningLevel, ErrorLevel, CriticalLevel:
		return true
	default:
		return false
	}
}

// ParseLevel converts a level name to a Level. Matching is case-insensitive.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarningLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "CRITICAL", "FATAL":
		return CriticalLevel, nil
	default:
		return 0, fmt.Errorf("%w: unknown level %q", ErrValidation, s)
	}
}
