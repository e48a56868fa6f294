package filter

import (
	"fmt"

	"github.com/philipp01105/pipelog/core"
)

// LevelFilter passes records at or above a threshold.
type LevelFilter struct {
	threshold core.Level
}

// NewLevelFilter creates a level filter for threshold.
func NewLevelFilter(threshold core.Level) (*LevelFilter, error) {
	if !threshold.Valid() {
		return nil, fmt.Errorf("%w: undefined level %d", core.ErrValidation, threshold)
	}
	return &LevelFilter{threshold: threshold}, nil
}

// Threshold returns the minimum level that passes.
func (f *LevelFilter) Threshold() core.Level {
	return f.threshold
}

// Passes reports whether rec.Level >= threshold.
func (f *LevelFilter) Passes(rec *core.Record) bool {
	return rec.Level >= f.threshold
}
