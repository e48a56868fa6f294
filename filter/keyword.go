package filter

import (
	"fmt"
	"strings"

	"github.com/philipp01105/pipelog/core"
)

// KeywordFilter passes records whose message contains at least one keyword.
type KeywordFilter struct {
	keywords        []string
	caseInsensitive bool
}

// KeywordOption configures a KeywordFilter.
type KeywordOption func(*KeywordFilter)

// CaseInsensitive makes keyword matching ignore case.
func CaseInsensitive() KeywordOption {
	return func(f *KeywordFilter) {
		f.caseInsensitive = true
	}
}

// NewKeywordFilter creates a keyword filter. Matching is an exact,
// case-sensitive substring search unless CaseInsensitive is given.
func NewKeywordFilter(keywords []string, opts ...KeywordOption) (*KeywordFilter, error) {
	if len(keywords) == 0 {
		return nil, fmt.Errorf("%w: keyword filter needs at least one keyword", core.ErrValidation)
	}
	f := &KeywordFilter{}
	for _, opt := range opts {
		opt(f)
	}
	f.keywords = make([]string, len(keywords))
	for i, k := range keywords {
		if k == "" {
			return nil, fmt.Errorf("%w: empty keyword at index %d", core.ErrValidation, i)
		}
		if f.caseInsensitive {
			k = strings.ToLower(k)
		}
		f.keywords[i] = k
	}
	return f, nil
}

// Keywords returns a copy of the configured keywords.
func (f *KeywordFilter) Keywords() []string {
	out := make([]string, len(f.keywords))
	copy(out, f.keywords)
	return out
}

// Passes reports whether the message contains any keyword.
func (f *KeywordFilter) Passes(rec *core.Record) bool {
	msg := rec.Message
	if f.caseInsensitive {
		msg = strings.ToLower(msg)
	}
	for _, k := range f.keywords {
		if strings.Contains(msg, k) {
			return true
		}
	}
	return false
}
