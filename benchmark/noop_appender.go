package benchmark

import (
	"github.com/philipp01105/pipelog/appender"
	"github.com/philipp01105/pipelog/core"
)

// noopAppender receives records without formatting or writing them.
type noopAppender struct{}

func newNoopAppender() appender.Appender {
	return &noopAppender{}
}

func (a *noopAppender) Append(rec *core.Record) error {
	_ = len(rec.Message)
	return nil
}

func (a *noopAppender) Close() error {
	return nil
}
