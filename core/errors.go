package core

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration indicates missing or invalid construction parameters.
	ErrConfiguration = errors.New("configuration error")
	// ErrDestination indicates an appender could not write a record.
	ErrDestination = errors.New("destination error")
	// ErrNotFound indicates a registry lookup for an unknown logger name.
	ErrNotFound = errors.New("not found")
	// ErrValidation indicates an invalid level, filter or identifier argument.
	ErrValidation = errors.New("validation error")
)

// DestinationError records a failed write to a single appender.
type DestinationError struct {
	// Appender names the destination that failed (e.g. "file:/var/log/app.log")
	Appender string
	Err      error
}

// NewDestinationError wraps err for the named appender. A nil err yields nil.
func NewDestinationError(appender string, err error) error {
	if err == nil {
		return nil
	}
	var de *DestinationError
	if errors.As(err, &de) && de.Appender == appender {
		return err
	}
	return &DestinationError{Appender: appender, Err: err}
}

func (e *DestinationError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrDestination, e.Appender, e.Err)
}

// Unwrap exposes both the cause and ErrDestination to errors.Is.
func (e *DestinationError) Unwrap() []error {
	return []error{ErrDestination, e.Err}
}
