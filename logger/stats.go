package logger

import "sync/atomic"

// Stats counts dispatched records and appender failures for a logger.
type Stats struct {
	logged atomic.Uint64
	failed atomic.Uint64
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	// Logged is the number of records that passed the level gate
	Logged uint64
	// Failed is the number of appender writes that returned an error or panicked
	Failed uint64
}

// IncrementLogged increments the dispatched counter
func (s *Stats) IncrementLogged() {
	s.logged.Add(1)
}

// IncrementFailed increments the failure counter
func (s *Stats) IncrementFailed() {
	s.failed.Add(1)
}

// GetSnapshot returns the current counter values
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Logged: s.logged.Load(),
		Failed: s.failed.Load(),
	}
}
