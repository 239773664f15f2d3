// Package timer implements the solve stopwatch, WCA inspection rules and
// session statistics.
package timer

import (
	"errors"
	"time"
)

// ErrNotRunning is returned when a solve is stopped before it started.
var ErrNotRunning = errors.New("timer: not running")

const (
	// InspectionLimit is the inspection time allowed without penalty.
	InspectionLimit = 15 * time.Second
	// InspectionDNFLimit is the inspection time after which the solve is a DNF.
	InspectionDNFLimit = 17 * time.Second
)

// State represents the current stopwatch state.
type State int

const (
	StateIdle State = iota
	StateInspecting
	StateRunning
	StateStopped
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInspecting:
		return "inspecting"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Stopwatch times one solve at a time. Every transition is driven by a single
// key, so Press is the only input:
//
//	idle/stopped -> inspecting (when inspection is enabled) -> running -> stopped
//
// Times are passed in by the caller. A Stopwatch is not safe for concurrent use.
type Stopwatch struct {
	inspection bool

	state        State
	inspectStart time.Time
	start        time.Time
	inspected    time.Duration
	result       Result
}

// NewStopwatch creates a stopwatch; inspection enables the 15 second WCA
// inspection phase before each solve.
func NewStopwatch(inspection bool) *Stopwatch {
	return &Stopwatch{inspection: inspection}
}

// State returns the current state.
func (s *Stopwatch) State() State {
	return s.state
}

// Inspection reports whether the inspection phase is enabled.
func (s *Stopwatch) Inspection() bool {
	return s.inspection
}

// SetInspection enables or disables inspection for the next solve.
func (s *Stopwatch) SetInspection(enabled bool) {
	s.inspection = enabled
}

// Press advances the stopwatch. It returns the finished result and true when
// the press stopped a running solve.
func (s *Stopwatch) Press(at time.Time) (Result, bool) {
	switch s.state {
	case StateIdle, StateStopped:
		if s.inspection {
			s.state = StateInspecting
			s.inspectStart = at
			return Result{}, false
		}
		s.begin(at, 0)
	case StateInspecting:
		s.begin(at, at.Sub(s.inspectStart))
	case StateRunning:
		r, _ := s.Stop(at)
		return r, true
	}
	return Result{}, false
}

func (s *Stopwatch) begin(at time.Time, inspected time.Duration) {
	s.state = StateRunning
	s.start = at
	s.inspected = inspected
}

// Stop finishes the running solve.
func (s *Stopwatch) Stop(at time.Time) (Result, error) {
	if s.state != StateRunning {
		return Result{}, ErrNotRunning
	}
	s.state = StateStopped
	s.result = Result{
		Duration:   at.Sub(s.start),
		Inspection: s.inspected,
		Penalty:    InspectionPenalty(s.inspected),
	}
	return s.result, nil
}

// Elapsed returns the time shown on the display: inspection time while
// inspecting, solve time while running, the final time once stopped.
func (s *Stopwatch) Elapsed(at time.Time) time.Duration {
	switch s.state {
	case StateInspecting:
		return at.Sub(s.inspectStart)
	case StateRunning:
		return at.Sub(s.start)
	case StateStopped:
		return s.result.Duration
	}
	return 0
}

// Last returns the result of the most recent stopped solve.
func (s *Stopwatch) Last() (Result, bool) {
	return s.result, s.state == StateStopped
}

// Reset abandons any solve in progress.
func (s *Stopwatch) Reset() {
	*s = Stopwatch{inspection: s.inspection}
}

// InspectionPenalty applies the WCA inspection rule to the time spent
// inspecting.
func InspectionPenalty(inspected time.Duration) Penalty {
	switch {
	case inspected > InspectionDNFLimit:
		return PenaltyDNF
	case inspected > InspectionLimit:
		return PenaltyPlusTwo
	}
	return PenaltyNone
}
