package timer

import (
	"fmt"
	"math"
	"time"
)

// Penalty is a WCA time penalty.
type Penalty string

const (
	PenaltyNone    Penalty = ""
	PenaltyPlusTwo Penalty = "+2"
	PenaltyDNF     Penalty = "DNF"
)

// ParsePenalty converts a stored penalty string back to a Penalty.
func ParsePenalty(s string) (Penalty, error) {
	switch Penalty(s) {
	case PenaltyNone, PenaltyPlusTwo, PenaltyDNF:
		return Penalty(s), nil
	}
	return PenaltyNone, fmt.Errorf("timer: unknown penalty %q", s)
}

// DNFDuration is the effective time of a DNF. It sorts after every real time.
const DNFDuration = time.Duration(math.MaxInt64)

// Result is one timed solve.
type Result struct {
	Duration   time.Duration // raw time on the clock
	Inspection time.Duration // time spent inspecting, zero without inspection
	Penalty    Penalty
}

// DNF reports whether the solve did not finish.
func (r Result) DNF() bool {
	return r.Penalty == PenaltyDNF
}

// Effective returns the time that counts: raw time, plus two seconds for +2,
// DNFDuration for a DNF.
func (r Result) Effective() time.Duration {
	switch r.Penalty {
	case PenaltyDNF:
		return DNFDuration
	case PenaltyPlusTwo:
		return r.Duration + 2*time.Second
	}
	return r.Duration
}

// String returns the display form: "12.34", "14.34+" or "DNF".
func (r Result) String() string {
	switch r.Penalty {
	case PenaltyDNF:
		return "DNF"
	case PenaltyPlusTwo:
		return FormatDuration(r.Effective()) + "+"
	}
	return FormatDuration(r.Duration)
}

// FormatDuration formats a solve time with hundredths: "9.87", "1:02.35",
// "1:00:00.00". DNFDuration formats as "DNF".
func FormatDuration(d time.Duration) string {
	if d == DNFDuration {
		return "DNF"
	}
	if d < 0 {
		d = 0
	}

	cs := int64(d / (10 * time.Millisecond))
	hundredths := cs % 100
	secs := (cs / 100) % 60
	mins := (cs / 6000) % 60
	hours := cs / 360000

	switch {
	case hours > 0:
		return fmt.Sprintf("%d:%02d:%02d.%02d", hours, mins, secs, hundredths)
	case mins > 0:
		return fmt.Sprintf("%d:%02d.%02d", mins, secs, hundredths)
	}
	return fmt.Sprintf("%d.%02d", secs, hundredths)
}
