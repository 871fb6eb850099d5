package domain

import (
	"fmt"
	"math"
	"time"
)

type BreakType string

const (
	BreakBathroom BreakType = "bathroom"
	BreakCoffee   BreakType = "coffee"
)

// ParseBreakType validates a break type string.
func ParseBreakType(s string) (BreakType, error) {
	switch BreakType(s) {
	case BreakBathroom, BreakCoffee:
		return BreakType(s), nil
	}
	return "", fmt.Errorf("unknown break type %q", s)
}

// BreakRecord is one break event. EndTime is nil while the break is
// active. EmployeeID is a weak reference: removing an employee keeps
// their records, which then display as removed.
type BreakRecord struct {
	ID         string
	EmployeeID string
	Type       BreakType
	StartTime  time.Time
	EndTime    *time.Time
}

// Active reports whether the break has not been closed yet.
func (r *BreakRecord) Active() bool {
	return r.EndTime == nil
}

// Duration returns the break length in whole minutes (floor of the
// elapsed seconds), and false while the break is active. The result is
// signed: an edited record with end before start yields a negative
// duration, which callers treat as a data-quality issue.
func (r *BreakRecord) Duration() (int, bool) {
	if r.EndTime == nil {
		return 0, false
	}
	return int(math.Floor(r.EndTime.Sub(r.StartTime).Seconds() / 60)), true
}

// IsLate reports whether a completed break exceeded the configured limit
// for its type. A break exactly at the limit is on time; an active break
// is never late.
func (r *BreakRecord) IsLate(s *Settings) bool {
	dur, ok := r.Duration()
	if !ok {
		return false
	}
	return dur > s.LimitFor(r.Type)
}

// IsOutsideCoffeeWindow reports whether a coffee break started outside
// the configured coffee window. Only the start clock time is checked;
// both window endpoints count as inside.
func (r *BreakRecord) IsOutsideCoffeeWindow(s *Settings) bool {
	if r.Type != BreakCoffee {
		return false
	}
	start := ClockOf(r.StartTime)
	return start < s.CoffeeStart || start > s.CoffeeEnd
}
