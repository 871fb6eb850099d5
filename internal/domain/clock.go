package domain

import (
	"fmt"
	"time"
)

// ClockTime is a time of day expressed as minutes since midnight.
// It replaces lexical "HH:MM" string comparison with integer comparison;
// the two are equivalent for zero-padded 24-hour strings.
type ClockTime int

// ParseClock parses a zero-padded 24-hour "HH:MM" string.
func ParseClock(s string) (ClockTime, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%2d:%2d", &h, &m); err != nil {
		return 0, fmt.Errorf("parsing clock time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}
	return ClockTime(h*60 + m), nil
}

// MustClock parses s and panics on error. For constants and tests.
func MustClock(s string) ClockTime {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ClockOf extracts the clock time (hour and minute) from a timestamp,
// in the timestamp's own location.
func ClockOf(t time.Time) ClockTime {
	return ClockTime(t.Hour()*60 + t.Minute())
}

// Hour returns the hour component (0-23).
func (c ClockTime) Hour() int {
	return int(c) / 60
}

// Minute returns the minute component (0-59).
func (c ClockTime) Minute() int {
	return int(c) % 60
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}
