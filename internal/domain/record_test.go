package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedRecord(bt BreakType, start time.Time, minutes int) *BreakRecord {
	end := start.Add(time.Duration(minutes) * time.Minute)
	return &BreakRecord{ID: "r1", EmployeeID: "e1", Type: bt, StartTime: start, EndTime: &end}
}

func TestDuration_ExactMinutes(t *testing.T) {
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	r := completedRecord(BreakBathroom, start, 12)
	dur, ok := r.Duration()
	require.True(t, ok)
	assert.Equal(t, 12, dur, "no off-by-one at minute boundaries")
}

func TestDuration_FloorsPartialMinute(t *testing.T) {
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	end := start.Add(5*time.Minute + 59*time.Second)
	r := &BreakRecord{Type: BreakBathroom, StartTime: start, EndTime: &end}
	dur, ok := r.Duration()
	require.True(t, ok)
	assert.Equal(t, 5, dur)
}

func TestDuration_ActiveRecord(t *testing.T) {
	r := &BreakRecord{Type: BreakBathroom, StartTime: time.Now()}
	_, ok := r.Duration()
	assert.False(t, ok)
	assert.True(t, r.Active())
}

func TestDuration_EndBeforeStart(t *testing.T) {
	start := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	end := start.Add(-10 * time.Minute)
	r := &BreakRecord{Type: BreakBathroom, StartTime: start, EndTime: &end}
	dur, ok := r.Duration()
	require.True(t, ok)
	assert.Equal(t, -10, dur, "edited records may have negative durations")
}

func TestIsLate_Boundaries(t *testing.T) {
	settings := DefaultSettings()
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	atLimit := completedRecord(BreakBathroom, start, settings.BathroomLimitMin)
	assert.False(t, atLimit.IsLate(&settings), "exactly at the limit is on time")

	overLimit := completedRecord(BreakBathroom, start, settings.BathroomLimitMin+1)
	assert.True(t, overLimit.IsLate(&settings))

	active := &BreakRecord{Type: BreakBathroom, StartTime: start}
	assert.False(t, active.IsLate(&settings), "active breaks are never late")
}

func TestIsLate_UsesCoffeeLimitForCoffee(t *testing.T) {
	settings := DefaultSettings()
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	// 12 min exceeds the bathroom limit (10) but not the coffee limit (15).
	r := completedRecord(BreakCoffee, start, 12)
	assert.False(t, r.IsLate(&settings))
}

func TestIsLate_ExampleScenario(t *testing.T) {
	settings := DefaultSettings()
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	r := completedRecord(BreakBathroom, start, 12)
	dur, ok := r.Duration()
	require.True(t, ok)
	assert.Equal(t, 12, dur)
	assert.True(t, r.IsLate(&settings))
}

func TestIsOutsideCoffeeWindow_Boundaries(t *testing.T) {
	settings := DefaultSettings() // window 10:00-10:30
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		clock   string
		outside bool
	}{
		{"10:00", false},
		{"10:30", false},
		{"09:59", true},
		{"10:31", true},
		{"10:45", true},
	}
	for _, tc := range cases {
		c := MustClock(tc.clock)
		start := day.Add(time.Duration(c) * time.Minute)
		r := completedRecord(BreakCoffee, start, 5)
		assert.Equal(t, tc.outside, r.IsOutsideCoffeeWindow(&settings), "start=%s", tc.clock)
	}
}

func TestIsOutsideCoffeeWindow_BathroomNeverOutside(t *testing.T) {
	settings := DefaultSettings()
	start := time.Date(2025, 6, 2, 6, 0, 0, 0, time.UTC)
	r := completedRecord(BreakBathroom, start, 5)
	assert.False(t, r.IsOutsideCoffeeWindow(&settings))
}

func TestParseBreakType(t *testing.T) {
	bt, err := ParseBreakType("coffee")
	require.NoError(t, err)
	assert.Equal(t, BreakCoffee, bt)

	_, err = ParseBreakType("smoke")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown break type")
}
