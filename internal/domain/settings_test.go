package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, MustClock("10:00"), s.CoffeeStart)
	assert.Equal(t, MustClock("10:30"), s.CoffeeEnd)
	assert.Equal(t, 10, s.BathroomLimitMin)
	assert.Equal(t, 15, s.CoffeeLimitMin)
	assert.False(t, s.Schedule[0].Enabled, "Sunday is disabled by default")
	for d := 1; d <= 6; d++ {
		assert.True(t, s.Schedule[d].Enabled, "weekday %d", d)
	}
	assert.Equal(t, MustClock("19:00"), s.Schedule[1].End)
	assert.Equal(t, MustClock("17:00"), s.Schedule[6].End)
}

func TestMergeSettings_SingleDayPatch(t *testing.T) {
	base := DefaultSettings()
	patch := SettingsPatch{
		Schedule: map[int]DaySchedule{
			3: {Enabled: false, Start: MustClock("09:00"), End: MustClock("12:00")},
		},
	}

	merged := MergeSettings(base, patch)

	assert.Equal(t, MustClock("09:00"), merged.Schedule[3].Start)
	assert.False(t, merged.Schedule[3].Enabled)
	for _, d := range []int{0, 1, 2, 4, 5, 6} {
		assert.Equal(t, base.Schedule[d], merged.Schedule[d], "day %d keeps the default", d)
	}
	assert.Equal(t, base.CoffeeStart, merged.CoffeeStart)
}

func TestMergeSettings_TopLevelFields(t *testing.T) {
	base := DefaultSettings()
	start := MustClock("09:30")
	limit := 20
	merged := MergeSettings(base, SettingsPatch{CoffeeStart: &start, CoffeeLimitMin: &limit})

	assert.Equal(t, start, merged.CoffeeStart)
	assert.Equal(t, 20, merged.CoffeeLimitMin)
	assert.Equal(t, base.CoffeeEnd, merged.CoffeeEnd)
	assert.Equal(t, base.BathroomLimitMin, merged.BathroomLimitMin)
}

func TestMergeSettings_IgnoresOutOfRangeDays(t *testing.T) {
	base := DefaultSettings()
	merged := MergeSettings(base, SettingsPatch{
		Schedule: map[int]DaySchedule{7: {Enabled: true}, -1: {Enabled: true}},
	})
	assert.Equal(t, base.Schedule, merged.Schedule)
}

func TestScheduleHours_UnionOfEnabledDays(t *testing.T) {
	s := DefaultSettings()
	// Mon-Fri 08:00-19:00, Sat 08:00-17:00, Sun disabled: hours 8..19.
	want := []int{8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19}
	assert.Equal(t, want, s.ScheduleHours())
}

func TestScheduleHours_DisabledDaysExcluded(t *testing.T) {
	s := DefaultSettings()
	for d := range s.Schedule {
		s.Schedule[d].Enabled = false
	}
	s.Schedule[2] = DaySchedule{Enabled: true, Start: MustClock("22:00"), End: MustClock("23:30")}
	assert.Equal(t, []int{22, 23}, s.ScheduleHours(), "endpoint hours are inclusive")
}

func TestEnabledDays(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, s.EnabledDays())
}

func TestParseClock(t *testing.T) {
	c, err := ParseClock("08:05")
	require.NoError(t, err)
	assert.Equal(t, 8, c.Hour())
	assert.Equal(t, 5, c.Minute())
	assert.Equal(t, "08:05", c.String())

	_, err = ParseClock("25:00")
	assert.Error(t, err)
	_, err = ParseClock("bogus")
	assert.Error(t, err)
}
