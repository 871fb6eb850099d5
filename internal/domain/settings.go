package domain

// DaySchedule is the operating window for one weekday.
type DaySchedule struct {
	Enabled bool
	Start   ClockTime
	End     ClockTime
}

// Settings is the per-workspace configuration: coffee window bounds,
// per-type break limits in minutes, and per-weekday operating hours.
// Schedule is indexed by weekday, 0 = Sunday.
type Settings struct {
	CoffeeStart      ClockTime
	CoffeeEnd        ClockTime
	BathroomLimitMin int
	CoffeeLimitMin   int
	Schedule         [7]DaySchedule
}

// DefaultSettings returns the factory configuration: coffee window
// 10:00-10:30, bathroom limit 10 min, coffee limit 15 min, Monday-Friday
// 08:00-19:00, Saturday 08:00-17:00, Sunday disabled.
func DefaultSettings() Settings {
	s := Settings{
		CoffeeStart:      MustClock("10:00"),
		CoffeeEnd:        MustClock("10:30"),
		BathroomLimitMin: 10,
		CoffeeLimitMin:   15,
	}
	s.Schedule[0] = DaySchedule{Enabled: false, Start: MustClock("08:00"), End: MustClock("17:00")}
	for d := 1; d <= 5; d++ {
		s.Schedule[d] = DaySchedule{Enabled: true, Start: MustClock("08:00"), End: MustClock("19:00")}
	}
	s.Schedule[6] = DaySchedule{Enabled: true, Start: MustClock("08:00"), End: MustClock("17:00")}
	return s
}

// LimitFor returns the configured limit in minutes for a break type.
func (s *Settings) LimitFor(t BreakType) int {
	if t == BreakCoffee {
		return s.CoffeeLimitMin
	}
	return s.BathroomLimitMin
}

// ScheduleHours returns the ascending union of hours covered by any
// enabled weekday's operating window, both endpoint hours inclusive.
// Hour charts are bounded to these hours.
func (s *Settings) ScheduleHours() []int {
	var covered [24]bool
	for _, day := range s.Schedule {
		if !day.Enabled {
			continue
		}
		for h := day.Start.Hour(); h <= day.End.Hour(); h++ {
			covered[h] = true
		}
	}
	var hours []int
	for h, ok := range covered {
		if ok {
			hours = append(hours, h)
		}
	}
	return hours
}

// EnabledDays returns the weekdays (0 = Sunday) with an enabled schedule,
// ascending.
func (s *Settings) EnabledDays() []int {
	var days []int
	for d, sched := range s.Schedule {
		if sched.Enabled {
			days = append(days, d)
		}
	}
	return days
}

// SettingsPatch is a partial settings value, as carried by backups and
// stored blobs. Nil fields fall back to the base; schedule days are
// merged individually, so a patch supplying only some days keeps the
// base value for the rest.
type SettingsPatch struct {
	CoffeeStart      *ClockTime
	CoffeeEnd        *ClockTime
	BathroomLimitMin *int
	CoffeeLimitMin   *int
	Schedule         map[int]DaySchedule
}

// MergeSettings applies a patch over a base settings value. Top-level
// fields are shallow-merged; the schedule map is merged day by day.
func MergeSettings(base Settings, patch SettingsPatch) Settings {
	merged := base
	if patch.CoffeeStart != nil {
		merged.CoffeeStart = *patch.CoffeeStart
	}
	if patch.CoffeeEnd != nil {
		merged.CoffeeEnd = *patch.CoffeeEnd
	}
	if patch.BathroomLimitMin != nil {
		merged.BathroomLimitMin = *patch.BathroomLimitMin
	}
	if patch.CoffeeLimitMin != nil {
		merged.CoffeeLimitMin = *patch.CoffeeLimitMin
	}
	for d, sched := range patch.Schedule {
		if d >= 0 && d < 7 {
			merged.Schedule[d] = sched
		}
	}
	return merged
}
