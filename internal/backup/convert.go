package backup

import (
	"fmt"
	"strconv"
	"time"

	"github.com/acarvalho/pausas/internal/domain"
)

// ToDomain converts a validated backup payload into domain values.
// The settings patch is nil when the backup carries no settings.
func ToDomain(b *Backup) ([]*domain.Employee, []*domain.BreakRecord, *domain.SettingsPatch, error) {
	employees := make([]*domain.Employee, 0, len(b.Data.Employees))
	for _, e := range b.Data.Employees {
		employees = append(employees, &domain.Employee{ID: e.ID, Name: e.Name})
	}

	records := make([]*domain.BreakRecord, 0, len(b.Data.Records))
	for i, rb := range b.Data.Records {
		bt, err := domain.ParseBreakType(rb.Type)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("records[%d]: %w", i, err)
		}
		start, err := time.Parse(time.RFC3339, rb.StartTime)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("records[%d]: parsing startTime: %w", i, err)
		}
		rec := &domain.BreakRecord{
			ID:         rb.ID,
			EmployeeID: rb.EmployeeID,
			Type:       bt,
			StartTime:  start,
		}
		if rb.EndTime != nil {
			end, err := time.Parse(time.RFC3339, *rb.EndTime)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("records[%d]: parsing endTime: %w", i, err)
			}
			rec.EndTime = &end
		}
		records = append(records, rec)
	}

	patch, err := settingsPatch(b.Data.Settings)
	if err != nil {
		return nil, nil, nil, err
	}
	return employees, records, patch, nil
}

func settingsPatch(s *SettingsBackup) (*domain.SettingsPatch, error) {
	if s == nil {
		return nil, nil
	}
	patch := &domain.SettingsPatch{
		BathroomLimitMin: s.BathroomLimit,
		CoffeeLimitMin:   s.CoffeeLimit,
	}
	if s.CoffeeStart != nil {
		c, err := domain.ParseClock(*s.CoffeeStart)
		if err != nil {
			return nil, fmt.Errorf("settings.coffeeStart: %w", err)
		}
		patch.CoffeeStart = &c
	}
	if s.CoffeeEnd != nil {
		c, err := domain.ParseClock(*s.CoffeeEnd)
		if err != nil {
			return nil, fmt.Errorf("settings.coffeeEnd: %w", err)
		}
		patch.CoffeeEnd = &c
	}
	if len(s.Schedule) > 0 {
		patch.Schedule = make(map[int]domain.DaySchedule, len(s.Schedule))
		for key, day := range s.Schedule {
			weekday, err := strconv.Atoi(key)
			if err != nil || weekday < 0 || weekday > 6 {
				return nil, fmt.Errorf("settings.schedule: invalid weekday key %q", key)
			}
			start, err := domain.ParseClock(day.Start)
			if err != nil {
				return nil, fmt.Errorf("settings.schedule[%s].start: %w", key, err)
			}
			end, err := domain.ParseClock(day.End)
			if err != nil {
				return nil, fmt.Errorf("settings.schedule[%s].end: %w", key, err)
			}
			patch.Schedule[weekday] = domain.DaySchedule{Enabled: day.Enabled, Start: start, End: end}
		}
	}
	return patch, nil
}
