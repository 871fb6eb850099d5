package backup

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/acarvalho/pausas/internal/domain"
)

// ErrInvalidBackup marks a backup file whose structure cannot be
// imported. The import aborts without touching existing state.
var ErrInvalidBackup = errors.New("invalid backup file")

// Validate checks the backup for structural errors before conversion.
// Returns a slice of all problems found.
func Validate(b *Backup) []error {
	var errs []error

	// Presence, not emptiness: an empty roster exports as [], while a
	// file from another tool omits the keys entirely.
	if b.Data.Employees == nil {
		errs = append(errs, fmt.Errorf("data.employees is required"))
	}
	if b.Data.Records == nil {
		errs = append(errs, fmt.Errorf("data.records is required"))
	}

	for i, e := range b.Data.Employees {
		if e.ID == "" {
			errs = append(errs, fmt.Errorf("employees[%d]: id is required", i))
		}
	}

	for i, r := range b.Data.Records {
		if r.ID == "" {
			errs = append(errs, fmt.Errorf("records[%d]: id is required", i))
		}
		if _, err := domain.ParseBreakType(r.Type); err != nil {
			errs = append(errs, fmt.Errorf("records[%d]: %v", i, err))
		}
		if _, err := time.Parse(time.RFC3339, r.StartTime); err != nil {
			errs = append(errs, fmt.Errorf("records[%d]: invalid startTime %q", i, r.StartTime))
		}
		if r.EndTime != nil {
			if _, err := time.Parse(time.RFC3339, *r.EndTime); err != nil {
				errs = append(errs, fmt.Errorf("records[%d]: invalid endTime %q", i, *r.EndTime))
			}
		}
	}

	errs = append(errs, validateSettings(b.Data.Settings)...)
	return errs
}

func validateSettings(s *SettingsBackup) []error {
	if s == nil {
		return nil
	}
	var errs []error
	if s.CoffeeStart != nil {
		if _, err := domain.ParseClock(*s.CoffeeStart); err != nil {
			errs = append(errs, fmt.Errorf("settings.coffeeStart: %v", err))
		}
	}
	if s.CoffeeEnd != nil {
		if _, err := domain.ParseClock(*s.CoffeeEnd); err != nil {
			errs = append(errs, fmt.Errorf("settings.coffeeEnd: %v", err))
		}
	}
	for key, day := range s.Schedule {
		weekday, err := strconv.Atoi(key)
		if err != nil || weekday < 0 || weekday > 6 {
			errs = append(errs, fmt.Errorf("settings.schedule: invalid weekday key %q", key))
			continue
		}
		if _, err := domain.ParseClock(day.Start); err != nil {
			errs = append(errs, fmt.Errorf("settings.schedule[%s].start: %v", key, err))
		}
		if _, err := domain.ParseClock(day.End); err != nil {
			errs = append(errs, fmt.Errorf("settings.schedule[%s].end: %v", key, err))
		}
	}
	return errs
}
