package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/acarvalho/pausas/internal/db"
	"github.com/acarvalho/pausas/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo using a SQLite database.
// Settings are stored as one row in workspace_settings plus one row per
// weekday in schedule_days; a missing row falls back to defaults so a
// partially saved schedule never loses defaulted days.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context, workspaceID string) (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	row := r.db.QueryRowContext(ctx,
		`SELECT coffee_start, coffee_end, bathroom_limit_min, coffee_limit_min
		 FROM workspace_settings WHERE workspace_id = ?`, workspaceID)

	var coffeeStart, coffeeEnd string
	err := row.Scan(&coffeeStart, &coffeeEnd, &settings.BathroomLimitMin, &settings.CoffeeLimitMin)
	switch {
	case err == sql.ErrNoRows:
		// Keep defaults; still merge any stored schedule days below.
	case err != nil:
		return nil, fmt.Errorf("scanning workspace settings: %w", err)
	default:
		if settings.CoffeeStart, err = domain.ParseClock(coffeeStart); err != nil {
			return nil, fmt.Errorf("parsing coffee_start: %w", err)
		}
		if settings.CoffeeEnd, err = domain.ParseClock(coffeeEnd); err != nil {
			return nil, fmt.Errorf("parsing coffee_end: %w", err)
		}
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT weekday, enabled, start_time, end_time FROM schedule_days WHERE workspace_id = ?`,
		workspaceID)
	if err != nil {
		return nil, fmt.Errorf("listing schedule days: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var weekday, enabled int
		var startStr, endStr string
		if err := rows.Scan(&weekday, &enabled, &startStr, &endStr); err != nil {
			return nil, fmt.Errorf("scanning schedule day: %w", err)
		}
		if weekday < 0 || weekday > 6 {
			continue
		}
		day := domain.DaySchedule{Enabled: intToBool(enabled)}
		if day.Start, err = domain.ParseClock(startStr); err != nil {
			return nil, fmt.Errorf("parsing schedule start: %w", err)
		}
		if day.End, err = domain.ParseClock(endStr); err != nil {
			return nil, fmt.Errorf("parsing schedule end: %w", err)
		}
		settings.Schedule[weekday] = day
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedule days: %w", err)
	}

	return &settings, nil
}

func (r *SQLiteSettingsRepo) Save(ctx context.Context, workspaceID string, s *domain.Settings) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO workspace_settings
		 (workspace_id, coffee_start, coffee_end, bathroom_limit_min, coffee_limit_min)
		 VALUES (?, ?, ?, ?, ?)`,
		workspaceID,
		s.CoffeeStart.String(),
		s.CoffeeEnd.String(),
		s.BathroomLimitMin,
		s.CoffeeLimitMin,
	)
	if err != nil {
		return fmt.Errorf("upserting workspace settings: %w", err)
	}

	for weekday, day := range s.Schedule {
		_, err := r.db.ExecContext(ctx,
			`INSERT OR REPLACE INTO schedule_days (workspace_id, weekday, enabled, start_time, end_time)
			 VALUES (?, ?, ?, ?, ?)`,
			workspaceID, weekday, boolToInt(day.Enabled), day.Start.String(), day.End.String())
		if err != nil {
			return fmt.Errorf("upserting schedule day %d: %w", weekday, err)
		}
	}
	return nil
}
