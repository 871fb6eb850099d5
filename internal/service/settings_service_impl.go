package service

import (
	"context"
	"fmt"

	"github.com/acarvalho/pausas/internal/domain"
	"github.com/acarvalho/pausas/internal/repository"
)

type settingsService struct {
	settings repository.SettingsRepo
}

func NewSettingsService(settings repository.SettingsRepo) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) Get(ctx context.Context, workspaceID string) (*domain.Settings, error) {
	return s.settings.Get(ctx, workspaceID)
}

func (s *settingsService) Update(ctx context.Context, workspaceID string, settings *domain.Settings) error {
	if settings.BathroomLimitMin <= 0 || settings.CoffeeLimitMin <= 0 {
		return fmt.Errorf("break limits must be positive")
	}
	return s.settings.Save(ctx, workspaceID, settings)
}

func (s *settingsService) SetScheduleDay(ctx context.Context, workspaceID string, weekday int, day domain.DaySchedule) error {
	if weekday < 0 || weekday > 6 {
		return fmt.Errorf("weekday must be 0-6, got %d", weekday)
	}
	current, err := s.settings.Get(ctx, workspaceID)
	if err != nil {
		return err
	}
	current.Schedule[weekday] = day
	return s.settings.Save(ctx, workspaceID, current)
}
