package service

import (
	"context"
	"fmt"

	"github.com/acarvalho/pausas/internal/domain"
	"github.com/acarvalho/pausas/internal/report"
	"github.com/acarvalho/pausas/internal/repository"
)

type recordService struct {
	records  repository.RecordRepo
	settings repository.SettingsRepo
}

func NewRecordService(records repository.RecordRepo, settings repository.SettingsRepo) RecordService {
	return &recordService{records: records, settings: settings}
}

func (s *recordService) List(ctx context.Context, workspaceID string, f report.Filter) ([]*domain.BreakRecord, error) {
	all, err := s.records.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	settings, err := s.settings.Get(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	return report.FilterRecords(all, settings, f), nil
}

func (s *recordService) GetByID(ctx context.Context, id string) (*domain.BreakRecord, error) {
	return s.records.GetByID(ctx, id)
}

func (s *recordService) Update(ctx context.Context, rec *domain.BreakRecord) error {
	if _, err := domain.ParseBreakType(string(rec.Type)); err != nil {
		return err
	}
	if rec.EmployeeID == "" {
		return fmt.Errorf("record employee is required")
	}
	return s.records.Update(ctx, rec)
}

func (s *recordService) CloseByID(ctx context.Context, id string) error {
	rec, err := s.records.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !rec.Active() {
		return fmt.Errorf("marking return: %w", ErrNoActiveBreak)
	}
	end := nowFunc()
	rec.EndTime = &end
	return s.records.Update(ctx, rec)
}

func (s *recordService) Delete(ctx context.Context, id string) error {
	return s.records.Delete(ctx, id)
}
