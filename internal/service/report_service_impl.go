package service

import (
	"context"

	"github.com/acarvalho/pausas/internal/report"
	"github.com/acarvalho/pausas/internal/repository"
)

type reportService struct {
	records   repository.RecordRepo
	employees repository.EmployeeRepo
	settings  repository.SettingsRepo
}

func NewReportService(records repository.RecordRepo, employees repository.EmployeeRepo, settings repository.SettingsRepo) ReportService {
	return &reportService{records: records, employees: employees, settings: settings}
}

// Build reads the workspace state and hands it to the pure aggregation
// engine. Nothing here writes.
func (s *reportService) Build(ctx context.Context, workspaceID string, f report.Filter) (*report.Report, error) {
	records, err := s.records.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	employees, err := s.employees.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	settings, err := s.settings.Get(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	return report.Build(records, employees, settings, f), nil
}
