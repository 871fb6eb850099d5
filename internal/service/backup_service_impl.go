package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/acarvalho/pausas/internal/backup"
	"github.com/acarvalho/pausas/internal/db"
	"github.com/acarvalho/pausas/internal/domain"
	"github.com/acarvalho/pausas/internal/repository"
)

type backupService struct {
	workspaces repository.WorkspaceRepo
	employees  repository.EmployeeRepo
	records    repository.RecordRepo
	settings   repository.SettingsRepo
	uow        db.UnitOfWork
}

func NewBackupService(workspaces repository.WorkspaceRepo, employees repository.EmployeeRepo, records repository.RecordRepo, settings repository.SettingsRepo, uow db.UnitOfWork) BackupService {
	return &backupService{
		workspaces: workspaces,
		employees:  employees,
		records:    records,
		settings:   settings,
		uow:        uow,
	}
}

func (s *backupService) Export(ctx context.Context, workspaceID string, w io.Writer) error {
	ws, err := s.workspaces.GetByID(ctx, workspaceID)
	if err != nil {
		return err
	}
	employees, err := s.employees.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return err
	}
	records, err := s.records.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return err
	}
	settings, err := s.settings.Get(ctx, workspaceID)
	if err != nil {
		return err
	}
	return backup.New(ws.Name, employees, records, settings, nowFunc()).Save(w)
}

func (s *backupService) Import(ctx context.Context, workspaceID string, r io.Reader) (*ImportResult, error) {
	b, err := backup.Load(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", backup.ErrInvalidBackup, err)
	}
	if errs := backup.Validate(b); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %v", backup.ErrInvalidBackup, errors.Join(errs...))
	}
	employees, records, patch, err := backup.ToDomain(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", backup.ErrInvalidBackup, err)
	}

	// Settings merge over defaults, exactly like loading a stored blob.
	settings := domain.DefaultSettings()
	if patch != nil {
		settings = domain.MergeSettings(settings, *patch)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txEmployees := repository.NewSQLiteEmployeeRepo(tx)
		txRecords := repository.NewSQLiteRecordRepo(tx)

		if err := txEmployees.DeleteByWorkspace(ctx, workspaceID); err != nil {
			return err
		}
		if err := txRecords.DeleteByWorkspace(ctx, workspaceID); err != nil {
			return err
		}
		for _, e := range employees {
			if err := txEmployees.Create(ctx, workspaceID, e); err != nil {
				return err
			}
		}
		for _, rec := range records {
			if err := txRecords.Create(ctx, workspaceID, rec); err != nil {
				return err
			}
		}
		if patch != nil {
			if err := repository.NewSQLiteSettingsRepo(tx).Save(ctx, workspaceID, &settings); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ImportResult{EmployeeCount: len(employees), RecordCount: len(records)}, nil
}

func (s *backupService) ExportCSV(ctx context.Context, workspaceID string, w io.Writer) error {
	employees, err := s.employees.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return err
	}
	records, err := s.records.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return err
	}
	settings, err := s.settings.Get(ctx, workspaceID)
	if err != nil {
		return err
	}
	return backup.WriteCSV(w, records, employees, settings)
}
