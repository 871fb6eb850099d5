package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/acarvalho/pausas/internal/db"
	"github.com/acarvalho/pausas/internal/domain"
	"github.com/acarvalho/pausas/internal/repository"
	"github.com/google/uuid"
)

// nowFunc is swapped in tests to pin timestamps.
var nowFunc = time.Now

type breakService struct {
	records repository.RecordRepo
	uow     db.UnitOfWork
}

func NewBreakService(records repository.RecordRepo, uow db.UnitOfWork) BreakService {
	return &breakService{records: records, uow: uow}
}

func (s *breakService) Open(ctx context.Context, workspaceID, employeeID string, bt domain.BreakType) (*domain.BreakRecord, error) {
	rec := &domain.BreakRecord{
		ID:         uuid.New().String(),
		EmployeeID: employeeID,
		Type:       bt,
		StartTime:  nowFunc(),
	}

	// The active-record check and the insert share one transaction so
	// no second active record can slip in between them.
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRecords := repository.NewSQLiteRecordRepo(tx)
		_, err := txRecords.ActiveForEmployee(ctx, workspaceID, employeeID)
		switch {
		case err == nil:
			return fmt.Errorf("opening break: %w", ErrAlreadyOnBreak)
		case !errors.Is(err, repository.ErrNotFound):
			return err
		}
		return txRecords.Create(ctx, workspaceID, rec)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *breakService) Close(ctx context.Context, workspaceID, employeeID string) (*domain.BreakRecord, error) {
	var closed *domain.BreakRecord
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRecords := repository.NewSQLiteRecordRepo(tx)
		rec, err := txRecords.ActiveForEmployee(ctx, workspaceID, employeeID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("closing break: %w", ErrNoActiveBreak)
			}
			return err
		}
		end := nowFunc()
		rec.EndTime = &end
		if err := txRecords.Update(ctx, rec); err != nil {
			return err
		}
		closed = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return closed, nil
}

func (s *breakService) ActiveFor(ctx context.Context, workspaceID, employeeID string) (*domain.BreakRecord, error) {
	rec, err := s.records.ActiveForEmployee(ctx, workspaceID, employeeID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}
