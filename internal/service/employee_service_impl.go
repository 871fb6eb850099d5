package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/acarvalho/pausas/internal/db"
	"github.com/acarvalho/pausas/internal/domain"
	"github.com/acarvalho/pausas/internal/repository"
	"github.com/google/uuid"
)

type employeeService struct {
	employees repository.EmployeeRepo
	uow       db.UnitOfWork
}

func NewEmployeeService(employees repository.EmployeeRepo, uow db.UnitOfWork) EmployeeService {
	return &employeeService{employees: employees, uow: uow}
}

func (s *employeeService) Add(ctx context.Context, workspaceID, name string) (*domain.Employee, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("employee name is required")
	}
	e := &domain.Employee{ID: uuid.New().String(), Name: name}
	if err := s.employees.Create(ctx, workspaceID, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *employeeService) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	return s.employees.GetByID(ctx, id)
}

func (s *employeeService) List(ctx context.Context, workspaceID string) ([]*domain.Employee, error) {
	return s.employees.ListByWorkspace(ctx, workspaceID)
}

func (s *employeeService) Rename(ctx context.Context, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("employee name is required")
	}
	return s.employees.Rename(ctx, id, name)
}

func (s *employeeService) Remove(ctx context.Context, id string) error {
	return s.employees.Delete(ctx, id)
}

func (s *employeeService) Reorder(ctx context.Context, workspaceID string, from, to int) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txEmployees := repository.NewSQLiteEmployeeRepo(tx)
		roster, err := txEmployees.ListByWorkspace(ctx, workspaceID)
		if err != nil {
			return err
		}
		if from < 0 || from >= len(roster) || to < 0 || to >= len(roster) {
			return fmt.Errorf("reorder indices out of range (roster size %d)", len(roster))
		}
		if from == to {
			return nil
		}

		// List splice: remove at from, insert at to.
		ids := make([]string, 0, len(roster))
		for _, e := range roster {
			ids = append(ids, e.ID)
		}
		moved := ids[from]
		ids = append(ids[:from], ids[from+1:]...)
		ids = append(ids[:to], append([]string{moved}, ids[to:]...)...)

		return txEmployees.UpdatePositions(ctx, workspaceID, ids)
	})
}
