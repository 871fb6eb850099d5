package repository

import (
	"context"
	"errors"

	"github.com/acarvalho/pausas/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

type WorkspaceRepo interface {
	Create(ctx context.Context, w *domain.Workspace) error
	GetByID(ctx context.Context, id string) (*domain.Workspace, error)
	GetByKey(ctx context.Context, key string) (*domain.Workspace, error)
	List(ctx context.Context) ([]*domain.Workspace, error)
}

type EmployeeRepo interface {
	// Create appends the employee at the end of the workspace roster.
	Create(ctx context.Context, workspaceID string, e *domain.Employee) error
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	// ListByWorkspace returns the roster in display order.
	ListByWorkspace(ctx context.Context, workspaceID string) ([]*domain.Employee, error)
	Rename(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
	DeleteByWorkspace(ctx context.Context, workspaceID string) error
	// UpdatePositions rewrites roster positions to match orderedIDs.
	UpdatePositions(ctx context.Context, workspaceID string, orderedIDs []string) error
}

type RecordRepo interface {
	Create(ctx context.Context, workspaceID string, r *domain.BreakRecord) error
	GetByID(ctx context.Context, id string) (*domain.BreakRecord, error)
	// ListByWorkspace returns records most-recent-first. The order is
	// display order only, never load-bearing for correctness.
	ListByWorkspace(ctx context.Context, workspaceID string) ([]*domain.BreakRecord, error)
	// ActiveForEmployee returns the employee's open record, most recent
	// start first when direct edits have produced more than one.
	ActiveForEmployee(ctx context.Context, workspaceID, employeeID string) (*domain.BreakRecord, error)
	Update(ctx context.Context, r *domain.BreakRecord) error
	Delete(ctx context.Context, id string) error
	DeleteByWorkspace(ctx context.Context, workspaceID string) error
}

type SettingsRepo interface {
	// Get returns the workspace settings merged over defaults. A missing
	// row or missing schedule days fall back to DefaultSettings.
	Get(ctx context.Context, workspaceID string) (*domain.Settings, error)
	Save(ctx context.Context, workspaceID string, s *domain.Settings) error
}

type MetaRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
