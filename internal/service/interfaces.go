package service

import (
	"context"
	"errors"
	"io"

	"github.com/acarvalho/pausas/internal/domain"
	"github.com/acarvalho/pausas/internal/report"
)

// Precondition violations surfaced to the caller. The attempted
// operation aborts without mutating state.
var (
	ErrAlreadyOnBreak = errors.New("employee is already on a break")
	ErrNoActiveBreak  = errors.New("employee has no active break")
)

type WorkspaceService interface {
	// Open switches to the named workspace, creating its partition on
	// first use, and records it as current. Names are case-insensitive.
	Open(ctx context.Context, name string) (*domain.Workspace, error)
	// Current returns the last-opened workspace, or repository.ErrNotFound.
	Current(ctx context.Context) (*domain.Workspace, error)
	List(ctx context.Context) ([]*domain.Workspace, error)
	// ClearData deletes all employees and records of the workspace,
	// keeping its settings.
	ClearData(ctx context.Context, workspaceID string) error
}

type EmployeeService interface {
	Add(ctx context.Context, workspaceID, name string) (*domain.Employee, error)
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context, workspaceID string) ([]*domain.Employee, error)
	Rename(ctx context.Context, id, name string) error
	// Remove deletes the roster entry only; the employee's break
	// records are kept and display as removed.
	Remove(ctx context.Context, id string) error
	// Reorder relocates the employee at index from to index to,
	// a pure list splice, stable otherwise.
	Reorder(ctx context.Context, workspaceID string, from, to int) error
}

type BreakService interface {
	// Open starts a break, rejecting with ErrAlreadyOnBreak when the
	// employee already has an active record.
	Open(ctx context.Context, workspaceID, employeeID string, bt domain.BreakType) (*domain.BreakRecord, error)
	// Close ends the employee's active break, ErrNoActiveBreak when
	// none exists.
	Close(ctx context.Context, workspaceID, employeeID string) (*domain.BreakRecord, error)
	// ActiveFor returns the employee's active record, or nil when the
	// employee is available.
	ActiveFor(ctx context.Context, workspaceID, employeeID string) (*domain.BreakRecord, error)
}

type RecordService interface {
	List(ctx context.Context, workspaceID string, f report.Filter) ([]*domain.BreakRecord, error)
	GetByID(ctx context.Context, id string) (*domain.BreakRecord, error)
	// Update is an administrative override: any field may change,
	// including clearing the end time to reopen a record. It is not
	// checked against the one-active-break rule.
	Update(ctx context.Context, rec *domain.BreakRecord) error
	// CloseByID marks the return on a specific record row.
	CloseByID(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type SettingsService interface {
	Get(ctx context.Context, workspaceID string) (*domain.Settings, error)
	Update(ctx context.Context, workspaceID string, s *domain.Settings) error
	SetScheduleDay(ctx context.Context, workspaceID string, weekday int, day domain.DaySchedule) error
}

type ReportService interface {
	Build(ctx context.Context, workspaceID string, f report.Filter) (*report.Report, error)
}

// ImportResult summarizes a restored backup.
type ImportResult struct {
	EmployeeCount int
	RecordCount   int
}

type BackupService interface {
	Export(ctx context.Context, workspaceID string, w io.Writer) error
	// Import replaces the workspace's employees and records with the
	// backup contents and defaults-merges its settings. Existing state
	// is untouched when the backup is invalid.
	Import(ctx context.Context, workspaceID string, r io.Reader) (*ImportResult, error)
	ExportCSV(ctx context.Context, workspaceID string, w io.Writer) error
}
