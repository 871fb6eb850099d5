package testutil

import (
	"time"

	"github.com/acarvalho/pausas/internal/domain"
	"github.com/google/uuid"
)

// NewTestWorkspace builds a workspace with a key derived from the name.
func NewTestWorkspace(name string) *domain.Workspace {
	return &domain.Workspace{
		ID:   uuid.New().String(),
		Name: name,
		Key:  domain.WorkspaceKey(name),
	}
}

// NewTestEmployee builds an employee with a fresh ID.
func NewTestEmployee(name string) *domain.Employee {
	return &domain.Employee{ID: uuid.New().String(), Name: name}
}

// Record options
type RecordOption func(*domain.BreakRecord)

// WithEnd closes the record at the given time.
func WithEnd(end time.Time) RecordOption {
	return func(r *domain.BreakRecord) {
		e := end
		r.EndTime = &e
	}
}

// WithDuration closes the record the given number of minutes after start.
func WithDuration(minutes int) RecordOption {
	return func(r *domain.BreakRecord) {
		e := r.StartTime.Add(time.Duration(minutes) * time.Minute)
		r.EndTime = &e
	}
}

// NewTestRecord builds a break record. Without options the record is active.
func NewTestRecord(employeeID string, bt domain.BreakType, start time.Time, opts ...RecordOption) *domain.BreakRecord {
	r := &domain.BreakRecord{
		ID:         uuid.New().String(),
		EmployeeID: employeeID,
		Type:       bt,
		StartTime:  start,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
