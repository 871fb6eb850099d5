package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/acarvalho/pausas/internal/db"
	"github.com/acarvalho/pausas/internal/domain"
)

// SQLiteEmployeeRepo implements EmployeeRepo using a SQLite database.
type SQLiteEmployeeRepo struct {
	db db.DBTX
}

// NewSQLiteEmployeeRepo creates a new SQLiteEmployeeRepo.
func NewSQLiteEmployeeRepo(conn db.DBTX) *SQLiteEmployeeRepo {
	return &SQLiteEmployeeRepo{db: conn}
}

func (r *SQLiteEmployeeRepo) Create(ctx context.Context, workspaceID string, e *domain.Employee) error {
	query := `INSERT INTO employees (id, workspace_id, name, position)
		VALUES (?, ?, ?, (SELECT COALESCE(MAX(position) + 1, 0) FROM employees WHERE workspace_id = ?))`
	_, err := r.db.ExecContext(ctx, query, e.ID, workspaceID, e.Name, workspaceID)
	if err != nil {
		return fmt.Errorf("inserting employee: %w", err)
	}
	return nil
}

func (r *SQLiteEmployeeRepo) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name FROM employees WHERE id = ?`, id)
	var e domain.Employee
	if err := row.Scan(&e.ID, &e.Name); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("employee: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning employee: %w", err)
	}
	return &e, nil
}

func (r *SQLiteEmployeeRepo) ListByWorkspace(ctx context.Context, workspaceID string) ([]*domain.Employee, error) {
	query := `SELECT id, name FROM employees WHERE workspace_id = ? ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("listing employees: %w", err)
	}
	defer rows.Close()

	var employees []*domain.Employee
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.ID, &e.Name); err != nil {
			return nil, fmt.Errorf("scanning employee row: %w", err)
		}
		employees = append(employees, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating employees: %w", err)
	}
	return employees, nil
}

func (r *SQLiteEmployeeRepo) Rename(ctx context.Context, id, name string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE employees SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return fmt.Errorf("renaming employee: %w", err)
	}
	return requireRowAffected(res, "employee")
}

func (r *SQLiteEmployeeRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting employee: %w", err)
	}
	return requireRowAffected(res, "employee")
}

func (r *SQLiteEmployeeRepo) DeleteByWorkspace(ctx context.Context, workspaceID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE workspace_id = ?`, workspaceID)
	if err != nil {
		return fmt.Errorf("deleting workspace employees: %w", err)
	}
	return nil
}

func (r *SQLiteEmployeeRepo) UpdatePositions(ctx context.Context, workspaceID string, orderedIDs []string) error {
	for pos, id := range orderedIDs {
		_, err := r.db.ExecContext(ctx,
			`UPDATE employees SET position = ? WHERE id = ? AND workspace_id = ?`,
			pos, id, workspaceID)
		if err != nil {
			return fmt.Errorf("updating employee position: %w", err)
		}
	}
	return nil
}

// requireRowAffected maps a zero-row update/delete to ErrNotFound.
func requireRowAffected(res sql.Result, entity string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return nil
}
