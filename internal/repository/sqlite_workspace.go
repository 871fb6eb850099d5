package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/acarvalho/pausas/internal/db"
	"github.com/acarvalho/pausas/internal/domain"
)

// SQLiteWorkspaceRepo implements WorkspaceRepo using a SQLite database.
type SQLiteWorkspaceRepo struct {
	db db.DBTX
}

// NewSQLiteWorkspaceRepo creates a new SQLiteWorkspaceRepo.
func NewSQLiteWorkspaceRepo(conn db.DBTX) *SQLiteWorkspaceRepo {
	return &SQLiteWorkspaceRepo{db: conn}
}

func (r *SQLiteWorkspaceRepo) Create(ctx context.Context, w *domain.Workspace) error {
	query := `INSERT INTO workspaces (id, name, key, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, w.ID, w.Name, w.Key, time.Now().UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("inserting workspace: %w", err)
	}
	return nil
}

func (r *SQLiteWorkspaceRepo) GetByID(ctx context.Context, id string) (*domain.Workspace, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, key FROM workspaces WHERE id = ?`, id)
	return scanWorkspace(row)
}

func (r *SQLiteWorkspaceRepo) GetByKey(ctx context.Context, key string) (*domain.Workspace, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, key FROM workspaces WHERE key = ?`, key)
	return scanWorkspace(row)
}

func (r *SQLiteWorkspaceRepo) List(ctx context.Context) ([]*domain.Workspace, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, key FROM workspaces ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing workspaces: %w", err)
	}
	defer rows.Close()

	var workspaces []*domain.Workspace
	for rows.Next() {
		var w domain.Workspace
		if err := rows.Scan(&w.ID, &w.Name, &w.Key); err != nil {
			return nil, fmt.Errorf("scanning workspace row: %w", err)
		}
		workspaces = append(workspaces, &w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating workspaces: %w", err)
	}
	return workspaces, nil
}

func scanWorkspace(row *sql.Row) (*domain.Workspace, error) {
	var w domain.Workspace
	if err := row.Scan(&w.ID, &w.Name, &w.Key); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("workspace: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning workspace: %w", err)
	}
	return &w, nil
}
