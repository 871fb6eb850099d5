package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/acarvalho/pausas/internal/db"
)

// Meta keys used by the application.
const (
	MetaCurrentWorkspace = "current_workspace"
)

// SQLiteMetaRepo implements MetaRepo over the key/value meta table.
type SQLiteMetaRepo struct {
	db db.DBTX
}

// NewSQLiteMetaRepo creates a new SQLiteMetaRepo.
func NewSQLiteMetaRepo(conn db.DBTX) *SQLiteMetaRepo {
	return &SQLiteMetaRepo{db: conn}
}

func (r *SQLiteMetaRepo) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("meta %q: %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("scanning meta: %w", err)
	}
	return value, nil
}

func (r *SQLiteMetaRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`, key, value)
	if err != nil {
		return fmt.Errorf("upserting meta: %w", err)
	}
	return nil
}
