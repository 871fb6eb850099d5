package db

import (
	"database/sql"
	"fmt"
)

// migrations are idempotent schema statements, run in order on every open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS workspaces (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		key        TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS employees (
		id           TEXT PRIMARY KEY,
		workspace_id TEXT NOT NULL REFERENCES workspaces(id) ON DELETE CASCADE,
		name         TEXT NOT NULL,
		position     INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_employees_workspace ON employees(workspace_id, position)`,

	// employee_id is deliberately not a foreign key: removing an employee
	// keeps their break records, which then display as removed.
	`CREATE TABLE IF NOT EXISTS break_records (
		id           TEXT PRIMARY KEY,
		workspace_id TEXT NOT NULL REFERENCES workspaces(id) ON DELETE CASCADE,
		employee_id  TEXT NOT NULL,
		type         TEXT NOT NULL CHECK(type IN ('bathroom','coffee')),
		start_time   TEXT NOT NULL,
		end_time     TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_break_records_workspace ON break_records(workspace_id, start_time)`,
	`CREATE INDEX IF NOT EXISTS idx_break_records_employee ON break_records(workspace_id, employee_id)`,

	`CREATE TABLE IF NOT EXISTS workspace_settings (
		workspace_id       TEXT PRIMARY KEY REFERENCES workspaces(id) ON DELETE CASCADE,
		coffee_start       TEXT NOT NULL,
		coffee_end         TEXT NOT NULL,
		bathroom_limit_min INTEGER NOT NULL,
		coffee_limit_min   INTEGER NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS schedule_days (
		workspace_id TEXT NOT NULL REFERENCES workspaces(id) ON DELETE CASCADE,
		weekday      INTEGER NOT NULL CHECK(weekday BETWEEN 0 AND 6),
		enabled      INTEGER NOT NULL DEFAULT 0,
		start_time   TEXT NOT NULL,
		end_time     TEXT NOT NULL,
		PRIMARY KEY (workspace_id, weekday)
	)`,

	// Single-row key/value store for app-level pointers, such as the
	// current workspace.
	`CREATE TABLE IF NOT EXISTS meta (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
