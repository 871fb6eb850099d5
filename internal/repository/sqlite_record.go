package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/acarvalho/pausas/internal/db"
	"github.com/acarvalho/pausas/internal/domain"
)

// SQLiteRecordRepo implements RecordRepo using a SQLite database.
type SQLiteRecordRepo struct {
	db db.DBTX
}

// NewSQLiteRecordRepo creates a new SQLiteRecordRepo.
func NewSQLiteRecordRepo(conn db.DBTX) *SQLiteRecordRepo {
	return &SQLiteRecordRepo{db: conn}
}

func (r *SQLiteRecordRepo) Create(ctx context.Context, workspaceID string, rec *domain.BreakRecord) error {
	query := `INSERT INTO break_records (id, workspace_id, employee_id, type, start_time, end_time)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		workspaceID,
		rec.EmployeeID,
		string(rec.Type),
		rec.StartTime.Format(timeLayout),
		nullableTimeToString(rec.EndTime),
	)
	if err != nil {
		return fmt.Errorf("inserting break record: %w", err)
	}
	return nil
}

func (r *SQLiteRecordRepo) GetByID(ctx context.Context, id string) (*domain.BreakRecord, error) {
	query := `SELECT id, employee_id, type, start_time, end_time FROM break_records WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanRecord(row)
}

func (r *SQLiteRecordRepo) ListByWorkspace(ctx context.Context, workspaceID string) ([]*domain.BreakRecord, error) {
	query := `SELECT id, employee_id, type, start_time, end_time
		FROM break_records WHERE workspace_id = ?
		ORDER BY start_time DESC, id`
	rows, err := r.db.QueryContext(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("listing break records: %w", err)
	}
	defer rows.Close()
	return r.scanRecords(rows)
}

func (r *SQLiteRecordRepo) ActiveForEmployee(ctx context.Context, workspaceID, employeeID string) (*domain.BreakRecord, error) {
	query := `SELECT id, employee_id, type, start_time, end_time
		FROM break_records
		WHERE workspace_id = ? AND employee_id = ? AND end_time IS NULL
		ORDER BY start_time DESC, id
		LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, workspaceID, employeeID)
	return r.scanRecord(row)
}

func (r *SQLiteRecordRepo) Update(ctx context.Context, rec *domain.BreakRecord) error {
	query := `UPDATE break_records SET employee_id = ?, type = ?, start_time = ?, end_time = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		rec.EmployeeID,
		string(rec.Type),
		rec.StartTime.Format(timeLayout),
		nullableTimeToString(rec.EndTime),
		rec.ID,
	)
	if err != nil {
		return fmt.Errorf("updating break record: %w", err)
	}
	return requireRowAffected(res, "break record")
}

func (r *SQLiteRecordRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM break_records WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting break record: %w", err)
	}
	return requireRowAffected(res, "break record")
}

func (r *SQLiteRecordRepo) DeleteByWorkspace(ctx context.Context, workspaceID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM break_records WHERE workspace_id = ?`, workspaceID)
	if err != nil {
		return fmt.Errorf("deleting workspace break records: %w", err)
	}
	return nil
}

// scanRecord scans a single record from a *sql.Row.
func (r *SQLiteRecordRepo) scanRecord(row *sql.Row) (*domain.BreakRecord, error) {
	var rec domain.BreakRecord
	var typeStr, startStr string
	var endStr sql.NullString

	err := row.Scan(&rec.ID, &rec.EmployeeID, &typeStr, &startStr, &endStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("break record: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning break record: %w", err)
	}
	return r.populateRecord(&rec, typeStr, startStr, endStr)
}

// scanRecords scans multiple records from *sql.Rows.
func (r *SQLiteRecordRepo) scanRecords(rows *sql.Rows) ([]*domain.BreakRecord, error) {
	var records []*domain.BreakRecord
	for rows.Next() {
		var rec domain.BreakRecord
		var typeStr, startStr string
		var endStr sql.NullString

		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &typeStr, &startStr, &endStr); err != nil {
			return nil, fmt.Errorf("scanning break record row: %w", err)
		}
		record, err := r.populateRecord(&rec, typeStr, startStr, endStr)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating break records: %w", err)
	}
	return records, nil
}

// populateRecord fills in parsed fields after scanning raw strings.
func (r *SQLiteRecordRepo) populateRecord(rec *domain.BreakRecord, typeStr, startStr string, endStr sql.NullString) (*domain.BreakRecord, error) {
	bt, err := domain.ParseBreakType(typeStr)
	if err != nil {
		return nil, fmt.Errorf("parsing break type: %w", err)
	}
	rec.Type = bt

	rec.StartTime, err = parseTime(startStr)
	if err != nil {
		return nil, fmt.Errorf("parsing start_time: %w", err)
	}
	rec.EndTime = parseNullableTime(endStr)
	return rec, nil
}
