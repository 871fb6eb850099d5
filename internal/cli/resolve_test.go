package cli

import (
	"context"
	"testing"

	"github.com/acarvalho/pausas/internal/db"
	"github.com/acarvalho/pausas/internal/report"
	"github.com/acarvalho/pausas/internal/repository"
	"github.com/acarvalho/pausas/internal/service"
	"github.com/acarvalho/pausas/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*App, string) {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := db.NewSQLiteUnitOfWork(database)

	workspaceRepo := repository.NewSQLiteWorkspaceRepo(database)
	employeeRepo := repository.NewSQLiteEmployeeRepo(database)
	recordRepo := repository.NewSQLiteRecordRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	metaRepo := repository.NewSQLiteMetaRepo(database)

	app := &App{
		Workspaces: service.NewWorkspaceService(workspaceRepo, metaRepo, uow),
		Employees:  service.NewEmployeeService(employeeRepo, uow),
		Breaks:     service.NewBreakService(recordRepo, uow),
		Records:    service.NewRecordService(recordRepo, settingsRepo),
		Settings:   service.NewSettingsService(settingsRepo),
		Reports:    service.NewReportService(recordRepo, employeeRepo, settingsRepo),
		Backups:    service.NewBackupService(workspaceRepo, employeeRepo, recordRepo, settingsRepo, uow),
	}

	ws, err := app.Workspaces.Open(context.Background(), "Acme")
	require.NoError(t, err)
	return app, ws.ID
}

func TestResolveEmployeeID(t *testing.T) {
	app, wsID := newTestApp(t)
	ctx := context.Background()

	alice, err := app.Employees.Add(ctx, wsID, "Alice")
	require.NoError(t, err)
	_, err = app.Employees.Add(ctx, wsID, "Bob")
	require.NoError(t, err)

	id, err := resolveEmployeeID(ctx, app, wsID, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, id, "name matching is case-insensitive")

	id, err = resolveEmployeeID(ctx, app, wsID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, id)

	id, err = resolveEmployeeID(ctx, app, wsID, alice.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, alice.ID, id)

	_, err = resolveEmployeeID(ctx, app, wsID, "Trudy")
	assert.Error(t, err)

	_, err = resolveEmployeeID(ctx, app, wsID, "")
	assert.Error(t, err)
}

func TestParseRecordFilter(t *testing.T) {
	app, wsID := newTestApp(t)
	ctx := context.Background()

	alice, err := app.Employees.Add(ctx, wsID, "Alice")
	require.NoError(t, err)

	f, err := parseRecordFilter(ctx, app, wsID, "Alice", "coffee", "2025-06-01", "2025-06-30", "late")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, f.EmployeeID)
	require.NotNil(t, f.Type)
	require.NotNil(t, f.From)
	require.NotNil(t, f.To)
	assert.Equal(t, report.StatusLate, f.Status)

	_, err = parseRecordFilter(ctx, app, wsID, "", "smoke", "", "", "")
	assert.Error(t, err)

	_, err = parseRecordFilter(ctx, app, wsID, "", "", "June 1st", "", "")
	assert.Error(t, err)

	_, err = parseRecordFilter(ctx, app, wsID, "", "", "", "", "bogus")
	assert.Error(t, err)

	f, err = parseRecordFilter(ctx, app, wsID, "", "", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, report.StatusAny, f.Status)
}
