package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/acarvalho/pausas/internal/db"
	"github.com/acarvalho/pausas/internal/domain"
	"github.com/acarvalho/pausas/internal/repository"
	"github.com/acarvalho/pausas/internal/testutil"
	"github.com/stretchr/testify/require"
)

// testEnv wires every repo over one in-memory database plus a workspace
// to operate in.
type testEnv struct {
	db         *sql.DB
	workspaces repository.WorkspaceRepo
	employees  repository.EmployeeRepo
	records    repository.RecordRepo
	settings   repository.SettingsRepo
	meta       repository.MetaRepo
	uow        db.UnitOfWork
	workspace  *domain.Workspace
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)

	env := &testEnv{
		db:         database,
		workspaces: repository.NewSQLiteWorkspaceRepo(database),
		employees:  repository.NewSQLiteEmployeeRepo(database),
		records:    repository.NewSQLiteRecordRepo(database),
		settings:   repository.NewSQLiteSettingsRepo(database),
		meta:       repository.NewSQLiteMetaRepo(database),
		uow:        testutil.NewTestUoW(database),
		workspace:  testutil.NewTestWorkspace("Acme"),
	}
	require.NoError(t, env.workspaces.Create(context.Background(), env.workspace))
	return env
}

// pinNow freezes the service clock for the test.
func pinNow(t *testing.T, at time.Time) {
	t.Helper()
	prev := nowFunc
	nowFunc = func() time.Time { return at }
	t.Cleanup(func() { nowFunc = prev })
}

// advanceNow moves the frozen clock.
func advanceNow(at time.Time) {
	nowFunc = func() time.Time { return at }
}
