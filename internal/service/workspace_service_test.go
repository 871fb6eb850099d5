package service

import (
	"context"
	"testing"
	"time"

	"github.com/acarvalho/pausas/internal/domain"
	"github.com/acarvalho/pausas/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenWorkspace_CreatesAndSetsCurrent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewWorkspaceService(env.workspaces, env.meta, env.uow)

	ws, err := svc.Open(ctx, "Support Desk")
	require.NoError(t, err)
	assert.Equal(t, "Support Desk", ws.Name)
	assert.Equal(t, "support_desk", ws.Key)

	cur, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, ws.ID, cur.ID)

	// A fresh workspace comes with default settings stored.
	settings, err := env.settings.Get(ctx, ws.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), *settings)
}

func TestOpenWorkspace_ReusesByKey(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewWorkspaceService(env.workspaces, env.meta, env.uow)

	first, err := svc.Open(ctx, "Support Desk")
	require.NoError(t, err)
	second, err := svc.Open(ctx, "SUPPORT   Desk")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "names differing only in case and spacing share a workspace")
	assert.Equal(t, "Support Desk", second.Name, "the original display name is kept")

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2) // env's "Acme" plus "Support Desk"
}

func TestOpenWorkspace_BlankName(t *testing.T) {
	env := newTestEnv(t)
	svc := NewWorkspaceService(env.workspaces, env.meta, env.uow)

	_, err := svc.Open(context.Background(), "   ")
	require.Error(t, err)
}

func TestOpenWorkspace_SwitchingChangesCurrent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewWorkspaceService(env.workspaces, env.meta, env.uow)

	a, err := svc.Open(ctx, "Alpha")
	require.NoError(t, err)
	b, err := svc.Open(ctx, "Beta")
	require.NoError(t, err)

	cur, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, b.ID, cur.ID)

	_, err = svc.Open(ctx, "Alpha")
	require.NoError(t, err)
	cur, err = svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, a.ID, cur.ID)
}

func TestWorkspaceIsolation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewWorkspaceService(env.workspaces, env.meta, env.uow)
	employees := NewEmployeeService(env.employees, env.uow)

	a, err := svc.Open(ctx, "Alpha")
	require.NoError(t, err)
	b, err := svc.Open(ctx, "Beta")
	require.NoError(t, err)

	_, err = employees.Add(ctx, a.ID, "Alice")
	require.NoError(t, err)

	inB, err := employees.List(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, inB)
}

func TestClearData_KeepsSettings(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewWorkspaceService(env.workspaces, env.meta, env.uow)
	employees := NewEmployeeService(env.employees, env.uow)

	e, err := employees.Add(ctx, env.workspace.ID, "Alice")
	require.NoError(t, err)
	rec := testutil.NewTestRecord(e.ID, domain.BreakCoffee, time.Now(), testutil.WithDuration(8))
	require.NoError(t, env.records.Create(ctx, env.workspace.ID, rec))

	custom := domain.DefaultSettings()
	custom.BathroomLimitMin = 20
	require.NoError(t, env.settings.Save(ctx, env.workspace.ID, &custom))

	require.NoError(t, svc.ClearData(ctx, env.workspace.ID))

	roster, err := employees.List(ctx, env.workspace.ID)
	require.NoError(t, err)
	assert.Empty(t, roster)
	records, err := env.records.ListByWorkspace(ctx, env.workspace.ID)
	require.NoError(t, err)
	assert.Empty(t, records)

	kept, err := env.settings.Get(ctx, env.workspace.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, kept.BathroomLimitMin)
}
