package service

import (
	"context"
	"testing"
	"time"

	"github.com/acarvalho/pausas/internal/domain"
	"github.com/acarvalho/pausas/internal/report"
	"github.com/acarvalho/pausas/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRecords_Filtered(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewRecordService(env.records, env.settings)

	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	r1 := testutil.NewTestRecord("e1", domain.BreakBathroom, start, testutil.WithDuration(5))
	r2 := testutil.NewTestRecord("e1", domain.BreakCoffee, start.Add(time.Hour), testutil.WithDuration(20))
	r3 := testutil.NewTestRecord("e2", domain.BreakBathroom, start.Add(2*time.Hour))
	for _, r := range []*domain.BreakRecord{r1, r2, r3} {
		require.NoError(t, env.records.Create(ctx, env.workspace.ID, r))
	}

	byEmployee, err := svc.List(ctx, env.workspace.ID, report.Filter{EmployeeID: "e1"})
	require.NoError(t, err)
	assert.Len(t, byEmployee, 2)

	pending, err := svc.List(ctx, env.workspace.ID, report.Filter{Status: report.StatusPending})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, r3.ID, pending[0].ID)

	// Coffee overran the 15 minute limit.
	late, err := svc.List(ctx, env.workspace.ID, report.Filter{Status: report.StatusLate})
	require.NoError(t, err)
	require.Len(t, late, 1)
	assert.Equal(t, r2.ID, late[0].ID)
}

func TestUpdateRecord_ReopenTolerated(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewRecordService(env.records, env.settings)
	breaks := NewBreakService(env.records, env.uow)

	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	pinNow(t, start)

	first, err := breaks.Open(ctx, env.workspace.ID, "e1", domain.BreakBathroom)
	require.NoError(t, err)
	advanceNow(start.Add(5 * time.Minute))
	_, err = breaks.Close(ctx, env.workspace.ID, "e1")
	require.NoError(t, err)

	second, err := breaks.Open(ctx, env.workspace.ID, "e1", domain.BreakCoffee)
	require.NoError(t, err)

	// Reopening the first record through the admin edit is allowed even
	// though it leaves the employee with two open records.
	first.EndTime = nil
	require.NoError(t, svc.Update(ctx, first))

	// The most recently started record wins the active lookup.
	active, err := breaks.ActiveFor(ctx, env.workspace.ID, "e1")
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, second.ID, active.ID)
}

func TestUpdateRecord_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewRecordService(env.records, env.settings)

	rec := testutil.NewTestRecord("e1", domain.BreakBathroom, time.Now())
	require.NoError(t, env.records.Create(ctx, env.workspace.ID, rec))

	rec.Type = "smoke"
	assert.Error(t, svc.Update(ctx, rec))

	rec.Type = domain.BreakCoffee
	rec.EmployeeID = ""
	assert.Error(t, svc.Update(ctx, rec))
}

func TestCloseByID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewRecordService(env.records, env.settings)

	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	pinNow(t, start.Add(7*time.Minute))
	rec := testutil.NewTestRecord("e1", domain.BreakBathroom, start)
	require.NoError(t, env.records.Create(ctx, env.workspace.ID, rec))

	require.NoError(t, svc.CloseByID(ctx, rec.ID))
	got, err := svc.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	dur, ok := got.Duration()
	require.True(t, ok)
	assert.Equal(t, 7, dur)

	err = svc.CloseByID(ctx, rec.ID)
	assert.ErrorIs(t, err, ErrNoActiveBreak)
}

func TestDeleteRecord(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewRecordService(env.records, env.settings)

	rec := testutil.NewTestRecord("e1", domain.BreakBathroom, time.Now(), testutil.WithDuration(3))
	require.NoError(t, env.records.Create(ctx, env.workspace.ID, rec))

	require.NoError(t, svc.Delete(ctx, rec.ID))
	all, err := env.records.ListByWorkspace(ctx, env.workspace.ID)
	require.NoError(t, err)
	assert.Empty(t, all)
}
