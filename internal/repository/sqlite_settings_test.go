package repository

import (
	"context"
	"testing"

	"github.com/acarvalho/pausas/internal/domain"
	"github.com/acarvalho/pausas/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingsFixture(t *testing.T) (*SQLiteSettingsRepo, *domain.Workspace) {
	t.Helper()
	db := testutil.NewTestDB(t)
	ws := testutil.NewTestWorkspace("Acme")
	require.NoError(t, NewSQLiteWorkspaceRepo(db).Create(context.Background(), ws))
	return NewSQLiteSettingsRepo(db), ws
}

func TestSettingsRepo_Get_NoRowReturnsDefaults(t *testing.T) {
	repo, ws := newSettingsFixture(t)

	got, err := repo.Get(context.Background(), ws.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), *got)
}

func TestSettingsRepo_SaveAndGet(t *testing.T) {
	repo, ws := newSettingsFixture(t)
	ctx := context.Background()

	s := domain.DefaultSettings()
	s.CoffeeStart = domain.MustClock("14:00")
	s.CoffeeEnd = domain.MustClock("14:30")
	s.BathroomLimitMin = 8
	s.Schedule[0] = domain.DaySchedule{Enabled: true, Start: domain.MustClock("09:00"), End: domain.MustClock("13:00")}
	require.NoError(t, repo.Save(ctx, ws.ID, &s))

	got, err := repo.Get(ctx, ws.ID)
	require.NoError(t, err)
	assert.Equal(t, s, *got)
}

func TestSettingsRepo_Get_PartialScheduleMergesDefaults(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	ws := testutil.NewTestWorkspace("Acme")
	require.NoError(t, NewSQLiteWorkspaceRepo(db).Create(ctx, ws))
	repo := NewSQLiteSettingsRepo(db)

	// Only Saturday stored. The other six days come from defaults.
	_, err := db.ExecContext(ctx,
		`INSERT INTO schedule_days (workspace_id, weekday, enabled, start_time, end_time)
		 VALUES (?, 6, 0, '10:00', '12:00')`, ws.ID)
	require.NoError(t, err)

	got, err := repo.Get(ctx, ws.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.DaySchedule{Enabled: false, Start: domain.MustClock("10:00"), End: domain.MustClock("12:00")}, got.Schedule[6])
	defaults := domain.DefaultSettings()
	for d := 0; d < 6; d++ {
		assert.Equal(t, defaults.Schedule[d], got.Schedule[d], "weekday %d", d)
	}
	assert.Equal(t, defaults.BathroomLimitMin, got.BathroomLimitMin)
}

func TestSettingsRepo_Save_Overwrites(t *testing.T) {
	repo, ws := newSettingsFixture(t)
	ctx := context.Background()

	first := domain.DefaultSettings()
	first.CoffeeLimitMin = 20
	require.NoError(t, repo.Save(ctx, ws.ID, &first))

	second := domain.DefaultSettings()
	second.CoffeeLimitMin = 30
	require.NoError(t, repo.Save(ctx, ws.ID, &second))

	got, err := repo.Get(ctx, ws.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, got.CoffeeLimitMin)
}
