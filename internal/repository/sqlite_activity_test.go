package repository

import (
	"context"
	"testing"
	"time"

	"github.com/microspark/microspark/internal/domain"
	"github.com/microspark/microspark/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteActivityRepo(database)
	ctx := context.Background()

	completedAt := time.Date(2025, 6, 15, 9, 5, 0, 0, time.UTC)
	a := testutil.NewTestActivity("desk-stretches",
		testutil.WithCompletedAt(completedAt),
		testutil.WithDuration(5),
		testutil.WithNotes("felt good"),
	)
	require.NoError(t, repo.Create(ctx, a))

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ChallengeID, got.ChallengeID)
	assert.Equal(t, domain.ActivityCompleted, got.Status)
	require.NotNil(t, got.CompletedAt)
	assert.True(t, got.CompletedAt.Equal(completedAt))
	assert.Equal(t, 5, got.DurationMinutes)
	assert.Equal(t, "felt good", got.Notes)

	byEvent, err := repo.GetByEventID(ctx, a.EventID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, byEvent.ID)
}

func TestActivityRepo_GetMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteActivityRepo(database)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetByEventID(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestActivityRepo_DuplicateEventIDRejected(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteActivityRepo(database)
	ctx := context.Background()

	a := testutil.NewTestActivity("wall-pushups", testutil.WithEventID("evt-1"))
	require.NoError(t, repo.Create(ctx, a))

	dup := testutil.NewTestActivity("wall-pushups", testutil.WithEventID("evt-1"))
	err := repo.Create(ctx, dup)
	assert.ErrorIs(t, err, ErrDuplicateEvent)

	records, err := repo.ListCompleted(ctx, domain.LocalUserID)
	require.NoError(t, err)
	assert.Len(t, records, 1, "duplicate event must not add a second row")
}

func TestActivityRepo_CreateValidates(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteActivityRepo(database)

	bad := testutil.NewTestActivity("stair-climb", testutil.WithDuration(-5))
	err := repo.Create(context.Background(), bad)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestActivityRepo_UpdateCompletesInProgressRecord(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteActivityRepo(database)
	ctx := context.Background()

	a := testutil.NewTestActivity("body-scan", testutil.WithInProgress())
	require.NoError(t, repo.Create(ctx, a))

	now := time.Now().UTC().Truncate(time.Second)
	a.Status = domain.ActivityCompleted
	a.CompletedAt = &now
	a.DurationMinutes = 5
	require.NoError(t, repo.Update(ctx, a))

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ActivityCompleted, got.Status)
	require.NotNil(t, got.CompletedAt)
}

func TestActivityRepo_UpdateMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteActivityRepo(database)

	a := testutil.NewTestActivity("body-scan")
	a.ID = "ghost"
	err := repo.Update(context.Background(), a)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestActivityRepo_ListCompletedOrdersNewestFirst(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteActivityRepo(database)
	ctx := context.Background()

	base := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		a := testutil.NewTestActivity("focus-breathing",
			testutil.WithCompletedAt(base.AddDate(0, 0, i)))
		require.NoError(t, repo.Create(ctx, a))
	}
	inProgress := testutil.NewTestActivity("body-scan", testutil.WithInProgress())
	require.NoError(t, repo.Create(ctx, inProgress))

	records, err := repo.ListCompleted(ctx, domain.LocalUserID)
	require.NoError(t, err)
	require.Len(t, records, 3, "in-progress records are excluded")
	assert.True(t, records[0].CompletedAt.After(*records[1].CompletedAt))
	assert.True(t, records[1].CompletedAt.After(*records[2].CompletedAt))
}

func TestActivityRepo_ListRecentWindow(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteActivityRepo(database)
	ctx := context.Background()

	recent := testutil.NewTestActivity("desk-stretches")
	recent.StartedAt = time.Now().UTC().Add(-2 * time.Hour)
	require.NoError(t, repo.Create(ctx, recent))

	old := testutil.NewTestActivity("desk-stretches")
	old.StartedAt = time.Now().UTC().AddDate(0, 0, -30)
	completedOld := old.StartedAt.Add(5 * time.Minute)
	old.CompletedAt = &completedOld
	require.NoError(t, repo.Create(ctx, old))

	got, err := repo.ListRecent(ctx, domain.LocalUserID, 7)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, recent.ID, got[0].ID)
}

func TestActivityRepo_Delete(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteActivityRepo(database)
	ctx := context.Background()

	a := testutil.NewTestActivity("desk-stretches")
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Delete(ctx, a.ID))

	_, err := repo.GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
