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

func TestBadgeRepo_ListDefinitionsSeeded(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteBadgeRepo(database)

	rules, err := repo.ListDefinitions(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, rules)

	byID := make(map[string]domain.BadgeRule)
	for _, r := range rules {
		byID[r.ID] = r
	}

	first, ok := byID["first-spark"]
	require.True(t, ok)
	assert.Equal(t, domain.RequireTotalChallenges, first.Requirement)
	assert.Equal(t, 1, first.Threshold)

	mindful, ok := byID["mindful-master"]
	require.True(t, ok)
	assert.Equal(t, domain.RequireCategoryCount, mindful.Requirement)
	assert.Equal(t, domain.CategoryMindfulness, mindful.Category)
}

func TestBadgeRepo_UnlockIsMonotonic(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteBadgeRepo(database)
	ctx := context.Background()

	first := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Unlock(ctx, "local", "first-spark", first))

	// Re-unlocking later must keep the original timestamp.
	require.NoError(t, repo.Unlock(ctx, "local", "first-spark", first.AddDate(0, 0, 5)))

	unlocked, err := repo.ListUnlocked(ctx, "local")
	require.NoError(t, err)
	require.Len(t, unlocked, 1)
	assert.True(t, unlocked[0].UnlockedAt.Equal(first))
}

func TestBadgeRepo_ProgressDoesNotRevokeUnlock(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteBadgeRepo(database)
	ctx := context.Background()

	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Unlock(ctx, "local", "week-streak", at))

	// A later stats recompute may push progress back down; the unlock stays.
	require.NoError(t, repo.UpsertProgress(ctx, "local", "week-streak", 40))

	unlocked, err := repo.ListUnlocked(ctx, "local")
	require.NoError(t, err)
	require.Len(t, unlocked, 1)
	assert.Equal(t, "week-streak", unlocked[0].Rule.ID)
}

func TestBadgeRepo_UpsertProgressBeforeUnlock(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteBadgeRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.UpsertProgress(ctx, "local", "century-club", 25))
	require.NoError(t, repo.UpsertProgress(ctx, "local", "century-club", 26))

	unlocked, err := repo.ListUnlocked(ctx, "local")
	require.NoError(t, err)
	assert.Empty(t, unlocked, "progress alone must not unlock")
}
