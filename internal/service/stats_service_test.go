package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/microspark/microspark/internal/domain"
	"github.com/microspark/microspark/internal/repository"
	"github.com/microspark/microspark/internal/testutil"
)

// A Sunday afternoon; the running week started Monday the 9th.
var statsNow = time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

func newStatsFixture(t *testing.T) (StatsService, repository.ActivityRepo, repository.ProfileRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	activities := repository.NewSQLiteActivityRepo(database)
	badges := repository.NewSQLiteBadgeRepo(database)
	profiles := repository.NewSQLiteProfileRepo(database)
	svc := NewStatsService(activities, badges, profiles,
		WithStatsClock(func() time.Time { return statsNow }))
	return svc, activities, profiles
}

func TestGetStatsEmptyLog(t *testing.T) {
	svc, _, _ := newStatsFixture(t)

	view, err := svc.GetStats(context.Background(), 0)
	require.NoError(t, err)

	assert.Zero(t, view.TotalChallenges)
	assert.Zero(t, view.TotalMinutes)
	assert.Zero(t, view.CurrentStreak)
	assert.Zero(t, view.LongestStreak)
	assert.Zero(t, view.WeeklyProgress)
	assert.Equal(t, domain.DefaultProfile().WeeklyGoal, view.WeeklyGoal)
	assert.Empty(t, view.Unlocked)
	assert.Len(t, view.Locked, 9)

	require.Len(t, view.Heatmap, DefaultHeatmapDays)
	for _, day := range view.Heatmap {
		assert.Zero(t, day.Challenges)
		assert.Zero(t, day.Level)
	}
}

func TestGetStatsAggregatesLog(t *testing.T) {
	svc, activities, _ := newStatsFixture(t)
	ctx := context.Background()

	// Three consecutive days ending today.
	for i := 0; i < 3; i++ {
		at := statsNow.AddDate(0, 0, -i)
		record := testutil.NewTestActivity("gratitude-moment",
			testutil.WithCompletedAt(at), testutil.WithDuration(3))
		require.NoError(t, activities.Create(ctx, record))
	}

	view, err := svc.GetStats(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, view.TotalChallenges)
	assert.Equal(t, 9, view.TotalMinutes)
	assert.Equal(t, 3, view.CurrentStreak)
	assert.Equal(t, 3, view.LongestStreak)
	assert.Equal(t, 3, view.CategoryCounts[domain.CategoryMindfulness])

	// Heatmap runs oldest to newest; today is the last cell.
	today := view.Heatmap[len(view.Heatmap)-1]
	assert.Equal(t, 1, today.Challenges)
	assert.Equal(t, 1, today.Level)
}

func TestGetStatsWeeklyProgressCappedAtGoal(t *testing.T) {
	svc, activities, profiles := newStatsFixture(t)
	ctx := context.Background()

	profile := domain.DefaultProfile()
	profile.WeeklyGoal = 2
	profile.UpdatedAt = statsNow
	require.NoError(t, profiles.Upsert(ctx, profile))

	for i := 0; i < 4; i++ {
		record := testutil.NewTestActivity("gratitude-moment",
			testutil.WithCompletedAt(statsNow.Add(-time.Duration(i)*time.Hour)))
		require.NoError(t, activities.Create(ctx, record))
	}

	view, err := svc.GetStats(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, view.WeeklyGoal)
	assert.Equal(t, 2, view.WeeklyProgress, "display caps at the goal")
	assert.Equal(t, 4, view.TotalChallenges, "the log keeps the uncapped truth")
}

func TestGetStatsUnlockedBadgeViews(t *testing.T) {
	database := testutil.NewTestDB(t)
	activities := repository.NewSQLiteActivityRepo(database)
	badges := repository.NewSQLiteBadgeRepo(database)
	profiles := repository.NewSQLiteProfileRepo(database)
	ctx := context.Background()

	record := testutil.NewTestActivity("gratitude-moment", testutil.WithCompletedAt(statsNow))
	require.NoError(t, activities.Create(ctx, record))
	require.NoError(t, badges.Unlock(ctx, domain.LocalUserID, "first-spark", statsNow))

	svc := NewStatsService(activities, badges, profiles,
		WithStatsClock(func() time.Time { return statsNow }))
	view, err := svc.GetStats(ctx, 0)
	require.NoError(t, err)

	require.Len(t, view.Unlocked, 1)
	got := view.Unlocked[0]
	assert.Equal(t, "first-spark", got.ID)
	assert.True(t, got.Unlocked)
	assert.Equal(t, 100, got.Progress)
	require.NotNil(t, got.UnlockedAt)
	assert.Equal(t, statsNow, got.UnlockedAt.UTC())

	assert.Len(t, view.Locked, 8)
	for _, b := range view.Locked {
		assert.False(t, b.Unlocked)
		assert.Less(t, b.Progress, 100)
	}
}

func TestGetStatsCustomHeatmapWindow(t *testing.T) {
	svc, _, _ := newStatsFixture(t)

	view, err := svc.GetStats(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, view.Heatmap, 7)
}
