package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/microspark/microspark/internal/catalog"
	"github.com/microspark/microspark/internal/domain"
	"github.com/microspark/microspark/internal/repository"
	"github.com/microspark/microspark/internal/testutil"
	"github.com/microspark/microspark/internal/timer"
)

// The runner tests assert no calendar math, so a real clock is fine and
// keeps ListRecent's relative-date window honest.
var runnerNow = time.Now().UTC().Truncate(time.Second)

func newRunnerFixture(t *testing.T) (*SessionRunner, *timer.ManualTicker, repository.ActivityRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	activities := repository.NewSQLiteActivityRepo(database)
	progress := NewProgressService(activities, testutil.NewTestUoW(database),
		WithClock(func() time.Time { return runnerNow }))
	ticker := &timer.ManualTicker{}
	runner := NewSessionRunner(progress, ticker,
		WithRunnerClock(func() time.Time { return runnerNow }))
	return runner, ticker, activities
}

func TestSessionRunnerStartUnknownChallenge(t *testing.T) {
	runner, _, _ := newRunnerFixture(t)

	err := runner.Start(context.Background(), "no-such-thing")
	require.ErrorIs(t, err, catalog.ErrUnknownChallenge)
	assert.Nil(t, runner.View())
}

func TestSessionRunnerStart(t *testing.T) {
	runner, ticker, activities := newRunnerFixture(t)
	ctx := context.Background()

	require.NoError(t, runner.Start(ctx, "gratitude-moment"))
	assert.True(t, ticker.Started)

	view := runner.View()
	require.NotNil(t, view)
	assert.Equal(t, "gratitude-moment", view.ChallengeID)
	assert.Equal(t, domain.SessionRunning, view.State)
	assert.Equal(t, 180, view.RemainingSeconds)
	assert.Equal(t, "03:00", view.FormattedTime)

	// Starting also appends the in-progress record.
	recent, err := activities.ListRecent(ctx, domain.LocalUserID, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, domain.ActivityInProgress, recent[0].Status)
}

func TestSessionRunnerCountdownCompletes(t *testing.T) {
	runner, ticker, activities := newRunnerFixture(t)
	ctx := context.Background()

	require.NoError(t, runner.Start(ctx, "gratitude-moment"))
	ticker.Advance(180)

	view := runner.View()
	require.NotNil(t, view)
	assert.Equal(t, domain.SessionCompleted, view.State)
	assert.Equal(t, "00:00", view.FormattedTime)
	assert.Equal(t, float64(100), view.ProgressPercent)
	assert.True(t, ticker.Stopped, "the tick source must not outlive the countdown")

	res := runner.LastResult()
	require.NotNil(t, res)
	assert.False(t, res.Queued)

	// The started record was finalized, not duplicated.
	completed, err := activities.ListCompleted(ctx, domain.LocalUserID)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, 3, completed[0].DurationMinutes)
}

func TestSessionRunnerPauseFreezesCountdown(t *testing.T) {
	runner, ticker, _ := newRunnerFixture(t)

	require.NoError(t, runner.Start(context.Background(), "gratitude-moment"))
	ticker.Advance(30)

	runner.Pause()
	assert.True(t, ticker.Stopped)
	ticker.Advance(60) // dropped while paused
	assert.Equal(t, 150, runner.View().RemainingSeconds)
	assert.Equal(t, domain.SessionPaused, runner.View().State)

	runner.Resume()
	ticker.Advance(10)
	assert.Equal(t, 140, runner.View().RemainingSeconds)
	assert.Equal(t, domain.SessionRunning, runner.View().State)
}

func TestSessionRunnerEarlyCompleteCreditsNominalDuration(t *testing.T) {
	runner, ticker, activities := newRunnerFixture(t)
	ctx := context.Background()

	require.NoError(t, runner.Start(ctx, "gratitude-moment"))
	ticker.Advance(10)
	runner.Complete()

	assert.Equal(t, domain.SessionCompleted, runner.View().State)
	assert.True(t, ticker.Stopped)

	completed, err := activities.ListCompleted(ctx, domain.LocalUserID)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, 3, completed[0].DurationMinutes, "ten elapsed seconds still credit the nominal three minutes")
}

func TestSessionRunnerStopAbandonsWithoutCredit(t *testing.T) {
	runner, ticker, activities := newRunnerFixture(t)
	ctx := context.Background()

	require.NoError(t, runner.Start(ctx, "gratitude-moment"))
	ticker.Advance(30)
	runner.Stop()

	assert.True(t, ticker.Stopped)
	assert.Equal(t, domain.SessionIdle, runner.View().State)
	assert.Nil(t, runner.LastResult())

	completed, err := activities.ListCompleted(ctx, domain.LocalUserID)
	require.NoError(t, err)
	assert.Empty(t, completed)
}

func TestSessionRunnerStartReplacesLiveSession(t *testing.T) {
	runner, ticker, activities := newRunnerFixture(t)
	ctx := context.Background()

	require.NoError(t, runner.Start(ctx, "gratitude-moment"))
	ticker.Advance(30)

	require.NoError(t, runner.Start(ctx, "desk-stretches"))
	view := runner.View()
	assert.Equal(t, "desk-stretches", view.ChallengeID)
	assert.Equal(t, domain.SessionRunning, view.State)

	// The abandoned session left no completion behind.
	completed, err := activities.ListCompleted(ctx, domain.LocalUserID)
	require.NoError(t, err)
	assert.Empty(t, completed)
}

func TestSessionRunnerTeardownCancelsTicker(t *testing.T) {
	runner, ticker, _ := newRunnerFixture(t)

	require.NoError(t, runner.Start(context.Background(), "gratitude-moment"))
	runner.Teardown()

	assert.True(t, ticker.Stopped)
	assert.Nil(t, runner.View())

	// Ticks after teardown are dropped.
	ticker.Advance(10)
	assert.Nil(t, runner.View())
}

func TestSessionRunnerNoSessionIsNoOp(t *testing.T) {
	runner, _, _ := newRunnerFixture(t)

	runner.Pause()
	runner.Resume()
	runner.Complete()
	runner.Stop()
	assert.Nil(t, runner.View())
	assert.Nil(t, runner.LastResult())
}
