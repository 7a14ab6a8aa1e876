package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/microspark/microspark/internal/domain"
	"github.com/microspark/microspark/internal/testutil"
)

// executeCmd runs a cobra command and captures stdout/stderr. Command
// bodies print with fmt, so assertions here focus on errors and flags.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestChallengesCmd(t *testing.T) {
	app, _ := newTestApp(t)

	_, err := executeCmd(t, app, "challenges")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "challenges", "--category", "mindfulness")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "challenges", "--category", "snoozing")
	require.Error(t, err)

	_, err = executeCmd(t, app, "challenges", "--duration", "-3")
	require.Error(t, err)
}

func TestShowCmd(t *testing.T) {
	app, _ := newTestApp(t)

	_, err := executeCmd(t, app, "show", "gratitude-moment")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "show", "no-such-challenge")
	require.Error(t, err)
}

func TestDiscoverCmdSeedIsDeterministic(t *testing.T) {
	app, _ := newTestApp(t)

	_, err := executeCmd(t, app, "discover", "--seed", "7", "--count", "2")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "discover", "--count", "0")
	require.Error(t, err)
}

func TestStatsAndHeatmapCmds(t *testing.T) {
	app, activities := newTestApp(t)
	require.NoError(t, activities.Create(context.Background(),
		testutil.NewTestActivity("gratitude-moment")))

	_, err := executeCmd(t, app, "stats")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "heatmap", "--days", "14")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "heatmap", "--days", "0")
	require.Error(t, err)
}

func TestBadgesCmd(t *testing.T) {
	app, _ := newTestApp(t)

	_, err := executeCmd(t, app, "badges", "--all")
	require.NoError(t, err)
}

func TestHistoryCmd(t *testing.T) {
	app, activities := newTestApp(t)
	require.NoError(t, activities.Create(context.Background(),
		testutil.NewTestActivity("desk-stretches")))

	_, err := executeCmd(t, app, "history")
	require.NoError(t, err)
}

func TestSetupCmdWithFlags(t *testing.T) {
	app, _ := newTestApp(t)

	_, err := executeCmd(t, app, "setup",
		"--weekly-goal", "10",
		"--default-duration", "3",
		"--categories", "mindfulness,physical")
	require.NoError(t, err)

	p, err := app.Profiles.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, p.WeeklyGoal)
	assert.Equal(t, 3, p.DefaultDuration)
	assert.Equal(t, []domain.Category{domain.CategoryMindfulness, domain.CategoryPhysical},
		p.PreferredCategories)
}

func TestSetupCmdRejectsInvalidGoal(t *testing.T) {
	app, _ := newTestApp(t)

	_, err := executeCmd(t, app, "setup", "--weekly-goal", "-1")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestStartCmdUnknownChallenge(t *testing.T) {
	app, _ := newTestApp(t)

	_, err := executeCmd(t, app, "start", "no-such-challenge")
	require.Error(t, err)
}
