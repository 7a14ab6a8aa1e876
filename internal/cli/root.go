package cli

import (
	"github.com/spf13/cobra"

	"github.com/microspark/microspark/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Progress   service.ProgressService
	Stats      service.StatsService
	Activities service.ActivityService
	Profiles   service.ProfileService
	Runner     *service.SessionRunner

	// IsInteractive reports whether stdin is attached to a terminal;
	// the start command falls back to the headless runner when it is not.
	IsInteractive func() bool
}

// interactive defaults to headless when the probe is not wired.
func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "microspark" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "microspark",
		Short: "Micro-challenge tracker with streaks and badges",
	}

	root.AddCommand(
		newChallengesCmd(app),
		newShowCmd(app),
		newStartCmd(app),
		newDiscoverCmd(app),
		newStatsCmd(app),
		newHeatmapCmd(app),
		newBadgesCmd(app),
		newHistoryCmd(app),
		newSetupCmd(app),
	)

	return root
}
