package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/microspark/microspark/internal/catalog"
	"github.com/microspark/microspark/internal/cli/formatter"
	"github.com/microspark/microspark/internal/contract"
	"github.com/microspark/microspark/internal/domain"
	"github.com/microspark/microspark/internal/timer"
)

func newStartCmd(app *App) *cobra.Command {
	var noUI bool

	cmd := &cobra.Command{
		Use:   "start ID",
		Short: "Start a challenge session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := catalog.ByID(args[0]); err != nil {
				return err
			}

			if noUI || !app.interactive() {
				return runHeadlessSession(app, args[0])
			}

			if err := app.Runner.Start(context.Background(), args[0]); err != nil {
				return err
			}
			defer app.Runner.Teardown()

			p := tea.NewProgram(newSessionModel(app))
			if _, err := p.Run(); err != nil {
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noUI, "no-ui", false, "Run the countdown without the interactive UI")
	return cmd
}

// runHeadlessSession drives the session off the runner's own ticker and
// prints a one-line countdown. Interrupt abandons the session uncredited.
func runHeadlessSession(app *App, challengeID string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := app.Runner.Start(ctx, challengeID); err != nil {
		return err
	}
	defer app.Runner.Teardown()

	tick := timer.NewIntervalTicker()
	tick.Start(time.Second, app.Runner.Tick)
	defer tick.Stop()

	c, _ := catalog.ByID(challengeID)
	fmt.Printf("%s %s\n", formatter.Bold(c.Title), formatter.Dim("("+formatter.FormatMinutes(c.DurationMinutes)+")"))

	poll := time.NewTicker(250 * time.Millisecond)
	defer poll.Stop()

	for {
		select {
		case <-ctx.Done():
			app.Runner.Stop()
			fmt.Println("\nStopped. Nothing was recorded.")
			return nil
		case <-poll.C:
			view := app.Runner.View()
			if view == nil {
				return nil
			}
			if view.State == domain.SessionCompleted {
				fmt.Printf("\r⏱  00:00\n\n%s\n", renderCompletionSummary(app.Runner.LastResult()))
				return nil
			}
			fmt.Printf("\r⏱  %s ", view.FormattedTime)
		}
	}
}

func renderCompletionSummary(res *contract.CompletionResult) string {
	out := formatter.StyleGreen.Render("✔ Challenge complete!")
	if res == nil {
		return out
	}
	if res.Queued {
		out += "\n" + formatter.Dim("Saved locally; progress will sync when the store is back.")
	}
	for _, b := range res.NewBadges {
		out += fmt.Sprintf("\n%s New badge: %s %s", b.Icon, formatter.Bold(b.Name), formatter.Dim(b.Description))
	}
	return out
}
