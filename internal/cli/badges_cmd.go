package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/microspark/microspark/internal/cli/formatter"
	"github.com/microspark/microspark/internal/contract"
)

func newBadgesCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "badges",
		Short: "Show unlocked badges and progress toward the rest",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := app.Stats.GetStats(context.Background(), 1)
			if err != nil {
				return err
			}

			var body string
			if len(view.Unlocked) == 0 {
				body += formatter.Dim("No badges unlocked yet. Complete a challenge to earn your first.") + "\n"
			}
			for _, b := range view.Unlocked {
				body += renderBadgeLine(b) + "\n"
			}

			if all || len(view.Unlocked) == 0 {
				body += "\n" + formatter.Header("Locked") + "\n"
				for _, b := range view.Locked {
					body += renderBadgeLine(b) + "\n"
				}
			} else if len(view.Locked) > 0 {
				body += "\n" + formatter.Dim(fmt.Sprintf("%d more to unlock. Use --all to see them.", len(view.Locked)))
			}

			fmt.Print(formatter.RenderBox("Badges", body))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include locked badges")
	return cmd
}

func renderBadgeLine(b contract.BadgeView) string {
	line := fmt.Sprintf("%s %s  %s", b.Icon, formatter.Bold(b.Name), formatter.Dim(b.Description))
	if b.Unlocked {
		when := ""
		if b.UnlockedAt != nil {
			when = "  " + formatter.Dim(formatter.HumanDate(*b.UnlockedAt))
		}
		return line + when
	}
	return line + "\n   " + formatter.RenderProgress(float64(b.Progress)/100, 12)
}
