package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/microspark/microspark/internal/cli/formatter"
	"github.com/microspark/microspark/internal/domain"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show progress dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := app.Stats.GetStats(context.Background(), 0)
			if err != nil {
				return err
			}

			var body string
			body += fmt.Sprintf("%s   %s %s\n\n",
				formatter.StreakFlame(view.CurrentStreak),
				formatter.Dim("longest"),
				formatter.Bold(fmt.Sprintf("%d", view.LongestStreak)))

			body += fmt.Sprintf("%s %s completed, %s total\n\n",
				formatter.Bold(fmt.Sprintf("%d", view.TotalChallenges)),
				pluralize(view.TotalChallenges, "challenge", "challenges"),
				formatter.Bold(formatter.FormatMinutes(view.TotalMinutes)))

			body += formatter.Header("This week") + "\n"
			body += formatter.RenderGoalProgress(view.WeeklyProgress, view.WeeklyGoal, 20) + "\n\n"

			body += formatter.Header("By category") + "\n"
			rows := make([][]string, 0, len(domain.Categories))
			for _, c := range domain.Categories {
				rows = append(rows, []string{
					formatter.CategoryBadge(c),
					fmt.Sprintf("%d", view.CategoryCounts[c]),
				})
			}
			body += formatter.RenderTable([]string{"CATEGORY", "DONE"}, rows)

			body += "\n" + formatter.Dim(fmt.Sprintf("Badges unlocked: %d/%d",
				len(view.Unlocked), len(view.Unlocked)+len(view.Locked)))

			fmt.Print(formatter.RenderBox("Progress", body))
			return nil
		},
	}
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func newHeatmapCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Show the daily activity heatmap",
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 1 {
				return fmt.Errorf("days must be at least 1")
			}
			view, err := app.Stats.GetStats(context.Background(), days)
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderBox("Activity", formatter.RenderHeatmap(view.Heatmap)))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 84, "Window size in days")
	return cmd
}
