package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/microspark/microspark/internal/catalog"
	"github.com/microspark/microspark/internal/cli/formatter"
)

func newHistoryCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent challenge attempts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 1 {
				return fmt.Errorf("days must be at least 1")
			}

			records, err := app.Activities.ListRecent(context.Background(), days)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("No activity in the last", days, "days.")
				return nil
			}

			headers := []string{"WHEN", "CHALLENGE", "TIME", "STATUS"}
			rows := make([][]string, 0, len(records))
			for _, r := range records {
				title := r.ChallengeID
				if c, err := catalog.ByID(r.ChallengeID); err == nil {
					title = c.Title
				}
				when := r.StartedAt
				if r.CompletedAt != nil {
					when = *r.CompletedAt
				}
				rows = append(rows, []string{
					formatter.HumanTimestamp(when.Local()),
					title,
					formatter.FormatMinutes(r.DurationMinutes),
					formatter.ActivityStatusPill(r.Status),
				})
			}

			fmt.Print(formatter.RenderBox("History", formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Number of recent days to show")
	return cmd
}
