package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/microspark/microspark/internal/catalog"
	"github.com/microspark/microspark/internal/cli/formatter"
	"github.com/microspark/microspark/internal/domain"
)

func newChallengesCmd(app *App) *cobra.Command {
	var filter catalogFilter

	cmd := &cobra.Command{
		Use:   "challenges",
		Short: "List available challenges",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := filter.validate(); err != nil {
				return err
			}

			challenges := catalog.ByCategory(filter.category)
			if filter.duration > 0 {
				challenges = intersectByDuration(challenges, filter.duration)
			}
			if len(challenges) == 0 {
				fmt.Println("No challenges match the filter.")
				return nil
			}

			headers := []string{"ID", "TITLE", "CATEGORY", "TIME", "DIFFICULTY"}
			rows := make([][]string, 0, len(challenges))
			for _, c := range challenges {
				rows = append(rows, []string{
					c.ID,
					c.Title,
					formatter.CategoryBadge(c.Category),
					formatter.FormatMinutes(c.DurationMinutes),
					formatter.DifficultyStars(c.Difficulty),
				})
			}

			fmt.Print(formatter.RenderBox("Challenges", formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	filter.register(cmd.Flags())
	return cmd
}

// intersectByDuration keeps the challenges near the requested duration.
func intersectByDuration(challenges []domain.Challenge, minutes int) []domain.Challenge {
	near := make(map[string]bool)
	for _, c := range catalog.ByDuration(minutes, catalog.DefaultTolerance) {
		near[c.ID] = true
	}
	out := challenges[:0:0]
	for _, c := range challenges {
		if near[c.ID] {
			out = append(out, c)
		}
	}
	return out
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a challenge's details and instructions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalog.ByID(args[0])
			if err != nil {
				return err
			}

			var body string
			body += formatter.Bold(c.Title) + "\n"
			body += formatter.Dim(c.Description) + "\n\n"
			body += fmt.Sprintf("%s  %s  %s\n\n",
				formatter.CategoryBadge(c.Category),
				formatter.FormatMinutes(c.DurationMinutes),
				formatter.DifficultyStars(c.Difficulty))
			body += formatter.Header("Instructions") + "\n"
			for i, step := range c.Instructions {
				body += fmt.Sprintf("%s %s\n", formatter.Dim(fmt.Sprintf("%d.", i+1)), step)
			}

			fmt.Print(formatter.RenderBox("", body))
			return nil
		},
	}
}
