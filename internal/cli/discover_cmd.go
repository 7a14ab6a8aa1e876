package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/microspark/microspark/internal/catalog"
	"github.com/microspark/microspark/internal/cli/formatter"
)

func newDiscoverCmd(app *App) *cobra.Command {
	var filter catalogFilter
	var count int
	var seed int64

	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Suggest random challenges to try",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := filter.validate(); err != nil {
				return err
			}
			if count < 1 {
				return fmt.Errorf("count must be at least 1")
			}

			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			rng := rand.New(rand.NewSource(seed))

			picks := catalog.Random(rng, count, filter.category, filter.duration)
			if len(picks) == 0 {
				fmt.Println("No challenges match the filter.")
				return nil
			}

			var body string
			for i, c := range picks {
				if i > 0 {
					body += "\n"
				}
				body += fmt.Sprintf("%s %s  %s %s\n",
					formatter.Bold(c.Title),
					formatter.Dim("("+c.ID+")"),
					formatter.CategoryBadge(c.Category),
					formatter.Dim(formatter.FormatMinutes(c.DurationMinutes)))
				body += formatter.Dim(c.Description) + "\n"
			}
			body += "\n" + formatter.Dim("Start one with: microspark start <id>")

			fmt.Print(formatter.RenderBox("Discover", body))
			return nil
		},
	}

	filter.register(cmd.Flags())
	cmd.Flags().IntVarP(&count, "count", "n", 3, "Number of suggestions")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (default: current time)")
	return cmd
}
