package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/microspark/microspark/internal/cli/formatter"
	"github.com/microspark/microspark/internal/domain"
)

// sparkHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func sparkHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func newSetupCmd(app *App) *cobra.Command {
	var name string
	var weeklyGoal, duration int
	var categoriesFlag []string

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Set your name, weekly goal and preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			profile, err := app.Profiles.Get(ctx)
			if err != nil {
				return err
			}

			flagsGiven := cmd.Flags().Changed("name") ||
				cmd.Flags().Changed("weekly-goal") ||
				cmd.Flags().Changed("default-duration") ||
				cmd.Flags().Changed("categories")

			if flagsGiven || !app.interactive() {
				applySetupFlags(cmd, profile, name, weeklyGoal, duration, categoriesFlag)
			} else if err := runSetupForm(profile); err != nil {
				return err
			}

			if err := app.Profiles.Update(ctx, profile); err != nil {
				return err
			}

			fmt.Printf("Saved. Weekly goal %d, default duration %s.\n",
				profile.WeeklyGoal, formatter.FormatMinutes(profile.DefaultDuration))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().IntVar(&weeklyGoal, "weekly-goal", 0, "Challenges per week to aim for")
	cmd.Flags().IntVar(&duration, "default-duration", 0, "Preferred challenge length in minutes")
	cmd.Flags().StringSliceVar(&categoriesFlag, "categories", nil, "Preferred categories (comma separated)")
	return cmd
}

func applySetupFlags(cmd *cobra.Command, p *domain.UserProfile, name string, goal, duration int, categories []string) {
	if cmd.Flags().Changed("name") {
		p.Name = name
	}
	if cmd.Flags().Changed("weekly-goal") {
		p.WeeklyGoal = goal
	}
	if cmd.Flags().Changed("default-duration") {
		p.DefaultDuration = duration
	}
	if cmd.Flags().Changed("categories") {
		p.PreferredCategories = p.PreferredCategories[:0]
		for _, c := range categories {
			p.PreferredCategories = append(p.PreferredCategories, domain.Category(strings.TrimSpace(c)))
		}
	}
}

func runSetupForm(p *domain.UserProfile) error {
	goal := strconv.Itoa(p.WeeklyGoal)
	duration := strconv.Itoa(p.DefaultDuration)
	selected := make([]string, 0, len(p.PreferredCategories))
	for _, c := range p.PreferredCategories {
		selected = append(selected, string(c))
	}

	options := make([]huh.Option[string], 0, len(domain.Categories))
	for _, c := range domain.Categories {
		options = append(options, huh.NewOption(string(c), string(c)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Your name").
				Placeholder("optional").
				Value(&p.Name),
			huh.NewInput().
				Title("Weekly goal (challenges)").
				Validate(positiveInt).
				Value(&goal),
			huh.NewInput().
				Title("Default duration (minutes)").
				Validate(positiveInt).
				Value(&duration),
			huh.NewMultiSelect[string]().
				Title("Preferred categories").
				Options(options...).
				Value(&selected),
		),
	).WithTheme(sparkHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	p.WeeklyGoal, _ = strconv.Atoi(goal)
	p.DefaultDuration, _ = strconv.Atoi(duration)
	p.PreferredCategories = p.PreferredCategories[:0]
	for _, c := range selected {
		p.PreferredCategories = append(p.PreferredCategories, domain.Category(c))
	}
	return nil
}

func positiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}
