package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/microspark/microspark/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorAqua   = lipgloss.Color("#689d6a")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleAqua   = lipgloss.NewStyle().Foreground(ColorAqua)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// CategoryStyle returns the accent style for a challenge category.
func CategoryStyle(c domain.Category) lipgloss.Style {
	switch c {
	case domain.CategoryPhysical:
		return StyleGreen
	case domain.CategoryMindfulness:
		return StyleBlue
	case domain.CategoryLearning:
		return StyleYellow
	case domain.CategoryCreativity:
		return StylePurple
	case domain.CategoryProductivity:
		return StyleAqua
	case domain.CategorySocial:
		return StyleRed
	default:
		return StyleDim
	}
}

// CategoryBadge returns a capitalized, category-colored label.
func CategoryBadge(c domain.Category) string {
	s := string(c)
	if s == "" {
		return StyleDim.Render("--")
	}
	label := strings.ToUpper(s[:1]) + s[1:]
	return CategoryStyle(c).Render(label)
}

// ActivityStatusPill returns a colored status indicator for an activity.
func ActivityStatusPill(status domain.ActivityStatus) string {
	switch status {
	case domain.ActivityCompleted:
		return StyleGreen.Render("✔ Done")
	case domain.ActivityInProgress:
		return StyleYellow.Render("● In Progress")
	default:
		return StyleDim.Render(string(status))
	}
}

// DifficultyStars renders challenge difficulty as filled and dim stars.
func DifficultyStars(difficulty int) string {
	const max = 3
	if difficulty < 1 {
		difficulty = 1
	}
	if difficulty > max {
		difficulty = max
	}
	filled := strings.Repeat("★", difficulty)
	rest := strings.Repeat("☆", max-difficulty)
	return StyleYellow.Render(filled) + StyleDim.Render(rest)
}

// StreakFlame renders a streak count with a flame, dimmed when zero.
func StreakFlame(days int) string {
	if days <= 0 {
		return StyleDim.Render("🔥 0 days")
	}
	label := fmt.Sprintf("🔥 %d day", days)
	if days > 1 {
		label += "s"
	}
	return StyleHeader.Render(label)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
