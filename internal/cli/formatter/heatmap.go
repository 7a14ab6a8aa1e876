package formatter

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/microspark/microspark/internal/domain"
)

// Green intensity ramp for heatmap levels 1..4. Level 0 renders dimmed.
var levelStyles = [5]lipgloss.Style{
	StyleDim,
	lipgloss.NewStyle().Foreground(lipgloss.Color("#4e5a3a")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#6a8745")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#8ec07c")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#b8bb26")),
}

// HeatmapCell renders one activity-intensity cell.
func HeatmapCell(level int) string {
	if level <= 0 {
		return levelStyles[0].Render("·")
	}
	if level > 4 {
		level = 4
	}
	return levelStyles[level].Render("■")
}

// RenderHeatmap lays out heatmap days in a calendar grid: one column per
// week, one row per weekday, Monday first. Days arrive oldest to newest;
// the first column is padded so weekdays line up.
func RenderHeatmap(days []domain.HeatmapDay) string {
	if len(days) == 0 {
		return Dim("No activity yet.")
	}

	// weekdayIndex maps time.Weekday onto Monday-first rows.
	weekdayIndex := func(t time.Time) int {
		return (int(t.Weekday()) + 6) % 7
	}

	lead := weekdayIndex(days[0].Date)
	weeks := (lead + len(days) + 6) / 7

	// grid[row][col]: -1 marks a cell outside the window.
	grid := make([][]int, 7)
	for r := range grid {
		grid[r] = make([]int, weeks)
		for c := range grid[r] {
			grid[r][c] = -1
		}
	}
	for i, day := range days {
		pos := lead + i
		grid[pos%7][pos/7] = day.Level
	}

	rowLabels := [7]string{"Mon", "", "Wed", "", "Fri", "", "Sun"}

	var b strings.Builder
	for r := 0; r < 7; r++ {
		b.WriteString(Dim(padRight(rowLabels[r], 4)))
		for c := 0; c < weeks; c++ {
			if grid[r][c] < 0 {
				b.WriteString("  ")
				continue
			}
			b.WriteString(HeatmapCell(grid[r][c]) + " ")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + Dim("Less ") + HeatmapCell(0) + " " + HeatmapCell(1) + " " +
		HeatmapCell(2) + " " + HeatmapCell(3) + " " + HeatmapCell(4) + Dim(" More"))
	return b.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
