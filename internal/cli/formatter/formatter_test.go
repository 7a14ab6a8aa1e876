package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/microspark/microspark/internal/domain"
)

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		name string
		min  int
		want string
	}{
		{"zero", 0, "0m"},
		{"negative", -5, "0m"},
		{"minutes only", 45, "45m"},
		{"exact hour", 60, "1h"},
		{"hours and minutes", 95, "1h 35m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMinutes(tt.min))
		})
	}
}

func TestRenderProgressClamps(t *testing.T) {
	tests := []struct {
		name  string
		pct   float64
		width int
	}{
		{"zero", 0.0, 10},
		{"half", 0.5, 10},
		{"full", 1.0, 10},
		{"over clamps", 1.5, 10},
		{"negative clamps", -0.5, 10},
		{"tiny width clamps to 2", 0.5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderProgress(tt.pct, tt.width)
			assert.NotEmpty(t, got)
			assert.Contains(t, got, "[")
			assert.Contains(t, got, "%")
		})
	}

	assert.Contains(t, RenderProgress(0, 4), emptyBlock)
	assert.Contains(t, RenderProgress(1, 4), filledBlock)
}

func TestRenderTableAlignment(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "TITLE"},
		[][]string{
			{"a", "Desk Stretches"},
			{"bb", "Stair Climb"},
		},
	)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4, "header, separator and two data rows")
	assert.Contains(t, out, "Desk Stretches")
	assert.Contains(t, out, "Stair Climb")
}

func TestRenderTableEmptyHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestDifficultyStars(t *testing.T) {
	assert.Contains(t, DifficultyStars(1), "★")
	assert.Contains(t, DifficultyStars(1), "☆")
	assert.NotContains(t, DifficultyStars(3), "☆")
	// Out-of-range values clamp instead of panicking.
	assert.NotEmpty(t, DifficultyStars(0))
	assert.NotEmpty(t, DifficultyStars(9))
}

func TestHeatmapCellLevels(t *testing.T) {
	assert.Contains(t, HeatmapCell(0), "·")
	for level := 1; level <= 4; level++ {
		assert.Contains(t, HeatmapCell(level), "■")
	}
	assert.Contains(t, HeatmapCell(9), "■")
}

func TestRenderHeatmapGrid(t *testing.T) {
	// Two weeks ending on a Sunday: seven rows plus the legend.
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC) // a Monday
	var days []domain.HeatmapDay
	for i := 0; i < 14; i++ {
		days = append(days, domain.HeatmapDay{Date: start.AddDate(0, 0, i)})
	}
	days[13].Challenges = 2
	days[13].Level = 2

	out := RenderHeatmap(days)
	lines := strings.Split(out, "\n")
	assert.GreaterOrEqual(t, len(lines), 8)
	assert.Contains(t, out, "Mon")
	assert.Contains(t, out, "Sun")
	assert.Contains(t, out, "Less")
	assert.Contains(t, out, "■")
}

func TestRenderHeatmapEmpty(t *testing.T) {
	assert.Contains(t, RenderHeatmap(nil), "No activity")
}

func TestCategoryBadge(t *testing.T) {
	for _, c := range domain.Categories {
		got := CategoryBadge(c)
		assert.NotEmpty(t, got)
	}
	assert.Contains(t, CategoryBadge(domain.CategoryPhysical), "Physical")
	assert.Contains(t, CategoryBadge(""), "--")
}
