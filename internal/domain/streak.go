package domain

import (
	"math"
	"sort"
	"time"
)

// Streaks holds the consecutive-day counts derived from the activity log.
type Streaks struct {
	Current int
	Longest int
}

// HeatmapDay is one derived cell of the activity heatmap. It is recomputed
// from the log on demand and never persisted.
type HeatmapDay struct {
	Date       time.Time // midnight UTC
	Challenges int
	Level      int // 0..4
}

// Calendar-day boundaries are fixed to UTC so results do not drift with the
// machine's zone or around local midnight. "today" is passed in explicitly
// to keep the computation deterministic under test.

// ComputeStreaks derives the current and longest consecutive-day streaks
// from completed records. Multiple completions on one day count once.
// The current streak is zero when the most recent completed day is more
// than one day before today.
func ComputeStreaks(records []*ActivityRecord, today time.Time) Streaks {
	days := completedDaysDescending(records)
	if len(days) == 0 {
		return Streaks{}
	}

	todayDay := dayUTC(today)

	var current int
	if daysBetween(days[0], todayDay) <= 1 {
		current = 1
		for i := 1; i < len(days); i++ {
			if daysBetween(days[i], days[i-1]) == 1 {
				current++
			} else {
				break
			}
		}
	}

	longest := 1
	run := 1
	for i := 1; i < len(days); i++ {
		if daysBetween(days[i], days[i-1]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	if current > longest {
		longest = current
	}

	return Streaks{Current: current, Longest: longest}
}

// ComputeHeatmap builds one cell per calendar day for the trailing
// windowDays days, today inclusive, oldest first. The level buckets the
// day's completion count onto a five-step intensity scale.
func ComputeHeatmap(records []*ActivityRecord, windowDays int, today time.Time) []HeatmapDay {
	counts := make(map[time.Time]int)
	for _, r := range records {
		if r.Status != ActivityCompleted || r.CompletedAt == nil {
			continue
		}
		counts[dayUTC(*r.CompletedAt)]++
	}

	todayDay := dayUTC(today)
	cells := make([]HeatmapDay, 0, windowDays)
	for i := windowDays - 1; i >= 0; i-- {
		day := todayDay.AddDate(0, 0, -i)
		n := counts[day]
		cells = append(cells, HeatmapDay{
			Date:       day,
			Challenges: n,
			Level:      HeatmapLevel(n),
		})
	}
	return cells
}

// HeatmapLevel buckets a daily completion count onto the 0..4 intensity
// scale: 0 at zero, level 1 at 1-2, up to level 4 at 5 or more.
func HeatmapLevel(count int) int {
	if count == 0 {
		return 0
	}
	level := int(math.Ceil(float64(count) / 1.5))
	if level > 4 {
		level = 4
	}
	return level
}

// completedDaysDescending returns the distinct UTC calendar days with at
// least one completion, most recent first.
func completedDaysDescending(records []*ActivityRecord) []time.Time {
	seen := make(map[time.Time]bool)
	var days []time.Time
	for _, r := range records {
		if r.Status != ActivityCompleted || r.CompletedAt == nil {
			continue
		}
		day := dayUTC(*r.CompletedAt)
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })
	return days
}

func dayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween counts whole calendar days from earlier to later.
func daysBetween(earlier, later time.Time) int {
	return int(later.Sub(earlier).Hours() / 24)
}
