package domain

import "time"

// AggregateStats is the derived summary of a user's activity log. It is a
// cache for display; the log itself stays the source of truth.
type AggregateStats struct {
	TotalChallenges int
	TotalMinutes    int
	CurrentStreak   int
	LongestStreak   int
	WeeklyGoal      int
	WeeklyProgress  int
	CategoryCounts  map[Category]int
}

// Totals folds completed records into challenge/minute totals and
// per-category counts. Category is resolved through the caller-supplied
// lookup since records carry only the challenge id.
func Totals(records []*ActivityRecord, categoryOf func(challengeID string) (Category, bool)) (challenges, minutes int, byCategory map[Category]int) {
	byCategory = make(map[Category]int)
	for _, r := range records {
		if r.Status != ActivityCompleted {
			continue
		}
		challenges++
		minutes += r.DurationMinutes
		if c, ok := categoryOf(r.ChallengeID); ok {
			byCategory[c]++
		}
	}
	return challenges, minutes, byCategory
}

// CompletionsThisWeek counts completions in the current UTC week, Monday
// start. The weekly goal cap is applied display-side, not here.
func CompletionsThisWeek(records []*ActivityRecord, today time.Time) int {
	start := weekStartUTC(today)
	end := start.AddDate(0, 0, 7)
	var n int
	for _, r := range records {
		if r.Status != ActivityCompleted || r.CompletedAt == nil {
			continue
		}
		at := r.CompletedAt.UTC()
		if !at.Before(start) && at.Before(end) {
			n++
		}
	}
	return n
}

func weekStartUTC(t time.Time) time.Time {
	day := dayUTC(t)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}
