package domain

import "time"

// BadgeRule is a named milestone with a threshold predicate over aggregate
// stats. A badge unlocks the first time its predicate becomes true and is
// never revoked, even if the rule set later changes.
type BadgeRule struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Color       string
	Requirement BadgeRequirement
	Threshold   int
	// Category applies only to RequireCategoryCount rules.
	Category Category
}

// Badge is an unlocked rule.
type Badge struct {
	Rule       BadgeRule
	UnlockedAt time.Time
}

// Satisfied reports whether the rule's threshold predicate holds for the
// given stats.
func (r BadgeRule) Satisfied(s AggregateStats) bool {
	return r.measure(s) >= r.Threshold
}

// Progress is how far toward the threshold the stats have come, 0..100.
func (r BadgeRule) Progress(s AggregateStats) int {
	if r.Threshold <= 0 {
		return 100
	}
	pct := r.measure(s) * 100 / r.Threshold
	if pct > 100 {
		pct = 100
	}
	return pct
}

func (r BadgeRule) measure(s AggregateStats) int {
	switch r.Requirement {
	case RequireTotalChallenges:
		return s.TotalChallenges
	case RequireTotalMinutes:
		return s.TotalMinutes
	case RequireStreakDays:
		return s.CurrentStreak
	case RequireCategoryCount:
		return s.CategoryCounts[r.Category]
	default:
		return 0
	}
}
