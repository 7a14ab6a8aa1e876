// Package contract holds the read-only snapshot types the core hands to
// the presentation layer. Views are never mutated by their consumers; all
// changes flow back through service operations.
package contract

import (
	"time"

	"github.com/microspark/microspark/internal/domain"
)

// SessionView is a render snapshot of the live challenge session.
type SessionView struct {
	ChallengeID      string
	ChallengeTitle   string
	Instructions     []string
	State            domain.SessionState
	RemainingSeconds int
	FormattedTime    string
	ProgressPercent  float64
}

// BadgeView is one badge with its unlock state and progress toward it.
type BadgeView struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Color       string
	Unlocked    bool
	UnlockedAt  *time.Time
	Progress    int // 0..100
}

// StatsView is the aggregate dashboard snapshot: totals, streaks, weekly
// goal, heatmap cells and badge state.
type StatsView struct {
	TotalChallenges int
	TotalMinutes    int
	CurrentStreak   int
	LongestStreak   int
	WeeklyGoal      int
	// WeeklyProgress is capped at WeeklyGoal for display; the log keeps
	// the uncapped truth.
	WeeklyProgress int
	CategoryCounts map[domain.Category]int
	Heatmap        []domain.HeatmapDay
	Unlocked       []BadgeView
	Locked         []BadgeView
}

// CompletionResult reports what a processed completion changed.
type CompletionResult struct {
	// Queued is true when the store was unavailable and the completion
	// was parked for a later flush instead of being dropped.
	Queued bool
	// AlreadyProcessed is true when the event had been credited before;
	// the delivery was a no-op.
	AlreadyProcessed bool
	// NewBadges lists rules that unlocked with this completion.
	NewBadges []domain.BadgeRule
}
