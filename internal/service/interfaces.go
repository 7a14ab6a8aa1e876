package service

import (
	"context"

	"github.com/microspark/microspark/internal/contract"
	"github.com/microspark/microspark/internal/domain"
)

// ProgressService is the single writer of the activity log. It turns
// completion events into persisted records and keeps aggregate badge state
// in step.
type ProgressService interface {
	// OnChallengeStarted appends an in-progress record for a fresh attempt.
	OnChallengeStarted(ctx context.Context, challengeID string) (*domain.ActivityRecord, error)
	// OnChallengeCompleted credits a completion event, idempotently by
	// event id. activityID names the in-progress record to finalize; empty
	// means append a standalone completed record. A store outage never
	// loses the event: after one retry it is parked and flushed later.
	OnChallengeCompleted(ctx context.Context, ev domain.CompletionEvent, activityID string) (contract.CompletionResult, error)
	// Flush retries parked completions. Safe to call at any time.
	Flush(ctx context.Context) error
	// PendingCount reports how many completions await a flush.
	PendingCount() int
}

// StatsService assembles the aggregate dashboard view from the log.
type StatsService interface {
	GetStats(ctx context.Context, heatmapDays int) (*contract.StatsView, error)
}

// ActivityService reads the activity log for display.
type ActivityService interface {
	ListRecent(ctx context.Context, days int) ([]*domain.ActivityRecord, error)
}

// ProfileService reads and writes the local user profile.
type ProfileService interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	Update(ctx context.Context, p *domain.UserProfile) error
}
