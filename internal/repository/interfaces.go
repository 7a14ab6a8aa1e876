package repository

import (
	"context"
	"time"

	"github.com/microspark/microspark/internal/domain"
)

// ActivityRepo is the persistence contract for the activity log. The
// progress aggregator is the only writer; everything else reads.
type ActivityRepo interface {
	Create(ctx context.Context, a *domain.ActivityRecord) error
	GetByID(ctx context.Context, id string) (*domain.ActivityRecord, error)
	GetByEventID(ctx context.Context, eventID string) (*domain.ActivityRecord, error)
	Update(ctx context.Context, a *domain.ActivityRecord) error
	ListCompleted(ctx context.Context, userID string) ([]*domain.ActivityRecord, error)
	ListRecent(ctx context.Context, userID string, days int) ([]*domain.ActivityRecord, error)
	Delete(ctx context.Context, id string) error
}

// BadgeRepo stores badge rule definitions and per-user unlock state.
type BadgeRepo interface {
	ListDefinitions(ctx context.Context) ([]domain.BadgeRule, error)
	ListUnlocked(ctx context.Context, userID string) ([]domain.Badge, error)
	// Unlock records a badge as unlocked at the given time. Unlocking is
	// monotonic: re-unlocking an already-unlocked badge keeps the original
	// timestamp.
	Unlock(ctx context.Context, userID, badgeID string, at time.Time) error
	UpsertProgress(ctx context.Context, userID, badgeID string, progress int) error
}

// ProfileRepo stores the single local user profile.
type ProfileRepo interface {
	Get(ctx context.Context, userID string) (*domain.UserProfile, error)
	Upsert(ctx context.Context, p *domain.UserProfile) error
}
