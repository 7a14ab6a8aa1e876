package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/microspark/microspark/internal/domain"
)

// ActivityOption customizes a fixture activity record.
type ActivityOption func(*domain.ActivityRecord)

func WithCompletedAt(at time.Time) ActivityOption {
	return func(a *domain.ActivityRecord) {
		t := at.UTC()
		a.CompletedAt = &t
		a.Status = domain.ActivityCompleted
	}
}

func WithInProgress() ActivityOption {
	return func(a *domain.ActivityRecord) {
		a.Status = domain.ActivityInProgress
		a.CompletedAt = nil
	}
}

func WithDuration(minutes int) ActivityOption {
	return func(a *domain.ActivityRecord) {
		a.DurationMinutes = minutes
	}
}

func WithEventID(id string) ActivityOption {
	return func(a *domain.ActivityRecord) {
		a.EventID = id
	}
}

func WithUserID(id string) ActivityOption {
	return func(a *domain.ActivityRecord) {
		a.UserID = id
	}
}

func WithNotes(notes string) ActivityOption {
	return func(a *domain.ActivityRecord) {
		a.Notes = notes
	}
}

// NewTestActivity builds a completed activity for the given challenge,
// finished now unless an option overrides it.
func NewTestActivity(challengeID string, opts ...ActivityOption) *domain.ActivityRecord {
	now := time.Now().UTC()
	a := &domain.ActivityRecord{
		ID:              uuid.New().String(),
		EventID:         uuid.New().String(),
		UserID:          domain.LocalUserID,
		ChallengeID:     challengeID,
		Status:          domain.ActivityCompleted,
		StartedAt:       now.Add(-5 * time.Minute),
		CompletedAt:     &now,
		DurationMinutes: 5,
		CreatedAt:       now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewTestEvent builds a completion event for the given challenge.
func NewTestEvent(challengeID string, category domain.Category, minutes int, completedAt time.Time) domain.CompletionEvent {
	return domain.CompletionEvent{
		EventID:         uuid.New().String(),
		ChallengeID:     challengeID,
		Category:        category,
		DurationMinutes: minutes,
		StartedAt:       completedAt.Add(-time.Duration(minutes) * time.Minute),
		CompletedAt:     completedAt,
	}
}
