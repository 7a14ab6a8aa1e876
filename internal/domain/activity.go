package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrValidation marks malformed input rejected before it reaches storage.
var ErrValidation = errors.New("validation failed")

// ActivityRecord is one challenge attempt in the activity log.
// EventID carries the completion-event identity; appends are idempotent on it.
type ActivityRecord struct {
	ID              string
	EventID         string
	UserID          string
	ChallengeID     string
	Status          ActivityStatus
	StartedAt       time.Time
	CompletedAt     *time.Time
	DurationMinutes int
	Notes           string
	CreatedAt       time.Time
}

// Validate checks the record's field contract before persistence.
func (a *ActivityRecord) Validate() error {
	if a.ChallengeID == "" {
		return fmt.Errorf("activity challenge id is required: %w", ErrValidation)
	}
	if a.DurationMinutes < 0 {
		return fmt.Errorf("activity duration %d is negative: %w", a.DurationMinutes, ErrValidation)
	}
	if a.Status != ActivityInProgress && a.Status != ActivityCompleted {
		return fmt.Errorf("activity status %q is unknown: %w", a.Status, ErrValidation)
	}
	if a.Status == ActivityCompleted && a.CompletedAt == nil {
		return fmt.Errorf("completed activity is missing completed_at: %w", ErrValidation)
	}
	return nil
}
