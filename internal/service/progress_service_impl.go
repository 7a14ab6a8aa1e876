package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/microspark/microspark/internal/catalog"
	"github.com/microspark/microspark/internal/contract"
	"github.com/microspark/microspark/internal/db"
	"github.com/microspark/microspark/internal/domain"
	"github.com/microspark/microspark/internal/repository"
)

// retryBackoff is the pause before the single automatic retry of a failed
// completion append.
const retryBackoff = 200 * time.Millisecond

type pendingCompletion struct {
	event      domain.CompletionEvent
	activityID string
}

type progressService struct {
	activities repository.ActivityRepo
	uow        db.UnitOfWork
	now        func() time.Time
	sleep      func(time.Duration)
	categoryOf func(challengeID string) (domain.Category, bool)

	mu      sync.Mutex
	pending []pendingCompletion
}

// ProgressOption overrides a progressService collaborator, mainly in tests.
type ProgressOption func(*progressService)

func WithClock(now func() time.Time) ProgressOption {
	return func(s *progressService) { s.now = now }
}

func WithSleep(sleep func(time.Duration)) ProgressOption {
	return func(s *progressService) { s.sleep = sleep }
}

func WithCategoryLookup(fn func(string) (domain.Category, bool)) ProgressOption {
	return func(s *progressService) { s.categoryOf = fn }
}

// NewProgressService creates the log's single writer.
func NewProgressService(activities repository.ActivityRepo, uow db.UnitOfWork, opts ...ProgressOption) ProgressService {
	s := &progressService{
		activities: activities,
		uow:        uow,
		now:        func() time.Time { return time.Now().UTC() },
		sleep:      time.Sleep,
		categoryOf: catalog.CategoryOf,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *progressService) OnChallengeStarted(ctx context.Context, challengeID string) (*domain.ActivityRecord, error) {
	if _, err := catalog.ByID(challengeID); err != nil {
		return nil, err
	}
	now := s.now()
	record := &domain.ActivityRecord{
		ID:          uuid.New().String(),
		UserID:      domain.LocalUserID,
		ChallengeID: challengeID,
		Status:      domain.ActivityInProgress,
		StartedAt:   now,
		CreatedAt:   now,
	}
	// A single append needs no transaction.
	if err := s.activities.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *progressService) OnChallengeCompleted(ctx context.Context, ev domain.CompletionEvent, activityID string) (contract.CompletionResult, error) {
	// A completion that is already parked counts as delivered.
	if s.isPending(ev.EventID) {
		return contract.CompletionResult{Queued: true, AlreadyProcessed: true}, nil
	}

	// Any interaction is an opportunity to drain earlier parked events.
	_ = s.Flush(ctx)

	res, err := s.credit(ctx, ev, activityID)
	if err == nil || !isTransient(err) {
		return res, err
	}

	// Transient store failure: one retry with backoff, then park. The
	// completion must never be lost or look failed to the user.
	s.sleep(retryBackoff)
	res, err = s.credit(ctx, ev, activityID)
	if err == nil || !isTransient(err) {
		return res, err
	}

	s.park(ev, activityID)
	return contract.CompletionResult{Queued: true}, nil
}

func (s *progressService) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var remaining []pendingCompletion
	var firstErr error
	for i, p := range s.pending {
		_, err := s.credit(ctx, p.event, p.activityID)
		if err != nil && isTransient(err) {
			// Store still down: keep this and everything after it.
			remaining = append(remaining, s.pending[i:]...)
			firstErr = err
			break
		}
		// Success, duplicate and contract errors all retire the entry.
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.pending = remaining
	return firstErr
}

func (s *progressService) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// credit applies one completion event atomically: append or finalize the
// activity record, then refresh badge unlock state from the updated log.
func (s *progressService) credit(ctx context.Context, ev domain.CompletionEvent, activityID string) (contract.CompletionResult, error) {
	var res contract.CompletionResult

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txActivities := repository.NewSQLiteActivityRepo(tx)
		txBadges := repository.NewSQLiteBadgeRepo(tx)

		// Idempotence on event identity: a redelivered event is a no-op.
		if _, err := txActivities.GetByEventID(ctx, ev.EventID); err == nil {
			res = contract.CompletionResult{AlreadyProcessed: true}
			return nil
		} else if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		if err := s.writeCompletion(ctx, txActivities, ev, activityID); err != nil {
			if errors.Is(err, repository.ErrDuplicateEvent) {
				res = contract.CompletionResult{AlreadyProcessed: true}
				return nil
			}
			return err
		}

		newBadges, err := s.refreshBadges(ctx, txActivities, txBadges)
		if err != nil {
			return err
		}
		res = contract.CompletionResult{NewBadges: newBadges}
		return nil
	})
	return res, err
}

// writeCompletion finalizes the in-progress record from the session start,
// or appends a standalone completed record when there is none.
func (s *progressService) writeCompletion(ctx context.Context, activities repository.ActivityRepo, ev domain.CompletionEvent, activityID string) error {
	completedAt := ev.CompletedAt.UTC()

	if activityID != "" {
		record, err := activities.GetByID(ctx, activityID)
		switch {
		case err == nil:
			record.EventID = ev.EventID
			record.Status = domain.ActivityCompleted
			record.CompletedAt = &completedAt
			record.DurationMinutes = ev.DurationMinutes
			return activities.Update(ctx, record)
		case !errors.Is(err, repository.ErrNotFound):
			return err
		}
		// Record vanished (e.g. parked completion outliving a cleanup):
		// fall through to a standalone append.
	}

	record := &domain.ActivityRecord{
		ID:              uuid.New().String(),
		EventID:         ev.EventID,
		UserID:          domain.LocalUserID,
		ChallengeID:     ev.ChallengeID,
		Status:          domain.ActivityCompleted,
		StartedAt:       ev.StartedAt.UTC(),
		CompletedAt:     &completedAt,
		DurationMinutes: ev.DurationMinutes,
		CreatedAt:       s.now(),
	}
	return activities.Create(ctx, record)
}

// refreshBadges recomputes aggregate stats and unlocks every rule whose
// predicate newly holds. Already-unlocked badges are left untouched.
func (s *progressService) refreshBadges(ctx context.Context, activities repository.ActivityRepo, badges repository.BadgeRepo) ([]domain.BadgeRule, error) {
	records, err := activities.ListCompleted(ctx, domain.LocalUserID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	challenges, minutes, byCategory := domain.Totals(records, s.categoryOf)
	streaks := domain.ComputeStreaks(records, now)
	stats := domain.AggregateStats{
		TotalChallenges: challenges,
		TotalMinutes:    minutes,
		CurrentStreak:   streaks.Current,
		LongestStreak:   streaks.Longest,
		CategoryCounts:  byCategory,
	}

	rules, err := badges.ListDefinitions(ctx)
	if err != nil {
		return nil, err
	}
	unlocked, err := badges.ListUnlocked(ctx, domain.LocalUserID)
	if err != nil {
		return nil, err
	}
	unlockedSet := make(map[string]bool, len(unlocked))
	for _, b := range unlocked {
		unlockedSet[b.Rule.ID] = true
	}

	var newBadges []domain.BadgeRule
	for _, rule := range rules {
		if unlockedSet[rule.ID] {
			continue
		}
		if rule.Satisfied(stats) {
			if err := badges.Unlock(ctx, domain.LocalUserID, rule.ID, now); err != nil {
				return nil, err
			}
			newBadges = append(newBadges, rule)
		} else if err := badges.UpsertProgress(ctx, domain.LocalUserID, rule.ID, rule.Progress(stats)); err != nil {
			return nil, err
		}
	}
	return newBadges, nil
}

func (s *progressService) isPending(eventID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.pending {
		if p.event.EventID == eventID {
			return true
		}
	}
	return false
}

func (s *progressService) park(ev domain.CompletionEvent, activityID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.pending {
		if p.event.EventID == ev.EventID {
			return
		}
	}
	s.pending = append(s.pending, pendingCompletion{event: ev, activityID: activityID})
}

// isTransient separates store outages (retryable) from contract errors
// (NotFound, InvalidState, validation), which surface immediately.
func isTransient(err error) bool {
	return err != nil &&
		!errors.Is(err, repository.ErrNotFound) &&
		!errors.Is(err, repository.ErrDuplicateEvent) &&
		!errors.Is(err, domain.ErrValidation) &&
		!errors.Is(err, domain.ErrInvalidState) &&
		!errors.Is(err, catalog.ErrUnknownChallenge)
}
