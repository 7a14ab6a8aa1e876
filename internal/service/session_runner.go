package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/microspark/microspark/internal/catalog"
	"github.com/microspark/microspark/internal/contract"
	"github.com/microspark/microspark/internal/domain"
	"github.com/microspark/microspark/internal/timer"
)

// SessionRunner owns the one live challenge session and its tick source.
// Starting a new session stops the previous one first, and the ticker is
// cancelled on every exit path so no recurring work outlives a discarded
// session.
type SessionRunner struct {
	progress ProgressService
	ticker   timer.Ticker
	now      func() time.Time

	mu         sync.Mutex
	session    *domain.ChallengeSession
	activityID string
	lastResult *contract.CompletionResult
}

// RunnerOption overrides a SessionRunner collaborator, mainly in tests.
type RunnerOption func(*SessionRunner)

func WithRunnerClock(now func() time.Time) RunnerOption {
	return func(r *SessionRunner) { r.now = now }
}

// NewSessionRunner creates a runner with no live session.
func NewSessionRunner(progress ProgressService, ticker timer.Ticker, opts ...RunnerOption) *SessionRunner {
	r := &SessionRunner{
		progress: progress,
		ticker:   ticker,
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start begins a session for the challenge. An unknown id fails with the
// catalog's NotFound and changes nothing. A session already running or
// paused is stopped first: one live session per user.
func (r *SessionRunner) Start(ctx context.Context, challengeID string) error {
	challenge, err := catalog.ByID(challengeID)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.session != nil && r.session.State != domain.SessionCompleted {
		r.session.Stop()
	}
	r.ticker.Stop()
	r.lastResult = nil

	session, err := domain.NewChallengeSession(challenge,
		func() string { return uuid.New().String() }, r.now)
	if err != nil {
		return err
	}

	record, err := r.progress.OnChallengeStarted(ctx, challengeID)
	if err != nil {
		return err
	}

	if err := session.Start(); err != nil {
		return err
	}
	r.session = session
	r.activityID = record.ID

	r.ticker.Start(time.Second, r.Tick)
	return nil
}

// Tick advances the countdown by one second and credits the completion
// when the countdown expires. The ticker calls it on schedule; a UI with
// its own tick source (paired with timer.NopTicker) calls it directly.
func (r *SessionRunner) Tick() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.session == nil {
		return
	}
	if ev := r.session.Tick(); ev != nil {
		r.finishLocked(*ev)
	}
}

// Pause freezes the live session and its tick source.
func (r *SessionRunner) Pause() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.session == nil {
		return
	}
	r.session.Pause()
	if r.session.State == domain.SessionPaused {
		r.ticker.Stop()
	}
}

// Resume continues a paused session.
func (r *SessionRunner) Resume() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.session == nil {
		return
	}
	r.session.Resume()
	if r.session.State == domain.SessionRunning {
		r.ticker.Start(time.Second, r.Tick)
	}
}

// Complete finishes the session early, crediting the nominal duration.
func (r *SessionRunner) Complete() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.session == nil {
		return
	}
	if ev := r.session.Complete(); ev != nil {
		r.finishLocked(*ev)
	}
}

// Stop abandons the session without crediting anything.
func (r *SessionRunner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.session == nil {
		return
	}
	r.session.Stop()
	r.ticker.Stop()
}

// Teardown discards the session entirely, cancelling the tick source.
// Safe to call on every shutdown path.
func (r *SessionRunner) Teardown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ticker.Stop()
	r.session = nil
	r.activityID = ""
}

func (r *SessionRunner) finishLocked(ev domain.CompletionEvent) {
	r.ticker.Stop()
	// The append happens now, synchronously, whatever the UI does next;
	// the progress service parks it if the store is down.
	res, err := r.progress.OnChallengeCompleted(context.Background(), ev, r.activityID)
	if err == nil {
		r.lastResult = &res
	}
}

// View returns a render snapshot of the live session, or nil without one.
func (r *SessionRunner) View() *contract.SessionView {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.session == nil {
		return nil
	}
	return &contract.SessionView{
		ChallengeID:      r.session.Challenge.ID,
		ChallengeTitle:   r.session.Challenge.Title,
		Instructions:     r.session.Challenge.Instructions,
		State:            r.session.State,
		RemainingSeconds: r.session.RemainingSeconds,
		FormattedTime:    r.session.FormattedTime(),
		ProgressPercent:  r.session.ProgressPercent(),
	}
}

// LastResult reports what the most recent completion changed, or nil if
// the session has not completed.
func (r *SessionRunner) LastResult() *contract.CompletionResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastResult
}
