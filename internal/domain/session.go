package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidState marks an operation that is illegal for the session's
// current state. Only Start reports it; every other command applied in the
// wrong state is a deliberate no-op.
var ErrInvalidState = errors.New("invalid session state")

// CompletionEvent is emitted exactly once when a session completes, whether
// by countdown expiry or manual completion. DurationMinutes is always the
// challenge's nominal duration, regardless of elapsed time.
type CompletionEvent struct {
	EventID     string
	ChallengeID string
	Category    Category
	// DurationMinutes is the credited duration, not the elapsed one.
	DurationMinutes int
	StartedAt       time.Time
	CompletedAt     time.Time
}

// SessionCommand is the closed set of session operations. Apply matches it
// exhaustively, so every transition is covered at compile time.
type SessionCommand interface {
	isSessionCommand()
}

type StartCommand struct{}
type PauseCommand struct{}
type ResumeCommand struct{}
type CompleteCommand struct{}
type StopCommand struct{}

func (StartCommand) isSessionCommand()    {}
func (PauseCommand) isSessionCommand()    {}
func (ResumeCommand) isSessionCommand()   {}
func (CompleteCommand) isSessionCommand() {}
func (StopCommand) isSessionCommand()     {}

// ChallengeSession is one live attempt at a challenge: a countdown plus a
// small state machine (idle -> running -> paused -> completed). At most one
// session is live at a time; the runner enforces that.
//
// Invariant: 0 <= RemainingSeconds <= TotalSeconds. A completed session is
// immutable; all commands on it are no-ops.
type ChallengeSession struct {
	Challenge        Challenge
	TotalSeconds     int
	RemainingSeconds int
	State            SessionState
	StartedAt        time.Time

	newEventID func() string
	now        func() time.Time
	event      *CompletionEvent
}

// NewChallengeSession creates an idle session for the given challenge.
// newEventID and now are injected so tests control identity and time.
func NewChallengeSession(c Challenge, newEventID func() string, now func() time.Time) (*ChallengeSession, error) {
	if c.DurationMinutes <= 0 {
		return nil, fmt.Errorf("challenge duration %d minutes: %w", c.DurationMinutes, ErrValidation)
	}
	total := c.DurationMinutes * 60
	return &ChallengeSession{
		Challenge:        c,
		TotalSeconds:     total,
		RemainingSeconds: total,
		State:            SessionIdle,
		newEventID:       newEventID,
		now:              now,
	}, nil
}

// Apply dispatches a session command. The returned event is non-nil only
// for the transition that completed the session.
func (s *ChallengeSession) Apply(cmd SessionCommand) (*CompletionEvent, error) {
	switch cmd.(type) {
	case StartCommand:
		return nil, s.Start()
	case PauseCommand:
		s.Pause()
		return nil, nil
	case ResumeCommand:
		s.Resume()
		return nil, nil
	case CompleteCommand:
		return s.Complete(), nil
	case StopCommand:
		s.Stop()
		return nil, nil
	default:
		// Unreachable: SessionCommand is a closed interface.
		return nil, fmt.Errorf("unknown session command %T: %w", cmd, ErrInvalidState)
	}
}

// Start moves an idle session to running and begins the countdown.
func (s *ChallengeSession) Start() error {
	if s.State != SessionIdle {
		return fmt.Errorf("start from %s: %w", s.State, ErrInvalidState)
	}
	s.RemainingSeconds = s.TotalSeconds
	s.StartedAt = s.now()
	s.State = SessionRunning
	return nil
}

// Pause freezes the countdown. No-op unless running.
func (s *ChallengeSession) Pause() {
	if s.State == SessionRunning {
		s.State = SessionPaused
	}
}

// Resume continues the countdown from the frozen value. No-op unless paused.
func (s *ChallengeSession) Resume() {
	if s.State == SessionPaused {
		s.State = SessionRunning
	}
}

// Stop abandons the session: back to idle, countdown reset, no event.
// No-op unless running or paused.
func (s *ChallengeSession) Stop() {
	if s.State == SessionRunning || s.State == SessionPaused {
		s.State = SessionIdle
		s.RemainingSeconds = s.TotalSeconds
	}
}

// Complete finishes the session early and returns the completion event.
// The credited duration is the challenge's nominal duration however much
// time actually elapsed. No-op (nil event) unless running or paused.
func (s *ChallengeSession) Complete() *CompletionEvent {
	if s.State != SessionRunning && s.State != SessionPaused {
		return nil
	}
	return s.complete()
}

// Tick advances the countdown by one second while running. When the
// countdown reaches zero the session completes and the event is returned.
// Ticks in any other state are no-ops.
func (s *ChallengeSession) Tick() *CompletionEvent {
	if s.State != SessionRunning {
		return nil
	}
	if s.RemainingSeconds > 0 {
		s.RemainingSeconds--
	}
	if s.RemainingSeconds == 0 {
		return s.complete()
	}
	return nil
}

func (s *ChallengeSession) complete() *CompletionEvent {
	s.State = SessionCompleted
	s.event = &CompletionEvent{
		EventID:         s.newEventID(),
		ChallengeID:     s.Challenge.ID,
		Category:        s.Challenge.Category,
		DurationMinutes: s.Challenge.DurationMinutes,
		StartedAt:       s.StartedAt,
		CompletedAt:     s.now(),
	}
	return s.event
}

// Event returns the completion event, or nil if the session never completed.
func (s *ChallengeSession) Event() *CompletionEvent {
	return s.event
}

// FormattedTime renders the remaining countdown as MM:SS.
func (s *ChallengeSession) FormattedTime() string {
	mins := s.RemainingSeconds / 60
	secs := s.RemainingSeconds % 60
	return fmt.Sprintf("%02d:%02d", mins, secs)
}

// ProgressPercent is how far through the countdown the session is, 0..100.
func (s *ChallengeSession) ProgressPercent() float64 {
	if s.TotalSeconds == 0 {
		return 0
	}
	return float64(s.TotalSeconds-s.RemainingSeconds) / float64(s.TotalSeconds) * 100
}
