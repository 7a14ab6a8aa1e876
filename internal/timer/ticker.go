// Package timer provides the cancellable periodic tick source that drives a
// headless challenge session. The interactive TUI has its own tick source
// (bubbletea's Tick); both feed the same session state machine.
package timer

import (
	"sync"
	"time"
)

// Ticker schedules a recurring callback. At most one schedule is active per
// Ticker; Start on a running ticker replaces the old schedule. Stop is
// idempotent and must be called on every exit path so no tick source
// outlives its session.
type Ticker interface {
	Start(interval time.Duration, fn func())
	Stop()
}

// IntervalTicker implements Ticker with a time.Ticker on a goroutine.
type IntervalTicker struct {
	mu   sync.Mutex
	stop chan struct{}
}

// NewIntervalTicker returns a stopped IntervalTicker.
func NewIntervalTicker() *IntervalTicker {
	return &IntervalTicker{}
}

func (t *IntervalTicker) Start(interval time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()

	stop := make(chan struct{})
	t.stop = stop
	go func() {
		tick := time.NewTicker(interval)
		defer tick.Stop()
		for {
			select {
			case <-tick.C:
				fn()
			case <-stop:
				return
			}
		}
	}()
}

func (t *IntervalTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

func (t *IntervalTicker) stopLocked() {
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}

// NopTicker is a Ticker that never fires. It backs sessions whose caller
// supplies its own tick schedule, like the interactive UI ticking on
// bubbletea's timer.
type NopTicker struct{}

func (NopTicker) Start(time.Duration, func()) {}
func (NopTicker) Stop()                       {}

// ManualTicker is a Ticker driven by explicit Advance calls, for
// deterministic tests.
type ManualTicker struct {
	fn      func()
	Started bool
	Stopped bool
}

func (t *ManualTicker) Start(interval time.Duration, fn func()) {
	t.fn = fn
	t.Started = true
	t.Stopped = false
}

func (t *ManualTicker) Stop() {
	t.fn = nil
	t.Stopped = true
}

// Advance fires the scheduled callback n times. Ticks after Stop are
// dropped, matching the real ticker's cancellation guarantee.
func (t *ManualTicker) Advance(n int) {
	for i := 0; i < n && t.fn != nil; i++ {
		t.fn()
	}
}
