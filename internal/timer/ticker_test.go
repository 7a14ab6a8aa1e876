package timer

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIntervalTicker_FiresAndStops(t *testing.T) {
	var count atomic.Int32
	tick := NewIntervalTicker()
	tick.Start(time.Millisecond, func() { count.Add(1) })

	assert.Eventually(t, func() bool { return count.Load() >= 3 },
		time.Second, time.Millisecond, "ticker should fire repeatedly")

	tick.Stop()
	settled := count.Load()
	time.Sleep(20 * time.Millisecond)
	assert.LessOrEqual(t, count.Load(), settled+1, "no ticks after Stop")
}

func TestIntervalTicker_StopIsIdempotent(t *testing.T) {
	tick := NewIntervalTicker()
	tick.Stop()
	tick.Start(time.Millisecond, func() {})
	tick.Stop()
	tick.Stop()
}

func TestIntervalTicker_RestartReplacesSchedule(t *testing.T) {
	var first, second atomic.Int32
	tick := NewIntervalTicker()
	tick.Start(time.Millisecond, func() { first.Add(1) })
	tick.Start(time.Millisecond, func() { second.Add(1) })
	defer tick.Stop()

	assert.Eventually(t, func() bool { return second.Load() >= 2 },
		time.Second, time.Millisecond)
	settled := first.Load()
	time.Sleep(10 * time.Millisecond)
	assert.LessOrEqual(t, first.Load(), settled+1, "old schedule must be cancelled")
}

func TestManualTicker(t *testing.T) {
	var count int
	tick := &ManualTicker{}
	tick.Start(time.Second, func() { count++ })
	tick.Advance(5)
	assert.Equal(t, 5, count)

	tick.Stop()
	tick.Advance(3)
	assert.Equal(t, 5, count, "ticks after Stop are dropped")
	assert.True(t, tick.Stopped)
}
