package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mishuma/cutebot-op-v01/logger"
)

func newTestSupervisor() *TimerSupervisor {
	return NewTimerSupervisor(logger.GetLogger())
}

func TestTimerSupervisor_ExpiresOnTick(t *testing.T) {
	s := newTestSupervisor()

	var fired atomic.Int32
	s.Arm(50*time.Millisecond, func() { fired.Add(1) })
	assert.True(t, s.Active())

	// Before the deadline nothing happens.
	assert.False(t, s.Tick(time.Now()))
	assert.True(t, s.Active())
	assert.Equal(t, int32(0), fired.Load())

	// Past the deadline the stop action fires and the state clears.
	assert.True(t, s.Tick(time.Now().Add(100*time.Millisecond)))
	assert.False(t, s.Active())
	assert.Equal(t, int32(1), fired.Load())

	// A later tick must not fire again.
	assert.False(t, s.Tick(time.Now().Add(time.Second)))
	assert.Equal(t, int32(1), fired.Load())
}

func TestTimerSupervisor_Cancel(t *testing.T) {
	s := newTestSupervisor()

	var fired atomic.Int32
	s.Arm(10*time.Millisecond, func() { fired.Add(1) })

	assert.True(t, s.Cancel())
	assert.False(t, s.Active())
	assert.False(t, s.Cancel(), "second cancel finds nothing armed")

	// Expiry after cancellation must not fire the stop action.
	assert.False(t, s.Tick(time.Now().Add(time.Second)))
	assert.Equal(t, int32(0), fired.Load())
}

func TestTimerSupervisor_ArmReplaces(t *testing.T) {
	s := newTestSupervisor()

	var first, second atomic.Int32
	s.Arm(10*time.Millisecond, func() { first.Add(1) })
	s.Arm(20*time.Millisecond, func() { second.Add(1) })

	assert.True(t, s.Tick(time.Now().Add(time.Second)))
	assert.Equal(t, int32(0), first.Load(), "replaced action must not fire")
	assert.Equal(t, int32(1), second.Load())
}

func TestTimerSupervisor_State(t *testing.T) {
	s := newTestSupervisor()

	assert.False(t, s.State().Active)

	before := time.Now()
	s.Arm(time.Second, func() {})
	state := s.State()

	assert.True(t, state.Active)
	assert.False(t, state.Deadline.Before(before.Add(time.Second)))
}

func TestTimerSupervisor_ExpiryWithinOneTickInterval(t *testing.T) {
	s := newTestSupervisor()

	var stopped atomic.Bool
	start := time.Now()
	s.Arm(255*time.Millisecond, func() { stopped.Store(true) })

	// Poll the way the engine does, at the default interval.
	tick := 20 * time.Millisecond
	for !stopped.Load() && time.Since(start) < time.Second {
		s.Tick(time.Now())
		time.Sleep(tick)
	}

	elapsed := time.Since(start)
	assert.True(t, stopped.Load(), "run never stopped")
	assert.GreaterOrEqual(t, elapsed, 255*time.Millisecond)
	assert.Less(t, elapsed, 255*time.Millisecond+5*tick, "overrun must be bounded by the tick interval")
}
