package engine

import (
	"sync"
	"time"

	"github.com/mishuma/cutebot-op-v01/logger"
)

// StopAction is invoked when a timed action expires. It issues the actuator
// stop and emits completion telemetry.
type StopAction func()

// TimerState is a snapshot of the supervised timed action.
type TimerState struct {
	Active   bool
	Deadline time.Time
}

// TimerSupervisor enforces the duration of the single in-flight timed action
// (a GO run) by elapsed-time polling, so the executor can return immediately
// instead of blocking.
//
// At most one timed action is supervised at a time. Arming while a previous
// action is active replaces it. An explicit stop command cancels the action
// regardless of tick phase; cancellation and expiry both clear the state
// before invoking anything, so the stop action fires at most once.
type TimerSupervisor struct {
	mu       sync.Mutex
	active   bool
	deadline time.Time
	onExpire StopAction
	logger   logger.Logger
}

// NewTimerSupervisor creates a TimerSupervisor.
func NewTimerSupervisor(l logger.Logger) *TimerSupervisor {
	return &TimerSupervisor{logger: l}
}

// Arm registers a timed action expiring after d. A previously armed action
// is replaced without firing its stop action; the new run has taken over
// the motors.
func (s *TimerSupervisor) Arm(d time.Duration, onExpire StopAction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		s.logger.Debug("timed action replaced", "remaining", time.Until(s.deadline))
	}

	s.active = true
	s.deadline = time.Now().Add(d)
	s.onExpire = onExpire
}

// Cancel clears the armed action without firing it. It returns whether an
// action was active.
func (s *TimerSupervisor) Cancel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	was := s.active
	s.active = false
	s.onExpire = nil

	return was
}

// Active reports whether a timed action is armed.
func (s *TimerSupervisor) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.active
}

// State returns a snapshot of the supervised action.
func (s *TimerSupervisor) State() TimerState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return TimerState{Active: s.active, Deadline: s.deadline}
}

// Tick checks the armed action against now and fires its stop action if the
// deadline has passed. It returns whether the action expired on this tick.
//
// The state is cleared before the stop action runs, so a concurrent Cancel
// or a later Tick cannot fire it a second time.
func (s *TimerSupervisor) Tick(now time.Time) bool {
	s.mu.Lock()
	if !s.active || now.Before(s.deadline) {
		s.mu.Unlock()
		return false
	}

	fn := s.onExpire
	s.active = false
	s.onExpire = nil
	s.mu.Unlock()

	if fn != nil {
		fn()
	}

	return true
}
