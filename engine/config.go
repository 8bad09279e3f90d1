package engine

import (
	"fmt"
	"time"

	"github.com/mishuma/cutebot-op-v01/logger"
	"github.com/mishuma/cutebot-op-v01/wire"
)

// Default configuration values.
const (
	// DefaultQueueCapacity is the bounded command queue capacity under
	// queued dispatch.
	DefaultQueueCapacity = 6

	// DefaultTimerInterval is the timed-action polling interval. Expiry
	// precision is bounded by it: a commanded duration may overrun by up
	// to one tick.
	DefaultTimerInterval = 100 * time.Millisecond

	// DefaultTelemetryInterval is the periodic sensor telemetry interval.
	DefaultTelemetryInterval = 500 * time.Millisecond

	// DefaultBackSpeed is the speed used by BK when its speed argument
	// is zero.
	DefaultBackSpeed = 50
)

// Limits of the buzzer tone frequency.
const (
	MinToneHz = 100
	MaxToneHz = 5000
)

// MaxQueueCapacity bounds the configurable queue capacity. The queue exists
// to absorb short bursts, not to pipeline work.
const MaxQueueCapacity = 64

// Config holds all configuration for an Engine.
type Config struct {
	profile wire.Profile

	queueCapacity     int
	timerInterval     time.Duration
	telemetryInterval time.Duration

	// busyWhenExecuting rejects a submission whenever a command is
	// executing, even if the queue has room. The deployed dialects
	// disagree on this policy, so it is configurable; the default is to
	// reject only when the queue is full.
	busyWhenExecuting bool

	defaultBackSpeed uint8

	logger logger.Logger
}

// NewConfig creates an engine configuration.
//
// The defaults are ProfileA, a queue of DefaultQueueCapacity, the default
// tick intervals and the package default logger. opts are functional options
// applied in order; see With* functions.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		profile:           wire.ProfileA,
		queueCapacity:     DefaultQueueCapacity,
		timerInterval:     DefaultTimerInterval,
		telemetryInterval: DefaultTelemetryInterval,
		defaultBackSpeed:  DefaultBackSpeed,
		logger:            logger.GetLogger(),
	}

	for _, opt := range opts {
		if err := opt.apply(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Profile returns the wire protocol profile.
func (cfg *Config) Profile() wire.Profile { return cfg.profile }

// QueueCapacity returns the bounded command queue capacity.
func (cfg *Config) QueueCapacity() int { return cfg.queueCapacity }

// TimerInterval returns the timed-action polling interval.
func (cfg *Config) TimerInterval() time.Duration { return cfg.timerInterval }

// TelemetryInterval returns the periodic telemetry interval.
func (cfg *Config) TelemetryInterval() time.Duration { return cfg.telemetryInterval }

// BusyWhenExecuting returns whether submissions are rejected whenever a
// command is executing.
func (cfg *Config) BusyWhenExecuting() bool { return cfg.busyWhenExecuting }

// DefaultBackSpeed returns the speed used by BK when its speed argument is zero.
func (cfg *Config) DefaultBackSpeed() uint8 { return cfg.defaultBackSpeed }

// GetLogger returns the configured logger.
func (cfg *Config) GetLogger() logger.Logger { return cfg.logger }

// --- Option ---

// Option is a functional option for configuring a Config.
type Option interface {
	apply(*Config) error
}

type optFunc func(*Config) error

func (f optFunc) apply(cfg *Config) error { return f(cfg) }

// WithProfile selects the wire protocol profile. The default is ProfileA.
func WithProfile(p wire.Profile) Option {
	return optFunc(func(cfg *Config) error {
		cfg.profile = p
		return nil
	})
}

// WithQueueCapacity sets the bounded command queue capacity.
// Must be in [1, MaxQueueCapacity].
func WithQueueCapacity(n int) Option {
	return optFunc(func(cfg *Config) error {
		if n < 1 || n > MaxQueueCapacity {
			return fmt.Errorf("engine: queue capacity %d out of range [1, %d]", n, MaxQueueCapacity)
		}
		cfg.queueCapacity = n

		return nil
	})
}

// WithTimerInterval sets the timed-action polling interval. Must be positive.
func WithTimerInterval(d time.Duration) Option {
	return optFunc(func(cfg *Config) error {
		if d <= 0 {
			return fmt.Errorf("engine: invalid timer interval %v", d)
		}
		cfg.timerInterval = d

		return nil
	})
}

// WithTelemetryInterval sets the periodic telemetry interval. Must be positive.
func WithTelemetryInterval(d time.Duration) Option {
	return optFunc(func(cfg *Config) error {
		if d <= 0 {
			return fmt.Errorf("engine: invalid telemetry interval %v", d)
		}
		cfg.telemetryInterval = d

		return nil
	})
}

// WithBusyWhenExecuting makes the dispatcher reply BUSY whenever another
// command is executing, instead of only when the queue is full.
func WithBusyWhenExecuting(enabled bool) Option {
	return optFunc(func(cfg *Config) error {
		cfg.busyWhenExecuting = enabled
		return nil
	})
}

// WithDefaultBackSpeed sets the speed used by BK when its speed argument
// is zero.
func WithDefaultBackSpeed(speed uint8) Option {
	return optFunc(func(cfg *Config) error {
		cfg.defaultBackSpeed = speed
		return nil
	})
}

// WithLogger sets the logger used by the engine and its tasks.
func WithLogger(l logger.Logger) Option {
	return optFunc(func(cfg *Config) error {
		if l == nil {
			return fmt.Errorf("engine: logger is nil")
		}
		cfg.logger = l

		return nil
	})
}
