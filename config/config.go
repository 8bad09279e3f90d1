// Package config loads the daemon configuration file.
//
// The engine itself is configured programmatically with functional options;
// this package maps a YAML file onto those options for deployments that wire
// the engine to a real serial device.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mishuma/cutebot-op-v01/engine"
	"github.com/mishuma/cutebot-op-v01/logger"
	"github.com/mishuma/cutebot-op-v01/wire"
)

// Default values for fields omitted from the file.
const (
	DefaultBaudRate = 115200
	DefaultProfile  = "A"
)

// Config is the daemon configuration file.
type Config struct {
	// SerialPort is the serial device path, e.g. /dev/ttyACM0.
	SerialPort string `yaml:"serial_port"`
	// BaudRate is the serial line speed.
	BaudRate int `yaml:"baud_rate"`

	// Profile selects the wire dialect: "A", "B" or "C".
	Profile string `yaml:"profile"`

	// QueueCapacity overrides the bounded command queue capacity.
	// Zero keeps the engine default.
	QueueCapacity int `yaml:"queue_capacity"`
	// TimerIntervalMS overrides the timed-action polling interval.
	// Zero keeps the engine default.
	TimerIntervalMS int `yaml:"timer_interval_ms"`
	// TelemetryIntervalMS overrides the periodic telemetry interval.
	// Zero keeps the engine default.
	TelemetryIntervalMS int `yaml:"telemetry_interval_ms"`
	// BusyWhenExecuting rejects submissions whenever a command is
	// executing, not only when the queue is full.
	BusyWhenExecuting bool `yaml:"busy_when_executing"`

	// LogLevel is one of debug, info, warn, error. Empty means info.
	LogLevel string `yaml:"log_level"`
	// LogFile, when set, sends log output to a size-rotated file instead
	// of stdout.
	LogFile string `yaml:"log_file"`
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := &Config{
		BaudRate: DefaultBaudRate,
		Profile:  DefaultProfile,
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.SerialPort == "" {
		return fmt.Errorf("config: serial_port is required")
	}
	if c.BaudRate <= 0 {
		return fmt.Errorf("config: invalid baud_rate %d", c.BaudRate)
	}
	if _, err := c.WireProfile(); err != nil {
		return err
	}
	if c.QueueCapacity < 0 {
		return fmt.Errorf("config: invalid queue_capacity %d", c.QueueCapacity)
	}
	if c.TimerIntervalMS < 0 || c.TelemetryIntervalMS < 0 {
		return fmt.Errorf("config: intervals must not be negative")
	}

	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", c.LogLevel)
	}

	return nil
}

// WireProfile resolves the profile name to its wire.Profile value.
func (c *Config) WireProfile() (wire.Profile, error) {
	switch c.Profile {
	case "A", "a":
		return wire.ProfileA, nil
	case "B", "b":
		return wire.ProfileB, nil
	case "C", "c":
		return wire.ProfileC, nil
	default:
		return wire.Profile{}, fmt.Errorf("config: unknown profile %q", c.Profile)
	}
}

// EngineOptions converts the file into engine functional options.
func (c *Config) EngineOptions(l logger.Logger) ([]engine.Option, error) {
	profile, err := c.WireProfile()
	if err != nil {
		return nil, err
	}

	opts := []engine.Option{
		engine.WithProfile(profile),
		engine.WithBusyWhenExecuting(c.BusyWhenExecuting),
	}
	if l != nil {
		opts = append(opts, engine.WithLogger(l))
	}
	if c.QueueCapacity > 0 {
		opts = append(opts, engine.WithQueueCapacity(c.QueueCapacity))
	}
	if c.TimerIntervalMS > 0 {
		opts = append(opts, engine.WithTimerInterval(time.Duration(c.TimerIntervalMS)*time.Millisecond))
	}
	if c.TelemetryIntervalMS > 0 {
		opts = append(opts, engine.WithTelemetryInterval(time.Duration(c.TelemetryIntervalMS)*time.Millisecond))
	}

	return opts, nil
}

// LoggerLevel resolves the log_level field.
func (c *Config) LoggerLevel() logger.Level {
	switch c.LogLevel {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}
