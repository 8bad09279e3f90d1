package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mishuma/cutebot-op-v01/logger"
	"github.com/mishuma/cutebot-op-v01/wire"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cutebotd.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Full(t *testing.T) {
	path := writeFile(t, `
serial_port: /dev/ttyACM0
baud_rate: 57600
profile: C
queue_capacity: 8
timer_interval_ms: 50
telemetry_interval_ms: 250
busy_when_executing: true
log_level: debug
log_file: /var/log/cutebotd.log
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/dev/ttyACM0", cfg.SerialPort)
	assert.Equal(t, 57600, cfg.BaudRate)
	assert.Equal(t, 8, cfg.QueueCapacity)
	assert.True(t, cfg.BusyWhenExecuting)
	assert.Equal(t, logger.DebugLevel, cfg.LoggerLevel())

	profile, err := cfg.WireProfile()
	require.NoError(t, err)
	assert.Equal(t, wire.ProfileC.Name, profile.Name)

	opts, err := cfg.EngineOptions(nil)
	require.NoError(t, err)
	assert.Len(t, opts, 5)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeFile(t, "serial_port: /dev/ttyUSB0\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultBaudRate, cfg.BaudRate)
	assert.Equal(t, DefaultProfile, cfg.Profile)
	assert.Equal(t, logger.InfoLevel, cfg.LoggerLevel())

	profile, err := cfg.WireProfile()
	require.NoError(t, err)
	assert.Equal(t, wire.StyleNewline, profile.Style)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing serial port", "baud_rate: 9600\n"},
		{"bad profile", "serial_port: /dev/ttyS0\nprofile: Z\n"},
		{"bad log level", "serial_port: /dev/ttyS0\nlog_level: loud\n"},
		{"negative queue", "serial_port: /dev/ttyS0\nqueue_capacity: -1\n"},
		{"negative interval", "serial_port: /dev/ttyS0\ntimer_interval_ms: -5\n"},
		{"not yaml", "serial_port: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestEngineOptions_IntervalConversion(t *testing.T) {
	cfg := &Config{
		SerialPort:      "/dev/ttyS0",
		BaudRate:        9600,
		Profile:         "B",
		TimerIntervalMS: 25,
	}
	require.NoError(t, cfg.validate())

	opts, err := cfg.EngineOptions(logger.GetLogger())
	require.NoError(t, err)
	// profile + busy policy + logger + timer interval
	assert.Len(t, opts, 4)
}
