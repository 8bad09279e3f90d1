package wire

import "time"

// DelimiterStyle selects how frames are bounded on the byte stream.
type DelimiterStyle int

const (
	// StyleNewline frames are prefixed with ':' and terminated by '\n'.
	StyleNewline DelimiterStyle = iota
	// StyleSemicolon frames are both prefixed and terminated by ';'.
	StyleSemicolon
)

// String returns string representation of the delimiter style.
func (s DelimiterStyle) String() string {
	switch s {
	case StyleNewline:
		return "newline"
	case StyleSemicolon:
		return "semicolon"
	default:
		return "unknown"
	}
}

// DispatchPolicy selects how accepted commands reach the executor.
type DispatchPolicy int

const (
	// DispatchQueued buffers commands in a bounded FIFO queue and signals
	// BUSY backpressure when the queue is full.
	DispatchQueued DispatchPolicy = iota
	// DispatchImmediate executes commands synchronously in arrival order
	// with no queue and no backpressure signal.
	DispatchImmediate
)

// ReplyVerbosity selects the shape of command replies.
type ReplyVerbosity int

const (
	// VerbosityFull replies ACK/BUSY/ERR carrying the command sequence
	// number (ProfileA).
	VerbosityFull ReplyVerbosity = iota
	// VerbosityOpEcho replies ACK carrying the sequence number and the
	// opcode; malformed input is answered with the '??' opcode placeholder
	// (ProfileB).
	VerbosityOpEcho
	// VerbosityTelemetryOnly suppresses ACK/BUSY; errors are surfaced as
	// #ERROR telemetry frames (ProfileC).
	VerbosityTelemetryOnly
)

// TelemetryKind tags a telemetry frame.
type TelemetryKind string

const (
	TelemetryDistance TelemetryKind = "DIST"  // ultrasonic distance, cm
	TelemetryLight    TelemetryKind = "LED"   // resolved headlight color, rrggbb
	TelemetryBuzzer   TelemetryKind = "BUZ"   // tone completion
	TelemetryTracking TelemetryKind = "TRK"   // line sensor bitmask, 0-3
	TelemetryEcho     TelemetryKind = "ECHO"  // raw frame echo
	TelemetryError    TelemetryKind = "ERROR" // error code push
)

// Profile describes one dialect of the wire protocol. The engine is
// parameterized by a Profile value instead of hardcoding per-dialect
// behavior.
type Profile struct {
	// Name identifies the profile in logs and configuration files.
	Name string

	// Style is the frame delimiter style for both requests and replies.
	Style DelimiterStyle

	// Dispatch is the command dispatch policy.
	Dispatch DispatchPolicy

	// Verbosity is the reply shape.
	Verbosity ReplyVerbosity

	// DurationUnit is the unit of the duration argument of timed motion
	// commands (MV/BK/TL/TR). The legacy newline dialect counts seconds,
	// the semicolon dialects count milliseconds. The GO run duration is
	// always milliseconds, regardless of profile.
	DurationUnit time.Duration

	// TimedMotion realizes MV/BK/TL/TR with a nonzero duration argument as
	// a blocking platform call that returns after the commanded duration.
	// When false the duration argument is ignored and motion commands are
	// instantaneous.
	TimedMotion bool

	// EchoFrames pushes every received frame back as #ECHO telemetry
	// before parsing.
	EchoFrames bool

	// Telemetry is the sensor sampled by the periodic telemetry tick and
	// by timed-run completion. Empty disables periodic telemetry.
	Telemetry TelemetryKind

	// BlockingTone realizes BZ as a blocking tone: the reply is delayed
	// until the tone duration has elapsed. When false the tone runs in the
	// background and completion is signaled with #BUZ,done telemetry.
	BlockingTone bool
}

// The three deployed wire dialects.
var (
	// ProfileA is the legacy colon dialect: newline-terminated frames,
	// bounded FIFO queue with BUSY backpressure, full ACK/BUSY/ERR replies,
	// blocking timed motion with second-granularity durations, and periodic
	// distance telemetry.
	ProfileA = Profile{
		Name:         "A",
		Style:        StyleNewline,
		Dispatch:     DispatchQueued,
		Verbosity:    VerbosityFull,
		DurationUnit: time.Second,
		TimedMotion:  true,
		Telemetry:    TelemetryDistance,
		BlockingTone: true,
	}

	// ProfileB is the semicolon echo dialect: immediate dispatch, raw frame
	// echo, ACK replies carrying the opcode, instantaneous motion and
	// background tones.
	ProfileB = Profile{
		Name:         "B",
		Style:        StyleSemicolon,
		Dispatch:     DispatchImmediate,
		Verbosity:    VerbosityOpEcho,
		DurationUnit: time.Millisecond,
		EchoFrames:   true,
	}

	// ProfileC is the semicolon tracking dialect: bounded queue, replies as
	// telemetry only (#TRK and #ERROR), timed runs via GO, periodic line
	// tracking telemetry.
	ProfileC = Profile{
		Name:         "C",
		Style:        StyleSemicolon,
		Dispatch:     DispatchQueued,
		Verbosity:    VerbosityTelemetryOnly,
		DurationUnit: time.Millisecond,
		Telemetry:    TelemetryTracking,
	}
)
