package engine

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/mishuma/cutebot-op-v01/actuator"
	"github.com/mishuma/cutebot-op-v01/internal/pool"
	"github.com/mishuma/cutebot-op-v01/internal/util"
	"github.com/mishuma/cutebot-op-v01/logger"
	"github.com/mishuma/cutebot-op-v01/wire"
)

// toneTick is the unit of the BZ duration argument.
const toneTick = 10 * time.Millisecond

// defaultToneDuration is used when the BZ duration argument is zero.
const defaultToneDuration = 100 * time.Millisecond

// executor maps one command to calls against the actuator capability set and
// emits the reply and telemetry frames the command produces.
//
// Duration-bound motion (MV/BK/TL/TR in a timed-motion profile) is realized
// as a blocking platform call that returns after the commanded duration. GO
// differs: it must return immediately, so it arms the TimerSupervisor with
// the stop action instead of blocking.
type executor struct {
	ctx    context.Context
	cfg    *Config
	act    actuator.Actuator
	timers *TimerSupervisor
	logger logger.Logger

	// emit sends one encoded frame; empty strings are dropped.
	emit func(string)

	// actMu serializes all actuator mutation: command execution, timed-run
	// expiry and background tone starts. Sensor reads are deliberately not
	// behind it, so telemetry sampling is never blocked by a long motion
	// call.
	actMu sync.Mutex
}

// execute runs one command to completion and emits its replies. Protocol
// errors become reply frames; nothing is fatal to the engine.
func (e *executor) execute(cmd wire.Command) {
	if !cmd.Op.Known() {
		e.logger.Warn("unknown opcode", "seq", cmd.Seq, "op", cmd.Op)
		e.emit(e.cfg.profile.EncodeErr(cmd.Seq, wire.UnknownOpCode(cmd.Op)))

		return
	}

	switch cmd.Op {
	case wire.OpMove:
		e.drive(cmd, actuator.DirForward)
	case wire.OpBack:
		e.drive(cmd, actuator.DirBackward)
	case wire.OpTurnLeft:
		e.turn(cmd, actuator.DirLeft)
	case wire.OpTurnRight:
		e.turn(cmd, actuator.DirRight)
	case wire.OpStop:
		e.stop(cmd)
	case wire.OpRun:
		e.run(cmd)
	case wire.OpHeadlight:
		e.headlight(cmd)
	case wire.OpBuzzer:
		e.buzzer(cmd)
	case wire.OpEcho:
		e.ack(cmd)
	}
}

// drive handles MV and BK. Direction is fixed by the opcode; a byte cannot
// carry a negative speed.
func (e *executor) drive(cmd wire.Command, dir actuator.Direction) {
	speed := int(cmd.Arg1)
	if dir == actuator.DirBackward && speed == 0 {
		speed = int(e.cfg.defaultBackSpeed)
	}
	speed = util.Clamp(speed, 0, actuator.MaxSpeed)

	e.actMu.Lock()
	if e.cfg.profile.TimedMotion && cmd.Arg2 > 0 {
		// Blocking platform call; returns after the commanded duration.
		e.act.MoveTimed(dir, speed, time.Duration(cmd.Arg2)*e.cfg.profile.DurationUnit)
	} else if dir == actuator.DirBackward {
		e.act.SetMotors(-speed, -speed)
	} else {
		e.act.SetMotors(speed, speed)
	}
	e.actMu.Unlock()

	e.ack(cmd)
}

// turn handles TL and TR: a timed pivot where the profile supports it, an
// instantaneous one otherwise.
func (e *executor) turn(cmd wire.Command, dir actuator.Direction) {
	e.actMu.Lock()
	if e.cfg.profile.TimedMotion && cmd.Arg2 > 0 {
		speed := util.Clamp(int(cmd.Arg1), 0, actuator.MaxSpeed)
		e.act.MoveTimed(dir, speed, time.Duration(cmd.Arg2)*e.cfg.profile.DurationUnit)
	} else if dir == actuator.DirLeft {
		e.act.TurnLeft()
	} else {
		e.act.TurnRight()
	}
	e.actMu.Unlock()

	e.ack(cmd)
}

// stop handles SP: hard stop and cancel any supervised timed run. Args are
// ignored.
func (e *executor) stop(cmd wire.Command) {
	e.haltMotors()

	if e.timers.Cancel() {
		e.logger.Debug("timed run cancelled by stop", "seq", cmd.Seq)
	}

	e.ack(cmd)
}

// run handles GO: start a continuous run and hand its termination to the
// TimerSupervisor.
func (e *executor) run(cmd wire.Command) {
	if cmd.Arg1 == 0 || cmd.Arg2 == 0 {
		// Zero speed or zero duration: refuse to start and make sure
		// nothing keeps moving.
		e.haltMotors()
		e.emit(e.cfg.profile.EncodeErr(cmd.Seq, wire.CodeGoInvalidArgs))

		return
	}

	speed := util.Clamp(int(cmd.Arg1), 0, actuator.MaxSpeed)

	e.actMu.Lock()
	e.act.SetMotors(speed, speed)
	e.actMu.Unlock()

	// The GO duration argument is milliseconds in every profile.
	e.timers.Arm(time.Duration(cmd.Arg2)*time.Millisecond, e.finishRun)

	e.ack(cmd)
}

// finishRun is the stop action of a supervised run: halt the motors and emit
// completion telemetry.
func (e *executor) finishRun() {
	e.haltMotors()
	e.emit(e.sampleTelemetry())
}

// headlight handles HL. Three-byte color when arg2 or arg3 is set, otherwise
// arg1 acts as an on/off switch for full white.
func (e *executor) headlight(cmd wire.Command) {
	var rgb uint32
	switch {
	case cmd.Arg2 != 0 || cmd.Arg3 != 0:
		rgb = uint32(cmd.Arg1)<<16 | uint32(cmd.Arg2)<<8 | uint32(cmd.Arg3)
	case cmd.Arg1 != 0:
		rgb = 0xFFFFFF
	}

	e.actMu.Lock()
	e.act.SetLightColor(rgb)
	e.actMu.Unlock()

	e.emit(wire.EncodeTelemetry(wire.TelemetryLight, fmt.Sprintf("%06X", rgb)))
	e.ack(cmd)
}

// buzzer handles BZ. Frequency is a big-endian 16-bit value clamped to the
// audible range of the part; duration counts in 10 ms ticks.
func (e *executor) buzzer(cmd wire.Command) {
	freq := util.Clamp(int(cmd.Arg1)<<8|int(cmd.Arg2), MinToneHz, MaxToneHz)

	dur := time.Duration(cmd.Arg3) * toneTick
	if dur == 0 {
		dur = defaultToneDuration
	}

	e.actMu.Lock()
	e.act.PlayTone(freq, dur)
	e.actMu.Unlock()

	if e.cfg.profile.BlockingTone {
		// Hold the reply until the tone has finished.
		t := pool.GetTimer(dur)
		select {
		case <-t.C:
		case <-e.ctx.Done():
		}
		pool.PutTimer(t)

		e.ack(cmd)

		return
	}

	e.ack(cmd)

	go func() {
		t := pool.GetTimer(dur)
		defer pool.PutTimer(t)

		select {
		case <-t.C:
			e.emit(wire.EncodeTelemetry(wire.TelemetryBuzzer, "done"))
		case <-e.ctx.Done():
		}
	}()
}

func (e *executor) ack(cmd wire.Command) {
	e.emit(e.cfg.profile.EncodeAck(cmd))
}

// haltMotors issues the actuator stop. Stop is fail-soft: there is no retry
// before the next command, so a failure is logged and the engine proceeds as
// if stopped.
func (e *executor) haltMotors() {
	e.actMu.Lock()
	err := e.act.Stop()
	e.actMu.Unlock()

	if err != nil {
		e.logger.Warn("actuator stop failed, proceeding as stopped", "error", err)
	}
}

// sampleTelemetry samples the profile's telemetry sensor and encodes one
// push frame. It returns the empty string for profiles without periodic
// telemetry.
func (e *executor) sampleTelemetry() string {
	switch e.cfg.profile.Telemetry {
	case wire.TelemetryDistance:
		cm := e.act.ReadDistanceCm()
		return wire.EncodeTelemetry(wire.TelemetryDistance, strconv.FormatUint(uint64(cm), 10))
	case wire.TelemetryTracking:
		mask := e.act.ReadLineSensors() & 0x03
		return wire.EncodeTelemetry(wire.TelemetryTracking, strconv.Itoa(int(mask)))
	default:
		return ""
	}
}
