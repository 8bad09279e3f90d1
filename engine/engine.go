package engine

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/mishuma/cutebot-op-v01/actuator"
	"github.com/mishuma/cutebot-op-v01/logger"
	"github.com/mishuma/cutebot-op-v01/transport"
	"github.com/mishuma/cutebot-op-v01/wire"
)

// Sentinel errors of the engine lifecycle.
var (
	ErrConfigNil    = errors.New("engine: config is nil")
	ErrActuatorNil  = errors.New("engine: actuator is nil")
	ErrTransportNil = errors.New("engine: transport is nil")
	ErrAlreadyOpen  = errors.New("engine: already open")
	ErrNotOpen      = errors.New("engine: not open")
)

// Task names of the engine's goroutines.
const (
	taskReceiver  = "frame-receiver"
	taskPump      = "dispatch-pump"
	taskTimerTick = "timer-tick"
	taskTelemetry = "telemetry"
)

// Engine is the command protocol engine. It reads frames from the transport,
// parses and dispatches commands, drives the actuator, supervises timed runs
// and pushes telemetry, all per the configured wire profile.
//
// The caller owns the transport and the actuator; Close stops the engine's
// tasks but closes neither.
type Engine struct {
	pctx      context.Context
	ctx       context.Context
	ctxCancel context.CancelFunc

	cfg    *Config
	act    actuator.Actuator
	tr     transport.Transport
	logger logger.Logger

	taskMgr    *TaskManager
	dispatcher *dispatcher
	executor   *executor
	timers     *TimerSupervisor

	opened atomic.Bool
}

// New creates an Engine with the given context, configuration, actuator and
// transport. Call Open to start it.
func New(ctx context.Context, cfg *Config, act actuator.Actuator, tr transport.Transport) (*Engine, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}
	if act == nil {
		return nil, ErrActuatorNil
	}
	if tr == nil {
		return nil, ErrTransportNil
	}

	e := &Engine{
		pctx:   ctx,
		cfg:    cfg,
		act:    act,
		tr:     tr,
		logger: cfg.logger.With("profile", cfg.profile.Name),
	}
	e.ctx, e.ctxCancel = context.WithCancel(ctx)

	e.timers = NewTimerSupervisor(e.logger)
	e.executor = &executor{
		ctx:    e.ctx,
		cfg:    cfg,
		act:    act,
		timers: e.timers,
		logger: e.logger,
		emit:   e.sendLine,
	}
	e.dispatcher = newDispatcher(cfg, e.executor.execute, e.rejectBusy)

	return e, nil
}

// Open starts the engine tasks: the frame receiver, the dispatch pump (under
// queued dispatch), the timed-action poll and the periodic telemetry push.
func (e *Engine) Open() error {
	if e.opened.Swap(true) {
		return ErrAlreadyOpen
	}

	// Fresh context and task manager per open; a closed engine can be
	// reopened.
	e.ctx, e.ctxCancel = context.WithCancel(e.pctx)
	e.executor.ctx = e.ctx
	e.taskMgr = NewTaskManager(e.ctx, e.logger)

	e.logger.Info("engine opening",
		"queued", e.cfg.profile.Dispatch == wire.DispatchQueued,
		"queue_capacity", e.cfg.queueCapacity,
		"timer_interval", e.cfg.timerInterval,
		"telemetry_interval", e.cfg.telemetryInterval)

	if e.cfg.profile.Dispatch == wire.DispatchQueued {
		if err := e.taskMgr.StartWake(taskPump, e.dispatcher.wake, e.dispatcher.pump); err != nil {
			return err
		}
	}

	if _, err := e.taskMgr.StartInterval(taskTimerTick, e.timerTick, e.cfg.timerInterval, false); err != nil {
		return err
	}

	if e.cfg.profile.Telemetry != "" {
		if _, err := e.taskMgr.StartInterval(taskTelemetry, e.telemetryTick, e.cfg.telemetryInterval, false); err != nil {
			return err
		}
	}

	if err := e.taskMgr.Start(taskReceiver, e.receiveFrame); err != nil {
		return err
	}

	return nil
}

// Close stops all engine tasks and waits for them to terminate. The
// transport and actuator are left to their owner.
func (e *Engine) Close() error {
	if !e.opened.Swap(false) {
		return ErrNotOpen
	}

	e.logger.Info("engine closing")

	e.ctxCancel()
	e.taskMgr.Stop()
	e.taskMgr.Wait()

	// Whatever was moving keeps moving unless stopped; leave the platform
	// at rest.
	if e.timers.Cancel() {
		e.executor.haltMotors()
	}

	return nil
}

// HandleFrame feeds one already-segmented frame into the engine, as if it
// had arrived on the transport. It allows callback-style transports to
// bypass ReadFrame.
func (e *Engine) HandleFrame(frame string) {
	if frame == "" {
		return
	}

	p := e.cfg.profile

	e.logger.Debug("frame received", "frame", frame)

	if p.EchoFrames {
		e.sendLine(wire.EncodeTelemetry(wire.TelemetryEcho, frame))
	}

	cmd, err := wire.Parse(frame)
	if err != nil {
		e.logger.Warn("frame parse failed", "frame", frame, "error", err)
		e.sendLine(p.EncodeErr(0, wire.CodeParseFail))

		return
	}

	e.dispatcher.submit(cmd)
}

// Busy reports whether a command is currently executing.
func (e *Engine) Busy() bool { return e.dispatcher.isBusy() }

// QueueLen returns the number of commands waiting in the dispatch queue.
func (e *Engine) QueueLen() int { return e.dispatcher.queueLen() }

// TimerActive reports whether a timed run is being supervised.
func (e *Engine) TimerActive() bool { return e.timers.Active() }

// receiveFrame is the receiver task body: read one frame, hand it over.
func (e *Engine) receiveFrame() bool {
	frame, err := e.tr.ReadFrame(e.ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, transport.ErrClosed) {
			return false
		}

		e.logger.Error("transport read failed", "error", err)

		return false
	}

	e.HandleFrame(frame)

	return true
}

// timerTick is the timed-action poll task body.
func (e *Engine) timerTick() bool {
	if e.timers.Tick(time.Now()) {
		e.logger.Debug("timed run expired")
	}

	return true
}

// telemetryTick samples the profile's sensor and pushes one telemetry frame.
// It runs on its own interval, independent of command dispatch.
func (e *Engine) telemetryTick() bool {
	e.sendLine(e.executor.sampleTelemetry())
	return true
}

// rejectBusy sends the BUSY reply for a command dropped by backpressure.
func (e *Engine) rejectBusy(seq uint8) {
	e.sendLine(e.cfg.profile.EncodeBusy(seq))
}

// sendLine writes one encoded frame to the transport. Empty frames mean "no
// reply for this dialect" and are dropped. Send failures are not fatal: the
// command already executed, and the next frame may well go through.
func (e *Engine) sendLine(text string) {
	if text == "" {
		return
	}

	if err := e.tr.SendLine(text); err != nil {
		e.logger.Warn("transport write failed", "frame", text, "error", err)
	}
}
