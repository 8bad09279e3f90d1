package engine

import (
	"sync"

	"github.com/mishuma/cutebot-op-v01/internal/queue"
	"github.com/mishuma/cutebot-op-v01/logger"
	"github.com/mishuma/cutebot-op-v01/wire"
)

// dispatcher applies the profile's dispatch policy and enforces "at most one
// command executing at a time".
//
// Under queued dispatch, submit enqueues into a bounded FIFO queue and a
// single pump task drains it, one command at a time; a submission that finds
// the queue full (or, with busyWhenExecuting, any command in flight) is
// rejected with a BUSY reply and dropped. Under immediate dispatch, submit
// executes synchronously on the receiver's goroutine, in arrival order, with
// no backpressure signal.
type dispatcher struct {
	cfg    *Config
	logger logger.Logger

	// exec runs one command to completion, including its replies.
	exec func(wire.Command)
	// reject sends the BUSY reply for a dropped command.
	reject func(seq uint8)

	mu    sync.Mutex
	queue queue.Queue[wire.Command]
	busy  bool

	// wake signals the pump task that the queue is non-empty.
	wake chan struct{}
}

func newDispatcher(cfg *Config, exec func(wire.Command), reject func(seq uint8)) *dispatcher {
	return &dispatcher{
		cfg:    cfg,
		logger: cfg.logger,
		exec:   exec,
		reject: reject,
		queue:  queue.NewSliceQueue[wire.Command](cfg.queueCapacity),
		wake:   make(chan struct{}, 1),
	}
}

// submit accepts or rejects one parsed command.
func (d *dispatcher) submit(cmd wire.Command) {
	if d.cfg.profile.Dispatch == wire.DispatchImmediate {
		d.mu.Lock()
		d.busy = true
		d.mu.Unlock()

		d.execute(cmd)

		d.mu.Lock()
		d.busy = false
		d.mu.Unlock()

		return
	}

	d.mu.Lock()
	if (d.cfg.busyWhenExecuting && d.busy) || d.queue.Length() >= d.cfg.queueCapacity {
		d.mu.Unlock()

		d.logger.Debug("command rejected, backpressure", "seq", cmd.Seq, "op", cmd.Op)
		d.reject(cmd.Seq)

		return
	}
	d.queue.Enqueue(cmd)
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default: // pump already signaled
	}
}

// pump drains the queue until it is empty. It is the body of the single
// queued-dispatch worker task and must never run concurrently with itself.
func (d *dispatcher) pump() bool {
	for {
		d.mu.Lock()
		cmd, ok := d.queue.Dequeue()
		if !ok {
			d.mu.Unlock()
			return true
		}
		d.busy = true
		d.mu.Unlock()

		d.execute(cmd)

		d.mu.Lock()
		d.busy = false
		d.mu.Unlock()
	}
}

func (d *dispatcher) execute(cmd wire.Command) {
	d.logger.Debug("executing command", "seq", cmd.Seq, "op", cmd.Op,
		"arg1", cmd.Arg1, "arg2", cmd.Arg2, "arg3", cmd.Arg3)
	d.exec(cmd)
}

// isBusy reports whether a command is currently executing.
func (d *dispatcher) isBusy() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.busy
}

// queueLen returns the number of queued, not yet executing commands.
func (d *dispatcher) queueLen() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.queue.Length()
}
