// Package engine implements the cutebot command protocol engine.
//
// The engine ties the wire format to the actuator capability set: frames read
// from a transport are parsed into commands, dispatched under the profile's
// policy (bounded FIFO queue with BUSY backpressure, or immediate execution),
// executed against the actuator, and answered with ACK/BUSY/ERR replies.
// Timed runs started by GO are supervised by elapsed-time polling so the
// engine never blocks on them, and a periodic telemetry task pushes sensor
// readings independently of command traffic.
//
// A minimal setup:
//
//	cfg, err := engine.NewConfig(
//	    engine.WithProfile(wire.ProfileC),
//	    engine.WithQueueCapacity(6),
//	)
//	if err != nil { ... }
//
//	eng, err := engine.New(ctx, cfg, act, tr)
//	if err != nil { ... }
//
//	if err := eng.Open(); err != nil { ... }
//	defer eng.Close()
//
// The engine owns four goroutines, all managed by its TaskManager: the frame
// receiver, the dispatch pump (queued profiles only), the timed-action poll
// and the telemetry push. Command execution is serialized: at most one
// command runs at any instant, and the actuator is mutated under a single
// mutex shared with timed-run expiry.
package engine
