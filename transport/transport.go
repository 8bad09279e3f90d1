// Package transport provides the byte transport the engine speaks over.
//
// The engine only needs two capabilities: reading delimiter-bounded frames
// and writing reply lines. Serial implements them over a physical serial
// port; Loopback implements them in memory for tests and simulators.
package transport

import (
	"context"
	"errors"
)

// ErrClosed indicates the transport has been closed.
var ErrClosed = errors.New("transport: closed")

// Transport carries protocol frames between the engine and the remote
// controller.
type Transport interface {
	// ReadFrame blocks until one complete frame is available and returns
	// it with delimiters stripped. It returns ErrClosed after Close, or
	// the context error when ctx is done.
	ReadFrame(ctx context.Context) (string, error)

	// SendLine writes one already-encoded reply or telemetry frame.
	SendLine(text string) error

	// Close releases the underlying device. Pending ReadFrame calls
	// return ErrClosed.
	Close() error
}
