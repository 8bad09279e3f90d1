package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tarm/serial"

	"github.com/mishuma/cutebot-op-v01/wire"
)

const (
	// serialReadTimeout bounds a single blocking read so ReadFrame can
	// observe context cancellation and Close on an idle link.
	serialReadTimeout = 50 * time.Millisecond

	serialReadBufSize = 256
)

// Serial is a Transport over a physical serial port.
//
// ReadFrame is not goroutine-safe; it is owned by the engine's single
// receiver task. SendLine may be called from multiple goroutines.
type Serial struct {
	port    *serial.Port
	scanner *wire.FrameScanner

	// pending holds frames completed by the last read but not yet
	// returned. Owned by the ReadFrame caller.
	pending []string
	readBuf []byte

	writeMu sync.Mutex
	closed  atomic.Bool
}

var _ Transport = (*Serial)(nil)

// OpenSerial opens the serial device at the given baud rate and wraps it in
// a frame-oriented transport using the given delimiter style.
func OpenSerial(device string, baud int, style wire.DelimiterStyle) (*Serial, error) {
	port, err := serial.OpenPort(&serial.Config{
		Name:        device,
		Baud:        baud,
		ReadTimeout: serialReadTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("transport: open serial port %s: %w", device, err)
	}

	return &Serial{
		port:    port,
		scanner: wire.NewFrameScanner(style),
		readBuf: make([]byte, serialReadBufSize),
	}, nil
}

// ReadFrame returns the next complete frame from the port.
func (s *Serial) ReadFrame(ctx context.Context) (string, error) {
	for {
		if len(s.pending) > 0 {
			frame := s.pending[0]
			s.pending = s.pending[1:]
			return frame, nil
		}

		if s.closed.Load() {
			return "", ErrClosed
		}
		if err := ctx.Err(); err != nil {
			return "", err
		}

		n, err := s.port.Read(s.readBuf)
		if n > 0 {
			s.pending = append(s.pending, s.scanner.Feed(s.readBuf[:n])...)
			continue
		}
		if err == nil || errors.Is(err, io.EOF) {
			// Read timeout on an idle link; poll again.
			continue
		}
		if s.closed.Load() {
			return "", ErrClosed
		}

		return "", fmt.Errorf("transport: serial read: %w", err)
	}
}

// SendLine writes one encoded frame to the port.
func (s *Serial) SendLine(text string) error {
	if s.closed.Load() {
		return ErrClosed
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if _, err := s.port.Write([]byte(text)); err != nil {
		return fmt.Errorf("transport: serial write: %w", err)
	}

	return nil
}

// Close closes the serial port.
func (s *Serial) Close() error {
	if s.closed.Swap(true) {
		return nil
	}

	return s.port.Close()
}
