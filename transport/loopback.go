package transport

import (
	"context"
	"sync"

	"github.com/mishuma/cutebot-op-v01/wire"
)

const loopbackFrameBacklog = 64

// Loopback is an in-memory Transport for tests and simulators.
//
// The test side feeds raw bytes with FeedBytes and inspects what the engine
// wrote with Sent; the engine side uses the Transport interface.
type Loopback struct {
	mu      sync.Mutex
	scanner *wire.FrameScanner
	sent    []string

	frames chan string
	done   chan struct{}
	once   sync.Once
}

var _ Transport = (*Loopback)(nil)

// NewLoopback creates a loopback transport segmenting input with the given
// delimiter style.
func NewLoopback(style wire.DelimiterStyle) *Loopback {
	return &Loopback{
		scanner: wire.NewFrameScanner(style),
		frames:  make(chan string, loopbackFrameBacklog),
		done:    make(chan struct{}),
	}
}

// FeedBytes pushes raw bytes into the receive side, as if they arrived on
// the link. Completed frames become available to ReadFrame.
func (l *Loopback) FeedBytes(p []byte) {
	l.mu.Lock()
	completed := l.scanner.Feed(p)
	l.mu.Unlock()

	for _, frame := range completed {
		select {
		case l.frames <- frame:
		case <-l.done:
			return
		}
	}
}

// FeedFrame pushes one complete, already-segmented frame.
func (l *Loopback) FeedFrame(frame string) {
	select {
	case l.frames <- frame:
	case <-l.done:
	}
}

// ReadFrame returns the next fed frame.
func (l *Loopback) ReadFrame(ctx context.Context) (string, error) {
	select {
	case frame := <-l.frames:
		return frame, nil
	case <-l.done:
		return "", ErrClosed
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// SendLine records one frame written by the engine.
func (l *Loopback) SendLine(text string) error {
	select {
	case <-l.done:
		return ErrClosed
	default:
	}

	l.mu.Lock()
	l.sent = append(l.sent, text)
	l.mu.Unlock()

	return nil
}

// Sent returns a snapshot of all frames written so far, in write order.
func (l *Loopback) Sent() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]string, len(l.sent))
	copy(out, l.sent)

	return out
}

// Close shuts the loopback down. Pending and future ReadFrame calls return
// ErrClosed.
func (l *Loopback) Close() error {
	l.once.Do(func() { close(l.done) })
	return nil
}
