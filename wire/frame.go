package wire

// FrameScanner accumulates incoming bytes and yields complete frames per the
// configured delimiter style. Delimiters are stripped from the yielded
// frames; zero-length frames are discarded silently.
//
// FrameScanner is not goroutine-safe. It is owned by the single transport
// reader of an engine.
type FrameScanner struct {
	style DelimiterStyle
	buf   []byte
}

// NewFrameScanner creates a FrameScanner for the given delimiter style.
func NewFrameScanner(style DelimiterStyle) *FrameScanner {
	return &FrameScanner{style: style}
}

// Feed appends p to the scanner's buffer and returns the frames completed by
// it, in arrival order. Bytes of a trailing incomplete frame are retained
// until a later Feed completes them.
func (s *FrameScanner) Feed(p []byte) []string {
	s.buf = append(s.buf, p...)

	var frames []string
	for {
		frame, ok := s.next()
		if !ok {
			return frames
		}
		if frame != "" {
			frames = append(frames, frame)
		}
	}
}

// Pending returns the number of buffered bytes not yet part of a complete
// frame.
func (s *FrameScanner) Pending() int {
	return len(s.buf)
}

// Reset discards any buffered bytes.
func (s *FrameScanner) Reset() {
	s.buf = s.buf[:0]
}

// next cuts one complete frame off the front of the buffer. The second
// return value is false when no terminator is buffered yet. The returned
// frame may be empty after delimiter stripping.
func (s *FrameScanner) next() (string, bool) {
	term := s.terminator()

	end := -1
	for i, b := range s.buf {
		if b == term {
			end = i
			break
		}
	}
	if end < 0 {
		return "", false
	}

	frame := s.buf[:end]
	s.buf = s.buf[end+1:]

	// Strip control bytes at the frame edges: CR left by CRLF senders, and
	// line breaks some senders emit between semicolon frames.
	for len(frame) > 0 && frame[0] < 0x20 {
		frame = frame[1:]
	}
	for len(frame) > 0 && frame[len(frame)-1] < 0x20 {
		frame = frame[:len(frame)-1]
	}

	if s.style == StyleNewline && len(frame) > 0 && frame[0] == ':' {
		frame = frame[1:]
	}
	// The semicolon style needs no prefix handling: the leading ';' of a
	// frame is the terminator of the previous cut and produces an empty
	// frame that Feed drops.

	return string(frame), true
}

func (s *FrameScanner) terminator() byte {
	if s.style == StyleSemicolon {
		return ';'
	}
	return '\n'
}
