package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameScanner_NewlineStyle(t *testing.T) {
	s := NewFrameScanner(StyleNewline)

	frames := s.Feed([]byte(":05,MV,32,32\n"))
	assert.Equal(t, []string{"05,MV,32,32"}, frames)

	// Partial frame is buffered across Feed calls.
	frames = s.Feed([]byte(":06,SP"))
	assert.Empty(t, frames)
	assert.Equal(t, 6, s.Pending())

	frames = s.Feed([]byte("\n:07,EC\n"))
	assert.Equal(t, []string{"06,SP", "07,EC"}, frames)
	assert.Equal(t, 0, s.Pending())
}

func TestFrameScanner_NewlineStyle_CRLF(t *testing.T) {
	s := NewFrameScanner(StyleNewline)

	frames := s.Feed([]byte(":05,MV,32\r\n"))
	assert.Equal(t, []string{"05,MV,32"}, frames)
}

func TestFrameScanner_SemicolonStyle(t *testing.T) {
	s := NewFrameScanner(StyleSemicolon)

	// The leading ';' cuts an empty frame, which is dropped.
	frames := s.Feed([]byte(";07,GO,64,FF;"))
	assert.Equal(t, []string{"07,GO,64,FF"}, frames)

	frames = s.Feed([]byte(";00,SP;;01,EC;"))
	assert.Equal(t, []string{"00,SP", "01,EC"}, frames)
}

func TestFrameScanner_SemicolonStyle_InterstitialCRLF(t *testing.T) {
	s := NewFrameScanner(StyleSemicolon)

	frames := s.Feed([]byte(";07,GO,64,FF;\r\n;08,SP;\r\n"))
	assert.Equal(t, []string{"07,GO,64,FF", "08,SP"}, frames)
	assert.Equal(t, 2, s.Pending())
}

func TestFrameScanner_EmptyFramesDropped(t *testing.T) {
	s := NewFrameScanner(StyleNewline)
	assert.Empty(t, s.Feed([]byte("\n\n:\n\r\n")))

	s2 := NewFrameScanner(StyleSemicolon)
	assert.Empty(t, s2.Feed([]byte(";;;")))
}

func TestFrameScanner_Reset(t *testing.T) {
	s := NewFrameScanner(StyleNewline)
	s.Feed([]byte(":05,MV"))
	assert.NotZero(t, s.Pending())

	s.Reset()
	assert.Zero(t, s.Pending())

	// A frame completed after Reset must not carry stale bytes.
	frames := s.Feed([]byte(":06,EC\n"))
	assert.Equal(t, []string{"06,EC"}, frames)
}

func TestFrameScanner_ByteAtATime(t *testing.T) {
	s := NewFrameScanner(StyleSemicolon)

	var frames []string
	for _, b := range []byte(";0A,HL,FF,00,00;") {
		frames = append(frames, s.Feed([]byte{b})...)
	}
	assert.Equal(t, []string{"0A,HL,FF,00,00"}, frames)
}
