package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexByte_RoundTrip(t *testing.T) {
	for v := 0; v <= 255; v++ {
		encoded := EncodeHexByte(uint8(v))
		assert.Len(t, encoded, 2)
		assert.Equal(t, uint8(v), DecodeHexByte(encoded), "round-trip failed for %d (%q)", v, encoded)
	}
}

func TestDecodeHexByte_Tolerant(t *testing.T) {
	tests := []struct {
		input string
		want  uint8
	}{
		{"", 0},
		{"1", 1},
		{"A", 10},
		{"a", 10},
		{"FF", 255},
		{"ff", 255},
		{"fF", 255},
		{"00", 0},
		{"G1", 0},     // stops at first invalid nibble
		{"1G", 1},     // trailing garbage ignored
		{"123", 0x12}, // only the first two characters are read
		{"-5", 0},
		{"  ", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DecodeHexByte(tt.input), "input %q", tt.input)
	}
}

func TestEncodeHexByte(t *testing.T) {
	assert.Equal(t, "00", EncodeHexByte(0))
	assert.Equal(t, "05", EncodeHexByte(5))
	assert.Equal(t, "0A", EncodeHexByte(10))
	assert.Equal(t, "32", EncodeHexByte(50))
	assert.Equal(t, "FF", EncodeHexByte(255))
}
