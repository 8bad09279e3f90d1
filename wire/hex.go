package wire

const hexDigits = "0123456789ABCDEF"

// DecodeHexByte decodes up to two hexadecimal characters from s into a byte.
//
// Decoding is case-insensitive and stops at the first non-hex character.
// An empty or fully unparseable string decodes to 0. Characters beyond the
// first two are ignored.
func DecodeHexByte(s string) uint8 {
	var v uint8
	for i := 0; i < len(s) && i < 2; i++ {
		n, ok := hexNibble(s[i])
		if !ok {
			break
		}
		v = v<<4 | n
	}
	return v
}

// EncodeHexByte encodes v as exactly two uppercase hexadecimal digits.
func EncodeHexByte(v uint8) string {
	return string([]byte{hexDigits[v>>4], hexDigits[v&0x0F]})
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
