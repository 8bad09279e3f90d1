package wire

import (
	"errors"
	"strings"
)

// ErrMalformedFrame indicates a frame without the two mandatory fields
// (sequence number and opcode).
var ErrMalformedFrame = errors.New("wire: malformed frame, need sequence and opcode fields")

// Parse decodes one frame into a Command.
//
// The frame is sanitized first: control bytes (< 0x20) and stray delimiter
// characters are removed and surrounding whitespace is trimmed. The sanitized
// text is split on ','; field 0 is the two-hex-digit sequence number
// (case-insensitive, invalid or empty decodes to 0), field 1 the opcode,
// fields 2..4 the optional byte arguments, each read by the tolerant hex
// decoder. Fewer than two fields or an empty opcode yield ErrMalformedFrame.
//
// An unknown opcode is not a parse error: the Command is returned with the
// uppercased opcode text carried through, and Op.Known() reporting false. The
// executor answers it with an error reply.
func Parse(frame string) (Command, error) {
	cmd := Command{Raw: frame}

	fields := strings.Split(strings.TrimSpace(sanitize(frame)), ",")
	if len(fields) < 2 {
		return cmd, ErrMalformedFrame
	}

	op := Opcode(strings.ToUpper(strings.TrimSpace(fields[1])))
	if op == "" {
		return cmd, ErrMalformedFrame
	}

	cmd.Seq = DecodeHexByte(strings.TrimSpace(fields[0]))
	cmd.Op = op

	args := [...]*uint8{&cmd.Arg1, &cmd.Arg2, &cmd.Arg3}
	for i, arg := range args {
		if i+2 >= len(fields) {
			break
		}
		*arg = DecodeHexByte(strings.TrimSpace(fields[i+2]))
	}

	return cmd, nil
}

// sanitize removes control bytes and stray delimiter characters from a frame.
// The unreliable link occasionally injects both mid-frame.
func sanitize(frame string) string {
	var b strings.Builder
	b.Grow(len(frame))
	for i := 0; i < len(frame); i++ {
		c := frame[i]
		if c < 0x20 || c == ':' || c == ';' {
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
