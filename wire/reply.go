package wire

import "strings"

// Error codes carried by ERR replies and #ERROR telemetry.
const (
	CodeParseFail     = "PARSE_FAIL"
	CodeGoInvalidArgs = "GO_INVALID_ARGS"
	CodeBusy          = "BUSY"

	unknownOpPrefix = "UNKNOWN_OP_"
)

// UnknownOpCode builds the error code for an unknown opcode, echoing the
// opcode text as received.
func UnknownOpCode(op Opcode) string {
	return unknownOpPrefix + string(op)
}

// EncodeAck renders the acknowledge reply for cmd.
//
// VerbosityTelemetryOnly profiles acknowledge nothing; the empty string means
// "no frame to send".
func (p Profile) EncodeAck(cmd Command) string {
	switch p.Verbosity {
	case VerbosityOpEcho:
		return p.wrap(EncodeHexByte(cmd.Seq) + ",ACK," + string(cmd.Op))
	case VerbosityTelemetryOnly:
		return ""
	default:
		return p.wrap(EncodeHexByte(cmd.Seq) + ",ACK")
	}
}

// EncodeBusy renders the backpressure reply for a rejected command.
//
// The telemetry-only dialect has no BUSY frame shape; the rejection is
// surfaced as an #ERROR push so the rejected command still receives a reply.
func (p Profile) EncodeBusy(seq uint8) string {
	if p.Verbosity == VerbosityTelemetryOnly {
		return EncodeTelemetry(TelemetryError, CodeBusy)
	}
	return p.wrap(EncodeHexByte(seq) + ",BUSY")
}

// EncodeErr renders the error reply carrying the given code.
//
// The echo dialect has no ERR frame shape: any error is answered with an ACK
// carrying the '??' opcode placeholder, sequence 0 for unparseable frames.
func (p Profile) EncodeErr(seq uint8, code string) string {
	switch p.Verbosity {
	case VerbosityOpEcho:
		return p.wrap(EncodeHexByte(seq) + ",ACK,??")
	case VerbosityTelemetryOnly:
		return EncodeTelemetry(TelemetryError, code)
	default:
		return p.wrap(EncodeHexByte(seq) + ",ERR," + code)
	}
}

// EncodeTelemetry renders one telemetry push. Telemetry frames share a single
// shape across all dialects: '#' prefix, newline terminated.
func EncodeTelemetry(kind TelemetryKind, payload string) string {
	var b strings.Builder
	b.Grow(len(kind) + len(payload) + 3)
	b.WriteByte('#')
	b.WriteString(string(kind))
	b.WriteByte(',')
	b.WriteString(payload)
	b.WriteByte('\n')
	return b.String()
}

// wrap bounds a reply body with the profile's delimiters.
func (p Profile) wrap(body string) string {
	if p.Style == StyleSemicolon {
		return ";" + body + ";\n"
	}
	return ":" + body + "\n"
}
