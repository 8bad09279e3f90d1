package wire

// Opcode is the two-letter code selecting which actuator behavior a command
// invokes. An Opcode that is not one of the defined codes is carried through
// verbatim so the error reply can echo it.
type Opcode string

// Defined opcodes of the command set.
const (
	OpMove      Opcode = "MV" // drive forward
	OpBack      Opcode = "BK" // drive backward
	OpTurnLeft  Opcode = "TL" // turn left
	OpTurnRight Opcode = "TR" // turn right
	OpStop      Opcode = "SP" // hard stop, cancels any timed run
	OpRun       Opcode = "GO" // timed continuous run
	OpHeadlight Opcode = "HL" // RGB headlights
	OpBuzzer    Opcode = "BZ" // buzzer tone
	OpEcho      Opcode = "EC" // no-op, acknowledged
)

// Known reports whether op is one of the defined opcodes.
func (op Opcode) Known() bool {
	switch op {
	case OpMove, OpBack, OpTurnLeft, OpTurnRight, OpStop, OpRun, OpHeadlight, OpBuzzer, OpEcho:
		return true
	default:
		return false
	}
}

// Command is one decoded request frame.
//
// The three byte arguments are always present; a field the sender omitted
// decodes to zero. Their semantics depend on the opcode.
type Command struct {
	Seq  uint8
	Op   Opcode
	Arg1 uint8
	Arg2 uint8
	Arg3 uint8

	// Raw is the frame text as received, before sanitizing. Kept for the
	// echo verbosity of ProfileB and for trace logging.
	Raw string
}
