// Package wire implements the text wire format of the cutebot command protocol.
//
// It covers byte-stream segmentation into delimiter-bounded frames, tolerant
// parsing of request frames into Commands, and encoding of reply and telemetry
// frames. The concrete shape of the dialect (delimiter style, dispatch policy,
// reply verbosity, duration unit) is described by a Profile value; the three
// deployed dialects are available as ProfileA, ProfileB and ProfileC.
//
// A request frame carries a two-hex-digit sequence number, a two-letter
// opcode, and up to three optional hex byte arguments:
//
//	:05,MV,32,32\n      (ProfileA: colon prefix, newline terminated)
//	;07,GO,64,FF;       (ProfileB/C: semicolon wrapped)
//
// Parsing is deliberately forgiving: control bytes and stray delimiters are
// stripped, hex fields are read case-insensitively up to the first non-hex
// character, and missing trailing arguments default to zero. The link is
// assumed unreliable; a malformed frame yields an error reply, never a stalled
// engine.
package wire
