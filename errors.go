package slip

import (
	"errors"
)

// ErrProtocol reports a buffer that does not conform to SLIP framing rules:
// an End byte inside the frame interior, a dangling Esc with nothing to
// escape, or an Esc followed by a byte that is neither EscEnd nor EscEsc.
var ErrProtocol = errors.New("SLIP protocol violation")
