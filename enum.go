package slip

// List of SLIP protocol-reserved byte values as defined in RFC1055
const (
	// End delimits a frame; by convention it opens and always closes an
	// encoded frame.
	End byte = 0xC0
	// Esc signals that the following byte is a transposed code, not a
	// literal value.
	Esc byte = 0xDB
	// EscEnd after Esc represents a literal End byte in the payload.
	EscEnd byte = 0xDC
	// EscEsc after Esc represents a literal Esc byte in the payload.
	EscEsc byte = 0xDD
)
