// Package slip implements SLIP framing as defined in RFC1055
package slip

// Encode wraps payload into a SLIP frame bounded by End bytes.
// Literal End and Esc bytes in the payload are replaced with their two-byte
// escape sequences; every other byte is copied verbatim. The output length
// is len(payload) plus 2 boundary bytes plus 1 for every escaped byte.
func Encode(payload []byte) []byte {
	escaped := 0
	for _, b := range payload {
		if b == End || b == Esc {
			escaped++
		}
	}

	buf := make([]byte, 0, len(payload)+escaped+2)
	buf = append(buf, End)
	for _, b := range payload {
		switch b {
		case End:
			buf = append(buf, Esc, EscEnd)
		case Esc:
			buf = append(buf, Esc, EscEsc)
		default:
			buf = append(buf, b)
		}
	}
	return append(buf, End)
}

// IsValid reports whether buf is a well-formed SLIP frame. The boundary End
// bytes are optional: at most one leading and one trailing End are treated
// as frame delimiters, and only at the true first/last offset of buf.
// Buffers of fewer than two bytes cannot hold a complete frame.
func IsValid(buf []byte) bool {
	if len(buf) < 2 {
		return false
	}

	start, end := 0, len(buf)
	if buf[start] == End {
		start++
	}
	if end > start && buf[end-1] == End {
		end--
	}

	for i := start; i < end; i++ {
		switch buf[i] {
		case End:
			// an End inside the interior is a violation, not a boundary
			return false
		case Esc:
			if i == end-1 {
				return false
			}
			if next := buf[i+1]; next != EscEnd && next != EscEsc {
				return false
			}
			i++
		}
	}
	return true
}

// unframe drops the two boundary bytes without checking their value and
// reverses the escape substitution on the interior. The scan is best-effort
// but deterministic on malformed input: an Esc followed by a byte that is
// not a transposed code is dropped and that byte emitted verbatim, and an
// Esc ending the interior is emitted as-is.
func unframe(buf []byte) []byte {
	if len(buf) <= 2 {
		return []byte{}
	}

	interior := buf[1 : len(buf)-1]
	payload := make([]byte, 0, len(interior))
	for i := 0; i < len(interior); i++ {
		b := interior[i]
		if b == Esc && i+1 < len(interior) {
			switch next := interior[i+1]; next {
			case EscEnd:
				payload = append(payload, End)
			case EscEsc:
				payload = append(payload, Esc)
			default:
				payload = append(payload, next)
			}
			i++
			continue
		}
		payload = append(payload, b)
	}
	return payload
}
