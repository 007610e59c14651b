package slip

import (
	"github.com/rs/zerolog"
)

// Packet represents a received SLIP frame buffer. It is immutable once
// constructed: Decode and IsValid are read-only views producing new
// buffers, so distinct Packet values are safe for concurrent use without
// synchronization.
type Packet struct {
	buf                  []byte
	ignoreProtocolErrors bool
	logger               *zerolog.Logger
}

// NewPacket returns a Packet wrapping a private copy of buf. When
// ignoreProtocolErrors is true, Decode skips conformance validation and
// reconstructs the payload best-effort.
func NewPacket(buf []byte, ignoreProtocolErrors bool) *Packet {
	nop := zerolog.Nop()
	return NewPacketWithLogger(buf, ignoreProtocolErrors, &nop)
}

// NewPacketWithLogger is NewPacket with l receiving decode diagnostics.
func NewPacketWithLogger(buf []byte, ignoreProtocolErrors bool, l *zerolog.Logger) *Packet {
	data := make([]byte, len(buf))
	copy(data, buf)
	return &Packet{
		buf:                  data,
		ignoreProtocolErrors: ignoreProtocolErrors,
		logger:               l,
	}
}

// Data returns a copy of the stored frame buffer.
func (p *Packet) Data() []byte {
	data := make([]byte, len(p.buf))
	copy(data, p.buf)
	return data
}

// IsValid reports whether the stored buffer is a well-formed SLIP frame.
func (p *Packet) IsValid() bool {
	return IsValid(p.buf)
}

// Decode reconstructs the original payload from the stored frame. Under
// strict validation a non-conformant buffer fails with ErrProtocol and
// produces no output. With ignoreProtocolErrors set, Decode never fails:
// it drops one leading and one trailing byte as the frame delimiters and
// applies the same escape substitution, deterministically, even to
// malformed input.
func (p *Packet) Decode() ([]byte, error) {
	if !IsValid(p.buf) {
		if !p.ignoreProtocolErrors {
			return nil, ErrProtocol
		}
		p.logger.Debug().Int("len", len(p.buf)).Msg("decoding non-conformant SLIP buffer")
	}
	return unframe(p.buf), nil
}
