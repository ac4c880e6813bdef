package wire

import "fmt"

// FixedHeader is the first part of every MQTT control packet: one byte
// combining the packet type nibble and flags nibble, followed by the
// variable-byte-integer remaining length.
type FixedHeader struct {
	// PacketType already carries the flags nibble cleared (e.g. CONNECT is
	// 0x10); Flags is OR'd in separately so callers don't have to combine
	// them by hand.
	PacketType      uint8
	Flags           uint8
	RemainingLength int
}

// AppendTo appends the encoded fixed header to dst and returns the
// extended slice. Fails if RemainingLength exceeds MaxSendSize.
func (h FixedHeader) AppendTo(dst []byte) ([]byte, error) {
	if h.RemainingLength < 0 || h.RemainingLength > MaxSendSize {
		return nil, fmt.Errorf("%w: remaining length %d exceeds %d-byte limit", ErrInvalidArgument, h.RemainingLength, MaxSendSize)
	}
	dst = append(dst, h.PacketType|(h.Flags&0x0F))
	return AppendVarInt(dst, h.RemainingLength)
}

// Encode returns the fixed header as a freshly allocated slice.
func (h FixedHeader) Encode() ([]byte, error) {
	return h.AppendTo(make([]byte, 0, 5))
}

// DecodeFixedHeaderByte splits the first fixed-header byte into a packet
// type (high nibble, pre-shifted so it can be compared directly against
// the constants in types.go) and a flags nibble.
func DecodeFixedHeaderByte(b byte) (packetType uint8, flags uint8) {
	return b & 0xF0, b & 0x0F
}
