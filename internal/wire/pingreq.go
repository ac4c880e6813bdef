package wire

// BuildPingreq serializes a PINGREQ control packet: fixed header only,
// the wire-constant pair 0xC0 0x00.
func BuildPingreq() ([]byte, error) {
	return finishPacket(PINGREQ, 0, nil)
}

// PingreqPacket is the decoded form of an inbound PINGREQ packet. It
// carries no fields; the fixed header is the entire packet.
type PingreqPacket struct{}

// Type returns the packet type.
func (p *PingreqPacket) Type() uint8 { return PINGREQ }

// DecodePingreq decodes a PINGREQ packet, which has no variable header
// or payload.
func DecodePingreq(buf []byte) (*PingreqPacket, error) {
	return &PingreqPacket{}, nil
}
