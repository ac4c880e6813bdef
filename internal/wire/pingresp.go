package wire

// BuildPingresp serializes a PINGRESP control packet: fixed header only,
// the wire-constant pair 0xD0 0x00.
func BuildPingresp() ([]byte, error) {
	return finishPacket(PINGRESP, 0, nil)
}

// PingrespPacket is the decoded form of an inbound PINGRESP packet. It
// carries no fields; the fixed header is the entire packet.
type PingrespPacket struct{}

// Type returns the packet type.
func (p *PingrespPacket) Type() uint8 { return PINGRESP }

// DecodePingresp decodes a PINGRESP packet, which has no variable header
// or payload.
func DecodePingresp(buf []byte) (*PingrespPacket, error) {
	return &PingrespPacket{}, nil
}
