package wire

// Packet is implemented by every decoded MQTT control packet, identifying
// which concrete type C4 handed back from its completion callback.
type Packet interface {
	// Type returns the packet's fixed-header type nibble (already
	// shifted, e.g. CONNECT is 0x10).
	Type() uint8
}

// RawPacket is the verbatim (type, flags, payload) triple of a completed
// frame. The root package's Codec delivers one when DecodePacket fails for
// a frame, including a packet type with no registered decoder.
type RawPacket struct {
	PacketType uint8
	Flags      uint8
	Payload    []byte // variable header + payload, fixed header excluded
}

// Type returns the packet's fixed-header type nibble.
func (r RawPacket) Type() uint8 { return r.PacketType }

// finishPacket prepends a fixed header to body (variable header + v5
// properties + payload, already assembled) and returns the complete wire
// packet. This is the last of the five steps every C3 builder performs.
func finishPacket(packetType, flags uint8, body []byte) ([]byte, error) {
	header := FixedHeader{PacketType: packetType, Flags: flags, RemainingLength: len(body)}
	out, err := header.AppendTo(make([]byte, 0, len(body)+5))
	if err != nil {
		return nil, err
	}
	return append(out, body...), nil
}
