package wire

import (
	"encoding/binary"
	"fmt"
)

// UnsubackOptions is the immutable input to BuildUnsuback. Under v3.1.1
// UNSUBACK carries only a packet identifier; reason codes and properties
// are v5 additions.
type UnsubackOptions struct {
	ProtocolLevel uint8
	PacketID      uint16
	ReasonCodes   []uint8      // v5 only
	Properties    *PropertySet // v5 only
}

// BuildUnsuback serializes an UNSUBACK control packet.
func BuildUnsuback(o *UnsubackOptions) ([]byte, error) {
	body := binary.BigEndian.AppendUint16(make([]byte, 0, 16), o.PacketID)

	if o.ProtocolLevel >= 5 {
		var err error
		body, err = appendProperties(body, o.Properties)
		if err != nil {
			return nil, err
		}
		body = append(body, o.ReasonCodes...)
	}

	return finishPacket(UNSUBACK, 0, body)
}

// UnsubackPacket is the decoded form of an inbound UNSUBACK packet.
type UnsubackPacket struct {
	PacketID    uint16
	ReasonCodes []uint8
	Properties  *PropertySet
	Version     uint8
}

// Type returns the packet type.
func (p *UnsubackPacket) Type() uint8 { return UNSUBACK }

// DecodeUnsuback decodes an UNSUBACK variable header and payload.
func DecodeUnsuback(buf []byte, version uint8) (*UnsubackPacket, error) {
	if len(buf) < 2 {
		return nil, fmt.Errorf("%w: buffer too short for UNSUBACK packet", ErrMalformedFrame)
	}

	pkt := &UnsubackPacket{Version: version}
	offset := 0

	pkt.PacketID = binary.BigEndian.Uint16(buf[offset:])
	offset += 2

	if version >= 5 {
		props, n, err := decodeProperties(buf[offset:])
		if err != nil {
			return nil, fmt.Errorf("failed to decode properties: %w", err)
		}
		pkt.Properties = props
		offset += n
	}

	if offset < len(buf) {
		pkt.ReasonCodes = make([]uint8, len(buf)-offset)
		copy(pkt.ReasonCodes, buf[offset:])
	}

	return pkt, nil
}
