package wire

import (
	"encoding/binary"
	"fmt"
)

// SubackOptions is the immutable input to BuildSuback.
type SubackOptions struct {
	ProtocolLevel uint8
	PacketID      uint16
	ReturnCodes   []uint8
	Properties    *PropertySet // v5 only
}

// BuildSuback serializes a SUBACK control packet.
func BuildSuback(o *SubackOptions) ([]byte, error) {
	body := binary.BigEndian.AppendUint16(make([]byte, 0, 16), o.PacketID)

	var err error
	if o.ProtocolLevel >= 5 {
		body, err = appendProperties(body, o.Properties)
		if err != nil {
			return nil, err
		}
	}

	body = append(body, o.ReturnCodes...)

	return finishPacket(SUBACK, 0, body)
}

// SubackPacket is the decoded form of an inbound SUBACK packet.
type SubackPacket struct {
	PacketID    uint16
	ReturnCodes []uint8
	Properties  *PropertySet
	Version     uint8
}

// Type returns the packet type.
func (p *SubackPacket) Type() uint8 { return SUBACK }

// DecodeSuback decodes a SUBACK variable header and payload.
func DecodeSuback(buf []byte, version uint8) (*SubackPacket, error) {
	if len(buf) < 2 {
		return nil, fmt.Errorf("%w: buffer too short for SUBACK packet", ErrMalformedFrame)
	}

	pkt := &SubackPacket{Version: version}
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
		pkt.ReturnCodes = make([]uint8, len(buf)-offset)
		copy(pkt.ReturnCodes, buf[offset:])
	}

	return pkt, nil
}
