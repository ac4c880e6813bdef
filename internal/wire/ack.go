package wire

import (
	"encoding/binary"
	"fmt"
)

// AckOptions is the common shape of PUBACK, PUBREC, PUBREL and PUBCOMP:
// a packet id plus, in v5, an optional reason code and property set. The
// reason code and properties are omitted entirely (the short 2-byte wire
// form) when the reason is success (0) and no properties are set.
type AckOptions struct {
	ProtocolLevel uint8
	PacketID      uint16
	ReasonCode    uint8
	Properties    *PropertySet // v5 only
}

func buildAck(packetType, flags uint8, o *AckOptions) ([]byte, error) {
	body := binary.BigEndian.AppendUint16(make([]byte, 0, 16), o.PacketID)

	if o.ProtocolLevel >= 5 && (o.ReasonCode != 0 || o.Properties.Len() > 0) {
		body = append(body, o.ReasonCode)
		var err error
		body, err = appendProperties(body, o.Properties)
		if err != nil {
			return nil, err
		}
	}

	return finishPacket(packetType, flags, body)
}

// AckPacket is the decoded form of an inbound PUBACK/PUBREC/PUBREL/PUBCOMP.
// PacketType distinguishes which of the four this is, since the wire shape
// is otherwise identical.
type AckPacket struct {
	PacketType uint8
	PacketID   uint16
	ReasonCode uint8
	Properties *PropertySet
	Version    uint8
}

// Type returns the packet type.
func (p *AckPacket) Type() uint8 { return p.PacketType }

func decodeAck(packetType uint8, buf []byte, version uint8) (*AckPacket, error) {
	if len(buf) < 2 {
		return nil, fmt.Errorf("%w: buffer too short for acknowledgment packet", ErrMalformedFrame)
	}

	pkt := &AckPacket{PacketType: packetType, Version: version}
	pkt.PacketID = binary.BigEndian.Uint16(buf)

	if version >= 5 && len(buf) > 2 {
		pkt.ReasonCode = buf[2]
		if len(buf) > 3 {
			props, _, err := decodeProperties(buf[3:])
			if err != nil {
				return nil, fmt.Errorf("failed to decode properties: %w", err)
			}
			pkt.Properties = props
		}
	}

	return pkt, nil
}
