package wire

import "fmt"

// ReasonOptions is the variable header shape of DISCONNECT: a v5 reason
// code plus a property set, with no packet identifier. The reason code and
// properties are omitted entirely when the reason is Normal (0) and no
// properties are set. AUTH has the same fields but is built by BuildAuth
// from AuthOptions, and always carries its reason code.
type ReasonOptions struct {
	ProtocolLevel uint8
	ReasonCode    uint8
	Properties    *PropertySet
}

func buildReasonPacket(packetType, flags uint8, o *ReasonOptions) ([]byte, error) {
	if o.ProtocolLevel < 5 || (o.ReasonCode == 0 && o.Properties.Len() == 0) {
		return finishPacket(packetType, flags, nil)
	}

	body := []byte{o.ReasonCode}
	body, err := appendProperties(body, o.Properties)
	if err != nil {
		return nil, err
	}

	return finishPacket(packetType, flags, body)
}

// ReasonPacket is the decoded form of an inbound DISCONNECT packet. AUTH
// decodes to AuthPacket instead.
type ReasonPacket struct {
	PacketType uint8
	ReasonCode uint8
	Properties *PropertySet
	Version    uint8
}

// Type returns the packet type.
func (p *ReasonPacket) Type() uint8 { return p.PacketType }

func decodeReasonPacket(packetType uint8, buf []byte, version uint8) (*ReasonPacket, error) {
	pkt := &ReasonPacket{PacketType: packetType, Version: version}

	if version >= 5 && len(buf) > 0 {
		pkt.ReasonCode = buf[0]
		if len(buf) > 1 {
			props, _, err := decodeProperties(buf[1:])
			if err != nil {
				return nil, fmt.Errorf("failed to decode properties: %w", err)
			}
			pkt.Properties = props
		}
	}

	return pkt, nil
}
