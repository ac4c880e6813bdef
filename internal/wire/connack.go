package wire

import "fmt"

// ConnackOptions is the immutable input to BuildConnack.
type ConnackOptions struct {
	ProtocolLevel  uint8
	SessionPresent bool
	ReturnCode     uint8
	Properties     *PropertySet // v5 only
}

// BuildConnack serializes a CONNACK control packet.
func BuildConnack(o *ConnackOptions) ([]byte, error) {
	var ackFlags uint8
	if o.SessionPresent {
		ackFlags |= 0x01
	}

	body := []byte{ackFlags, o.ReturnCode}

	var err error
	if o.ProtocolLevel >= 5 {
		body, err = appendProperties(body, o.Properties)
		if err != nil {
			return nil, err
		}
	}

	return finishPacket(CONNACK, 0, body)
}

// ConnackPacket is the decoded form of an inbound CONNACK packet.
type ConnackPacket struct {
	SessionPresent bool
	ReturnCode     uint8
	Properties     *PropertySet
}

// Type returns the packet type.
func (p *ConnackPacket) Type() uint8 { return CONNACK }

// DecodeConnack decodes a CONNACK variable header.
func DecodeConnack(buf []byte, version uint8) (*ConnackPacket, error) {
	if len(buf) < 2 {
		return nil, fmt.Errorf("%w: buffer too short for CONNACK packet", ErrMalformedFrame)
	}

	pkt := &ConnackPacket{}
	pkt.SessionPresent = buf[0]&0x01 != 0
	pkt.ReturnCode = buf[1]

	if version >= 5 && len(buf) > 2 {
		props, _, err := decodeProperties(buf[2:])
		if err != nil {
			return nil, fmt.Errorf("failed to decode properties: %w", err)
		}
		pkt.Properties = props
	}

	return pkt, nil
}
