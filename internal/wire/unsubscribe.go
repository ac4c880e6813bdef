package wire

import (
	"encoding/binary"
	"fmt"
)

// UnsubscribeOptions is the immutable input to BuildUnsubscribe.
type UnsubscribeOptions struct {
	ProtocolLevel uint8
	PacketID      uint16
	Topics        []string
	Properties    *PropertySet // v5 only
}

func (o *UnsubscribeOptions) validate() error {
	if len(o.Topics) == 0 {
		return fmt.Errorf("%w: unsubscribe payload must have at least one topic filter", ErrInvalidArgument)
	}
	for _, t := range o.Topics {
		if t == "" {
			return fmt.Errorf("%w: unsubscribe topic filter must not be empty", ErrInvalidArgument)
		}
	}
	return nil
}

// BuildUnsubscribe serializes an UNSUBSCRIBE control packet. Fixed-header
// flags are always 0x02 (reserved).
func BuildUnsubscribe(o *UnsubscribeOptions) ([]byte, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}

	body := binary.BigEndian.AppendUint16(make([]byte, 0, 32), o.PacketID)

	var err error
	if o.ProtocolLevel >= 5 {
		body, err = appendProperties(body, o.Properties)
		if err != nil {
			return nil, err
		}
	}

	for _, topic := range o.Topics {
		body, err = appendString(body, topic)
		if err != nil {
			return nil, err
		}
	}

	return finishPacket(UNSUBSCRIBE, 0x02, body)
}

// UnsubscribePacket is the decoded form of an inbound UNSUBSCRIBE packet.
type UnsubscribePacket struct {
	PacketID   uint16
	Topics     []string
	Properties *PropertySet
	Version    uint8
}

// Type returns the packet type.
func (p *UnsubscribePacket) Type() uint8 { return UNSUBSCRIBE }

// DecodeUnsubscribe decodes an UNSUBSCRIBE variable header and payload.
func DecodeUnsubscribe(buf []byte, version uint8) (*UnsubscribePacket, error) {
	if len(buf) < 2 {
		return nil, fmt.Errorf("%w: buffer too short for UNSUBSCRIBE packet", ErrMalformedFrame)
	}

	pkt := &UnsubscribePacket{Version: version}
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

	for offset < len(buf) {
		topic, n, err := decodeString(buf[offset:])
		if err != nil {
			return nil, fmt.Errorf("failed to decode topic filter: %w", err)
		}
		offset += n
		pkt.Topics = append(pkt.Topics, topic)
	}

	return pkt, nil
}
