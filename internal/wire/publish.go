package wire

import (
	"encoding/binary"
	"fmt"
)

// PublishOptions is the immutable input to BuildPublish.
type PublishOptions struct {
	ProtocolLevel uint8

	Topic    string
	PacketID uint16 // used only when QoS > 0
	QoS      uint8
	Dup      bool
	Retain   bool
	Payload  []byte

	Properties *PropertySet // v5 only
}

func (o *PublishOptions) validate() error {
	if o.Topic == "" {
		return fmt.Errorf("%w: publish topic must not be empty", ErrInvalidArgument)
	}
	if len(o.Topic) > MaxUTF8Len {
		return fmt.Errorf("%w: publish topic exceeds %d-byte limit", ErrInvalidArgument, MaxUTF8Len)
	}
	if o.QoS > 2 {
		return fmt.Errorf("%w: QoS %d out of range", ErrInvalidArgument, o.QoS)
	}
	return nil
}

// BuildPublish serializes a PUBLISH control packet.
func BuildPublish(o *PublishOptions) ([]byte, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}

	body, err := appendString(make([]byte, 0, 32+len(o.Payload)), o.Topic)
	if err != nil {
		return nil, err
	}

	if o.QoS > 0 {
		body = binary.BigEndian.AppendUint16(body, o.PacketID)
	}

	if o.ProtocolLevel >= 5 {
		body, err = appendProperties(body, o.Properties)
		if err != nil {
			return nil, err
		}
	}

	body = append(body, o.Payload...)
	if len(body) > MaxSendSize {
		return nil, fmt.Errorf("%w: publish packet of %d bytes exceeds %d-byte limit", ErrInvalidArgument, len(body), MaxSendSize)
	}

	var flags uint8
	if o.Dup {
		flags |= 0x08
	}
	flags |= (o.QoS & 0x03) << 1
	if o.Retain {
		flags |= 0x01
	}

	return finishPacket(PUBLISH, flags, body)
}

// PublishPacket is the decoded form of an inbound PUBLISH packet.
type PublishPacket struct {
	Dup    bool
	QoS    uint8
	Retain bool

	Topic    string
	PacketID uint16 // present only if QoS > 0

	Payload []byte

	Properties *PropertySet
	Version    uint8
}

// Type returns the packet type.
func (p *PublishPacket) Type() uint8 { return PUBLISH }

// DecodePublish decodes a PUBLISH variable header and payload. flags is the
// fixed header's flags nibble (DUP/QoS/RETAIN).
func DecodePublish(buf []byte, flags uint8, version uint8) (*PublishPacket, error) {
	pkt := &PublishPacket{Version: version}
	pkt.Dup = flags&0x08 != 0
	pkt.QoS = (flags >> 1) & 0x03
	pkt.Retain = flags&0x01 != 0

	offset := 0

	topic, n, err := decodeString(buf[offset:])
	if err != nil {
		return nil, fmt.Errorf("failed to decode topic: %w", err)
	}
	pkt.Topic = topic
	offset += n

	if pkt.QoS > 0 {
		if offset+2 > len(buf) {
			return nil, fmt.Errorf("%w: buffer too short for packet id", ErrMalformedFrame)
		}
		pkt.PacketID = binary.BigEndian.Uint16(buf[offset:])
		offset += 2
	}

	if version >= 5 {
		props, nProps, err := decodeProperties(buf[offset:])
		if err != nil {
			return nil, fmt.Errorf("failed to decode properties: %w", err)
		}
		pkt.Properties = props
		offset += nProps
	}

	pkt.Payload = make([]byte, len(buf)-offset)
	copy(pkt.Payload, buf[offset:])

	return pkt, nil
}
