package wire

import (
	"encoding/binary"
	"fmt"
)

// SubscribeItem is one (topic filter, requested QoS) pair of a SUBSCRIBE
// payload, plus the v5 subscription options that ride along with it.
type SubscribeItem struct {
	TopicFilter string
	QoS         uint8

	// v5 only.
	NoLocal           bool
	RetainAsPublished bool
	RetainHandling    uint8 // 0=Send, 1=SendIfNew, 2=DoNotSend
}

// SubscribeOptions is the immutable input to BuildSubscribe.
type SubscribeOptions struct {
	ProtocolLevel uint8
	PacketID      uint16
	Items         []SubscribeItem
	Properties    *PropertySet // v5 only
}

func (o *SubscribeOptions) validate() error {
	if len(o.Items) == 0 {
		return fmt.Errorf("%w: subscribe payload must have at least one item", ErrInvalidArgument)
	}
	for _, it := range o.Items {
		if it.TopicFilter == "" {
			return fmt.Errorf("%w: subscribe topic filter must not be empty", ErrInvalidArgument)
		}
		if it.QoS > 2 {
			return fmt.Errorf("%w: QoS %d out of range", ErrInvalidArgument, it.QoS)
		}
		if it.RetainHandling > 2 {
			return fmt.Errorf("%w: retain handling %d out of range", ErrInvalidArgument, it.RetainHandling)
		}
	}
	return nil
}

// BuildSubscribe serializes a SUBSCRIBE control packet. Fixed-header flags
// are always 0x02 (reserved).
func BuildSubscribe(o *SubscribeOptions) ([]byte, error) {
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

	for _, it := range o.Items {
		body, err = appendString(body, it.TopicFilter)
		if err != nil {
			return nil, err
		}

		opts := it.QoS & 0x03
		if o.ProtocolLevel >= 5 {
			if it.NoLocal {
				opts |= 1 << 2
			}
			if it.RetainAsPublished {
				opts |= 1 << 3
			}
			opts |= (it.RetainHandling & 0x03) << 4
		}
		body = append(body, opts)
	}

	return finishPacket(SUBSCRIBE, 0x02, body)
}

// SubscribePacket is the decoded form of an inbound SUBSCRIBE packet.
type SubscribePacket struct {
	PacketID   uint16
	Items      []SubscribeItem
	Properties *PropertySet
	Version    uint8
}

// Type returns the packet type.
func (p *SubscribePacket) Type() uint8 { return SUBSCRIBE }

// DecodeSubscribe decodes a SUBSCRIBE variable header and payload.
func DecodeSubscribe(buf []byte, version uint8) (*SubscribePacket, error) {
	if len(buf) < 2 {
		return nil, fmt.Errorf("%w: buffer too short for SUBSCRIBE packet", ErrMalformedFrame)
	}

	pkt := &SubscribePacket{Version: version}
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

		if offset >= len(buf) {
			return nil, fmt.Errorf("%w: buffer too short for subscription options byte", ErrMalformedFrame)
		}
		opts := buf[offset]
		offset++

		item := SubscribeItem{TopicFilter: topic, QoS: opts & 0x03}
		if version >= 5 {
			item.NoLocal = opts&(1<<2) != 0
			item.RetainAsPublished = opts&(1<<3) != 0
			item.RetainHandling = (opts >> 4) & 0x03
		}
		pkt.Items = append(pkt.Items, item)
	}

	return pkt, nil
}
