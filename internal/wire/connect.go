package wire

import (
	"encoding/binary"
	"fmt"
)

// ConnectOptions is the immutable snapshot BuildConnect consumes: client
// identifier, optional credentials, optional will, keep-alive and
// clean-session flags. HasUsername/HasPassword/HasWill are explicit
// because an empty string and an absent field are different things on
// the wire.
type ConnectOptions struct {
	ProtocolLevel uint8 // 4 for v3.1.1, 5 for v5

	ClientID     string
	CleanSession bool
	KeepAlive    uint16

	HasWill        bool
	WillTopic      string
	WillMessage    []byte
	WillQoS        uint8
	WillRetain     bool
	WillProperties *PropertySet // v5 only

	HasUsername bool
	Username    string
	HasPassword bool
	Password    string

	Properties *PropertySet // v5 only
}

func (o *ConnectOptions) validate() error {
	if o.HasPassword && !o.HasUsername {
		return fmt.Errorf("%w: password set without username", ErrInvalidArgument)
	}
	if o.HasWill && o.WillTopic == "" {
		return fmt.Errorf("%w: will flag set without a will topic", ErrInvalidArgument)
	}
	if o.HasWill && o.WillQoS > 2 {
		return fmt.Errorf("%w: will QoS %d out of range", ErrInvalidArgument, o.WillQoS)
	}
	return nil
}

// connectFlags computes the connect-flags byte per spec's bit layout.
// This is the "patch later" byte: callers compute it once, up front,
// rather than writing a placeholder and going back to fix it, since the
// whole byte is known before any of the variable header is appended.
func (o *ConnectOptions) connectFlags() uint8 {
	var flags uint8
	if o.CleanSession {
		flags |= 0x02
	}
	if o.HasWill {
		flags |= 0x04
		flags |= (o.WillQoS << 3) & 0x18
		if o.WillRetain {
			flags |= 0x20
		}
	}
	if o.HasPassword {
		flags |= 0x40
	}
	if o.HasUsername {
		flags |= 0x80
	}
	return flags
}

// BuildConnect serializes a CONNECT control packet.
func BuildConnect(o *ConnectOptions) ([]byte, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}

	var body []byte
	var err error

	body, err = appendString(make([]byte, 0, 64), "MQTT")
	if err != nil {
		return nil, err
	}
	body = append(body, o.ProtocolLevel, o.connectFlags())
	body = binary.BigEndian.AppendUint16(body, o.KeepAlive)

	if o.ProtocolLevel >= 5 {
		body, err = appendProperties(body, o.Properties)
		if err != nil {
			return nil, err
		}
	}

	body, err = appendString(body, o.ClientID)
	if err != nil {
		return nil, err
	}

	if o.HasWill {
		if o.ProtocolLevel >= 5 {
			body, err = appendProperties(body, o.WillProperties)
			if err != nil {
				return nil, err
			}
		}
		body, err = appendString(body, o.WillTopic)
		if err != nil {
			return nil, err
		}
		body, err = appendBinary(body, o.WillMessage)
		if err != nil {
			return nil, err
		}
	}

	if o.HasUsername {
		body, err = appendString(body, o.Username)
		if err != nil {
			return nil, err
		}
	}
	if o.HasPassword {
		body, err = appendString(body, o.Password)
		if err != nil {
			return nil, err
		}
	}

	return finishPacket(CONNECT, 0, body)
}

// ConnectPacket is the decoded form of an inbound CONNECT packet.
type ConnectPacket struct {
	ProtocolName  string
	ProtocolLevel uint8

	CleanSession bool
	WillFlag     bool
	WillQoS      uint8
	WillRetain   bool
	PasswordFlag bool
	UsernameFlag bool

	KeepAlive uint16

	ClientID string

	WillTopic      string
	WillMessage    []byte
	WillProperties *PropertySet

	Username string
	Password string

	Properties *PropertySet
}

// Type returns the packet type.
func (p *ConnectPacket) Type() uint8 { return CONNECT }

// DecodeConnect decodes a CONNECT variable header and payload.
func DecodeConnect(buf []byte) (*ConnectPacket, error) {
	if len(buf) < 10 {
		return nil, fmt.Errorf("%w: buffer too short for CONNECT packet", ErrMalformedFrame)
	}

	pkt := &ConnectPacket{}
	offset := 0

	protocolName, n, err := decodeString(buf[offset:])
	if err != nil {
		return nil, fmt.Errorf("failed to decode protocol name: %w", err)
	}
	pkt.ProtocolName = protocolName
	offset += n

	if offset >= len(buf) {
		return nil, fmt.Errorf("%w: buffer too short for protocol level", ErrMalformedFrame)
	}
	pkt.ProtocolLevel = buf[offset]
	offset++

	if offset >= len(buf) {
		return nil, fmt.Errorf("%w: buffer too short for connect flags", ErrMalformedFrame)
	}
	connectFlags := buf[offset]
	offset++

	pkt.CleanSession = connectFlags&0x02 != 0
	pkt.WillFlag = connectFlags&0x04 != 0
	pkt.WillQoS = (connectFlags >> 3) & 0x03
	pkt.WillRetain = connectFlags&0x20 != 0
	pkt.PasswordFlag = connectFlags&0x40 != 0
	pkt.UsernameFlag = connectFlags&0x80 != 0

	if offset+2 > len(buf) {
		return nil, fmt.Errorf("%w: buffer too short for keep alive", ErrMalformedFrame)
	}
	pkt.KeepAlive = binary.BigEndian.Uint16(buf[offset:])
	offset += 2

	if pkt.ProtocolLevel >= 5 {
		props, nProps, err := decodeProperties(buf[offset:])
		if err != nil {
			return nil, fmt.Errorf("failed to decode properties: %w", err)
		}
		pkt.Properties = props
		offset += nProps
	}

	clientID, n, err := decodeString(buf[offset:])
	if err != nil {
		return nil, fmt.Errorf("failed to decode client id: %w", err)
	}
	pkt.ClientID = clientID
	offset += n

	if pkt.WillFlag {
		if pkt.ProtocolLevel >= 5 {
			props, nProps, err := decodeProperties(buf[offset:])
			if err != nil {
				return nil, fmt.Errorf("failed to decode will properties: %w", err)
			}
			pkt.WillProperties = props
			offset += nProps
		}

		willTopic, n, err := decodeString(buf[offset:])
		if err != nil {
			return nil, fmt.Errorf("failed to decode will topic: %w", err)
		}
		pkt.WillTopic = willTopic
		offset += n

		willMessage, n, err := decodeBinary(buf[offset:])
		if err != nil {
			return nil, fmt.Errorf("failed to decode will message: %w", err)
		}
		pkt.WillMessage = willMessage
		offset += n
	}

	if pkt.UsernameFlag {
		username, n, err := decodeString(buf[offset:])
		if err != nil {
			return nil, fmt.Errorf("failed to decode username: %w", err)
		}
		pkt.Username = username
		offset += n
	}

	if pkt.PasswordFlag {
		password, _, err := decodeString(buf[offset:])
		if err != nil {
			return nil, fmt.Errorf("failed to decode password: %w", err)
		}
		pkt.Password = password
	}

	return pkt, nil
}
