package wire

import "fmt"

// AUTH reason codes (v5 only).
const (
	AuthReasonSuccess        uint8 = 0x00
	AuthReasonContinue       uint8 = 0x18
	AuthReasonReauthenticate uint8 = 0x19
)

// AuthOptions is the immutable input to BuildAuth. AUTH is an MQTT v5
// control packet used for extended (e.g. SCRAM, OAuth, Kerberos)
// authentication exchanges; it does not exist under v3.1.1.
type AuthOptions struct {
	ReasonCode uint8
	Properties *PropertySet
}

// BuildAuth serializes an AUTH control packet. Unlike DISCONNECT/PUBACK's
// ack family, AUTH always carries its reason code; there is no short form.
func BuildAuth(o *AuthOptions) ([]byte, error) {
	body := []byte{o.ReasonCode}
	body, err := appendProperties(body, o.Properties)
	if err != nil {
		return nil, err
	}
	return finishPacket(AUTH, 0, body)
}

// AuthPacket is the decoded form of an inbound AUTH packet.
type AuthPacket struct {
	ReasonCode uint8
	Properties *PropertySet
	Version    uint8
}

// Type returns the packet type.
func (p *AuthPacket) Type() uint8 { return AUTH }

// DecodeAuth decodes an AUTH variable header. AUTH is only valid under v5.
func DecodeAuth(buf []byte, version uint8) (*AuthPacket, error) {
	if version < 5 {
		return nil, fmt.Errorf("%w: AUTH packet is only valid for MQTT v5", ErrInvalidArgument)
	}
	if len(buf) < 1 {
		return nil, fmt.Errorf("%w: buffer too short for AUTH packet", ErrMalformedFrame)
	}

	pkt := &AuthPacket{Version: version}
	pkt.ReasonCode = buf[0]
	offset := 1

	if offset < len(buf) {
		props, _, err := decodeProperties(buf[offset:])
		if err != nil {
			return nil, fmt.Errorf("failed to decode properties: %w", err)
		}
		pkt.Properties = props
	}

	return pkt, nil
}
