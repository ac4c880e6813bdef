package wire

import "fmt"

// PacketDecoder decodes a completed frame's payload into a typed Packet.
// flags comes from the fixed header; version is 4 for v3.1.1 or 5 for v5.
type PacketDecoder func(payload []byte, flags uint8, version uint8) (Packet, error)

// packetDecoders maps every packet type C4 can deliver to its decoder, so
// the receive path can hand callers a typed packet rather than the
// opaque (type, flags, buffer) triple alone.
var packetDecoders = map[uint8]PacketDecoder{
	CONNECT: func(p []byte, _ uint8, _ uint8) (Packet, error) { return DecodeConnect(p) },
	CONNACK: func(p []byte, _ uint8, v uint8) (Packet, error) { return DecodeConnack(p, v) },
	PUBLISH: func(p []byte, flags uint8, v uint8) (Packet, error) { return DecodePublish(p, flags, v) },
	PUBACK:  func(p []byte, _ uint8, v uint8) (Packet, error) { return DecodePuback(p, v) },
	PUBREC:  func(p []byte, _ uint8, v uint8) (Packet, error) { return DecodePubrec(p, v) },
	PUBREL:  func(p []byte, _ uint8, v uint8) (Packet, error) { return DecodePubrel(p, v) },
	PUBCOMP: func(p []byte, _ uint8, v uint8) (Packet, error) { return DecodePubcomp(p, v) },
	SUBSCRIBE: func(p []byte, _ uint8, v uint8) (Packet, error) {
		return DecodeSubscribe(p, v)
	},
	SUBACK: func(p []byte, _ uint8, v uint8) (Packet, error) { return DecodeSuback(p, v) },
	UNSUBSCRIBE: func(p []byte, _ uint8, v uint8) (Packet, error) {
		return DecodeUnsubscribe(p, v)
	},
	UNSUBACK:   func(p []byte, _ uint8, v uint8) (Packet, error) { return DecodeUnsuback(p, v) },
	PINGREQ:    func(p []byte, _ uint8, _ uint8) (Packet, error) { return DecodePingreq(p) },
	PINGRESP:   func(p []byte, _ uint8, _ uint8) (Packet, error) { return DecodePingresp(p) },
	DISCONNECT: func(p []byte, _ uint8, v uint8) (Packet, error) { return DecodeDisconnect(p, v) },
	AUTH:       func(p []byte, _ uint8, v uint8) (Packet, error) { return DecodeAuth(p, v) },
}

// DecodePacket dispatches a completed frame's payload to the decoder
// registered for packetType, returning the typed Packet. Unknown packet
// types (reserved values, or a malformed type nibble) are reported as
// ErrMalformedFrame.
func DecodePacket(packetType uint8, flags uint8, payload []byte, version uint8) (Packet, error) {
	decoder, ok := packetDecoders[packetType]
	if !ok {
		return nil, fmt.Errorf("%w: unknown packet type %d", ErrMalformedFrame, packetType)
	}
	return decoder(payload, flags, version)
}
