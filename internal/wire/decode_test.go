package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodePacketDispatchesByType(t *testing.T) {
	raw, err := BuildSuback(&SubackOptions{ProtocolLevel: 4, PacketID: 1, ReturnCodes: []uint8{QoS1}})
	require.NoError(t, err)

	pktType, flags := DecodeFixedHeaderByte(raw[0])
	pkt, err := DecodePacket(pktType, flags, raw[2:], 4)
	require.NoError(t, err)

	suback, ok := pkt.(*SubackPacket)
	require.True(t, ok, "decoded type = %T, want *SubackPacket", pkt)
	require.Equal(t, uint16(1), suback.PacketID)
}

func TestDecodePacketUnknownType(t *testing.T) {
	_, err := DecodePacket(Reserved, 0, nil, 4)
	require.Error(t, err)
}

func TestDecodePacketEveryRegisteredType(t *testing.T) {
	for _, pktType := range []uint8{
		CONNECT, CONNACK, PUBLISH, PUBACK, PUBREC, PUBREL, PUBCOMP,
		SUBSCRIBE, SUBACK, UNSUBSCRIBE, UNSUBACK, PINGREQ, PINGRESP,
		DISCONNECT, AUTH,
	} {
		_, ok := packetDecoders[pktType]
		require.True(t, ok, "packetDecoders missing entry for %s", PacketNames[pktType])
	}
}
