package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildDecodeSuback(t *testing.T) {
	raw, err := BuildSuback(&SubackOptions{
		ProtocolLevel: 4,
		PacketID:      3,
		ReturnCodes:   []uint8{QoS0, QoS1, SubackFailure},
	})
	require.NoError(t, err)

	decoded, err := DecodeSuback(raw[2:], 4)
	require.NoError(t, err)
	require.Equal(t, uint16(3), decoded.PacketID)
	require.Equal(t, []uint8{QoS0, QoS1, SubackFailure}, decoded.ReturnCodes)
}

func TestUnsubackV3HasNoReasonCodes(t *testing.T) {
	raw, err := BuildUnsuback(&UnsubackOptions{ProtocolLevel: 4, PacketID: 8, ReasonCodes: []uint8{0x11}})
	require.NoError(t, err)
	require.Len(t, raw, 4)

	decoded, err := DecodeUnsuback(raw[2:], 4)
	require.NoError(t, err)
	require.Equal(t, uint16(8), decoded.PacketID)
	require.Empty(t, decoded.ReasonCodes)
}

func TestUnsubackV5HasReasonCodes(t *testing.T) {
	raw, err := BuildUnsuback(&UnsubackOptions{ProtocolLevel: 5, PacketID: 8, ReasonCodes: []uint8{0x11, 0x80}})
	require.NoError(t, err)

	decoded, err := DecodeUnsuback(raw[2:], 5)
	require.NoError(t, err)
	require.Equal(t, []uint8{0x11, 0x80}, decoded.ReasonCodes)
}
