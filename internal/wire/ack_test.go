package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildDecodeAckShortFormV3(t *testing.T) {
	raw, err := BuildPuback(&AckOptions{ProtocolLevel: 4, PacketID: 7})
	require.NoError(t, err)
	require.Len(t, raw, 4)

	decoded, err := DecodePuback(raw[2:], 4)
	require.NoError(t, err)
	require.Equal(t, uint16(7), decoded.PacketID)
	require.Equal(t, uint8(0), decoded.ReasonCode)
}

func TestBuildDecodeAckV5WithReasonAndProperties(t *testing.T) {
	props := NewPropertySet()
	mustAdd(t, props.AddString(PropReasonString, "no matching subscribers"))

	raw, err := BuildPubrec(&AckOptions{
		ProtocolLevel: 5,
		PacketID:      9,
		ReasonCode:    0x10,
		Properties:    props,
	})
	require.NoError(t, err)

	_, flags := DecodeFixedHeaderByte(raw[0])
	require.Equal(t, uint8(0), flags)

	decoded, err := DecodePubrec(raw[2:], 5)
	require.NoError(t, err)
	require.Equal(t, uint16(9), decoded.PacketID)
	require.Equal(t, uint8(0x10), decoded.ReasonCode)
	require.Equal(t, 1, decoded.Properties.Len())
}

func TestBuildPubrelReservedFlags(t *testing.T) {
	raw, err := BuildPubrel(&AckOptions{ProtocolLevel: 4, PacketID: 1})
	require.NoError(t, err)
	_, flags := DecodeFixedHeaderByte(raw[0])
	require.Equal(t, uint8(0x02), flags)
}

func TestAckV5SuccessOmitsReasonCode(t *testing.T) {
	raw, err := BuildPubcomp(&AckOptions{ProtocolLevel: 5, PacketID: 3, ReasonCode: 0})
	require.NoError(t, err)
	require.Len(t, raw, 4)
}
