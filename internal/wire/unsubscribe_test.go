package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildDecodeUnsubscribe(t *testing.T) {
	o := &UnsubscribeOptions{
		ProtocolLevel: 4,
		PacketID:      11,
		Topics:        []string{"a/#", "b/+"},
	}

	raw, err := BuildUnsubscribe(o)
	require.NoError(t, err)

	_, flags := DecodeFixedHeaderByte(raw[0])
	require.Equal(t, uint8(0x02), flags)

	decoded, err := DecodeUnsubscribe(raw[2:], 4)
	require.NoError(t, err)
	require.Equal(t, uint16(11), decoded.PacketID)
	require.Equal(t, []string{"a/#", "b/+"}, decoded.Topics)
}

func TestUnsubscribeOptionsValidate(t *testing.T) {
	require.Error(t, (&UnsubscribeOptions{}).validate())
	require.Error(t, (&UnsubscribeOptions{Topics: []string{""}}).validate())
}
