package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildDecodeSubscribeV3(t *testing.T) {
	o := &SubscribeOptions{
		ProtocolLevel: 4,
		PacketID:      5,
		Items: []SubscribeItem{
			{TopicFilter: "a/#", QoS: 1},
			{TopicFilter: "b/+", QoS: 2},
		},
	}

	raw, err := BuildSubscribe(o)
	require.NoError(t, err)

	_, flags := DecodeFixedHeaderByte(raw[0])
	require.Equal(t, uint8(0x02), flags)

	decoded, err := DecodeSubscribe(raw[2:], 4)
	require.NoError(t, err)
	require.Equal(t, uint16(5), decoded.PacketID)
	require.Len(t, decoded.Items, 2)
	require.Equal(t, "a/#", decoded.Items[0].TopicFilter)
	require.Equal(t, uint8(1), decoded.Items[0].QoS)
	require.Equal(t, "b/+", decoded.Items[1].TopicFilter)
	require.Equal(t, uint8(2), decoded.Items[1].QoS)
}

func TestBuildDecodeSubscribeV5Options(t *testing.T) {
	o := &SubscribeOptions{
		ProtocolLevel: 5,
		PacketID:      1,
		Items: []SubscribeItem{
			{TopicFilter: "x/y", QoS: 0, NoLocal: true, RetainAsPublished: true, RetainHandling: 2},
		},
	}

	raw, err := BuildSubscribe(o)
	require.NoError(t, err)

	decoded, err := DecodeSubscribe(raw[2:], 5)
	require.NoError(t, err)
	item := decoded.Items[0]
	require.True(t, item.NoLocal)
	require.True(t, item.RetainAsPublished)
	require.Equal(t, uint8(2), item.RetainHandling)
}

func TestSubscribeOptionsValidate(t *testing.T) {
	require.Error(t, (&SubscribeOptions{}).validate())
	require.Error(t, (&SubscribeOptions{Items: []SubscribeItem{{TopicFilter: ""}}}).validate())
	require.Error(t, (&SubscribeOptions{Items: []SubscribeItem{{TopicFilter: "a", QoS: 9}}}).validate())
	require.Error(t, (&SubscribeOptions{Items: []SubscribeItem{{TopicFilter: "a", RetainHandling: 9}}}).validate())
}
