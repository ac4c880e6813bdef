package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildDecodeConnectV3(t *testing.T) {
	o := &ConnectOptions{
		ProtocolLevel: 4,
		ClientID:      "client-1",
		CleanSession:  true,
		KeepAlive:     60,
		HasUsername:   true,
		Username:      "alice",
		HasPassword:   true,
		Password:      "secret",
	}

	raw, err := BuildConnect(o)
	require.NoError(t, err)

	pkt, flags := DecodeFixedHeaderByte(raw[0])
	require.Equal(t, CONNECT, pkt)
	require.Equal(t, uint8(0), flags)

	decoded, err := DecodeConnect(raw[2:])
	require.NoError(t, err)
	require.Equal(t, o.ClientID, decoded.ClientID)
	require.Equal(t, uint8(4), decoded.ProtocolLevel)
	require.True(t, decoded.CleanSession)
	require.Equal(t, o.KeepAlive, decoded.KeepAlive)
	require.True(t, decoded.UsernameFlag)
	require.Equal(t, "alice", decoded.Username)
	require.True(t, decoded.PasswordFlag)
	require.Equal(t, "secret", decoded.Password)
}

func TestBuildDecodeConnectV5WithWillAndProperties(t *testing.T) {
	props := NewPropertySet()
	mustAdd(t, props.AddU32(PropSessionExpiryInterval, 3600))

	willProps := NewPropertySet()
	mustAdd(t, willProps.AddU32(PropWillDelayInterval, 30))

	o := &ConnectOptions{
		ProtocolLevel:  5,
		ClientID:       "",
		CleanSession:   true,
		KeepAlive:      30,
		HasWill:        true,
		WillTopic:      "status/client-1",
		WillMessage:    []byte("offline"),
		WillQoS:        1,
		WillRetain:     true,
		WillProperties: willProps,
		Properties:     props,
	}

	raw, err := BuildConnect(o)
	require.NoError(t, err)

	decoded, err := DecodeConnect(raw[2:])
	require.NoError(t, err)
	require.True(t, decoded.WillFlag)
	require.Equal(t, uint8(1), decoded.WillQoS)
	require.True(t, decoded.WillRetain)
	require.Equal(t, "status/client-1", decoded.WillTopic)
	require.Equal(t, []byte("offline"), decoded.WillMessage)
	require.Equal(t, 1, decoded.WillProperties.Len())
	require.Equal(t, 1, decoded.Properties.Len())
}

func TestConnectOptionsValidate(t *testing.T) {
	require.Error(t, (&ConnectOptions{HasPassword: true}).validate())
	require.Error(t, (&ConnectOptions{HasWill: true, WillQoS: 3}).validate())
}
