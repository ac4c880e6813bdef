package mqttwire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultCodecOptions(t *testing.T) {
	o := defaultCodecOptions()
	require.Nil(t, o.Logger)
	require.Nil(t, o.Trace)
	require.Zero(t, o.MaxIncomingPacket)
	require.Nil(t, o.Metrics)
}

func TestCodecOptionsApply(t *testing.T) {
	o := defaultCodecOptions()
	m := NewCodecMetrics()
	for _, opt := range []CodecOption{
		WithMaxIncomingPacket(1024),
		WithMetrics(m),
		WithTrace(func(b byte) {}),
	} {
		opt(o)
	}
	require.Equal(t, 1024, o.MaxIncomingPacket)
	require.Same(t, m, o.Metrics)
	require.NotNil(t, o.Trace)
}

func TestDisconnectInfoToProperties(t *testing.T) {
	var d *DisconnectInfo
	require.Nil(t, d.toProperties())

	empty := &DisconnectInfo{}
	require.Nil(t, empty.toProperties())

	full := &DisconnectInfo{ReasonString: "bye", SessionExpiryInterval: u32(10)}
	props := full.toProperties()
	require.NotNil(t, props)
	require.Equal(t, "bye", props.ReasonString)
	require.Equal(t, uint32(10), *props.SessionExpiryInterval)
}
