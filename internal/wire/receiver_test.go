package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type completedFrame struct {
	packetType uint8
	flags      uint8
	payload    []byte
}

func collectingReceiver() (*Receiver, *[]completedFrame) {
	var frames []completedFrame
	r := NewReceiver(func(packetType, flags uint8, payload []byte, release func()) {
		cp := append([]byte(nil), payload...)
		frames = append(frames, completedFrame{packetType, flags, cp})
		release()
	})
	return r, &frames
}

func TestReceiverDeliversZeroLengthFrameImmediately(t *testing.T) {
	r, frames := collectingReceiver()
	require.NoError(t, r.Feed([]byte{PINGREQ, 0x00}))
	require.Len(t, *frames, 1)
	require.Equal(t, PINGREQ, (*frames)[0].packetType)
	require.Nil(t, (*frames)[0].payload)
}

func TestReceiverDeliversFrameWithPayload(t *testing.T) {
	r, frames := collectingReceiver()
	raw, err := BuildPuback(&AckOptions{ProtocolLevel: 4, PacketID: 99})
	require.NoError(t, err)
	require.NoError(t, r.Feed(raw))
	require.Len(t, *frames, 1)
	require.Equal(t, PUBACK, (*frames)[0].packetType)
	require.Len(t, (*frames)[0].payload, 2)
}

// TestReceiverChunkingIsAssociative feeds the same byte stream through
// every possible two-way split point and asserts each produces the
// identical sequence of completed frames as feeding it whole.
func TestReceiverChunkingIsAssociative(t *testing.T) {
	var stream []byte
	for i := 0; i < 3; i++ {
		raw, err := BuildPublish(&PublishOptions{ProtocolLevel: 4, Topic: "a/b", Payload: []byte{byte(i)}})
		require.NoError(t, err)
		stream = append(stream, raw...)
	}
	pingraw, err := BuildPingreq()
	require.NoError(t, err)
	stream = append(stream, pingraw...)

	r, whole := collectingReceiver()
	require.NoError(t, r.Feed(stream))

	for split := 1; split < len(stream); split++ {
		r2, parts := collectingReceiver()
		require.NoError(t, r2.Feed(stream[:split]))
		require.NoError(t, r2.Feed(stream[split:]))
		require.Equal(t, *whole, *parts, "split at %d diverged", split)
	}
}

func TestReceiverByteAtATime(t *testing.T) {
	raw, err := BuildSuback(&SubackOptions{ProtocolLevel: 4, PacketID: 1, ReturnCodes: []uint8{0}})
	require.NoError(t, err)

	r, frames := collectingReceiver()
	for _, b := range raw {
		require.NoError(t, r.Feed([]byte{b}))
	}
	require.Len(t, *frames, 1)
	require.Equal(t, SUBACK, (*frames)[0].packetType)
}

func TestReceiverMalformedVarIntEntersErrorState(t *testing.T) {
	r, _ := collectingReceiver()
	// type byte, then five continuation-flagged length bytes.
	err := r.Feed([]byte{CONNECT, 0x80, 0x80, 0x80, 0x80, 0x80})
	require.Error(t, err)
	require.Error(t, r.Feed([]byte{0x00}), "receiver should stay in error state until Reset")

	r.Reset()
	require.NoError(t, r.Feed([]byte{PINGREQ, 0x00}))
}

func TestReceiverMaxPacketSize(t *testing.T) {
	r, _ := collectingReceiver()
	r.SetMaxPacketSize(1)

	// CONNECT with remaining length 2, exceeding the configured max of 1.
	require.Error(t, r.Feed([]byte{CONNECT, 0x02}))
}

func TestReceiverTrace(t *testing.T) {
	r, _ := collectingReceiver()
	var traced []byte
	r.SetTrace(func(b byte) { traced = append(traced, b) })

	raw, err := BuildPingreq()
	require.NoError(t, err)
	require.NoError(t, r.Feed(raw))
	require.Equal(t, raw, traced)
}

func TestReceiverDestroyMidFrameReleasesBuffer(t *testing.T) {
	r, _ := collectingReceiver()
	raw, err := BuildPuback(&AckOptions{ProtocolLevel: 4, PacketID: 1})
	require.NoError(t, err)
	// Feed everything but the last byte, leaving the receiver mid-frame.
	require.NoError(t, r.Feed(raw[:len(raw)-1]))
	r.Reset()
	require.Equal(t, PhaseFixedHeader, r.phase)
}
