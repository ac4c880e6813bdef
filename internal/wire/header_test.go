package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFixedHeaderAppendTo(t *testing.T) {
	tests := []struct {
		name   string
		header FixedHeader
		want   []byte
	}{
		{
			name:   "connect header",
			header: FixedHeader{PacketType: CONNECT, Flags: 0, RemainingLength: 10},
			want:   []byte{0x10, 0x0A},
		},
		{
			name:   "publish qos1",
			header: FixedHeader{PacketType: PUBLISH, Flags: 0x02, RemainingLength: 128 * 128 * 2},
			want:   nil, // checked via varint length below
		},
		{
			name:   "pingreq",
			header: FixedHeader{PacketType: PINGREQ, Flags: 0, RemainingLength: 0},
			want:   []byte{0xC0, 0x00},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.header.Encode()
			require.NoError(t, err)
			if tt.want != nil {
				require.Equal(t, tt.want, got)
			}
			wantLen := 1 + encodedVarIntLen(tt.header.RemainingLength)
			require.Len(t, got, wantLen)

			gotType, gotFlags := DecodeFixedHeaderByte(got[0])
			require.Equal(t, tt.header.PacketType, gotType)
			require.Equal(t, tt.header.Flags, gotFlags)
		})
	}
}

func TestFixedHeaderOversizeRejected(t *testing.T) {
	h := FixedHeader{PacketType: PUBLISH, Flags: 0, RemainingLength: MaxSendSize + 1}
	_, err := h.Encode()
	require.Error(t, err)
}

func encodedVarIntLen(x int) int {
	if x == 0 {
		return 1
	}
	count := 0
	for x > 0 {
		x /= 128
		count++
	}
	return count
}
