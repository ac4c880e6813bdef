package wire

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []byte
	}{
		{
			name:     "empty string",
			input:    "",
			expected: []byte{0, 0},
		},
		{
			name:     "simple string",
			input:    "foo",
			expected: []byte{0, 3, 'f', 'o', 'o'},
		},
		{
			name:     "UTF-8 string",
			input:    "héllö",
			expected: []byte{0, 7, 'h', 0xc3, 0xa9, 'l', 'l', 0xc3, 0xb6}, // 2 bytes length + 7 bytes utf-8
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := encodeString(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}

	t.Run("too long", func(t *testing.T) {
		_, err := encodeString(strings.Repeat("x", MaxUTF8Len+1))
		require.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestAppendString(t *testing.T) {
	dst := []byte{0xAA} // pre-existing data
	input := "bar"
	expected := []byte{0xAA, 0, 3, 'b', 'a', 'r'}

	got, err := appendString(dst, input)
	require.NoError(t, err)
	require.Equal(t, expected, got)
}

func TestEncodeBinary(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected []byte
	}{
		{
			name:     "empty",
			input:    []byte{},
			expected: []byte{0, 0},
		},
		{
			name:     "data",
			input:    []byte{1, 2, 3},
			expected: []byte{0, 3, 1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := encodeBinary(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestAppendBinary(t *testing.T) {
	dst := []byte{0xFF}
	input := []byte{0x01, 0x02}
	expected := []byte{0xFF, 0, 2, 0x01, 0x02}

	got, err := appendBinary(dst, input)
	require.NoError(t, err)
	require.Equal(t, expected, got)
}

func TestDecodeString(t *testing.T) {
	tests := []struct {
		name        string
		input       []byte
		want        string
		wantBytes   int
		expectError bool
		errorSubstr string
	}{
		{
			name:        "valid string",
			input:       []byte{0, 3, 'b', 'a', 'z'},
			want:        "baz",
			wantBytes:   5,
			expectError: false,
		},
		{
			name:        "valid UTF-8",
			input:       []byte{0, 2, 0xc3, 0xb6}, // 'ö'
			want:        "ö",
			wantBytes:   4,
			expectError: false,
		},
		{
			name:        "buffer too short for length",
			input:       []byte{0},
			want:        "",
			wantBytes:   0,
			expectError: true,
			errorSubstr: "buffer too short",
		},
		{
			name:        "buffer too short for data",
			input:       []byte{0, 5, 'a', 'b'},
			want:        "",
			wantBytes:   0,
			expectError: true,
			errorSubstr: "buffer too short",
		},
		{
			name:        "invalid UTF-8",
			input:       []byte{0, 1, 0xFF}, // Invalid UTF-8 byte
			want:        "",
			wantBytes:   0,
			expectError: true,
			errorSubstr: "invalid UTF-8",
		},
		{
			name:        "null character",
			input:       []byte{0, 5, 'h', 'e', 0x00, 'l', 'o'},
			want:        "",
			wantBytes:   0,
			expectError: true,
			errorSubstr: "null byte",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n, err := decodeString(tt.input)
			if tt.expectError {
				require.Error(t, err)
				require.ErrorIs(t, err, ErrMalformedFrame)
				if tt.errorSubstr != "" {
					require.Contains(t, err.Error(), tt.errorSubstr)
				}
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.wantBytes, n)
		})
	}
}

func TestDecodeBinary(t *testing.T) {
	tests := []struct {
		name        string
		input       []byte
		want        []byte
		wantBytes   int
		expectError bool
	}{
		{
			name:        "valid data",
			input:       []byte{0, 2, 0xCA, 0xFE},
			want:        []byte{0xCA, 0xFE},
			wantBytes:   4,
			expectError: false,
		},
		{
			name:        "buffer too short for length",
			input:       []byte{0},
			want:        nil,
			wantBytes:   0,
			expectError: true,
		},
		{
			name:        "buffer too short for data",
			input:       []byte{0, 3, 0x01},
			want:        nil,
			wantBytes:   0,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n, err := decodeBinary(tt.input)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.wantBytes, n)
		})
	}
}
