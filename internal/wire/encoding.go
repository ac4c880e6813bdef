package wire

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// encodeString encodes a UTF-8 string with a 2-byte length prefix (MSB
// first). Fails if s is longer than MaxUTF8Len bytes.
func encodeString(s string) ([]byte, error) {
	return appendString(make([]byte, 0, 2+len(s)), s)
}

// appendString appends a length-prefixed string to dst.
func appendString(dst []byte, s string) ([]byte, error) {
	if len(s) > MaxUTF8Len {
		return nil, fmt.Errorf("%w: string of %d bytes exceeds %d-byte limit", ErrInvalidArgument, len(s), MaxUTF8Len)
	}
	length := uint16(len(s))
	dst = append(dst, byte(length>>8), byte(length))
	return append(dst, s...), nil
}

// encodeBinary encodes binary data with a 2-byte length prefix (MSB first).
func encodeBinary(data []byte) ([]byte, error) {
	return appendBinary(make([]byte, 0, 2+len(data)), data)
}

// appendBinary appends length-prefixed binary data to dst.
func appendBinary(dst []byte, data []byte) ([]byte, error) {
	if len(data) > MaxUTF8Len {
		return nil, fmt.Errorf("%w: binary data of %d bytes exceeds %d-byte limit", ErrInvalidArgument, len(data), MaxUTF8Len)
	}
	length := uint16(len(data))
	dst = append(dst, byte(length>>8), byte(length))
	return append(dst, data...), nil
}

// decodeString decodes an MQTT UTF-8 string (2-byte length + data).
// Returns the string, number of bytes consumed, and any error.
func decodeString(buf []byte) (string, int, error) {
	if len(buf) < 2 {
		return "", 0, fmt.Errorf("%w: buffer too short for string length", ErrMalformedFrame)
	}

	length := int(buf[0])<<8 | int(buf[1])
	if len(buf) < 2+length {
		return "", 0, fmt.Errorf("%w: buffer too short for string data: need %d, have %d", ErrMalformedFrame, 2+length, len(buf))
	}
	ret := string(buf[2 : 2+length])
	if strings.Contains(ret, "\x00") {
		return "", 0, fmt.Errorf("%w: string contains a null byte", ErrMalformedFrame)
	}
	if !utf8.ValidString(ret) {
		return "", 0, fmt.Errorf("%w: invalid UTF-8 string", ErrMalformedFrame)
	}

	return ret, 2 + length, nil
}

// decodeBinary reads length-prefixed binary data from the buffer.
// Returns the data, number of bytes consumed, and any error.
func decodeBinary(buf []byte) ([]byte, int, error) {
	if len(buf) < 2 {
		return nil, 0, fmt.Errorf("%w: buffer too short for binary length", ErrMalformedFrame)
	}

	length := int(buf[0])<<8 | int(buf[1])
	if len(buf) < 2+length {
		return nil, 0, fmt.Errorf("%w: buffer too short for binary data: need %d, have %d", ErrMalformedFrame, 2+length, len(buf))
	}

	out := make([]byte, length)
	copy(out, buf[2:2+length])
	return out, 2 + length, nil
}
