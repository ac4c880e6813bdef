package wire

// BuildDisconnect serializes a DISCONNECT control packet. Under v3.1.1 it
// is always the two-byte 0xE0 0x00 with no variable header; under v5 the
// reason code and properties are included unless the reason is Normal (0)
// and no properties are set, in which case the v3.1.1 short form is used.
func BuildDisconnect(o *ReasonOptions) ([]byte, error) {
	return buildReasonPacket(DISCONNECT, 0, o)
}

// DecodeDisconnect decodes a DISCONNECT variable header.
func DecodeDisconnect(buf []byte, version uint8) (*ReasonPacket, error) {
	return decodeReasonPacket(DISCONNECT, buf, version)
}
