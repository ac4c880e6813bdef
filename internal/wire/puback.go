package wire

// BuildPuback serializes a PUBACK control packet.
func BuildPuback(o *AckOptions) ([]byte, error) {
	return buildAck(PUBACK, 0, o)
}

// DecodePuback decodes a PUBACK variable header.
func DecodePuback(buf []byte, version uint8) (*AckPacket, error) {
	return decodeAck(PUBACK, buf, version)
}
