package wire

// BuildPubrec serializes a PUBREC control packet.
func BuildPubrec(o *AckOptions) ([]byte, error) {
	return buildAck(PUBREC, 0, o)
}

// DecodePubrec decodes a PUBREC variable header.
func DecodePubrec(buf []byte, version uint8) (*AckPacket, error) {
	return decodeAck(PUBREC, buf, version)
}
