package wire

// BuildPubcomp serializes a PUBCOMP control packet.
func BuildPubcomp(o *AckOptions) ([]byte, error) {
	return buildAck(PUBCOMP, 0, o)
}

// DecodePubcomp decodes a PUBCOMP variable header.
func DecodePubcomp(buf []byte, version uint8) (*AckPacket, error) {
	return decodeAck(PUBCOMP, buf, version)
}
