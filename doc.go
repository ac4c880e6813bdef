// Package mqttwire implements an MQTT v3.1.1 / v5 wire-protocol codec: the
// byte-exact framing, variable-byte integer encoding, v5 property sets,
// and an incremental receive state machine for arbitrary chunked byte
// streams.
//
// The package is a codec, not a client: it has no notion of a TCP/TLS
// transport, a keep-alive ticker, topic matching, or message retention.
// It builds outbound packets to bytes and parses inbound bytes to
// packets; everything else is left to the caller.
//
// # Provider Facade
//
// Callers interact with one of two versioned Providers, obtained with
// NewProvider:
//
//	p := mqttwire.NewProvider(mqttwire.V5, mqttwire.WithLogger(logger))
//	codec := p.Create(func(pkt mqttwire.Packet) {
//	    // handle a completed inbound packet
//	})
//	defer codec.Destroy()
//
//	out, err := p.BuildPublish(&mqttwire.PublishHeader{Topic: "a/b", Payload: data})
//	if err != nil {
//	    return err
//	}
//	conn.Write(out)
//	codec.Receive(bytesFromTheWire)
//
// The surrounding client never branches on protocol version; it holds a
// Provider and calls its builder methods uniformly.
//
// # Errors
//
// Every failure is an errors.Is-comparable sentinel (ErrInvalidArgument,
// ErrMalformedFrame, ErrPropertyTypeMismatch, ErrDuplicateProperty,
// ErrAllocationFailed), wrapped with additional context at each call site.
package mqttwire
