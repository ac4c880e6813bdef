package wire

import "errors"

// Sentinel errors returned by the wire package. Callers should use
// errors.Is against these rather than matching error strings; every
// returned error wraps one of them with fmt.Errorf("...: %w", ...).
var (
	// ErrInvalidArgument means a caller supplied a value the wire format
	// cannot represent: a string longer than MaxUTF8Len, a remaining length
	// above MaxSendSize, a will message without a will topic, and so on.
	ErrInvalidArgument = errors.New("wire: invalid argument")

	// ErrAllocationFailed is kept for API parity with the original codec's
	// error taxonomy. A pure-Go builder built on append/make does not fail
	// allocation the way a fixed-arena C allocator can; this sentinel is
	// not returned anywhere in this implementation but remains exported
	// so callers written against the original taxonomy still compile.
	ErrAllocationFailed = errors.New("wire: allocation failed")

	// ErrPropertyTypeMismatch means a property identifier was given a value
	// of a Go type that does not match its MQTT v5 property type.
	ErrPropertyTypeMismatch = errors.New("wire: property type mismatch")

	// ErrDuplicateProperty means a property identifier that must appear at
	// most once in a property set was added twice.
	ErrDuplicateProperty = errors.New("wire: duplicate property")

	// ErrMalformedFrame means bytes fed to the receive state machine, or a
	// buffer passed to a decoder, do not form a valid MQTT control packet.
	ErrMalformedFrame = errors.New("wire: malformed frame")
)
