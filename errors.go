package mqttwire

import "github.com/wiremq/mqttwire/internal/wire"

// Sentinel errors re-exported from the wire package so callers never need
// to import internal/wire directly to use errors.Is against a codec
// failure class.
var (
	// ErrInvalidArgument is returned when a builder is given a value that
	// violates a protocol precondition: an oversize string, a will flag
	// set without a will topic, a password without a username, and so on.
	ErrInvalidArgument = wire.ErrInvalidArgument

	// ErrAllocationFailed is kept for parity with the property-set API
	// surface; Go's allocator does not fail the way the codec this
	// module is modeled on expects, so this is unreachable in practice.
	ErrAllocationFailed = wire.ErrAllocationFailed

	// ErrPropertyTypeMismatch is returned when a property is added via
	// the adder for the wrong value kind (e.g. AddU16 on a string-typed
	// property identifier).
	ErrPropertyTypeMismatch = wire.ErrPropertyTypeMismatch

	// ErrDuplicateProperty is returned when a non-repeatable property
	// identifier is added to a PropertySet more than once.
	ErrDuplicateProperty = wire.ErrDuplicateProperty

	// ErrMalformedFrame is returned by every decode path and by the
	// receive state machine when the wire bytes violate the framing
	// rules: a variable-byte integer with a fifth continuation byte, a
	// buffer shorter than a fixed-size field requires, and so on.
	ErrMalformedFrame = wire.ErrMalformedFrame
)
