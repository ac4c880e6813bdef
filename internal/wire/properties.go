package wire

import (
	"encoding/binary"
	"fmt"
)

// MQTT v5 property identifiers (spec table §6.4).
const (
	PropPayloadFormatIndicator          uint8 = 0x01
	PropMessageExpiryInterval           uint8 = 0x02
	PropContentType                     uint8 = 0x03
	PropResponseTopic                   uint8 = 0x08
	PropCorrelationData                 uint8 = 0x09
	PropSubscriptionID                  uint8 = 0x0B
	PropSessionExpiryInterval           uint8 = 0x11
	PropAssignedClientID                uint8 = 0x12
	PropServerKeepAlive                 uint8 = 0x13
	PropAuthenticationMethod            uint8 = 0x15
	PropAuthenticationData              uint8 = 0x16
	PropRequestProblemInformation       uint8 = 0x17
	PropWillDelayInterval               uint8 = 0x18
	PropRequestResponseInformation      uint8 = 0x19
	PropResponseInformation             uint8 = 0x1A
	PropServerReference                 uint8 = 0x1C
	PropReasonString                    uint8 = 0x1F
	PropReceiveMaximum                  uint8 = 0x21
	PropTopicAliasMaximum               uint8 = 0x22
	PropTopicAlias                      uint8 = 0x23
	PropMaximumQoS                      uint8 = 0x24
	PropRetainAvailable                 uint8 = 0x25
	PropUserProperty                    uint8 = 0x26
	PropMaximumPacketSize               uint8 = 0x27
	PropWildcardSubscriptionAvailable   uint8 = 0x28
	PropSubscriptionIDAvailable         uint8 = 0x29
	PropSharedSubscriptionAvailable     uint8 = 0x2A
)

// propertyKind is the wire encoding a property identifier carries, per the
// identifier-to-kind table in spec §6.4.
type propertyKind int

const (
	kindU8 propertyKind = iota
	kindU16
	kindU32
	kindVBI
	kindUTF8
	kindBinary
	kindUTF8Pair
)

type propertyDef struct {
	kind       propertyKind
	repeatable bool
}

// propertyDefs is the identifier-to-kind table from spec §6.4. Only
// USER_PROPERTY and SUBSCRIPTION_ID may appear more than once in a set.
var propertyDefs = map[uint8]propertyDef{
	PropPayloadFormatIndicator:        {kind: kindU8},
	PropMessageExpiryInterval:         {kind: kindU32},
	PropContentType:                   {kind: kindUTF8},
	PropResponseTopic:                 {kind: kindUTF8},
	PropCorrelationData:               {kind: kindBinary},
	PropSubscriptionID:                {kind: kindVBI, repeatable: true},
	PropSessionExpiryInterval:         {kind: kindU32},
	PropAssignedClientID:              {kind: kindUTF8},
	PropServerKeepAlive:               {kind: kindU16},
	PropAuthenticationMethod:          {kind: kindUTF8},
	PropAuthenticationData:            {kind: kindBinary},
	PropRequestProblemInformation:     {kind: kindU8},
	PropWillDelayInterval:             {kind: kindU32},
	PropRequestResponseInformation:    {kind: kindU8},
	PropResponseInformation:           {kind: kindUTF8},
	PropServerReference:               {kind: kindUTF8},
	PropReasonString:                  {kind: kindUTF8},
	PropReceiveMaximum:                {kind: kindU16},
	PropTopicAliasMaximum:             {kind: kindU16},
	PropTopicAlias:                    {kind: kindU16},
	PropMaximumQoS:                    {kind: kindU8},
	PropRetainAvailable:               {kind: kindU8},
	PropUserProperty:                  {kind: kindUTF8Pair, repeatable: true},
	PropMaximumPacketSize:             {kind: kindU32},
	PropWildcardSubscriptionAvailable: {kind: kindU8},
	PropSubscriptionIDAvailable:       {kind: kindU8},
	PropSharedSubscriptionAvailable:   {kind: kindU8},
}

// PropertyItem is one entry of a v5 property set: an identifier and its
// value, carried as whichever Go type matches the identifier's wire kind.
// Value holds a uint8, uint16, uint32, int (for a VBI-kind property),
// string, []byte, or [2]string (for a utf8-pair, i.e. USER_PROPERTY).
type PropertyItem struct {
	ID    uint8
	Value any
}

// PropertySet is an ordered, typed collection of MQTT v5 properties. It
// preserves insertion order and rejects duplicate identifiers unless the
// identifier is one of the two repeatable ones (USER_PROPERTY,
// SUBSCRIPTION_ID).
type PropertySet struct {
	items []PropertyItem
	seen  map[uint8]bool
}

// NewPropertySet returns an empty property set ready for Add calls.
func NewPropertySet() *PropertySet {
	return &PropertySet{}
}

func (p *PropertySet) add(id uint8, kind propertyKind, value any) error {
	def, ok := propertyDefs[id]
	if !ok {
		return fmt.Errorf("%w: unknown property identifier 0x%02x", ErrInvalidArgument, id)
	}
	if def.kind != kind {
		return fmt.Errorf("%w: property 0x%02x does not take this value kind", ErrPropertyTypeMismatch, id)
	}
	if !def.repeatable {
		if p.seen == nil {
			p.seen = make(map[uint8]bool)
		}
		if p.seen[id] {
			return fmt.Errorf("%w: property 0x%02x already present", ErrDuplicateProperty, id)
		}
		p.seen[id] = true
	}
	p.items = append(p.items, PropertyItem{ID: id, Value: value})
	return nil
}

// AddByte adds a u8-kind property.
func (p *PropertySet) AddByte(id uint8, v uint8) error { return p.add(id, kindU8, v) }

// AddU16 adds a u16-kind property.
func (p *PropertySet) AddU16(id uint8, v uint16) error { return p.add(id, kindU16, v) }

// AddU32 adds a u32-kind property.
func (p *PropertySet) AddU32(id uint8, v uint32) error { return p.add(id, kindU32, v) }

// AddVBI adds a variable-byte-integer-kind property (e.g. SUBSCRIPTION_ID).
func (p *PropertySet) AddVBI(id uint8, v int) error {
	if v < 0 || v > MaxVarInt {
		return fmt.Errorf("%w: value %d out of range for variable byte integer property", ErrInvalidArgument, v)
	}
	return p.add(id, kindVBI, v)
}

// AddString adds a utf8-kind property.
func (p *PropertySet) AddString(id uint8, v string) error {
	if len(v) > MaxUTF8Len {
		return fmt.Errorf("%w: property 0x%02x string exceeds %d-byte limit", ErrInvalidArgument, id, MaxUTF8Len)
	}
	return p.add(id, kindUTF8, v)
}

// AddBinary adds a binary-kind property.
func (p *PropertySet) AddBinary(id uint8, v []byte) error {
	if len(v) > MaxUTF8Len {
		return fmt.Errorf("%w: property 0x%02x binary data exceeds %d-byte limit", ErrInvalidArgument, id, MaxUTF8Len)
	}
	return p.add(id, kindBinary, v)
}

// AddUserProperty adds a USER_PROPERTY (key, value) pair. Unlike every
// other identifier, this one may be added any number of times.
func (p *PropertySet) AddUserProperty(key, value string) error {
	if len(key) > MaxUTF8Len || len(value) > MaxUTF8Len {
		return fmt.Errorf("%w: user property exceeds %d-byte limit", ErrInvalidArgument, MaxUTF8Len)
	}
	return p.add(PropUserProperty, kindUTF8Pair, [2]string{key, value})
}

// Len reports the number of items in the set.
func (p *PropertySet) Len() int {
	if p == nil {
		return 0
	}
	return len(p.items)
}

// Iter returns the set's items in insertion order. The returned slice must
// not be mutated by the caller.
func (p *PropertySet) Iter() []PropertyItem {
	if p == nil {
		return nil
	}
	return p.items
}

// Get returns the first item with the given identifier and whether it was
// found. For repeatable identifiers, use Iter to see every occurrence.
func (p *PropertySet) Get(id uint8) (PropertyItem, bool) {
	if p == nil {
		return PropertyItem{}, false
	}
	for _, it := range p.items {
		if it.ID == id {
			return it, true
		}
	}
	return PropertyItem{}, false
}

// encodeProperties serializes a property set into the MQTT v5 "Properties"
// wire section: a VBI length, followed by each item in insertion order. A
// nil set serializes as a single zero byte, matching the mandatory empty
// property section every v5 packet carries.
func encodeProperties(p *PropertySet) ([]byte, error) {
	return appendProperties(make([]byte, 0, 64), p)
}

// appendProperties appends the serialized property section to dst.
func appendProperties(dst []byte, p *PropertySet) ([]byte, error) {
	startLen := len(dst)
	dst = append(dst, 0) // optimistic 1-byte length
	bodyStart := len(dst)

	var err error
	for _, it := range p.Iter() {
		dst = append(dst, it.ID)
		def := propertyDefs[it.ID]
		switch def.kind {
		case kindU8:
			dst = append(dst, it.Value.(uint8))
		case kindU16:
			dst = binary.BigEndian.AppendUint16(dst, it.Value.(uint16))
		case kindU32:
			dst = binary.BigEndian.AppendUint32(dst, it.Value.(uint32))
		case kindVBI:
			dst, err = AppendVarInt(dst, it.Value.(int))
		case kindUTF8:
			dst, err = appendString(dst, it.Value.(string))
		case kindBinary:
			dst, err = appendBinary(dst, it.Value.([]byte))
		case kindUTF8Pair:
			pair := it.Value.([2]string)
			dst, err = appendString(dst, pair[0])
			if err == nil {
				dst, err = appendString(dst, pair[1])
			}
		}
		if err != nil {
			return nil, err
		}
	}

	bodyLen := len(dst) - bodyStart
	if bodyLen < 128 {
		dst[startLen] = byte(bodyLen)
		return dst, nil
	}

	lenBuf, err := EncodeVarInt(bodyLen)
	if err != nil {
		return nil, err
	}
	lenDiff := len(lenBuf) - 1
	dst = append(dst, make([]byte, lenDiff)...)
	copy(dst[bodyStart+lenDiff:], dst[bodyStart:bodyStart+bodyLen])
	copy(dst[startLen:], lenBuf)
	return dst, nil
}

// decodeProperties reads a property section from the front of buf. Returns
// the parsed set and the number of bytes consumed, including the leading
// length.
func decodeProperties(buf []byte) (*PropertySet, int, error) {
	if len(buf) == 0 {
		return nil, 0, fmt.Errorf("%w: buffer too short for properties length", ErrMalformedFrame)
	}

	bodyLen, n, err := DecodeVarInt(buf)
	if err != nil {
		return nil, 0, err
	}
	total := n + bodyLen
	if len(buf) < total {
		return nil, 0, fmt.Errorf("%w: buffer too short for properties data", ErrMalformedFrame)
	}

	p := NewPropertySet()
	if bodyLen == 0 {
		return p, total, nil
	}

	body := buf[n:total]
	offset := 0
	for offset < len(body) {
		id := body[offset]
		offset++
		def, ok := propertyDefs[id]
		if !ok {
			return nil, 0, fmt.Errorf("%w: unsupported property identifier 0x%02x", ErrMalformedFrame, id)
		}

		rest := body[offset:]
		var consumed int
		var addErr error
		switch def.kind {
		case kindU8:
			if len(rest) < 1 {
				return nil, 0, fmt.Errorf("%w: malformed property 0x%02x", ErrMalformedFrame, id)
			}
			addErr = p.add(id, kindU8, rest[0])
			consumed = 1
		case kindU16:
			if len(rest) < 2 {
				return nil, 0, fmt.Errorf("%w: malformed property 0x%02x", ErrMalformedFrame, id)
			}
			addErr = p.add(id, kindU16, binary.BigEndian.Uint16(rest))
			consumed = 2
		case kindU32:
			if len(rest) < 4 {
				return nil, 0, fmt.Errorf("%w: malformed property 0x%02x", ErrMalformedFrame, id)
			}
			addErr = p.add(id, kindU32, binary.BigEndian.Uint32(rest))
			consumed = 4
		case kindVBI:
			val, vn, err := DecodeVarInt(rest)
			if err != nil {
				return nil, 0, err
			}
			addErr = p.add(id, kindVBI, val)
			consumed = vn
		case kindUTF8:
			s, sn, err := decodeString(rest)
			if err != nil {
				return nil, 0, err
			}
			addErr = p.add(id, kindUTF8, s)
			consumed = sn
		case kindBinary:
			b, bn, err := decodeBinary(rest)
			if err != nil {
				return nil, 0, err
			}
			addErr = p.add(id, kindBinary, b)
			consumed = bn
		case kindUTF8Pair:
			k, kn, err := decodeString(rest)
			if err != nil {
				return nil, 0, err
			}
			v, vn, err := decodeString(rest[kn:])
			if err != nil {
				return nil, 0, err
			}
			addErr = p.add(id, kindUTF8Pair, [2]string{k, v})
			consumed = kn + vn
		}
		if addErr != nil {
			return nil, 0, addErr
		}
		offset += consumed
	}

	return p, total, nil
}
