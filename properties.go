package mqttwire

import "github.com/wiremq/mqttwire/internal/wire"

// UserProperty represents a single v5 user-property key-value pair.
// USER_PROPERTY is the one property identifier that allows duplicates,
// so properties carrying it are held as an ordered slice rather than a
// map: a map would silently drop duplicate keys and randomize order.
type UserProperty struct {
	Key   string
	Value string
}

// Properties is a field-per-property convenience view over a v5
// PropertySet's ordered items, grounded on the teacher's public
// Properties struct and its properties_convert.go projection. Builders
// that accept a *Properties convert it to a wire.PropertySet internally
// via toPropertySet; AsProperties projects a decoded set the other way.
type Properties struct {
	PayloadFormat          *uint8
	MessageExpiry          *uint32
	ContentType            string
	ResponseTopic          string
	CorrelationData        []byte
	SubscriptionIdentifier []int
	SessionExpiryInterval  *uint32
	AssignedClientID       string
	ServerKeepAlive        *uint16
	AuthenticationMethod   string
	AuthenticationData     []byte
	WillDelayInterval      *uint32
	ReasonString           string
	ReceiveMaximum         *uint16
	TopicAliasMaximum      *uint16
	TopicAlias             *uint16
	MaximumQoS             *uint8
	RetainAvailable        *uint8
	MaximumPacketSize      *uint32
	ServerReference        string
	UserProperties         []UserProperty
}

// toPropertySet converts a public Properties view into the ordered
// wire.PropertySet every builder actually serializes. A nil Properties
// yields a nil set (the v5 builders still emit the mandatory empty
// property section in that case).
func toPropertySet(p *Properties) (*wire.PropertySet, error) {
	if p == nil {
		return nil, nil
	}

	ps := wire.NewPropertySet()

	if p.PayloadFormat != nil {
		if err := ps.AddByte(wire.PropPayloadFormatIndicator, *p.PayloadFormat); err != nil {
			return nil, err
		}
	}
	if p.MessageExpiry != nil {
		if err := ps.AddU32(wire.PropMessageExpiryInterval, *p.MessageExpiry); err != nil {
			return nil, err
		}
	}
	if p.ContentType != "" {
		if err := ps.AddString(wire.PropContentType, p.ContentType); err != nil {
			return nil, err
		}
	}
	if p.ResponseTopic != "" {
		if err := ps.AddString(wire.PropResponseTopic, p.ResponseTopic); err != nil {
			return nil, err
		}
	}
	if len(p.CorrelationData) > 0 {
		if err := ps.AddBinary(wire.PropCorrelationData, p.CorrelationData); err != nil {
			return nil, err
		}
	}
	for _, id := range p.SubscriptionIdentifier {
		if err := ps.AddVBI(wire.PropSubscriptionID, id); err != nil {
			return nil, err
		}
	}
	if p.SessionExpiryInterval != nil {
		if err := ps.AddU32(wire.PropSessionExpiryInterval, *p.SessionExpiryInterval); err != nil {
			return nil, err
		}
	}
	if p.AssignedClientID != "" {
		if err := ps.AddString(wire.PropAssignedClientID, p.AssignedClientID); err != nil {
			return nil, err
		}
	}
	if p.ServerKeepAlive != nil {
		if err := ps.AddU16(wire.PropServerKeepAlive, *p.ServerKeepAlive); err != nil {
			return nil, err
		}
	}
	if p.AuthenticationMethod != "" {
		if err := ps.AddString(wire.PropAuthenticationMethod, p.AuthenticationMethod); err != nil {
			return nil, err
		}
	}
	if len(p.AuthenticationData) > 0 {
		if err := ps.AddBinary(wire.PropAuthenticationData, p.AuthenticationData); err != nil {
			return nil, err
		}
	}
	if p.WillDelayInterval != nil {
		if err := ps.AddU32(wire.PropWillDelayInterval, *p.WillDelayInterval); err != nil {
			return nil, err
		}
	}
	if p.ReasonString != "" {
		if err := ps.AddString(wire.PropReasonString, p.ReasonString); err != nil {
			return nil, err
		}
	}
	if p.ReceiveMaximum != nil {
		if err := ps.AddU16(wire.PropReceiveMaximum, *p.ReceiveMaximum); err != nil {
			return nil, err
		}
	}
	if p.TopicAliasMaximum != nil {
		if err := ps.AddU16(wire.PropTopicAliasMaximum, *p.TopicAliasMaximum); err != nil {
			return nil, err
		}
	}
	if p.TopicAlias != nil {
		if err := ps.AddU16(wire.PropTopicAlias, *p.TopicAlias); err != nil {
			return nil, err
		}
	}
	if p.MaximumQoS != nil {
		if err := ps.AddByte(wire.PropMaximumQoS, *p.MaximumQoS); err != nil {
			return nil, err
		}
	}
	if p.RetainAvailable != nil {
		if err := ps.AddByte(wire.PropRetainAvailable, *p.RetainAvailable); err != nil {
			return nil, err
		}
	}
	if p.MaximumPacketSize != nil {
		if err := ps.AddU32(wire.PropMaximumPacketSize, *p.MaximumPacketSize); err != nil {
			return nil, err
		}
	}
	if p.ServerReference != "" {
		if err := ps.AddString(wire.PropServerReference, p.ServerReference); err != nil {
			return nil, err
		}
	}
	for _, up := range p.UserProperties {
		if err := ps.AddUserProperty(up.Key, up.Value); err != nil {
			return nil, err
		}
	}

	return ps, nil
}

// AsProperties projects an ordered wire.PropertySet into the
// field-per-property convenience view. Returns nil for an empty or nil
// set so callers can treat "no properties" uniformly.
func AsProperties(ps *wire.PropertySet) *Properties {
	if ps.Len() == 0 {
		return nil
	}

	p := &Properties{}
	for _, it := range ps.Iter() {
		switch it.ID {
		case wire.PropPayloadFormatIndicator:
			v := it.Value.(uint8)
			p.PayloadFormat = &v
		case wire.PropMessageExpiryInterval:
			v := it.Value.(uint32)
			p.MessageExpiry = &v
		case wire.PropContentType:
			p.ContentType = it.Value.(string)
		case wire.PropResponseTopic:
			p.ResponseTopic = it.Value.(string)
		case wire.PropCorrelationData:
			p.CorrelationData = it.Value.([]byte)
		case wire.PropSubscriptionID:
			p.SubscriptionIdentifier = append(p.SubscriptionIdentifier, it.Value.(int))
		case wire.PropSessionExpiryInterval:
			v := it.Value.(uint32)
			p.SessionExpiryInterval = &v
		case wire.PropAssignedClientID:
			p.AssignedClientID = it.Value.(string)
		case wire.PropServerKeepAlive:
			v := it.Value.(uint16)
			p.ServerKeepAlive = &v
		case wire.PropAuthenticationMethod:
			p.AuthenticationMethod = it.Value.(string)
		case wire.PropAuthenticationData:
			p.AuthenticationData = it.Value.([]byte)
		case wire.PropWillDelayInterval:
			v := it.Value.(uint32)
			p.WillDelayInterval = &v
		case wire.PropReasonString:
			p.ReasonString = it.Value.(string)
		case wire.PropReceiveMaximum:
			v := it.Value.(uint16)
			p.ReceiveMaximum = &v
		case wire.PropTopicAliasMaximum:
			v := it.Value.(uint16)
			p.TopicAliasMaximum = &v
		case wire.PropTopicAlias:
			v := it.Value.(uint16)
			p.TopicAlias = &v
		case wire.PropMaximumQoS:
			v := it.Value.(uint8)
			p.MaximumQoS = &v
		case wire.PropRetainAvailable:
			v := it.Value.(uint8)
			p.RetainAvailable = &v
		case wire.PropMaximumPacketSize:
			v := it.Value.(uint32)
			p.MaximumPacketSize = &v
		case wire.PropServerReference:
			p.ServerReference = it.Value.(string)
		case wire.PropUserProperty:
			pair := it.Value.([2]string)
			p.UserProperties = append(p.UserProperties, UserProperty{Key: pair[0], Value: pair[1]})
		}
	}
	return p
}
