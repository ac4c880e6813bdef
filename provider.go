package mqttwire

import (
	"fmt"
	"log/slog"

	"github.com/wiremq/mqttwire/internal/wire"
)

// Packet is a decoded inbound MQTT control packet, as delivered to a
// Codec's onPacket callback.
type Packet = wire.Packet

// RawPacket is the verbatim (type, flags, payload) triple a Codec
// delivers when it has no typed decoder for an inbound frame, or when
// decoding one fails. Callers that only need framing, not a typed
// packet, can always fall back to this.
type RawPacket = wire.RawPacket

// Provider is a version-specific capability table: one set of builder
// methods plus the Codec lifecycle, all agnostic of whether the bound
// version is v3.1.1 or v5. The surrounding client holds a Provider and
// never branches on protocol version itself.
type Provider interface {
	// Version reports which protocol version this Provider builds and
	// parses.
	Version() ProtocolVersion

	// Create returns a new Codec bound to onPacket. onPacket is invoked
	// synchronously, once per completed inbound frame, from within the
	// Codec's Receive.
	Create(onPacket func(Packet)) *Codec

	BuildConnect(o *ClientOptions) ([]byte, error)
	BuildPublish(h *PublishHeader) ([]byte, error)
	BuildPuback(packetID uint16, reasonCode ReasonCode, props *Properties) ([]byte, error)
	BuildPubrec(packetID uint16, reasonCode ReasonCode, props *Properties) ([]byte, error)
	BuildPubrel(packetID uint16, reasonCode ReasonCode, props *Properties) ([]byte, error)
	BuildPubcomp(packetID uint16, reasonCode ReasonCode, props *Properties) ([]byte, error)
	BuildSubscribe(packetID uint16, items []SubscribeItem, props *Properties) ([]byte, error)
	BuildUnsubscribe(packetID uint16, topics []string, props *Properties) ([]byte, error)
	BuildPingreq() ([]byte, error)
	BuildDisconnect(info *DisconnectInfo) ([]byte, error)
	BuildAuth(reasonCode ReasonCode, props *Properties) ([]byte, error)
}

// NewProvider constructs the Provider bound to version, configured by
// opts. The surrounding client picks a Provider once, at connection
// setup, based on which protocol version it negotiated.
func NewProvider(version ProtocolVersion, opts ...CodecOption) Provider {
	o := defaultCodecOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &provider{version: version, opts: o}
}

// provider is the single Provider implementation for both versions; the
// protocol level (4 or 5) threaded into every wire Options struct is the
// only thing that differs between a v3 and a v5 provider instance.
type provider struct {
	version ProtocolVersion
	opts    *CodecOptions
}

func (p *provider) Version() ProtocolVersion { return p.version }

func (p *provider) protocolLevel() uint8 { return uint8(p.version) }

// Codec is one C4 receive-state-machine instance plus the logger/metrics
// it reports through. A Codec is created by a Provider and carries that
// Provider's protocol version, which it uses when decoding completed
// frames.
type Codec struct {
	version  ProtocolVersion
	receiver *wire.Receiver
	logger   *slog.Logger
	metrics  *CodecMetrics
	onPacket func(Packet)
}

// Create returns a Codec bound to onPacket, per spec's
// create(on_packet_complete, ctx) -> handle. onPacket must not be nil.
func (p *provider) Create(onPacket func(Packet)) *Codec {
	c := &Codec{
		version:  p.version,
		logger:   p.opts.Logger,
		metrics:  p.opts.Metrics,
		onPacket: onPacket,
	}
	c.receiver = wire.NewReceiver(c.deliver)
	if p.opts.MaxIncomingPacket > 0 {
		c.receiver.SetMaxPacketSize(p.opts.MaxIncomingPacket)
	}
	if p.opts.Trace != nil {
		c.receiver.SetTrace(p.opts.Trace)
	}
	return c
}

// Destroy discards the Codec's in-flight buffer, if any. Destroying a
// Codec mid-frame is legal; the buffer is freed silently.
func (c *Codec) Destroy() {
	c.receiver.Reset()
}

// SetTrace installs a byte-level trace callback, replacing any trace
// configured via WithTrace. Pass nil to disable tracing.
func (c *Codec) SetTrace(fn TraceFunc) {
	c.receiver.SetTrace(fn)
}

// Receive is the bytes-received entrypoint a transport feeds with
// arbitrarily chunked inbound data. It is the function spec's
// receive_function() returns a handle to.
func (c *Codec) Receive(data []byte) error {
	if c.metrics != nil {
		c.metrics.BytesDecoded.Add(float64(len(data)))
	}
	return c.receiver.Feed(data)
}

// deliver is the C4 completion callback: it decodes the completed frame
// into a typed Packet, releases the buffer, and hands the packet to the
// Codec's onPacket.
func (c *Codec) deliver(packetType uint8, flags uint8, payload []byte, release func()) {
	defer release()

	pkt, err := wire.DecodePacket(packetType, flags, payload, uint8(c.version))
	if err != nil {
		if c.metrics != nil {
			c.metrics.MalformedFrames.Inc()
		}
		if c.logger != nil {
			c.logger.Error("failed to decode inbound packet",
				slog.String("type", wire.PacketNames[packetType]), slog.Any("error", err))
		}
		// Hand the caller the verbatim (type, flags, payload) triple
		// rather than dropping the frame outright; payload is on loan
		// from the pool until the deferred release runs, so it must be
		// copied before leaving this function.
		c.onPacket(wire.RawPacket{
			PacketType: packetType,
			Flags:      flags,
			Payload:    append([]byte(nil), payload...),
		})
		return
	}

	if c.metrics != nil {
		c.metrics.PacketsParsed.Inc()
	}
	c.onPacket(pkt)
}

// buildResult wraps a builder's (bytes, error) pair to update metrics
// before returning, without repeating the nil-check/metrics boilerplate
// at every call site.
func (p *provider) buildResult(out []byte, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	if p.opts.Metrics != nil {
		p.opts.Metrics.PacketsBuilt.Inc()
		p.opts.Metrics.BytesEncoded.Add(float64(len(out)))
	}
	return out, nil
}

// BuildConnect serializes a CONNECT packet from o, using this Provider's
// protocol level.
func (p *provider) BuildConnect(o *ClientOptions) ([]byte, error) {
	if o == nil {
		return nil, fmt.Errorf("%w: nil ClientOptions", ErrInvalidArgument)
	}

	props, err := toPropertySet(o.Properties)
	if err != nil {
		return nil, err
	}
	willProps, err := toPropertySet(o.WillProps)
	if err != nil {
		return nil, err
	}

	out, err := wire.BuildConnect(&wire.ConnectOptions{
		ProtocolLevel:  p.protocolLevel(),
		ClientID:       o.ClientID,
		CleanSession:   o.CleanSession,
		KeepAlive:      o.KeepAlive,
		HasWill:        o.HasWill,
		WillTopic:      o.WillTopic,
		WillMessage:    o.WillMessage,
		WillQoS:        uint8(o.WillQoS),
		WillRetain:     o.WillRetain,
		WillProperties: willProps,
		HasUsername:    o.HasUsername,
		Username:       o.Username,
		HasPassword:    o.HasPassword,
		Password:       o.Password,
		Properties:     props,
	})
	return p.buildResult(out, err)
}

// BuildPublish serializes a PUBLISH packet from h.
func (p *provider) BuildPublish(h *PublishHeader) ([]byte, error) {
	if h == nil {
		return nil, fmt.Errorf("%w: nil PublishHeader", ErrInvalidArgument)
	}

	props, err := toPropertySet(h.Properties)
	if err != nil {
		return nil, err
	}

	out, err := wire.BuildPublish(&wire.PublishOptions{
		ProtocolLevel: p.protocolLevel(),
		Topic:         h.Topic,
		PacketID:      h.PacketID,
		QoS:           uint8(h.QoS),
		Dup:           h.Dup,
		Retain:        h.Retain,
		Payload:       h.Payload,
		Properties:    props,
	})
	return p.buildResult(out, err)
}

func (p *provider) ackOptions(packetID uint16, reasonCode ReasonCode, props *Properties) (*wire.AckOptions, error) {
	ps, err := toPropertySet(props)
	if err != nil {
		return nil, err
	}
	return &wire.AckOptions{
		ProtocolLevel: p.protocolLevel(),
		PacketID:      packetID,
		ReasonCode:    uint8(reasonCode),
		Properties:    ps,
	}, nil
}

// BuildPuback serializes a PUBACK packet.
func (p *provider) BuildPuback(packetID uint16, reasonCode ReasonCode, props *Properties) ([]byte, error) {
	o, err := p.ackOptions(packetID, reasonCode, props)
	if err != nil {
		return nil, err
	}
	out, err := wire.BuildPuback(o)
	return p.buildResult(out, err)
}

// BuildPubrec serializes a PUBREC packet.
func (p *provider) BuildPubrec(packetID uint16, reasonCode ReasonCode, props *Properties) ([]byte, error) {
	o, err := p.ackOptions(packetID, reasonCode, props)
	if err != nil {
		return nil, err
	}
	out, err := wire.BuildPubrec(o)
	return p.buildResult(out, err)
}

// BuildPubrel serializes a PUBREL packet. Fixed-header flags are always
// 0x02 (reserved), per the same quirk SUBSCRIBE/UNSUBSCRIBE carry.
func (p *provider) BuildPubrel(packetID uint16, reasonCode ReasonCode, props *Properties) ([]byte, error) {
	o, err := p.ackOptions(packetID, reasonCode, props)
	if err != nil {
		return nil, err
	}
	out, err := wire.BuildPubrel(o)
	return p.buildResult(out, err)
}

// BuildPubcomp serializes a PUBCOMP packet.
func (p *provider) BuildPubcomp(packetID uint16, reasonCode ReasonCode, props *Properties) ([]byte, error) {
	o, err := p.ackOptions(packetID, reasonCode, props)
	if err != nil {
		return nil, err
	}
	out, err := wire.BuildPubcomp(o)
	return p.buildResult(out, err)
}

// BuildSubscribe serializes a SUBSCRIBE packet.
func (p *provider) BuildSubscribe(packetID uint16, items []SubscribeItem, props *Properties) ([]byte, error) {
	ps, err := toPropertySet(props)
	if err != nil {
		return nil, err
	}

	wireItems := make([]wire.SubscribeItem, len(items))
	for i, it := range items {
		wireItems[i] = wire.SubscribeItem{
			TopicFilter:       it.TopicFilter,
			QoS:               uint8(it.QoS),
			NoLocal:           it.NoLocal,
			RetainAsPublished: it.RetainAsPublished,
			RetainHandling:    it.RetainHandling,
		}
	}

	out, err := wire.BuildSubscribe(&wire.SubscribeOptions{
		ProtocolLevel: p.protocolLevel(),
		PacketID:      packetID,
		Items:         wireItems,
		Properties:    ps,
	})
	return p.buildResult(out, err)
}

// BuildUnsubscribe serializes an UNSUBSCRIBE packet.
func (p *provider) BuildUnsubscribe(packetID uint16, topics []string, props *Properties) ([]byte, error) {
	ps, err := toPropertySet(props)
	if err != nil {
		return nil, err
	}

	out, err := wire.BuildUnsubscribe(&wire.UnsubscribeOptions{
		ProtocolLevel: p.protocolLevel(),
		PacketID:      packetID,
		Topics:        topics,
		Properties:    ps,
	})
	return p.buildResult(out, err)
}

// BuildPingreq serializes a PINGREQ packet.
func (p *provider) BuildPingreq() ([]byte, error) {
	out, err := wire.BuildPingreq()
	return p.buildResult(out, err)
}

// BuildDisconnect serializes a DISCONNECT packet from info. Under v3 the
// wire form is always the two-byte short form regardless of info's
// contents, since DISCONNECT carries no reason code or properties prior
// to v5.
func (p *provider) BuildDisconnect(info *DisconnectInfo) ([]byte, error) {
	var reasonCode uint8
	var props *Properties
	if info != nil {
		reasonCode = uint8(info.ReasonCode)
		props = info.toProperties()
	}

	ps, err := toPropertySet(props)
	if err != nil {
		return nil, err
	}

	out, err := wire.BuildDisconnect(&wire.ReasonOptions{
		ProtocolLevel: p.protocolLevel(),
		ReasonCode:    reasonCode,
		Properties:    ps,
	})
	return p.buildResult(out, err)
}

// BuildAuth serializes an AUTH packet. AUTH exists only under v5; calling
// it on a v3.1.1 Provider is an error.
func (p *provider) BuildAuth(reasonCode ReasonCode, props *Properties) ([]byte, error) {
	if p.version < V5 {
		return nil, fmt.Errorf("%w: AUTH packet is only valid for MQTT v5", ErrInvalidArgument)
	}

	ps, err := toPropertySet(props)
	if err != nil {
		return nil, err
	}

	out, err := wire.BuildAuth(&wire.AuthOptions{
		ReasonCode: uint8(reasonCode),
		Properties: ps,
	})
	return p.buildResult(out, err)
}
