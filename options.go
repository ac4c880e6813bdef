package mqttwire

import (
	"log/slog"

	"github.com/wiremq/mqttwire/internal/wire"
)

// TraceFunc observes every raw byte a codec's Receive consumes.
type TraceFunc = wire.TraceFunc

// QoS is an MQTT Quality of Service level.
type QoS uint8

const (
	AtMostOnce  QoS = 0
	AtLeastOnce QoS = 1
	ExactlyOnce QoS = 2
)

// ProtocolVersion selects which wire format a Provider builds and parses.
type ProtocolVersion uint8

const (
	// V3 is MQTT v3.1.1 (protocol level 4).
	V3 ProtocolVersion = 4
	// V5 is MQTT v5 (protocol level 5).
	V5 ProtocolVersion = 5
)

// ClientOptions is the data model for an outbound CONNECT packet. It
// mirrors the teacher's clientOptions but carries only what a codec
// (not a connecting client) needs: no server address, dialer, TLS
// config, or reconnect policy — those belong to the transport layer
// this module deliberately excludes.
type ClientOptions struct {
	ClientID     string
	Username     string
	Password     string
	HasUsername  bool
	HasPassword  bool
	KeepAlive    uint16
	CleanSession bool

	HasWill     bool
	WillTopic   string
	WillMessage []byte
	WillQoS     QoS
	WillRetain  bool
	WillProps   *Properties

	// Properties is attached to CONNECT under v5; ignored under v3.
	Properties *Properties
}

// PublishHeader is the data model for an outbound PUBLISH packet.
type PublishHeader struct {
	Topic    string
	PacketID uint16 // present iff QoS > 0
	QoS      QoS
	Dup      bool
	Retain   bool
	Payload  []byte

	// Properties is attached under v5; ignored under v3.
	Properties *Properties
}

// SubscribeItem is one (topic filter, requested QoS) pair of a SUBSCRIBE
// payload, plus the v5-only per-subscription options.
type SubscribeItem struct {
	TopicFilter string
	QoS         QoS

	NoLocal           bool
	RetainAsPublished bool
	RetainHandling    uint8
}

// DisconnectInfo is the data model for an outbound DISCONNECT packet
// under v5 (spec.md's Disconnect Info).
type DisconnectInfo struct {
	ReasonCode            ReasonCode
	SessionExpiryInterval *uint32
	ReasonString          string
	ServerReference       string
	UserProperties        []UserProperty
}

// toProperties folds the v5-only scalar fields of a DisconnectInfo into
// the Properties view toPropertySet already knows how to serialize.
func (d *DisconnectInfo) toProperties() *Properties {
	if d == nil {
		return nil
	}
	if d.SessionExpiryInterval == nil && d.ReasonString == "" && d.ServerReference == "" && len(d.UserProperties) == 0 {
		return nil
	}
	return &Properties{
		SessionExpiryInterval: d.SessionExpiryInterval,
		ReasonString:          d.ReasonString,
		ServerReference:       d.ServerReference,
		UserProperties:        d.UserProperties,
	}
}

// CodecOptions configures a Provider's codec instances. Built with
// functional options, matching the teacher's options.go pattern.
type CodecOptions struct {
	Logger            *slog.Logger
	Trace             TraceFunc
	MaxIncomingPacket int
	Metrics           *CodecMetrics
}

// CodecOption is a functional option for NewProvider.
type CodecOption func(*CodecOptions)

// WithLogger sets a logger for inbound frames that fail typed decoding.
// A nil logger (the default) means those events are not logged.
func WithLogger(logger *slog.Logger) CodecOption {
	return func(o *CodecOptions) {
		o.Logger = logger
	}
}

// WithTrace installs a byte-level trace callback on every codec instance
// the Provider creates, equivalent to calling (*Codec).SetTrace on each.
func WithTrace(fn TraceFunc) CodecOption {
	return func(o *CodecOptions) {
		o.Trace = fn
	}
}

// WithMaxIncomingPacket bounds the remaining-length the receive state
// machine accepts before failing a frame. Zero or a value above the
// protocol maximum (268,435,455 bytes) falls back to the protocol
// maximum.
func WithMaxIncomingPacket(n int) CodecOption {
	return func(o *CodecOptions) {
		o.MaxIncomingPacket = n
	}
}

// WithMetrics attaches a CodecMetrics to every codec instance the
// Provider creates. Pass nil (the default) to disable metrics.
func WithMetrics(m *CodecMetrics) CodecOption {
	return func(o *CodecOptions) {
		o.Metrics = m
	}
}

func defaultCodecOptions() *CodecOptions {
	return &CodecOptions{}
}
