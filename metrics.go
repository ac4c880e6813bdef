package mqttwire

import "github.com/prometheus/client_golang/prometheus"

// CodecMetrics wraps the prometheus collectors a codec instance updates
// on every build and parse. Grounded on golang-io-mqtt's Stat, but unlike
// that package-level var + MustRegister() pair, NewCodecMetrics returns
// unregistered collectors: an importable library must not reach into the
// caller's default registry.
type CodecMetrics struct {
	PacketsBuilt    prometheus.Counter
	PacketsParsed   prometheus.Counter
	BytesEncoded    prometheus.Counter
	BytesDecoded    prometheus.Counter
	MalformedFrames prometheus.Counter
}

// NewCodecMetrics constructs a CodecMetrics. The caller is responsible
// for registering the returned collectors with their own
// prometheus.Registerer, e.g. registry.MustRegister(m.PacketsBuilt, ...).
func NewCodecMetrics() *CodecMetrics {
	return &CodecMetrics{
		PacketsBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mqttwire_packets_built_total",
			Help: "Total number of outbound packets built.",
		}),
		PacketsParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mqttwire_packets_parsed_total",
			Help: "Total number of inbound packets completed by the receive state machine and decoded successfully.",
		}),
		BytesEncoded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mqttwire_bytes_encoded_total",
			Help: "Total number of bytes produced by builders.",
		}),
		BytesDecoded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mqttwire_bytes_decoded_total",
			Help: "Total number of bytes fed into the receive state machine.",
		}),
		MalformedFrames: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mqttwire_malformed_frames_total",
			Help: "Total number of frames rejected as malformed.",
		}),
	}
}

// Collectors returns every collector in m, for convenient bulk
// registration: registry.MustRegister(m.Collectors()...).
func (m *CodecMetrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.PacketsBuilt,
		m.PacketsParsed,
		m.BytesEncoded,
		m.BytesDecoded,
		m.MalformedFrames,
	}
}
