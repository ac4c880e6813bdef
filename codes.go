package mqttwire

// ReasonCode is an MQTT v5 reason code: used in CONNACK, PUBACK, PUBREC,
// PUBREL, PUBCOMP, SUBACK, UNSUBACK, DISCONNECT, and AUTH to report the
// outcome of an operation. Values 0x00-0x7F indicate success; 0x80-0xFF
// indicate failure. v3.1.1 has no reason codes of its own; CONNACK there
// uses the narrower set of CONNACK return codes below instead.
type ReasonCode uint8

const (
	ReasonCodeSuccess                     ReasonCode = 0x00
	ReasonCodeNormalDisconnect            ReasonCode = 0x00
	ReasonCodeGrantedQoS0                 ReasonCode = 0x00
	ReasonCodeGrantedQoS1                 ReasonCode = 0x01
	ReasonCodeGrantedQoS2                 ReasonCode = 0x02
	ReasonCodeDisconnectWithWill          ReasonCode = 0x04
	ReasonCodeNoMatchingSubscribers       ReasonCode = 0x10
	ReasonCodeNoSubscriptionExisted       ReasonCode = 0x11
	ReasonCodeContinueAuthentication      ReasonCode = 0x18
	ReasonCodeReAuthenticate              ReasonCode = 0x19
	ReasonCodeUnspecifiedError            ReasonCode = 0x80
	ReasonCodeMalformedPacket             ReasonCode = 0x81
	ReasonCodeProtocolError               ReasonCode = 0x82
	ReasonCodeImplementationSpecificError ReasonCode = 0x83
	ReasonCodeUnsupportedProtocolVersion  ReasonCode = 0x84
	ReasonCodeClientIdentifierNotValid    ReasonCode = 0x85
	ReasonCodeBadUsernameOrPassword       ReasonCode = 0x86
	ReasonCodeNotAuthorized               ReasonCode = 0x87
	ReasonCodeServerUnavailable           ReasonCode = 0x88
	ReasonCodeServerBusy                  ReasonCode = 0x89
	ReasonCodeBanned                      ReasonCode = 0x8A
	ReasonCodeServerShuttingDown          ReasonCode = 0x8B
	ReasonCodeBadAuthenticationMethod     ReasonCode = 0x8C
	ReasonCodeKeepAliveTimeout            ReasonCode = 0x8D
	ReasonCodeSessionTakenOver            ReasonCode = 0x8E
	ReasonCodeTopicFilterInvalid          ReasonCode = 0x8F
	ReasonCodeTopicNameInvalid            ReasonCode = 0x90
	ReasonCodePacketIdentifierInUse       ReasonCode = 0x91
	ReasonCodePacketIdentifierNotFound    ReasonCode = 0x92
	ReasonCodeReceiveMaximumExceeded      ReasonCode = 0x93
	ReasonCodeTopicAliasInvalid           ReasonCode = 0x94
	ReasonCodePacketTooLarge              ReasonCode = 0x95
	ReasonCodeMessageRateTooHigh          ReasonCode = 0x96
	ReasonCodeQuotaExceeded               ReasonCode = 0x97
	ReasonCodeAdministrativeAction        ReasonCode = 0x98
	ReasonCodePayloadFormatInvalid        ReasonCode = 0x99
	ReasonCodeRetainNotSupported          ReasonCode = 0x9A
	ReasonCodeQoSNotSupported             ReasonCode = 0x9B
	ReasonCodeUseAnotherServer            ReasonCode = 0x9C
	ReasonCodeServerMoved                 ReasonCode = 0x9D
	ReasonCodeSharedSubscriptionsNotSupp  ReasonCode = 0x9E
	ReasonCodeConnectionRateExceeded      ReasonCode = 0x9F
	ReasonCodeMaximumConnectTime          ReasonCode = 0xA0
	ReasonCodeSubscriptionIDsNotSupported ReasonCode = 0xA1
	ReasonCodeWildcardSubNotSupported     ReasonCode = 0xA2
)

// ConnackCode is a v3.1.1 CONNACK return code (the narrower predecessor
// to the v5 ReasonCode set above).
type ConnackCode uint8

const (
	ConnackAccepted                    ConnackCode = 0x00
	ConnackUnacceptableProtocolVersion ConnackCode = 0x01
	ConnackIdentifierRejected          ConnackCode = 0x02
	ConnackServerUnavailable           ConnackCode = 0x03
	ConnackBadUsernameOrPassword       ConnackCode = 0x04
	ConnackNotAuthorized               ConnackCode = 0x05
)
