package omnitypes

import "time"

// Protocol framing constants.
const (
	// ProtocolHeaderSize is the fixed size, in bytes, of the binary
	// header ("!LQ4sLBBBB") that precedes every payload.
	ProtocolHeaderSize = 24

	// ProtocolVersion is the version string sent in outgoing headers.
	ProtocolVersion = "1.19"

	// DefaultControllerPort is the UDP port the OmniLogic/OmniHub
	// controller listens on.
	DefaultControllerPort = 10444

	// MaxMessageSize is the largest single UDP datagram this client
	// will send or expect to receive.
	MaxMessageSize = 65507

	// BlockMessageHeaderOffset is the number of bytes stripped from the
	// front of every MSP_BLOCKMESSAGE payload before it is appended to
	// the reassembly buffer.
	BlockMessageHeaderOffset = 8

	// XMLNamespace is the XML namespace carried by every <Request>
	// document this client sends.
	XMLNamespace = "http://nextgen.hayward.com/api"
)

// Protocol timing constants.
const (
	// OmniRetransmitTime, multiplied by OmniRetransmitCount, bounds the
	// wait for each block message of a fragmented response.
	OmniRetransmitTime = 2100 * time.Millisecond

	// OmniRetransmitCount is the number of send attempts (including the
	// first) before a send is considered failed.
	OmniRetransmitCount = 5

	// AckWaitTimeout bounds a single attempt's wait for an ACK.
	AckWaitTimeout = 500 * time.Millisecond

	// DefaultResponseTimeout is a 5 s per-call timeout value. The client
	// does not read it: NewClient takes its timeout as an argument.
	DefaultResponseTimeout = 5 * time.Second

	// MaxFragmentWaitTime bounds the whole-message wall-clock budget for
	// collecting every block of a fragmented response.
	MaxFragmentWaitTime = 30 * time.Second

	// MaxQueueSize bounds the inbound datagram queue; once full, newly
	// arrived datagrams are dropped rather than blocking the reader.
	MaxQueueSize = 100
)

// MessageType identifies the opcode carried in a message header.
type MessageType uint32

// Known message type opcodes. REQUEST_LOG_CONFIG and GET_ALARM_LIST
// appear in the controller's documented opcode table but not in every
// reference client; EDIT_SCHEDULE has no documented numeric opcode at
// all (see DESIGN.md) so this client assigns 233, immediately after
// DELETE_SCHEDULE, for its own internal encoding/decoding.
const (
	MessageTypeXMLAck                   MessageType = 0
	MessageTypeRequestConfiguration     MessageType = 1
	MessageTypeRequestLogConfig         MessageType = 31
	MessageTypeSetFilterSpeed           MessageType = 9
	MessageTypeSetHeaterCommand         MessageType = 11
	MessageTypeSetSuperchlorinate       MessageType = 15
	MessageTypeSetSolarSetPointCommand  MessageType = 40
	MessageTypeSetHeaterModeCommand     MessageType = 42
	MessageTypeSetChlorEnabled          MessageType = 121
	MessageTypeSetHeaterEnabled         MessageType = 147
	MessageTypeSetChlorParams           MessageType = 155
	MessageTypeSetEquipment             MessageType = 164
	MessageTypeCreateSchedule           MessageType = 230
	MessageTypeDeleteSchedule           MessageType = 231
	MessageTypeEditSchedule             MessageType = 233
	MessageTypeGetAlarmList             MessageType = 304
	MessageTypeGetTelemetry             MessageType = 300
	MessageTypeSetStandaloneLightShow   MessageType = 308
	MessageTypeSetSpillover             MessageType = 311
	MessageTypeRunGroupCmd              MessageType = 317
	MessageTypeRestoreIdleState         MessageType = 340
	MessageTypeGetFilterDiagnosticInfo  MessageType = 386
	MessageTypeHandshake                MessageType = 1000
	MessageTypeAck                      MessageType = 1002
	MessageTypeMSPConfigurationUpdate   MessageType = 1003
	MessageTypeMSPTelemetryUpdate       MessageType = 1004
	MessageTypeMSPLeadMessage           MessageType = 1998
	MessageTypeMSPBlockMessage          MessageType = 1999
)

var messageTypeNames = map[MessageType]string{
	MessageTypeXMLAck:                  "XML_ACK",
	MessageTypeRequestConfiguration:    "REQUEST_CONFIGURATION",
	MessageTypeRequestLogConfig:        "REQUEST_LOG_CONFIG",
	MessageTypeSetFilterSpeed:          "SET_FILTER_SPEED",
	MessageTypeSetHeaterCommand:        "SET_HEATER_COMMAND",
	MessageTypeSetSuperchlorinate:      "SET_SUPERCHLORINATE",
	MessageTypeSetSolarSetPointCommand: "SET_SOLAR_SET_POINT_COMMAND",
	MessageTypeSetHeaterModeCommand:    "SET_HEATER_MODE_COMMAND",
	MessageTypeSetChlorEnabled:         "SET_CHLOR_ENABLED",
	MessageTypeSetHeaterEnabled:        "SET_HEATER_ENABLED",
	MessageTypeSetChlorParams:          "SET_CHLOR_PARAMS",
	MessageTypeSetEquipment:            "SET_EQUIPMENT",
	MessageTypeCreateSchedule:          "CREATE_SCHEDULE",
	MessageTypeDeleteSchedule:          "DELETE_SCHEDULE",
	MessageTypeEditSchedule:            "EDIT_SCHEDULE",
	MessageTypeGetAlarmList:            "GET_ALARM_LIST",
	MessageTypeGetTelemetry:            "GET_TELEMETRY",
	MessageTypeSetStandaloneLightShow:  "SET_STANDALONE_LIGHT_SHOW",
	MessageTypeSetSpillover:            "SET_SPILLOVER",
	MessageTypeRunGroupCmd:             "RUN_GROUP_CMD",
	MessageTypeRestoreIdleState:        "RESTORE_IDLE_STATE",
	MessageTypeGetFilterDiagnosticInfo: "GET_FILTER_DIAGNOSTIC_INFO",
	MessageTypeHandshake:               "HANDSHAKE",
	MessageTypeAck:                     "ACK",
	MessageTypeMSPConfigurationUpdate:  "MSP_CONFIGURATIONUPDATE",
	MessageTypeMSPTelemetryUpdate:      "MSP_TELEMETRY_UPDATE",
	MessageTypeMSPLeadMessage:          "MSP_LEADMESSAGE",
	MessageTypeMSPBlockMessage:         "MSP_BLOCKMESSAGE",
}

func (t MessageType) String() string {
	if name, ok := messageTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Known reports whether t is a recognized opcode.
func (t MessageType) Known() bool {
	_, ok := messageTypeNames[t]
	return ok
}

// ClientType identifies the sender role carried in a message header.
type ClientType uint8

const (
	ClientTypeXML    ClientType = 0
	ClientTypeSimple ClientType = 1
	ClientTypeOmni   ClientType = 3
)

func (c ClientType) String() string {
	switch c {
	case ClientTypeXML:
		return "XML"
	case ClientTypeSimple:
		return "SIMPLE"
	case ClientTypeOmni:
		return "OMNI"
	default:
		return "UNKNOWN"
	}
}

// Known reports whether c is a recognized client type.
func (c ClientType) Known() bool {
	switch c {
	case ClientTypeXML, ClientTypeSimple, ClientTypeOmni:
		return true
	default:
		return false
	}
}
