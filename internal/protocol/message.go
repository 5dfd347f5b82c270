package protocol

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/cryptk/omnilogic-local/internal/omnierrors"
	"github.com/cryptk/omnilogic-local/internal/omnitypes"
)

// Message is a single decoded (or about-to-be-encoded) OmniLogic wire
// message: the fixed header fields plus the payload that follows it.
// Payload never includes the header. Encode appends the trailing NUL
// terminator itself, so a Payload to be encoded omits it; a Payload
// produced by Decode is everything after the header, trailing NUL
// included.
type Message struct {
	ID         uint32
	Timestamp  uint64
	Version    string
	Type       omnitypes.MessageType
	ClientType omnitypes.ClientType
	Compressed bool
	Payload    []byte
}

// New builds a Message ready to Encode. ClientType is derived from
// whether payload is non-nil: XML when a payload is present, SIMPLE
// for payload-less messages such as ACK.
func New(id uint32, msgType omnitypes.MessageType, payload []byte) *Message {
	clientType := omnitypes.ClientTypeSimple
	if payload != nil {
		clientType = omnitypes.ClientTypeXML
	}
	return &Message{
		ID:         id,
		Timestamp:  uint64(time.Now().Unix()),
		Version:    omnitypes.ProtocolVersion,
		Type:       msgType,
		ClientType: clientType,
		Payload:    payload,
	}
}

// Encode packs the header and payload into a single datagram, appending
// the trailing NUL the wire format expects after a non-nil payload.
func (m *Message) Encode() []byte {
	version := make([]byte, 4)
	copy(version, m.Version)

	header := make([]byte, omnitypes.ProtocolHeaderSize)
	binary.BigEndian.PutUint32(header[0:4], m.ID)
	binary.BigEndian.PutUint64(header[4:12], m.Timestamp)
	copy(header[12:16], version)
	binary.BigEndian.PutUint32(header[16:20], uint32(m.Type))
	header[20] = byte(m.ClientType)
	header[21] = 0
	if m.Compressed {
		header[22] = 1
	}
	header[23] = 0

	if m.Payload == nil {
		return header
	}
	body := make([]byte, len(m.Payload)+1)
	copy(body, m.Payload)
	body[len(m.Payload)] = 0x00
	return append(header, body...)
}

// Decode parses a received datagram into a Message. It returns a
// MalformedMessage error if the datagram is shorter than the header, or
// if the header names an opcode or client type this client does not
// recognize.
//
// Compressed is set from the wire's compressed byte, OR'd with the
// implicit override: MSP_TELEMETRY_UPDATE payloads are always
// compressed regardless of what the wire byte says.
func Decode(data []byte) (*Message, error) {
	if len(data) < omnitypes.ProtocolHeaderSize {
		return nil, omnierrors.NewMalformedMessage(
			fmt.Sprintf("datagram of %d bytes shorter than %d-byte header", len(data), omnitypes.ProtocolHeaderSize),
			nil)
	}

	id := binary.BigEndian.Uint32(data[0:4])
	timestamp := binary.BigEndian.Uint64(data[4:12])
	version := string(bytes.TrimRight(data[12:16], "\x00"))

	rawType := binary.BigEndian.Uint32(data[16:20])
	msgType := omnitypes.MessageType(rawType)
	if !msgType.Known() {
		return nil, omnierrors.NewMalformedMessage(fmt.Sprintf("unknown message type opcode %d", rawType), nil)
	}

	rawClientType := data[20]
	clientType := omnitypes.ClientType(rawClientType)
	if !clientType.Known() {
		return nil, omnierrors.NewMalformedMessage(fmt.Sprintf("unknown client type %d", rawClientType), nil)
	}

	compressed := data[22] == 1 || msgType == omnitypes.MessageTypeMSPTelemetryUpdate

	return &Message{
		ID:         id,
		Timestamp:  timestamp,
		Version:    version,
		Type:       msgType,
		ClientType: clientType,
		Compressed: compressed,
		Payload:    data[omnitypes.ProtocolHeaderSize:],
	}, nil
}
