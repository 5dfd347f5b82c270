package protocol

import (
	"bytes"
	"testing"

	"github.com/cryptk/omnilogic-local/internal/omnierrors"
	"github.com/cryptk/omnilogic-local/internal/omnitypes"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	payload := []byte(`<Request xmlns="http://nextgen.hayward.com/api"><Name>Ack</Name></Request>`)
	msg := New(12345, omnitypes.MessageTypeXMLAck, payload)

	wire := msg.Encode()
	if len(wire) != omnitypes.ProtocolHeaderSize+len(payload)+1 {
		t.Fatalf("unexpected wire length %d", len(wire))
	}
	if wire[len(wire)-1] != 0x00 {
		t.Fatalf("expected trailing NUL terminator")
	}

	decoded, err := Decode(wire)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.ID != msg.ID {
		t.Errorf("ID = %d, want %d", decoded.ID, msg.ID)
	}
	if decoded.Type != omnitypes.MessageTypeXMLAck {
		t.Errorf("Type = %v, want XML_ACK", decoded.Type)
	}
	if decoded.ClientType != omnitypes.ClientTypeXML {
		t.Errorf("ClientType = %v, want XML", decoded.ClientType)
	}
	// Payload still carries the trailing NUL: callers that care strip it.
	if !bytes.Equal(decoded.Payload, append(append([]byte{}, payload...), 0x00)) {
		t.Errorf("Payload mismatch: got %q", decoded.Payload)
	}
}

func TestDecodeNoPayloadMessageIsSimpleClient(t *testing.T) {
	msg := New(1, omnitypes.MessageTypeAck, nil)
	if msg.ClientType != omnitypes.ClientTypeSimple {
		t.Fatalf("ClientType = %v, want SIMPLE for payload-less message", msg.ClientType)
	}
	wire := msg.Encode()
	if len(wire) != omnitypes.ProtocolHeaderSize {
		t.Fatalf("wire length = %d, want exactly header size for nil payload", len(wire))
	}
}

func TestDecodeTelemetryUpdateForcesCompressed(t *testing.T) {
	payload := []byte("doesn't matter, the wire byte is left at zero")
	msg := New(99, omnitypes.MessageTypeMSPTelemetryUpdate, payload)
	msg.Compressed = false
	wire := msg.Encode()

	decoded, err := Decode(wire)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !decoded.Compressed {
		t.Errorf("MSP_TELEMETRY_UPDATE message should decode as Compressed=true regardless of the wire byte")
	}
}

func TestDecodeRejectsShortDatagram(t *testing.T) {
	_, err := Decode(make([]byte, omnitypes.ProtocolHeaderSize-1))
	if !omnierrors.IsMalformedMessage(err) {
		t.Fatalf("expected MalformedMessage error, got %v", err)
	}
}

func TestDecodeRejectsUnknownOpcode(t *testing.T) {
	msg := New(1, omnitypes.MessageType(999999), nil)
	wire := msg.Encode()
	_, err := Decode(wire)
	if !omnierrors.IsMalformedMessage(err) {
		t.Fatalf("expected MalformedMessage error for unknown opcode, got %v", err)
	}
}
