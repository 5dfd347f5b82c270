package omniapi

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/cryptk/omnilogic-local/internal/omnierrors"
	"github.com/cryptk/omnilogic-local/internal/omnitypes"
	"github.com/cryptk/omnilogic-local/internal/protocol"
)

const sampleTelemetry = `<?xml version="1.0" encoding="UTF-8"?>
<STATUS version="1.19">
  <Backyard systemId="0" statusVersion="1" state="1" airTemp="78"/>
</STATUS>`

// startFakeController ACKs every request it receives; if a response
// document is supplied it is sent as a single follow-up message once
// the triggering request has been ACKed.
func startFakeController(t *testing.T, response string) (host string, port int, closeFn func()) {
	t.Helper()
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	if err != nil {
		t.Fatalf("ListenUDP: %v", err)
	}

	go func() {
		buf := make([]byte, omnitypes.MaxMessageSize)
		for {
			n, addr, err := conn.ReadFromUDP(buf)
			if err != nil {
				return
			}
			msg, err := protocol.Decode(buf[:n])
			if err != nil {
				continue
			}
			ack := protocol.New(msg.ID, omnitypes.MessageTypeXMLAck, nil)
			if _, err := conn.WriteToUDP(ack.Encode(), addr); err != nil {
				return
			}
			if response != "" {
				reply := protocol.New(msg.ID+1, omnitypes.MessageTypeGetTelemetry, []byte(response))
				if _, err := conn.WriteToUDP(reply.Encode(), addr); err != nil {
					return
				}
			}
		}
	}()

	laddr := conn.LocalAddr().(*net.UDPAddr)
	return "127.0.0.1", laddr.Port, func() { conn.Close() }
}

func TestGetTelemetryRoundTrip(t *testing.T) {
	host, port, closeFn := startFakeController(t, sampleTelemetry)
	defer closeFn()

	c, err := NewClient(host, port, 2)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	snap, err := c.GetTelemetry(ctx)
	if err != nil {
		t.Fatalf("GetTelemetry: %v", err)
	}
	if snap.Backyard.AirTemp != 78 {
		t.Errorf("Backyard.AirTemp = %d, want 78", snap.Backyard.AirTemp)
	}
}

func TestRestoreIdleStateRoundTrip(t *testing.T) {
	host, port, closeFn := startFakeController(t, "")
	defer closeFn()

	c, err := NewClient(host, port, 2)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := c.RestoreIdleState(ctx); err != nil {
		t.Fatalf("RestoreIdleState: %v", err)
	}
}

func TestSetHeaterRejectsOutOfRangeTemperature(t *testing.T) {
	c, err := NewClient("127.0.0.1", 10444, 2)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	err = c.SetHeater(context.Background(), 0, 5, 40)
	if !omnierrors.IsValidation(err) {
		t.Fatalf("SetHeater(40F) = %v, want a Validation error", err)
	}
}

func TestSetFilterSpeedRejectsOutOfRangeSpeed(t *testing.T) {
	c, err := NewClient("127.0.0.1", 10444, 2)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	err = c.SetFilterSpeed(context.Background(), 0, 5, 150)
	if !omnierrors.IsValidation(err) {
		t.Fatalf("SetFilterSpeed(150%%) = %v, want a Validation error", err)
	}
}

// startRecordingController ACKs every request it receives and hands
// each raw datagram it reads off the wire to the caller over the
// returned channel, so a test can assert on literal outbound bytes.
func startRecordingController(t *testing.T) (host string, port int, received chan []byte, closeFn func()) {
	t.Helper()
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	if err != nil {
		t.Fatalf("ListenUDP: %v", err)
	}

	received = make(chan []byte, 4)
	go func() {
		buf := make([]byte, omnitypes.MaxMessageSize)
		for {
			n, addr, err := conn.ReadFromUDP(buf)
			if err != nil {
				return
			}
			raw := make([]byte, n)
			copy(raw, buf[:n])
			received <- raw

			msg, err := protocol.Decode(raw)
			if err != nil {
				continue
			}
			ack := protocol.New(msg.ID, omnitypes.MessageTypeXMLAck, nil)
			if _, err := conn.WriteToUDP(ack.Encode(), addr); err != nil {
				return
			}
		}
	}()

	laddr := conn.LocalAddr().(*net.UDPAddr)
	return "127.0.0.1", laddr.Port, received, func() { conn.Close() }
}

func recvDatagram(t *testing.T, received chan []byte) []byte {
	t.Helper()
	select {
	case raw := <-received:
		return raw
	case <-time.After(2 * time.Second):
		t.Fatal("controller never received a datagram")
		return nil
	}
}

func TestSetFilterSpeedCommandBytes(t *testing.T) {
	host, port, received, closeFn := startRecordingController(t)
	defer closeFn()

	c, err := NewClient(host, port, 2)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := c.SetFilterSpeed(ctx, 7, 8, 50); err != nil {
		t.Fatalf("SetFilterSpeed: %v", err)
	}

	raw := recvDatagram(t, received)
	msg, err := protocol.Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if msg.Type != omnitypes.MessageTypeSetFilterSpeed {
		t.Errorf("Type = %v, want %v", msg.Type, omnitypes.MessageTypeSetFilterSpeed)
	}
	if msg.ClientType != omnitypes.ClientTypeXML {
		t.Errorf("ClientType = %v, want %v", msg.ClientType, omnitypes.ClientTypeXML)
	}
	if raw[len(raw)-1] != 0 {
		t.Errorf("datagram does not end with a trailing NUL byte")
	}

	want := `<?xml version="1.0" encoding="UTF-8"?>` + "\n" +
		`<Request xmlns="http://nextgen.hayward.com/api"><Name>SetUIFilterSpeedCmd</Name><Parameters>` +
		`<Parameter name="poolId" dataType="int">7</Parameter>` +
		`<Parameter name="FilterID" dataType="int" alias="equipment_id">8</Parameter>` +
		`<Parameter name="Speed" dataType="int" unit="RPM" alias="Data">50</Parameter>` +
		`</Parameters></Request>`
	if got := string(msg.Payload); got != want {
		t.Errorf("payload =\n%s\nwant\n%s", got, want)
	}
}

func TestSetHeaterCommandBytes(t *testing.T) {
	host, port, received, closeFn := startRecordingController(t)
	defer closeFn()

	c, err := NewClient(host, port, 2)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := c.SetHeater(ctx, 3, 9, 85); err != nil {
		t.Fatalf("SetHeater: %v", err)
	}

	raw := recvDatagram(t, received)
	msg, err := protocol.Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	want := `<?xml version="1.0" encoding="UTF-8"?>` + "\n" +
		`<Request xmlns="http://nextgen.hayward.com/api"><Name>SetUIHeaterCmd</Name><Parameters>` +
		`<Parameter name="poolId" dataType="int">3</Parameter>` +
		`<Parameter name="HeaterID" dataType="int" alias="EquipmentID">9</Parameter>` +
		`<Parameter name="Temp" dataType="int" unit="F" alias="Data">85</Parameter>` +
		`</Parameters></Request>`
	if got := string(msg.Payload); got != want {
		t.Errorf("payload =\n%s\nwant\n%s", got, want)
	}
}

func TestNewClientRejectsEmptyHost(t *testing.T) {
	if _, err := NewClient("", 10444, 2); !omnierrors.IsValidation(err) {
		t.Fatalf("NewClient(empty host) = %v, want a Validation error", err)
	}
}

func TestNewClientRejectsNonPositiveTimeout(t *testing.T) {
	if _, err := NewClient("127.0.0.1", 10444, 0); !omnierrors.IsValidation(err) {
		t.Fatalf("NewClient(0 timeout) = %v, want a Validation error", err)
	}
}
