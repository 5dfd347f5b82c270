package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/cryptk/omnilogic-local/internal/omniapi"
	"github.com/cryptk/omnilogic-local/internal/omnitypes"
	"github.com/cryptk/omnilogic-local/internal/protocol"
)

const sampleTelemetry = `<?xml version="1.0" encoding="UTF-8"?>
<STATUS version="1.19">
  <Backyard systemId="0" statusVersion="1" state="1" airTemp="81"/>
</STATUS>`

// startFakeController ACKs every request and answers every request
// with sampleTelemetry, mimicking a controller that only ever answers
// RequestTelemetryData.
func startFakeController(t *testing.T) (host string, port int, closeFn func()) {
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
			reply := protocol.New(msg.ID+1, omnitypes.MessageTypeGetTelemetry, []byte(sampleTelemetry))
			if _, err := conn.WriteToUDP(reply.Encode(), addr); err != nil {
				return
			}
		}
	}()

	laddr := conn.LocalAddr().(*net.UDPAddr)
	return "127.0.0.1", laddr.Port, func() { conn.Close() }
}

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	port := l.Addr().(*net.TCPAddr).Port
	l.Close()
	return port
}

func TestBridgeBroadcastsTelemetryToConnectedClient(t *testing.T) {
	host, port, closeFn := startFakeController(t)
	defer closeFn()

	apiClient, err := omniapi.NewClient(host, port, 2)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	bridgePort := freePort(t)
	srv := New(Config{Host: "127.0.0.1", Port: bridgePort, PollInterval: 50 * time.Millisecond}, apiClient)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start(ctx) }()

	// Give the listener a moment to bind.
	var wsConn *websocket.Conn
	url := fmt.Sprintf("ws://127.0.0.1:%d/telemetry", bridgePort)
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		c, _, dialErr := websocket.DefaultDialer.Dial(url, nil)
		if dialErr == nil {
			wsConn = c
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if wsConn == nil {
		t.Fatal("failed to connect to bridge websocket server")
	}
	defer wsConn.Close()

	_ = wsConn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := wsConn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}

	var envelope snapshotEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if envelope.Snapshot == nil {
		t.Fatal("envelope.Snapshot is nil")
	}
	if envelope.Snapshot.Backyard.AirTemp != 81 {
		t.Errorf("Backyard.AirTemp = %d, want 81", envelope.Snapshot.Backyard.AirTemp)
	}
}
