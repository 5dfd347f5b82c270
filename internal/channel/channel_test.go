package channel

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/cryptk/omnilogic-local/internal/omnitypes"
	"github.com/cryptk/omnilogic-local/internal/protocol"
)

// startEchoServer binds a UDP socket that ACKs every message it
// receives, mimicking the controller's ACK handshake.
func startEchoServer(t *testing.T) (host string, port int, closeFn func()) {
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
			_, _ = conn.WriteToUDP(ack.Encode(), addr)
		}
	}()

	laddr := conn.LocalAddr().(*net.UDPAddr)
	return "127.0.0.1", laddr.Port, func() { conn.Close() }
}

func TestSendReliableSucceedsOnFirstAck(t *testing.T) {
	host, port, closeFn := startEchoServer(t)
	defer closeFn()

	ch, err := Dial(host, port)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer ch.Close()

	msg := protocol.New(42, omnitypes.MessageTypeRequestConfiguration, []byte("<Request/>"))
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := ch.SendReliable(ctx, msg); err != nil {
		t.Fatalf("SendReliable: %v", err)
	}
}

func TestSendReliableTimesOutWithNoResponder(t *testing.T) {
	// Bind a socket nobody answers on.
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	if err != nil {
		t.Fatalf("ListenUDP: %v", err)
	}
	port := conn.LocalAddr().(*net.UDPAddr).Port
	conn.Close()

	ch, err := Dial("127.0.0.1", port)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer ch.Close()

	msg := protocol.New(7, omnitypes.MessageTypeRequestConfiguration, []byte("<Request/>"))
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	if err := ch.SendReliable(ctx, msg); err == nil {
		t.Fatalf("expected an error when nothing answers the ACK wait")
	}
}
