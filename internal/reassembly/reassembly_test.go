package reassembly

import (
	"bytes"
	"compress/zlib"
	"context"
	"net"
	"testing"
	"time"

	"github.com/cryptk/omnilogic-local/internal/channel"
	"github.com/cryptk/omnilogic-local/internal/omnitypes"
	"github.com/cryptk/omnilogic-local/internal/protocol"
)

func TestParseLeadMessage(t *testing.T) {
	doc := []byte(`<Response xmlns="http://nextgen.hayward.com/api">
		<Name>LeadMessage</Name>
		<Parameters>
			<Parameter name="SourceOpId" dataType="int">300</Parameter>
			<Parameter name="MsgSize" dataType="int">4096</Parameter>
			<Parameter name="MsgBlockCount" dataType="int">3</Parameter>
			<Parameter name="Type" dataType="int">0</Parameter>
		</Parameters>
	</Response>`)

	lead, err := parseLeadMessage(doc)
	if err != nil {
		t.Fatalf("parseLeadMessage: %v", err)
	}
	if lead.MsgBlockCount != 3 {
		t.Errorf("MsgBlockCount = %d, want 3", lead.MsgBlockCount)
	}
	if lead.SourceOpID != 300 {
		t.Errorf("SourceOpID = %d, want 300", lead.SourceOpID)
	}
}

// startReassemblyServer sends a LeadMessage followed by out-of-order
// block messages, matching the controller's fragmented-response flow,
// and answers every ACK sent back to it.
func startReassemblyServer(t *testing.T, bodies [][]byte) (host string, port int, closeFn func()) {
	t.Helper()
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	if err != nil {
		t.Fatalf("ListenUDP: %v", err)
	}

	go func() {
		buf := make([]byte, omnitypes.MaxMessageSize)
		_, clientAddr, err := conn.ReadFromUDP(buf)
		if err != nil {
			return
		}

		lead := []byte(`<Response xmlns="http://nextgen.hayward.com/api"><Name>LeadMessage</Name><Parameters>` +
			`<Parameter name="SourceOpId" dataType="int">300</Parameter>` +
			`<Parameter name="MsgSize" dataType="int">0</Parameter>` +
			`<Parameter name="MsgBlockCount" dataType="int">2</Parameter>` +
			`<Parameter name="Type" dataType="int">0</Parameter>` +
			`</Parameters></Response>`)
		leadMsg := protocol.New(100, omnitypes.MessageTypeMSPLeadMessage, lead)
		conn.WriteToUDP(leadMsg.Encode(), clientAddr)

		// Read the ACK for the lead message, ignore it.
		conn.ReadFromUDP(buf)

		// Send block 2 before block 1 to exercise ascending-id sort.
		for i := len(bodies) - 1; i >= 0; i-- {
			blockPayload := append(make([]byte, omnitypes.BlockMessageHeaderOffset), bodies[i]...)
			block := protocol.New(uint32(101+i), omnitypes.MessageTypeMSPBlockMessage, blockPayload)
			conn.WriteToUDP(block.Encode(), clientAddr)
			conn.ReadFromUDP(buf) // ack
		}
	}()

	laddr := conn.LocalAddr().(*net.UDPAddr)
	return "127.0.0.1", laddr.Port, func() { conn.Close() }
}

func TestReceiveReassemblesBlocksInAscendingOrder(t *testing.T) {
	host, port, closeFn := startReassemblyServer(t, [][]byte{[]byte("hello "), []byte("world")})
	defer closeFn()

	ch, err := channel.Dial(host, port)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer ch.Close()

	if err := ch.Send(protocol.New(1, omnitypes.MessageTypeRequestConfiguration, []byte("<Request/>"))); err != nil {
		t.Fatalf("Send: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	got, err := Receive(ctx, ch)
	if err != nil {
		t.Fatalf("Receive: %v", err)
	}
	if got != "hello world" {
		t.Fatalf("got %q, want %q", got, "hello world")
	}
}

func TestDecompressRoundTrip(t *testing.T) {
	var compressed bytes.Buffer
	w := zlib.NewWriter(&compressed)
	w.Write([]byte("telemetry payload"))
	w.Close()

	out, err := decompress(compressed.Bytes())
	if err != nil {
		t.Fatalf("decompress: %v", err)
	}
	if string(out) != "telemetry payload" {
		t.Fatalf("got %q", out)
	}
}
