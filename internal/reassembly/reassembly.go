package reassembly

import (
	"bytes"
	"compress/zlib"
	"context"
	"io"
	"sort"
	"time"

	"github.com/cryptk/omnilogic-local/internal/channel"
	"github.com/cryptk/omnilogic-local/internal/logging"
	"github.com/cryptk/omnilogic-local/internal/omnierrors"
	"github.com/cryptk/omnilogic-local/internal/omnitypes"
	"github.com/cryptk/omnilogic-local/internal/protocol"
)

// Receive reads the next real response from ch: it skips any residual
// ACK/XML_ACK left in the queue, acknowledges the first substantive
// message, reassembles it if it is a MSP_LEADMESSAGE, and
// zlib-decompresses the result when required. It returns the payload as
// a NUL-stripped string ready for XML parsing.
func Receive(ctx context.Context, ch *channel.Channel) (string, error) {
	var first *protocol.Message
	for {
		msg, err := ch.Recv(ctx)
		if err != nil {
			return "", err
		}
		if msg.Type == omnitypes.MessageTypeAck || msg.Type == omnitypes.MessageTypeXMLAck {
			continue
		}
		first = msg
		break
	}

	if err := ch.Send(protocol.New(first.ID, omnitypes.MessageTypeXMLAck, nil)); err != nil {
		return "", err
	}

	var raw []byte
	if first.Type == omnitypes.MessageTypeMSPLeadMessage {
		fragments, err := collectFragments(ctx, ch, first)
		if err != nil {
			return "", err
		}
		raw = fragments
	} else {
		raw = bytes.TrimRight(first.Payload, "\x00")
	}

	if first.Compressed {
		decompressed, err := decompress(raw)
		if err != nil {
			return "", err
		}
		raw = decompressed
	}

	return string(bytes.TrimRight(raw, "\x00")), nil
}

func collectFragments(ctx context.Context, ch *channel.Channel, lead *protocol.Message) ([]byte, error) {
	leadMsg, err := parseLeadMessage(bytes.TrimRight(lead.Payload, "\x00"))
	if err != nil {
		return nil, omnierrors.NewFragmentation("failed to parse LeadMessage", err)
	}

	fragments := make(map[uint32][]byte, leadMsg.MsgBlockCount)
	deadline := time.Now().Add(omnitypes.MaxFragmentWaitTime)
	perFragmentTimeout := omnitypes.OmniRetransmitTime * time.Duration(omnitypes.OmniRetransmitCount)

	for len(fragments) < leadMsg.MsgBlockCount {
		if time.Now().After(deadline) {
			return nil, omnierrors.NewFragmentation("exceeded maximum wait time reassembling fragmented response", nil)
		}

		fragCtx, cancel := context.WithTimeout(ctx, perFragmentTimeout)
		msg, err := ch.Recv(fragCtx)
		cancel()
		if err != nil {
			return nil, omnierrors.NewFragmentation("timed out waiting for a block message fragment", err)
		}

		if msg.Type != omnitypes.MessageTypeMSPBlockMessage {
			logging.LogUnexpectedMessage("collecting fragments", msg.ID, msg.Type.String())
			continue
		}

		if err := ch.Send(protocol.New(msg.ID, omnitypes.MessageTypeXMLAck, nil)); err != nil {
			return nil, err
		}

		if len(msg.Payload) < omnitypes.BlockMessageHeaderOffset {
			return nil, omnierrors.NewFragmentation("block message payload shorter than its header offset", nil)
		}
		fragments[msg.ID] = msg.Payload[omnitypes.BlockMessageHeaderOffset:]
		logging.LogFragmentWait(lead.ID, len(fragments), leadMsg.MsgBlockCount)
	}

	ids := make([]uint32, 0, len(fragments))
	for id := range fragments {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var buf bytes.Buffer
	for _, id := range ids {
		buf.Write(fragments[id])
	}
	return buf.Bytes(), nil
}

func decompress(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, omnierrors.NewMalformedMessage("zlib decompression failed", err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, omnierrors.NewMalformedMessage("zlib decompression failed", err)
	}
	return out, nil
}
