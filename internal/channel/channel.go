package channel

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/cryptk/omnilogic-local/internal/logging"
	"github.com/cryptk/omnilogic-local/internal/omnierrors"
	"github.com/cryptk/omnilogic-local/internal/omnitypes"
	"github.com/cryptk/omnilogic-local/internal/protocol"
)

// Channel is a single reliable datagram conversation with one
// controller. It is meant to be short-lived: a caller dials one per
// request/response exchange and closes it when done, matching the
// per-call transient-endpoint pattern the reference client uses.
type Channel struct {
	conn       *net.UDPConn
	remoteAddr string
	data       *messageQueue
	errs       chan error
}

// Dial opens a UDP socket to host:port and starts the background reader.
func Dial(host string, port int) (*Channel, error) {
	raddr, err := net.ResolveUDPAddr("udp", fmt.Sprintf("%s:%d", host, port))
	if err != nil {
		return nil, omnierrors.ClassifyConnError(err)
	}
	conn, err := net.DialUDP("udp", nil, raddr)
	if err != nil {
		return nil, omnierrors.ClassifyConnError(err)
	}

	ch := &Channel{
		conn:       conn,
		remoteAddr: raddr.String(),
		data:       newMessageQueue(omnitypes.MaxQueueSize),
		errs:       make(chan error, 1),
	}
	go ch.readLoop()
	return ch, nil
}

// Close releases the underlying socket.
func (ch *Channel) Close() error {
	return ch.conn.Close()
}

func (ch *Channel) readLoop() {
	buf := make([]byte, omnitypes.MaxMessageSize)
	for {
		n, err := ch.conn.Read(buf)
		if err != nil {
			select {
			case ch.errs <- err:
			default:
			}
			return
		}

		datagram := make([]byte, n)
		copy(datagram, buf[:n])

		msg, err := protocol.Decode(datagram)
		if err != nil {
			select {
			case ch.errs <- err:
			default:
			}
			continue
		}

		if dropped := ch.data.PushBack(msg); dropped {
			logging.LogDroppedDatagram(msg.ID, msg.Type.String())
		}
	}
}

func (ch *Channel) pendingReadError() error {
	select {
	case err := <-ch.errs:
		return omnierrors.ClassifyConnError(err)
	default:
		return nil
	}
}

// Send writes msg to the wire without waiting for an ACK. Used for
// ACK/XML_ACK responses, which are never themselves acknowledged.
func (ch *Channel) Send(msg *protocol.Message) error {
	if _, err := ch.conn.Write(msg.Encode()); err != nil {
		return omnierrors.ClassifyConnError(err)
	}
	return nil
}

// SendReliable writes msg to the wire and waits for its ACK, making up
// to OmniRetransmitCount attempts in total (the first send included),
// each waiting AckWaitTimeout. It returns a Timeout error once every
// attempt has been exhausted.
//
// A non-matching MSP_LEADMESSAGE or MSP_TELEMETRY_UPDATE message seen
// while waiting is pushed back to the front of the inbound queue and
// treated as satisfying the wait, since the controller has clearly
// already begun responding and the caller's subsequent Recv will pick
// that message up.
func (ch *Channel) SendReliable(ctx context.Context, msg *protocol.Message) error {
	for attempt := 1; attempt <= omnitypes.OmniRetransmitCount; attempt++ {
		logging.LogSend(ch.remoteAddr, msg.ID, msg.Type.String(), attempt)
		if _, err := ch.conn.Write(msg.Encode()); err != nil {
			return omnierrors.ClassifyConnError(err)
		}

		waitCtx, cancel := context.WithTimeout(ctx, omnitypes.AckWaitTimeout)
		err := ch.waitForAck(waitCtx, msg.ID)
		cancel()

		if err == nil {
			return nil
		}
		if !errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		if attempt < omnitypes.OmniRetransmitCount {
			logging.LogRetransmit(ch.remoteAddr, msg.ID, attempt, omnitypes.OmniRetransmitCount)
		}
	}

	logging.LogAckTimeout(ch.remoteAddr, msg.ID, omnitypes.OmniRetransmitCount)
	return omnierrors.NewTimeout(
		fmt.Sprintf("no ACK for message %d after %d attempts", msg.ID, omnitypes.OmniRetransmitCount), nil)
}

func (ch *Channel) waitForAck(ctx context.Context, ackID uint32) error {
	for {
		if err := ch.pendingReadError(); err != nil {
			return err
		}

		msg, err := ch.data.PopFront(ctx)
		if err != nil {
			return err
		}

		if msg.ID == ackID {
			return nil
		}

		if msg.Type == omnitypes.MessageTypeMSPLeadMessage || msg.Type == omnitypes.MessageTypeMSPTelemetryUpdate {
			ch.data.PushFront(msg)
			return nil
		}

		logging.LogUnexpectedMessage("waiting for ACK", msg.ID, msg.Type.String())
	}
}

// Recv returns the next message in the inbound queue, blocking until
// one is available or ctx is done.
func (ch *Channel) Recv(ctx context.Context) (*protocol.Message, error) {
	if err := ch.pendingReadError(); err != nil {
		return nil, err
	}
	msg, err := ch.data.PopFront(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, omnierrors.NewTimeout("timed out waiting for response", err)
		}
		return nil, err
	}
	return msg, nil
}
