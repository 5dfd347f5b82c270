package omniapi

import (
	"context"
	"math/rand"
	"time"

	"github.com/cryptk/omnilogic-local/internal/channel"
	"github.com/cryptk/omnilogic-local/internal/filterdiag"
	"github.com/cryptk/omnilogic-local/internal/mspconfig"
	"github.com/cryptk/omnilogic-local/internal/omnitypes"
	"github.com/cryptk/omnilogic-local/internal/protocol"
	"github.com/cryptk/omnilogic-local/internal/reassembly"
	"github.com/cryptk/omnilogic-local/internal/telemetry"
	"github.com/cryptk/omnilogic-local/internal/validate"
)

// Client talks to a single OmniLogic/OmniHub controller over UDP. It
// holds no persistent socket: every call dials a fresh Channel, sends
// its request, waits for and reassembles the response if one is
// expected, and closes the channel before returning.
type Client struct {
	host            string
	port            int
	responseTimeout time.Duration
}

// NewClient validates host, port and responseTimeout and returns a
// ready-to-use Client. No network I/O occurs until the first call.
func NewClient(host string, port int, responseTimeoutSeconds float64) (*Client, error) {
	if err := validate.Host(host); err != nil {
		return nil, err
	}
	if err := validate.Port(port); err != nil {
		return nil, err
	}
	if err := validate.ResponseTimeoutPositive(responseTimeoutSeconds); err != nil {
		return nil, err
	}

	return &Client{
		host:            host,
		port:            port,
		responseTimeout: time.Duration(responseTimeoutSeconds * float64(time.Second)),
	}, nil
}

func (c *Client) nextMessageID() uint32 {
	return rand.Uint32()
}

// call opens a channel, sends body under msgType, and when
// wantResponse is set, waits for and returns the reassembled response
// document. The channel is always closed before call returns.
func (c *Client) call(ctx context.Context, msgType omnitypes.MessageType, body string, wantResponse bool) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.responseTimeout)
	defer cancel()

	ch, err := channel.Dial(c.host, c.port)
	if err != nil {
		return "", err
	}
	defer ch.Close()

	var payload []byte
	if body != "" {
		payload = []byte(body)
	}
	msg := protocol.New(c.nextMessageID(), msgType, payload)
	if err := ch.SendReliable(ctx, msg); err != nil {
		return "", err
	}
	if !wantResponse {
		return "", nil
	}
	return reassembly.Receive(ctx, ch)
}

// GetConfig fetches and parses the controller's full equipment
// configuration (the MSP config document).
func (c *Client) GetConfig(ctx context.Context) (*mspconfig.Config, error) {
	doc, err := c.call(ctx, omnitypes.MessageTypeRequestConfiguration, "", true)
	if err != nil {
		return nil, err
	}
	return mspconfig.Parse(doc)
}

// GetTelemetry fetches and parses a snapshot of live equipment state.
func (c *Client) GetTelemetry(ctx context.Context) (*telemetry.Snapshot, error) {
	doc, err := c.call(ctx, omnitypes.MessageTypeGetTelemetry, "", true)
	if err != nil {
		return nil, err
	}
	return telemetry.Parse(doc)
}

// GetConfigRaw fetches the controller's MSP config document without
// parsing it, for debug tooling that wants the wire-level XML.
func (c *Client) GetConfigRaw(ctx context.Context) (string, error) {
	return c.call(ctx, omnitypes.MessageTypeRequestConfiguration, "", true)
}

// GetTelemetryRaw fetches a telemetry snapshot document without parsing
// it, for debug tooling that wants the wire-level XML.
func (c *Client) GetTelemetryRaw(ctx context.Context) (string, error) {
	return c.call(ctx, omnitypes.MessageTypeGetTelemetry, "", true)
}

// GetFilterDiagnostics fetches the named filter/pump's diagnostic
// counters (firmware revision, instantaneous power draw, and so on).
func (c *Client) GetFilterDiagnostics(ctx context.Context, poolID, equipmentID int) (*filterdiag.Diagnostics, error) {
	if err := validate.ID(poolID, "poolId"); err != nil {
		return nil, err
	}
	if err := validate.ID(equipmentID, "equipmentId"); err != nil {
		return nil, err
	}
	body := buildRequest("GetUIFilterDiagnosticInfo",
		intParam("poolId", poolID),
		intParam("equipmentId", equipmentID))
	doc, err := c.call(ctx, omnitypes.MessageTypeGetFilterDiagnosticInfo, body, true)
	if err != nil {
		return nil, err
	}
	return filterdiag.Parse(doc)
}

// GetAlarmList fetches the controller's current alarm log as a raw XML
// document; alarm shape varies too widely across firmware revisions to
// usefully bind into a fixed struct.
func (c *Client) GetAlarmList(ctx context.Context) (string, error) {
	body := buildRequest("RequestAlarmList")
	return c.call(ctx, omnitypes.MessageTypeGetAlarmList, body, true)
}

// GetLogConfig fetches the controller's logging configuration as a raw
// XML document.
func (c *Client) GetLogConfig(ctx context.Context) (string, error) {
	body := buildRequest("RequestLogConfig")
	return c.call(ctx, omnitypes.MessageTypeRequestLogConfig, body, true)
}

// RestoreIdleState tells the controller to abandon any in-progress
// equipment transition and return to its scheduled idle state.
func (c *Client) RestoreIdleState(ctx context.Context) error {
	body := buildRequest("RestoreIdleState")
	_, err := c.call(ctx, omnitypes.MessageTypeRestoreIdleState, body, false)
	return err
}
