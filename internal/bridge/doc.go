// Package bridge runs a small local WebSocket server that polls an
// OmniLogic controller's telemetry on an interval and broadcasts each
// decoded snapshot, as JSON, to every connected client. It is the
// outbound analogue of the teacher's device-facing WebSocket server:
// where that server accepted frames *from* a device, this one fans a
// decoded domain object *out* to browser/dashboard clients.
package bridge
