// Package telemetry parses the controller's live status snapshot (the
// response to RequestTelemetryData) into typed Go structs, and exposes
// the chlorinator bitmask decoding: Status/Alerts/Errors/Active
// properties computed from the raw status/chlrAlert/chlrError wire
// integers.
//
// Backyard.ConfigChecksum and Backyard.MSPVersion are only populated by
// newer controller firmware; on older firmware the elements are simply
// absent from the document and these fields decode to their zero
// value, matching the reference client's optional-with-default
// behavior without needing a separate presence flag.
package telemetry
