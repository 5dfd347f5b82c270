// Package protocol implements the OmniLogic wire format: a fixed
// 24-byte binary header followed by a NUL-terminated, optionally
// zlib-compressed XML (or empty) payload. Message encodes a header and
// payload to bytes for sending; Decode parses a received datagram back
// into a Message, applying the MSP_TELEMETRY_UPDATE implicit-
// compression override along the way.
package protocol
