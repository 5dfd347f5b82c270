// Package reassembly implements the receive side of an OmniLogic
// exchange: skipping residual ACKs, acknowledging the first real
// message, collecting MSP_BLOCKMESSAGE fragments named by a
// MSP_LEADMESSAGE header back into a single buffer in ascending message
// id order, and zlib-decompressing the result when the header's
// compressed bit (or the MSP_TELEMETRY_UPDATE override) says to.
package reassembly
