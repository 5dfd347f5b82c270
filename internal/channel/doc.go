// Package channel implements the reliable datagram layer on top of a
// plain UDP socket: ACK-wait-and-retransmit for every non-ACK send, a
// bounded inbound queue that drops the newest datagram on overflow
// rather than blocking the reader, and the dropped-ACK/LeadMessage
// requeue-to-front policy a caller waiting on a specific ACK needs in
// order to not swallow a response that is already in flight.
package channel
