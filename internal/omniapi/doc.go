// Package omniapi is the request/response orchestrator: Client opens a
// short-lived reliable channel per call, builds the exact <Request>
// XML body the controller expects, sends it, and for read operations
// waits for and reassembles the response.
//
// Every write operation validates its arguments synchronously, before
// any socket is opened, via internal/validate — a bad temperature or
// out-of-range id never reaches the network.
package omniapi
