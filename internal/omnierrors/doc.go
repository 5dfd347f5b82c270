// Package omnierrors defines the closed set of error kinds raised by the
// OmniLogic client: Validation, Timeout, MalformedMessage, Fragmentation,
// Connection, Parsing, and Command. Every public-facing failure in this
// module surfaces as an *Error carrying one of these kinds so callers can
// branch on Kind() or the Is* predicates instead of string-matching.
package omnierrors
