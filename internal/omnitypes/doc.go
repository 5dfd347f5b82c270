// Package omnitypes holds every enum, opcode, and timing/size constant
// used to speak the OmniLogic wire protocol: message type opcodes and
// client types, equipment OmniType discriminators, per-equipment state
// and "why on" enums, the chlorinator status/alert/error bitmasks, the
// five ColorLogic show tables (the 2.5 and 4.0 fixtures share one), and
// the protocol's fixed timing and framing constants.
//
// Enums here are named integer or string types, so a value this package
// does not recognize is preserved verbatim rather than rejected, since
// controller firmware revisions are free to add values this client has
// not seen yet. MessageType and ClientType also offer Known() to test
// whether a value is one this package names.
package omnitypes
