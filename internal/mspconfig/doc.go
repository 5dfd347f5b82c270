// Package mspconfig parses the controller's configuration tree (the
// response to RequestConfiguration) into typed Go structs: System,
// Backyard, one or more BodyOfWater, and every piece of equipment
// nested under them.
//
// Repeatable elements (filters, pumps, relays, sensors, lights) are
// plain slice fields; encoding/xml already accumulates every matching
// child element into a slice regardless of whether the controller sent
// one or many, so no separate list-normalization step is needed the
// way the reference client's xmltodict-based parser required one.
//
// Every equipment struct carries a BowID field that Parse fills in
// after decoding by walking each body of water's nested equipment once
// (propagateBowID), since the wire format itself only states the
// parent-child relationship through XML nesting, not a repeated field.
package mspconfig
