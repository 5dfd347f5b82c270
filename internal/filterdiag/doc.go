// Package filterdiag parses the small GetUIFilterDiagnosticInfo
// response: a flat, named list of parameters rather than a typed
// element tree, looked up by name rather than bound field-by-field.
package filterdiag
