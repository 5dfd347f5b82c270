// Package validate holds the argument-checking helpers shared by the
// client constructor and every write operation: temperature and speed
// range checks, non-negative system/equipment ids, and connection
// parameters (host, port, timeout). Every failure is returned as an
// *omnierrors.Error of kind Validation, raised synchronously before any
// network I/O is attempted.
package validate
