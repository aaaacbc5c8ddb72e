// Package errs defines the sentinel errors raised by the codec, autostruct
// and value packages, following the same wrap-a-sentinel-with-context
// convention used throughout this module's ambient packages.
package errs

import "errors"

var (
	// ErrTruncated is returned when a read would advance a cursor past the
	// end of its backing blob.
	ErrTruncated = errors.New("robn: truncated input")

	// ErrIncompatibleBinary is returned when an on-wire Type Tag does not
	// match what a decoder expected and no cross-kind conversion applies.
	ErrIncompatibleBinary = errors.New("robn: incompatible binary type")

	// ErrInvalidType is returned when Encode is called for a Go type with no
	// codec path.
	ErrInvalidType = errors.New("robn: invalid type for encoding")

	// ErrMissingRequiredField is returned when an auto-struct decode finds a
	// declared-required field absent from the incoming map.
	ErrMissingRequiredField = errors.New("robn: missing required field")

	// ErrInvalidConfiguration is returned for a cyclic auto-struct field
	// dependency graph, or a duplicate field registration.
	ErrInvalidConfiguration = errors.New("robn: invalid configuration")
)
