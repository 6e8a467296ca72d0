// Package kdberr defines the error taxonomy shared across this module:
// a small set of sentinel kinds that library operations wrap with
// context via github.com/pkg/errors, discriminated at call sites with
// errors.Is, and mapped to protocol status codes by the daemon.
package kdberr

import "errors"

var (
	// InvalidArgument covers a nil argument where one is not permitted, a
	// destination buffer too small for the requested copy, or a size
	// outside the accepted range.
	InvalidArgument = errors.New("invalid argument")

	// TypeMismatch covers a string operation attempted on a binary value,
	// or vice versa.
	TypeMismatch = errors.New("type mismatch")

	// Busy covers a copy attempted into a key currently shared by at least
	// one container (refcount > 0).
	Busy = errors.New("resource busy")

	// NotFound covers a key-set lookup miss.
	NotFound = errors.New("not found")

	// IoError covers a transport read or write failure.
	IoError = errors.New("i/o error")

	// ProtocolError covers a malformed frame, an unrecognised procedure,
	// or a truncated payload.
	ProtocolError = errors.New("protocol error")

	// BackendError covers an opaque failure status returned by a storage
	// backend.
	BackendError = errors.New("backend error")

	// NotImplemented covers a reserved procedure a backend does not (yet)
	// implement.
	NotImplemented = errors.New("not implemented")
)
