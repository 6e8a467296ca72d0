package keyname

import "errors"

var (
	// ErrNilInput indicates the caller passed a nil input pointer, as opposed
	// to a non-nil but empty or invalid string (which yields the empty Name).
	ErrNilInput = errors.New("keyname: nil input")

	// ErrBufferTooSmall indicates the destination buffer capacity is less
	// than the size required to hold the requested form.
	ErrBufferTooSmall = errors.New("keyname: buffer too small")

	// ErrNilBuffer indicates the destination buffer pointer is nil or has
	// zero capacity.
	ErrNilBuffer = errors.New("keyname: nil or zero-capacity buffer")

	// ErrCannotRemoveRoot indicates setBaseName was asked to replace the
	// last segment of a Name that has no segments beyond the root.
	ErrCannotRemoveRoot = errors.New("keyname: cannot remove root")

	// ErrNilName indicates an operation that requires a parsed Name was
	// given one that has never been set.
	ErrNilName = errors.New("keyname: key has no name")
)
