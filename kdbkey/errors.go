package kdbkey

import "errors"

var (
	// ErrBusy indicates Copy was attempted into a Key whose reference
	// count is greater than zero — it is currently shared by at least one
	// container, so mutating it in place would violate container
	// invariants silently observed by other aliases.
	ErrBusy = errors.New("kdbkey: key is shared (refcount > 0)")

	// ErrNilKey indicates a required Key argument was nil.
	ErrNilKey = errors.New("kdbkey: nil key")
)
