package keyset

import "errors"

// ErrNilKey indicates a required Key argument was nil.
var ErrNilKey = errors.New("keyset: nil key")
