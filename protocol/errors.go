package protocol

import "errors"

// ErrBadMagic indicates a frame's header did not start with Magic — the
// stream is desynchronised or not speaking this protocol at all.
var ErrBadMagic = errors.New("protocol: bad magic")

// ErrUnknownProcedure indicates a request named a procedure code this
// package has never heard of (distinct from Implemented() == false,
// which covers a recognised-but-reserved procedure).
var ErrUnknownProcedure = errors.New("protocol: unknown procedure")
