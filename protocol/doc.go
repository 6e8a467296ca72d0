// Package protocol frames request/reply messages over a bidirectional
// byte transport. A message is a fixed header (magic, message type,
// procedure, payload length) followed by that many payload bytes, which
// hold a sequence of wire-codec-encoded arguments whose count and types
// are fixed per procedure. The header is always read in two phases, the
// fixed-size header first and then exactly payload_length bytes, rather
// than as one variable-length read.
package protocol
