// Package wire implements a byte-oriented codec: fixed-width
// little-endian integers, length-prefixed strings and binary blobs, and
// the composite Key and KeySet encodings built from them. The format is
// deliberately simple enough that a daemon and library written in any
// language could interoperate with it.
package wire
