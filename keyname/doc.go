// Package keyname parses, validates, and normalises hierarchical key names.
//
// A canonical Name is a non-empty sequence of path segments prefixed by
// exactly one root (system, user, spec, proc, dir, or an empty root for a
// cascading name), optionally carrying an owner qualifier on the user root
// that is stripped from the canonical form used for comparison and ordering.
//
// Parsing runs as a single pass over the input: unescape while scanning for
// segment boundaries, then resolve "." and ".." against the segment stack
// already built, then re-escape on the way out. Invalid input never returns
// an error from SetName. It produces the empty Name instead, the same
// sentinel used for malformed but non-nil input.
package keyname
