package keyname

import "strings"

// Name is the canonical, parsed form of a hierarchical key name: a root
// plus an ordered list of unescaped path segments, with an optional owner
// qualifier carried alongside (never part of the canonical comparison
// form). The zero Name is the empty Name: cascading root, no segments, no
// owner. SetName produces it for invalid or empty input.
type Name struct {
	root     Root
	segments []string
	owner    string
}

// Empty is the sentinel empty Name: cascading root, zero segments.
var Empty = Name{}

// Root returns the Name's root.
func (n Name) Root() Root { return n.root }

// Owner returns the owner qualifier, or "" if none was set.
func (n Name) Owner() string { return n.owner }

// Segments returns the Name's path segments, not including the root. The
// returned slice must not be mutated by the caller.
func (n Name) Segments() []string { return n.segments }

// IsEmpty reports whether n is the sentinel empty Name.
func (n Name) IsEmpty() bool {
	return n.root == RootCascading && len(n.segments) == 0
}

// String returns the canonical form, without any owner qualifier: the
// root token (possibly empty, for a cascading name) followed by each
// segment escaped and separated by a single '/'.
func (n Name) String() string {
	var b strings.Builder
	b.WriteString(n.root.String())
	for _, seg := range n.segments {
		b.WriteByte('/')
		b.WriteString(escapeSegment(seg))
	}
	return b.String()
}

// FullString returns the canonical form with the owner qualifier spliced
// back in after the root token (only meaningful for the user root).
func (n Name) FullString() string {
	if n.owner == "" {
		return n.String()
	}
	var b strings.Builder
	b.WriteString(n.root.String())
	b.WriteByte(':')
	b.WriteString(n.owner)
	for _, seg := range n.segments {
		b.WriteByte('/')
		b.WriteString(escapeSegment(seg))
	}
	return b.String()
}

// Size returns the canonical form's length in bytes, including the
// terminating zero the C heritage of this API accounts for.
func (n Name) Size() int { return len(n.String()) + 1 }

// FullSize returns FullString's length including the terminator.
func (n Name) FullSize() int { return len(n.FullString()) + 1 }

// BaseName returns the last segment, or "" if the Name has none (it is
// exactly its root).
func (n Name) BaseName() string {
	if len(n.segments) == 0 {
		return ""
	}
	return n.segments[len(n.segments)-1]
}

// SetBaseName replaces the last segment with base. A Name with no segments
// has nothing to replace, so it is rejected with ErrCannotRemoveRoot rather
// than silently appending.
func (n Name) SetBaseName(base string) (Name, error) {
	if len(n.segments) == 0 {
		return Name{}, ErrCannotRemoveRoot
	}
	out := n
	out.segments = append(append([]string{}, n.segments[:len(n.segments)-1]...), base)
	return out, nil
}

// WithOwner returns a copy of n with its owner qualifier set. An empty
// owner clears the qualifier. The owner is carried alongside the
// canonical form and never participates in String, comparisons, or
// segment navigation; only FullString splices it back in.
func WithOwner(n Name, owner string) Name {
	out := n
	out.owner = owner
	return out
}

// AddBaseName appends a new segment. seg is taken as already-decoded
// segment content; any "/" it contains is escaped automatically on output,
// not treated as a separator.
func (n Name) AddBaseName(seg string) Name {
	out := n
	out.segments = append(append([]string{}, n.segments...), seg)
	return out
}

// IsInactive reports whether any segment begins with '.'. Unescaped "."
// and ".." are consumed as navigation during parsing and never reach the
// stored form, so a leading '.' here always marks a hidden name (".foo")
// or an escaped literal "." or "..". Both count as inactive.
func (n Name) IsInactive() bool {
	for _, seg := range n.segments {
		if len(seg) > 0 && seg[0] == '.' {
			return true
		}
	}
	return false
}

// segmentBoundaryPrefix reports whether b's segments start with all of
// a's segments, in order. It is a prefix on segment boundaries, not a
// string prefix, so "valid" is never a prefix of "valide".
func segmentBoundaryPrefix(a, b []string) bool {
	if len(a) > len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// IsBelow reports whether b's canonical name has a's as a strict prefix on
// segment boundaries (same root, b has strictly more segments, and every
// one of a's segments matches the corresponding prefix of b's).
func IsBelow(a, b Name) bool {
	if a.root != b.root {
		return false
	}
	if len(b.segments) <= len(a.segments) {
		return false
	}
	return segmentBoundaryPrefix(a.segments, b.segments)
}

// IsDirectBelow additionally requires b to have exactly one more segment
// than a.
func IsDirectBelow(a, b Name) bool {
	return IsBelow(a, b) && len(b.segments) == len(a.segments)+1
}

// IsBelowOrSame is the reflexive closure of IsBelow.
func IsBelowOrSame(a, b Name) bool {
	if a.root == b.root && len(a.segments) == len(b.segments) && segmentBoundaryPrefix(a.segments, b.segments) {
		return true
	}
	return IsBelow(a, b)
}
