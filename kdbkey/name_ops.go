package kdbkey

import (
	"github.com/kdbkit/kdbkit/keyname"
	"github.com/kdbkit/kdbkit/kvmeta"
)

// SetName parses input and replaces k's Name, setting the "owner"
// metadata if the input carried a "user:owner" qualifier. Returns the new
// canonical size, or an error only when input is nil — any other invalid
// input yields the empty Name with no error, per keyname.Parse.
func (k *Key) SetName(input *string) (int, error) {
	n, err := keyname.Parse(input)
	if err != nil {
		return -1, err
	}
	k.name = n
	if n.Owner() != "" {
		k.meta.SetString(kvmeta.Owner, n.Owner())
	} else {
		k.meta.Delete(kvmeta.Owner)
	}
	return n.Size(), nil
}

// GetName copies the canonical name into buf.
func (k *Key) GetName(buf []byte) (int, error) {
	return keyname.CopyInto(k.name, buf)
}

// GetNameSize returns the canonical name's size, including terminator.
func (k *Key) GetNameSize() int { return k.name.Size() }

// GetFullName copies the owner-qualified name into buf.
func (k *Key) GetFullName(buf []byte) (int, error) {
	return keyname.CopyFullInto(k.name, buf)
}

// GetFullNameSize returns the owner-qualified name's size.
func (k *Key) GetFullNameSize() int { return k.name.FullSize() }

// GetBaseName returns the last segment of k's Name.
func (k *Key) GetBaseName() string { return k.name.BaseName() }

// SetBaseName replaces the last segment. Fails with
// keyname.ErrCannotRemoveRoot if k's Name has no segments to replace.
func (k *Key) SetBaseName(base string) (int, error) {
	n, err := k.name.SetBaseName(base)
	if err != nil {
		return -1, err
	}
	k.name = n
	return n.Size(), nil
}

// AddBaseName appends a new segment.
func (k *Key) AddBaseName(seg string) int {
	k.name = k.name.AddBaseName(seg)
	return k.name.Size()
}

// IsBelow reports whether b's Name has a's Name as a strict prefix on
// segment boundaries.
func IsBelow(a, b *Key) (bool, error) {
	if a == nil || b == nil {
		return false, ErrNilKey
	}
	return keyname.IsBelow(a.name, b.name), nil
}

// IsDirectBelow additionally requires b to have exactly one more segment
// than a.
func IsDirectBelow(a, b *Key) (bool, error) {
	if a == nil || b == nil {
		return false, ErrNilKey
	}
	return keyname.IsDirectBelow(a.name, b.name), nil
}

// IsBelowOrSame is the reflexive closure of IsBelow.
func IsBelowOrSame(a, b *Key) (bool, error) {
	if a == nil || b == nil {
		return false, ErrNilKey
	}
	return keyname.IsBelowOrSame(a.name, b.name), nil
}

// IsInactive reports whether k's Name has any inactive (dot-prefixed)
// segment.
func (k *Key) IsInactive() bool { return k.name.IsInactive() }
