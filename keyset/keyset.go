package keyset

import (
	"sort"

	"github.com/kdbkit/kdbkit/kdbkey"
	"github.com/kdbkit/kdbkit/keyname"
)

// KeySet is an ordered container of Keys, sorted by canonical name. The
// zero KeySet is empty and ready to use.
type KeySet struct {
	keys   []*kdbkey.Key
	cursor int
}

// New allocates a KeySet with capacity for at least capHint entries
// (capHint <= 0 is treated as no hint) and appends each of keys in turn,
// exactly as repeated AppendKey calls would.
func New(capHint int, keys ...*kdbkey.Key) *KeySet {
	ks := &KeySet{}
	if capHint > 0 {
		ks.keys = make([]*kdbkey.Key, 0, capHint)
	}
	for _, k := range keys {
		ks.AppendKey(k)
	}
	return ks
}

// compareNames orders two Names in strict lexicographic order by
// canonical name, segment by segment rather than byte by byte, so that a
// segment containing an escaped separator still compares as one unit.
func compareNames(a, b keyname.Name) int {
	if a.Root() != b.Root() {
		if a.Root() < b.Root() {
			return -1
		}
		return 1
	}
	as, bs := a.Segments(), b.Segments()
	for i := 0; i < len(as) && i < len(bs); i++ {
		if as[i] != bs[i] {
			if as[i] < bs[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(as) < len(bs):
		return -1
	case len(as) > len(bs):
		return 1
	default:
		return 0
	}
}

// find returns the index of the first entry whose name is >= name, and
// whether that entry's name equals name exactly.
func (ks *KeySet) find(name keyname.Name) (int, bool) {
	idx := sort.Search(len(ks.keys), func(i int) bool {
		return compareNames(ks.keys[i].Name(), name) >= 0
	})
	return idx, idx < len(ks.keys) && compareNames(ks.keys[idx].Name(), name) == 0
}

// AppendKey inserts k in canonical-name order, incrementing its
// refcount. If a key with the same canonical name is already present,
// the existing entry is replaced at the same ordered position: its
// refcount is decremented (freeing it if that reaches zero, a no-op
// observation here since the container holds no other reference to
// release) and k's is incremented. Returns the new size, or -1 if k is
// nil.
func (ks *KeySet) AppendKey(k *kdbkey.Key) int {
	if k == nil {
		return -1
	}
	idx, exact := ks.find(k.Name())
	if exact {
		ks.keys[idx].DecRef()
		ks.keys[idx] = k
		k.IncRef()
		return len(ks.keys)
	}
	ks.keys = append(ks.keys, nil)
	copy(ks.keys[idx+1:], ks.keys[idx:])
	ks.keys[idx] = k
	k.IncRef()
	return len(ks.keys)
}

// Len returns the number of keys in the set.
func (ks *KeySet) Len() int { return len(ks.keys) }

// Rewind resets the cursor so the next Next call returns the first key.
func (ks *KeySet) Rewind() { ks.cursor = 0 }

// Next returns the key at the cursor and advances the cursor past it, or
// returns nil once the cursor has passed the last entry.
func (ks *KeySet) Next() *kdbkey.Key {
	if ks.cursor >= len(ks.keys) {
		return nil
	}
	k := ks.keys[ks.cursor]
	ks.cursor++
	return k
}

// LookupOptions selects how Lookup resolves a name.
type LookupOptions struct {
	// Cascade, when true, additionally walks the name's ancestors (closest
	// first) when no exact match exists, returning the nearest ancestor
	// present in the set.
	Cascade bool
}

// Lookup finds the key whose canonical name matches name exactly, or, with
// Cascade set, the nearest stored ancestor of name. Returns nil if no
// match exists or name fails to parse.
func (ks *KeySet) Lookup(name string, opts LookupOptions) *kdbkey.Key {
	n, err := keyname.Parse(&name)
	if err != nil {
		return nil
	}
	if idx, exact := ks.find(n); exact {
		return ks.keys[idx]
	}
	if !opts.Cascade {
		return nil
	}
	return ks.lookupCascading(n)
}

// lookupCascading walks from the deepest entry in the set backward,
// returning the first whose name is a segment-boundary prefix of the
// sought name (i.e. is name or an ancestor of it). The set is sorted by
// name, so ancestors of name sort before it but are not necessarily
// adjacent; a linear scan from the nearest candidate downward finds the
// closest one.
func (ks *KeySet) lookupCascading(name keyname.Name) *kdbkey.Key {
	idx, _ := ks.find(name)
	for i := idx - 1; i >= 0; i-- {
		if keyname.IsBelowOrSame(ks.keys[i].Name(), name) {
			return ks.keys[i]
		}
	}
	return nil
}

// Del decrements the refcount of every contained key, then empties the
// set. A KeySet never owns storage beyond its slice of references, so
// freeing a key that reaches zero is the caller's concern.
func (ks *KeySet) Del() {
	for _, k := range ks.keys {
		k.DecRef()
	}
	ks.keys = nil
	ks.cursor = 0
}

// At returns the key at the given ordinal position without moving the
// cursor, or nil if index is out of range.
func (ks *KeySet) At(index int) *kdbkey.Key {
	if index < 0 || index >= len(ks.keys) {
		return nil
	}
	return ks.keys[index]
}
