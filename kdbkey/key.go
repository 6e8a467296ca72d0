package kdbkey

import (
	"bytes"
	"strconv"
	"sync/atomic"

	"github.com/kdbkit/kdbkit/keyname"
	"github.com/kdbkit/kdbkit/kvmeta"
	"github.com/kdbkit/kdbkit/kvvalue"
)

// refMax is the saturation ceiling for a Key's reference count — the
// platform's signed-size maximum, per spec. Incrementing at this value is
// a no-op rather than an overflow.
const refMax = int64(^uint64(0) >> 1)

// Key owns a canonical Name, a Value, a Metadata table, a reference
// count, and a needs-sync flag. New Keys are refcount 0; a container
// takes a logical borrow on append by incrementing it.
type Key struct {
	name      keyname.Name
	value     kvvalue.Value
	meta      kvmeta.Table
	refcount  atomic.Int64
	needsSync bool
}

// New parses name (empty or invalid input both yield the empty Name, per
// keyname.Parse) and applies opts, returning a Key with refcount 0.
func New(name string, opts ...Option) *Key {
	var spec Spec
	for _, opt := range opts {
		opt(&spec)
	}

	k := &Key{}
	parsed, _ := keyname.Parse(&name)
	k.name = parsed
	if owner := k.name.Owner(); owner != "" {
		k.meta.SetString(kvmeta.Owner, owner)
	}

	if spec.Binary {
		n := int64(len(spec.Value))
		if spec.Size != nil {
			n = *spec.Size
		}
		k.value.SetBinary(spec.Value, n)
	} else if spec.Value != nil {
		p := spec.Value
		if i := bytes.IndexByte(p, 0); i >= 0 {
			p = p[:i]
		}
		s := string(p)
		k.value.SetString(&s)
	}

	if spec.Owner != "" {
		k.meta.SetString(kvmeta.Owner, spec.Owner)
		k.name = keyname.WithOwner(k.name, spec.Owner)
	}
	if spec.Comment != "" {
		k.meta.SetString(kvmeta.Comment, spec.Comment)
	}
	if spec.UID != nil {
		k.meta.SetString(kvmeta.UID, strconv.FormatInt(*spec.UID, 10))
	}
	if spec.GID != nil {
		k.meta.SetString(kvmeta.GID, strconv.FormatInt(*spec.GID, 10))
	}
	if spec.Mode != nil {
		k.meta.SetString(kvmeta.Mode, strconv.FormatInt(*spec.Mode, 10))
	}
	return k
}

// FromParts assembles a Key directly from already-parsed components,
// bypassing name parsing and option application. It is the seam the wire
// codec uses to reconstruct a Key from its decoded canonical name, value,
// and metadata table without round-tripping through a string name. The
// returned Key has refcount 0, like New.
func FromParts(name keyname.Name, value kvvalue.Value, meta kvmeta.Table) *Key {
	return &Key{name: name, value: value, meta: meta}
}

// Name returns the Key's canonical Name.
func (k *Key) Name() keyname.Name { return k.name }

// Value returns the Key's Value container.
func (k *Key) Value() kvvalue.Value { return k.value }

// Meta returns a pointer to the Key's metadata table.
func (k *Key) Meta() *kvmeta.Table { return &k.meta }

// NeedsSync reports whether a Copy has been applied to this Key since it
// was last considered synced.
func (k *Key) NeedsSync() bool { return k.needsSync }

// IncRef increments the reference count, saturating at refMax.
func (k *Key) IncRef() int64 {
	for {
		cur := k.refcount.Load()
		if cur >= refMax {
			return cur
		}
		if k.refcount.CompareAndSwap(cur, cur+1) {
			return cur + 1
		}
	}
}

// DecRef decrements the reference count, never going below zero.
func (k *Key) DecRef() int64 {
	for {
		cur := k.refcount.Load()
		if cur <= 0 {
			return cur
		}
		if k.refcount.CompareAndSwap(cur, cur-1) {
			return cur - 1
		}
	}
}

// GetRef returns the current reference count.
func (k *Key) GetRef() int64 { return k.refcount.Load() }

// Del is a conditional free: if the refcount is already 0, it reports
// freed=true (the caller must discard k); otherwise it decrements and
// reports the new count with freed=false. Calling Del on a Key held by a
// container therefore never frees it.
func (k *Key) Del() (count int64, freed bool) {
	if k.refcount.Load() == 0 {
		return 0, true
	}
	return k.DecRef(), false
}

// Dup returns a new, independent Key with refcount 0, identical name,
// value, and metadata.
func (k *Key) Dup() *Key {
	out := &Key{
		name:  k.name,
		value: k.value,
		meta:  k.meta.Clone(),
	}
	return out
}

// Copy replaces dst's contents with src's. If src is nil, dst is reset to
// the empty key. Copy fails with ErrBusy if dst is currently shared
// (refcount > 0) — mutating it in place would be observed by every
// container aliasing it. On success, dst.NeedsSync becomes true.
func Copy(dst, src *Key) error {
	if dst == nil {
		return ErrNilKey
	}
	if dst.refcount.Load() > 0 {
		return ErrBusy
	}
	if src == nil {
		dst.name = keyname.Empty
		dst.value = kvvalue.Value{}
		dst.meta = kvmeta.Table{}
		dst.needsSync = true
		return nil
	}
	dst.name = src.name
	dst.value = src.value
	dst.meta = src.meta.Clone()
	dst.needsSync = true
	return nil
}

// Clear resets the Key's name, value, and metadata in place, preserving
// its identity (and refcount) so every alias observes the cleared state.
func (k *Key) Clear() {
	k.name = keyname.Empty
	k.value = kvvalue.Value{}
	k.meta = kvmeta.Table{}
}
