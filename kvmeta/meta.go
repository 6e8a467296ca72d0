// Package kvmeta holds the metadata table attached to a key: a mapping
// from a short metadata name to an owned value container. Distinguished
// entries used by the rest of this module are "owner" (the user-root
// qualifier extracted during name parsing) and "comment"/"uid"/"gid"/
// "mode" (set via construction options), but the table itself has no
// schema — any name is legal, and a metadata value may be text or binary
// just like a key's own value, per the wire codec's {string, string|binary}
// pair encoding.
package kvmeta

import (
	"sort"

	"github.com/kdbkit/kdbkit/kvvalue"
)

// Table is a metadata-name to value mapping. The zero Table is empty and
// ready to use.
type Table struct {
	entries map[string]kvvalue.Value
}

// Get returns the value stored under name and whether it was present.
func (t *Table) Get(name string) (kvvalue.Value, bool) {
	if t == nil || t.entries == nil {
		return kvvalue.Value{}, false
	}
	v, ok := t.entries[name]
	return v, ok
}

// GetString is a convenience for the common case of a text metadata
// value; ok is false if the name is absent or the value is binary.
func (t *Table) GetString(name string) (string, bool) {
	v, ok := t.Get(name)
	if !ok || v.IsBinary() {
		return "", false
	}
	return string(v.Bytes()), true
}

// Set stores value under name, replacing any existing entry.
func (t *Table) Set(name string, value kvvalue.Value) {
	if t.entries == nil {
		t.entries = make(map[string]kvvalue.Value)
	}
	t.entries[name] = value
}

// SetString is a convenience for storing a text metadata value.
func (t *Table) SetString(name, value string) {
	var v kvvalue.Value
	v.SetString(&value)
	t.Set(name, v)
}

// Delete removes name from the table, if present.
func (t *Table) Delete(name string) {
	if t.entries == nil {
		return
	}
	delete(t.entries, name)
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Clear empties the table in place.
func (t *Table) Clear() {
	t.entries = nil
}

// Names returns the metadata names in sorted order, for deterministic
// iteration (the wire codec relies on this for round-trippable encoding).
func (t *Table) Names() []string {
	if t == nil || len(t.entries) == 0 {
		return nil
	}
	names := make([]string, 0, len(t.entries))
	for k := range t.entries {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep, independent copy of t.
func (t *Table) Clone() Table {
	if t == nil || len(t.entries) == 0 {
		return Table{}
	}
	out := Table{entries: make(map[string]kvvalue.Value, len(t.entries))}
	for k, v := range t.entries {
		out.entries[k] = v
	}
	return out
}

// Equal reports whether a and b hold the same name/value pairs.
func Equal(a, b Table) bool {
	if a.Len() != b.Len() {
		return false
	}
	for k, v := range a.entries {
		bv, ok := b.entries[k]
		if !ok || !kvvalue.Equal(v, bv) {
			return false
		}
	}
	return true
}

// Well-known metadata names set by key construction options and name
// parsing.
const (
	Owner   = "owner"
	Comment = "comment"
	UID     = "uid"
	GID     = "gid"
	Mode    = "mode"
)
