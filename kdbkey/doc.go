// Package kdbkey implements Key, the composition of a canonical name, a
// value, a metadata table, a reference count, and a needs-sync flag that
// the rest of this module shares by reference.
//
// A Key is not internally synchronised beyond its reference count: all
// other mutation requires the caller to ensure a Key is not used from more
// than one goroutine concurrently, matching the source's single-owner
// discipline. IncRef/DecRef/GetRef use atomic operations since they are
// the one permitted cross-goroutine interaction (a Key-set increments a
// member's refcount from whichever goroutine is mutating the set, while
// another goroutine may be decrementing the same Key's refcount after
// dropping its own alias).
package kdbkey
