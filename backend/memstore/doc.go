// Package memstore is an in-process, KeySet-backed Backend implementation.
// It is not a concrete on-disk storage backend; it is the minimal
// in-repo stand-in needed to exercise the daemon and protocol layers
// without an external collaborator.
package memstore
