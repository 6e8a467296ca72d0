// Package daemon implements the per-connection request/reply loop:
// resolve the remote credentials, then repeatedly read a framed
// request, dispatch it to a Backend, and send the reply, until a CLOSE
// request is processed.
package daemon

import (
	"context"

	"github.com/kdbkit/kdbkit/kdbkey"
	"github.com/kdbkit/kdbkit/keyset"
)

// Backend is the external collaborator the daemon dispatches requests
// to: a storage backend implements open/close/getKey/getChildren over
// keys. This package carries no concrete on-disk implementation, only
// this seam and the in-memory reference implementation in
// backend/memstore used to exercise it.
type Backend interface {
	Open(ctx context.Context) error
	Close(ctx context.Context) error
	GetKey(ctx context.Context, keyIn *kdbkey.Key) (*kdbkey.Key, error)
	GetChildren(ctx context.Context, parent *kdbkey.Key) (*keyset.KeySet, error)
}
