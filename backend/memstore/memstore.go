package memstore

import (
	"context"
	"sync"

	"github.com/kdbkit/kdbkit/kdbkey"
	"github.com/kdbkit/kdbkit/kdberr"
	"github.com/kdbkit/kdbkit/keyname"
	"github.com/kdbkit/kdbkit/keyset"
)

// Store is a KeySet-backed Backend: every key lives in one KeySet guarded
// by a single RWMutex, the same single-lock model cloudflared's
// metrics.ReadyServer and consul's StoreKeyPrefix use for a similarly
// small amount of shared state.
type Store struct {
	mu   sync.RWMutex
	keys *keyset.KeySet
}

// New returns an empty Store, optionally pre-seeded with keys.
func New(keys ...*kdbkey.Key) *Store {
	return &Store{keys: keyset.New(len(keys), keys...)}
}

// Open is a no-op: memstore holds no external resource to acquire.
func (s *Store) Open(ctx context.Context) error { return nil }

// Close is a no-op: memstore holds no external resource to release.
func (s *Store) Close(ctx context.Context) error { return nil }

// Set stores k under its own canonical name, replacing any existing
// entry at that name. Intended for seeding a Store before serving, or
// from tests.
func (s *Store) Set(k *kdbkey.Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys.AppendKey(k)
}

// GetKey returns a copy of the stored key whose canonical name matches
// keyIn's, or kdberr.NotFound if no such key is stored.
func (s *Store) GetKey(ctx context.Context, keyIn *kdbkey.Key) (*kdbkey.Key, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	found := s.keys.Lookup(keyIn.Name().String(), keyset.LookupOptions{})
	if found == nil {
		return nil, kdberr.Wrapf(kdberr.NotFound, "no such key: %s", keyIn.Name().String())
	}
	return found.Dup(), nil
}

// GetChildren returns copies of every stored key directly below
// parent's canonical name.
func (s *Store) GetChildren(ctx context.Context, parent *kdbkey.Key) (*keyset.KeySet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := keyset.New(0)
	for i := 0; i < s.keys.Len(); i++ {
		k := s.keys.At(i)
		if keyname.IsDirectBelow(parent.Name(), k.Name()) {
			out.AppendKey(k.Dup())
		}
	}
	return out, nil
}
