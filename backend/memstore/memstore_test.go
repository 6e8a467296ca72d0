package memstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kdbkit/kdbkit/kdberr"
	"github.com/kdbkit/kdbkit/kdbkey"
)

func TestGetKeyFindsSeededKey(t *testing.T) {
	s := New(kdbkey.New("system/sw/app", kdbkey.WithValue([]byte("hello"))))

	got, err := s.GetKey(context.Background(), kdbkey.New("system/sw/app"))
	require.NoError(t, err)
	assert.Equal(t, "system/sw/app", got.Name().String())
	assert.Equal(t, []byte("hello"), got.Value().Bytes())
}

func TestGetKeyMissReturnsNotFound(t *testing.T) {
	s := New()
	_, err := s.GetKey(context.Background(), kdbkey.New("system/missing"))
	assert.ErrorIs(t, err, kdberr.NotFound)
}

func TestGetChildrenReturnsDirectChildrenOnly(t *testing.T) {
	s := New(
		kdbkey.New("system/sw/app"),
		kdbkey.New("system/sw/app/sub"),
		kdbkey.New("system/sw/other"),
	)

	kids, err := s.GetChildren(context.Background(), kdbkey.New("system/sw"))
	require.NoError(t, err)
	require.Equal(t, 2, kids.Len())
	assert.Equal(t, "system/sw/app", kids.At(0).Name().String())
	assert.Equal(t, "system/sw/other", kids.At(1).Name().String())
}

func TestSetReplacesExistingEntry(t *testing.T) {
	s := New(kdbkey.New("system/sw/app", kdbkey.WithValue([]byte("old"))))
	s.Set(kdbkey.New("system/sw/app", kdbkey.WithValue([]byte("new"))))

	got, err := s.GetKey(context.Background(), kdbkey.New("system/sw/app"))
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got.Value().Bytes())
}
