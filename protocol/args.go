package protocol

import (
	"bytes"

	"github.com/kdbkit/kdbkit/kdbkey"
	"github.com/kdbkit/kdbkit/keyset"
	"github.com/kdbkit/kdbkit/wire"
)

// EncodeKeyArg encodes the single-Key argument list shared by GETKEY,
// STATKEY, SETKEY, REMOVEKEY, GETCHILD, and MONITORKEY.
func EncodeKeyArg(k *kdbkey.Key) []byte {
	var w bytes.Buffer
	wire.EncodeKey(&w, k)
	return w.Bytes()
}

// DecodeKeyArg decodes a single-Key argument list.
func DecodeKeyArg(payload []byte) (*kdbkey.Key, error) {
	r := wire.NewReader(payload)
	return r.Key()
}

// EncodeKeySetArg encodes the single-KeySet argument list used by
// SETKEYS and MONITORKEYS.
func EncodeKeySetArg(ks *keyset.KeySet) []byte {
	var w bytes.Buffer
	wire.EncodeKeySet(&w, ks)
	return w.Bytes()
}

// DecodeKeySetArg decodes a single-KeySet argument list.
func DecodeKeySetArg(payload []byte) (*keyset.KeySet, error) {
	r := wire.NewReader(payload)
	return r.KeySet()
}

// EncodeRenameArg encodes RENAME's two-argument list: the key being
// renamed, then the new name as a string.
func EncodeRenameArg(k *kdbkey.Key, newName string) []byte {
	var w bytes.Buffer
	wire.EncodeKey(&w, k)
	wire.EncodeString(&w, newName)
	return w.Bytes()
}

// DecodeRenameArg decodes RENAME's argument list.
func DecodeRenameArg(payload []byte) (*kdbkey.Key, string, error) {
	r := wire.NewReader(payload)
	k, err := r.Key()
	if err != nil {
		return nil, "", err
	}
	name, err := r.String()
	if err != nil {
		return nil, "", err
	}
	return k, name, nil
}

// EncodeKeyReply encodes a successful reply whose result is a single
// Key (GETKEY, STATKEY).
func EncodeKeyReply(k *kdbkey.Key) []byte {
	var w bytes.Buffer
	wire.EncodeKey(&w, k)
	return w.Bytes()
}

// DecodeKeyReply decodes a single-Key reply result.
func DecodeKeyReply(payload []byte) (*kdbkey.Key, error) {
	r := wire.NewReader(payload)
	return r.Key()
}

// EncodeKeySetReply encodes a successful reply whose result is a
// KeySet (GETCHILD).
func EncodeKeySetReply(ks *keyset.KeySet) []byte {
	var w bytes.Buffer
	wire.EncodeKeySet(&w, ks)
	return w.Bytes()
}

// DecodeKeySetReply decodes a single-KeySet reply result.
func DecodeKeySetReply(payload []byte) (*keyset.KeySet, error) {
	r := wire.NewReader(payload)
	return r.KeySet()
}
