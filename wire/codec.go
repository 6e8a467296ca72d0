package wire

import (
	"bytes"

	"github.com/kdbkit/kdbkit/internal/buf"
	"github.com/kdbkit/kdbkit/kdbkey"
	"github.com/kdbkit/kdbkit/keyname"
	"github.com/kdbkit/kdbkit/keyset"
	"github.com/kdbkit/kdbkit/kvmeta"
	"github.com/kdbkit/kdbkit/kvvalue"
)

// maxLength bounds any single declared length this codec will accept, to
// keep a corrupt or hostile length prefix from forcing a huge allocation.
const maxLength = 64 << 20

const (
	valueTagString byte = 0
	valueTagBinary byte = 1
)

// EncodeI32 appends v's little-endian two's-complement encoding to w.
func EncodeI32(w *bytes.Buffer, v int32) {
	w.Write(buf.PutI32LE(nil, v))
}

// EncodeU32 appends v's little-endian encoding to w.
func EncodeU32(w *bytes.Buffer, v uint32) {
	w.Write(buf.PutU32LE(nil, v))
}

// EncodeI64 appends v's little-endian two's-complement encoding to w.
func EncodeI64(w *bytes.Buffer, v int64) {
	w.Write(buf.PutI64LE(nil, v))
}

// EncodeString appends s as a u32 length (including the terminating
// zero) followed by s's bytes and a trailing zero.
func EncodeString(w *bytes.Buffer, s string) {
	EncodeU32(w, uint32(len(s)+1))
	w.WriteString(s)
	w.WriteByte(0)
}

// EncodeBinary appends b as a u32 length followed by b's raw bytes
// verbatim, with no implied terminator.
func EncodeBinary(w *bytes.Buffer, b []byte) {
	EncodeU32(w, uint32(len(b)))
	w.Write(b)
}

// EncodeValue appends v's wire form: a value-tag byte (0 string, 1
// binary) followed by the value as a string or a binary blob.
func EncodeValue(w *bytes.Buffer, v kvvalue.Value) {
	if v.IsBinary() {
		w.WriteByte(valueTagBinary)
		EncodeBinary(w, v.Bytes())
		return
	}
	w.WriteByte(valueTagString)
	EncodeString(w, string(v.Bytes()))
}

// EncodeMeta appends t's entries: a u32 count followed by that many
// {name string, value} pairs, in Table.Names' sorted order so that
// encoding is deterministic.
func EncodeMeta(w *bytes.Buffer, t *kvmeta.Table) {
	names := t.Names()
	EncodeU32(w, uint32(len(names)))
	for _, name := range names {
		v, _ := t.Get(name)
		EncodeString(w, name)
		EncodeValue(w, v)
	}
}

// EncodeKey appends k's wire form: its canonical name (owner qualifier
// stripped), its value, and its metadata table.
func EncodeKey(w *bytes.Buffer, k *kdbkey.Key) {
	EncodeString(w, k.Name().String())
	v := k.Value()
	EncodeValue(w, v)
	EncodeMeta(w, k.Meta())
}

// EncodeKeySet appends ks's wire form: a u32 count followed by that many
// keys, in ks's stored (canonical-name) order.
func EncodeKeySet(w *bytes.Buffer, ks *keyset.KeySet) {
	EncodeU32(w, uint32(ks.Len()))
	for i := 0; i < ks.Len(); i++ {
		EncodeKey(w, ks.At(i))
	}
}

// Reader decodes the primitive and composite wire forms from a byte
// slice, tracking its own read offset and reporting ErrTruncated rather
// than panicking on a short or corrupt payload.
type Reader struct {
	b   []byte
	off int
}

// NewReader returns a Reader positioned at the start of b.
func NewReader(b []byte) *Reader {
	return &Reader{b: b}
}

// Remaining returns the number of undecoded bytes left in the reader.
func (r *Reader) Remaining() int { return len(r.b) - r.off }

func (r *Reader) take(n int) ([]byte, error) {
	s, ok := buf.Slice(r.b, r.off, n)
	if !ok {
		return nil, ErrTruncated
	}
	r.off += n
	return s, nil
}

// I32 decodes a fixed-width little-endian int32.
func (r *Reader) I32() (int32, error) {
	s, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return buf.I32LE(s), nil
}

// U32 decodes a fixed-width little-endian uint32.
func (r *Reader) U32() (uint32, error) {
	s, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return buf.U32LE(s), nil
}

// I64 decodes a fixed-width little-endian int64.
func (r *Reader) I64() (int64, error) {
	s, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return buf.I64LE(s), nil
}

// String decodes a length-prefixed string: a u32 length including the
// terminator, the string's bytes, and a trailing zero. Fails with
// ErrBadStringTerminator if the declared terminator byte is not zero.
func (r *Reader) String() (string, error) {
	n, err := r.U32()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", ErrTruncated // every string has at least a terminator
	}
	if n > maxLength {
		return "", ErrLengthTooLarge
	}
	raw, err := r.take(int(n))
	if err != nil {
		return "", err
	}
	if raw[n-1] != 0 {
		return "", ErrBadStringTerminator
	}
	return string(raw[:n-1]), nil
}

// Binary decodes a length-prefixed binary blob: a u32 length followed by
// that many raw bytes, with no implied terminator.
func (r *Reader) Binary() ([]byte, error) {
	n, err := r.U32()
	if err != nil {
		return nil, err
	}
	if n > maxLength {
		return nil, ErrLengthTooLarge
	}
	if n == 0 {
		return nil, nil
	}
	raw, err := r.take(int(n))
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), raw...), nil
}

// Value decodes a value-tag byte followed by a string or binary value.
func (r *Reader) Value() (kvvalue.Value, error) {
	tag, err := r.take(1)
	if err != nil {
		return kvvalue.Value{}, err
	}
	var v kvvalue.Value
	switch tag[0] {
	case valueTagString:
		s, err := r.String()
		if err != nil {
			return kvvalue.Value{}, err
		}
		v.SetString(&s)
	case valueTagBinary:
		b, err := r.Binary()
		if err != nil {
			return kvvalue.Value{}, err
		}
		// b's length always matches n passed to SetBinary, so the only
		// error case (p != nil && n == 0) can't occur here.
		_, _ = v.SetBinary(b, int64(len(b)))
	default:
		return kvvalue.Value{}, ErrUnknownValueTag
	}
	return v, nil
}

// Meta decodes a metadata table: a u32 count followed by that many
// {name string, value} pairs.
func (r *Reader) Meta() (kvmeta.Table, error) {
	count, err := r.U32()
	if err != nil {
		return kvmeta.Table{}, err
	}
	if count > maxLength {
		return kvmeta.Table{}, ErrLengthTooLarge
	}
	var t kvmeta.Table
	for i := uint32(0); i < count; i++ {
		name, err := r.String()
		if err != nil {
			return kvmeta.Table{}, err
		}
		v, err := r.Value()
		if err != nil {
			return kvmeta.Table{}, err
		}
		t.Set(name, v)
	}
	return t, nil
}

// Key decodes a Key: its canonical name, value, and metadata table. If
// the decoded metadata carries an "owner" entry, it is spliced back onto
// the Name (mirroring how setName extracts it from a "user:owner" input)
// so Name().Owner() and FullString() remain meaningful after a round
// trip.
func (r *Reader) Key() (*kdbkey.Key, error) {
	nameStr, err := r.String()
	if err != nil {
		return nil, err
	}
	v, err := r.Value()
	if err != nil {
		return nil, err
	}
	meta, err := r.Meta()
	if err != nil {
		return nil, err
	}
	name, err := keyname.Parse(&nameStr)
	if err != nil {
		return nil, err
	}
	if owner, ok := meta.GetString(kvmeta.Owner); ok && owner != "" {
		name = keyname.WithOwner(name, owner)
	}
	return kdbkey.FromParts(name, v, meta), nil
}

// KeySet decodes a KeySet: a u32 count followed by that many keys,
// appended in the order they were encoded (AppendKey's canonical-name
// ordering takes over from there, matching the source order for an
// already-sorted encode).
func (r *Reader) KeySet() (*keyset.KeySet, error) {
	count, err := r.U32()
	if err != nil {
		return nil, err
	}
	if count > maxLength {
		return nil, ErrLengthTooLarge
	}
	ks := keyset.New(int(count))
	for i := uint32(0); i < count; i++ {
		k, err := r.Key()
		if err != nil {
			return nil, err
		}
		ks.AppendKey(k)
	}
	return ks, nil
}
