package kdbkey

// Spec is the explicit configuration-options container the source's
// variadic new(name, KEY_END, KEY_BINARY, KEY_SIZE, n, KEY_VALUE, p, ...)
// call collapses into. Each recognised option from the source's table is
// one field here; New finalises it with a single call instead of scanning
// a variadic arg list at runtime.
type Spec struct {
	Binary  bool
	Value   []byte
	Size    *int64 // authoritative byte count for Value, if set explicitly
	Owner   string
	Func    []byte // a function reference stored as an opaque binary blob
	Comment string
	UID     *int64
	GID     *int64
	Mode    *int64
}

// Option configures a Spec; New applies each Option in order before
// constructing the Key.
type Option func(*Spec)

// WithBinary marks the key's value as binary.
func WithBinary() Option { return func(s *Spec) { s.Binary = true } }

// WithValue copies value bytes into the key. A binary value's length is
// the WithSize count if one was given, else len(p); a string value is
// treated as a NUL-terminated string (all of p if it holds no zero byte).
func WithValue(p []byte) Option { return func(s *Spec) { s.Value = p } }

// WithSize sets the authoritative byte count for a subsequent WithValue
// of a binary value. It has no effect on a string value.
func WithSize(n int64) Option { return func(s *Spec) { s.Size = &n } }

// WithOwner sets the "owner" metadata and adjusts the canonical name the
// same way an embedded "user:owner" qualifier would.
func WithOwner(owner string) Option { return func(s *Spec) { s.Owner = owner } }

// WithFunc stores f as an opaque binary blob, mirroring the source's
// "store a function pointer as binary data" option.
func WithFunc(f []byte) Option {
	return func(s *Spec) {
		s.Binary = true
		s.Value = f
	}
}

// WithComment sets the "comment" metadata.
func WithComment(c string) Option { return func(s *Spec) { s.Comment = c } }

// WithUID sets the "uid" metadata.
func WithUID(n int64) Option { return func(s *Spec) { s.UID = &n } }

// WithGID sets the "gid" metadata.
func WithGID(n int64) Option { return func(s *Spec) { s.GID = &n } }

// WithMode sets the "mode" metadata.
func WithMode(n int64) Option { return func(s *Spec) { s.Mode = &n } }
