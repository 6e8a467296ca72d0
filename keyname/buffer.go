package keyname

// CopyInto copies the canonical form of n into buf, requiring len(buf) be
// at least n.Size(). It returns the number of bytes copied (Size()) or an
// error when the buffer is nil, zero-length, or too small.
func CopyInto(n Name, buf []byte) (int, error) {
	return copyInto(n.String(), n.Size(), buf)
}

// CopyFullInto is CopyInto for the owner-qualified full form.
func CopyFullInto(n Name, buf []byte) (int, error) {
	return copyInto(n.FullString(), n.FullSize(), buf)
}

func copyInto(s string, size int, buf []byte) (int, error) {
	if buf == nil || len(buf) == 0 {
		return -1, ErrNilBuffer
	}
	if len(buf) < size {
		return -1, ErrBufferTooSmall
	}
	n := copy(buf, s)
	// size includes the terminator; copy only wrote len(s) bytes.
	buf[n] = 0
	return size, nil
}
