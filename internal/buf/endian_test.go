package buf

import "testing"

func TestEndianHelpers(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}

	if got := U32LE(data); got != 0x67452301 {
		t.Fatalf("U32LE = 0x%x, want 0x67452301", got)
	}
	if got := I32LE(data); got != 0x67452301 {
		t.Fatalf("I32LE = 0x%x, want 0x67452301", got)
	}

	short := []byte{0xAA}
	if U32LE(short) != 0 || I32LE(short) != 0 {
		t.Fatalf("short reads should return 0")
	}
	if I64LE(short) != 0 {
		t.Fatalf("short I64LE should return 0")
	}
}

func TestEndianRoundTrip(t *testing.T) {
	var b []byte
	b = PutU32LE(b, 0x67452301)
	if got := U32LE(b); got != 0x67452301 {
		t.Fatalf("round trip U32LE = 0x%x", got)
	}
	b = PutI32LE(b[:0], -1)
	if got := I32LE(b); got != -1 {
		t.Fatalf("round trip I32LE = %d, want -1", got)
	}
	b = PutI64LE(b[:0], -2)
	if got := I64LE(b); got != -2 {
		t.Fatalf("round trip I64LE = %d, want -2", got)
	}
}
