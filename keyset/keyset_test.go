package keyset

import (
	"testing"

	"github.com/kdbkit/kdbkit/kdbkey"
)

func names(ks *KeySet) []string {
	ks.Rewind()
	var out []string
	for k := ks.Next(); k != nil; k = ks.Next() {
		out = append(out, k.Name().String())
	}
	return out
}

func TestAppendKeepsSortedOrder(t *testing.T) {
	ks := New(0)
	ks.AppendKey(kdbkey.New("system/b"))
	ks.AppendKey(kdbkey.New("system/a"))
	ks.AppendKey(kdbkey.New("system/c"))

	got := names(ks)
	want := []string{"system/a", "system/b", "system/c"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestAppendSameNameReplacesAndAdjustsRefcount(t *testing.T) {
	ks := New(0)
	first := kdbkey.New("system/a", kdbkey.WithValue([]byte("1")))
	ks.AppendKey(first)
	if got := first.GetRef(); got != 1 {
		t.Fatalf("first refcount = %d, want 1", got)
	}

	second := kdbkey.New("system/a", kdbkey.WithValue([]byte("2")))
	size := ks.AppendKey(second)
	if size != 1 {
		t.Fatalf("size after replace = %d, want 1", size)
	}
	if got := first.GetRef(); got != 0 {
		t.Fatalf("replaced key refcount = %d, want 0", got)
	}
	if got := second.GetRef(); got != 1 {
		t.Fatalf("new key refcount = %d, want 1", got)
	}

	buf := make([]byte, 8)
	n, _ := ks.At(0).Value().GetString(buf)
	if string(buf[:n-1]) != "2" {
		t.Fatalf("stored value = %q, want 2", buf[:n-1])
	}
}

func TestNewPrefillsAndAppends(t *testing.T) {
	ks := New(4, kdbkey.New("system/a"), kdbkey.New("system/b"))
	if ks.Len() != 2 {
		t.Fatalf("len = %d", ks.Len())
	}
}

func TestRewindAndNextCycle(t *testing.T) {
	ks := New(0, kdbkey.New("system/a"), kdbkey.New("system/b"))
	if k := ks.Next(); k.Name().String() != "system/a" {
		t.Fatalf("first Next = %q", k.Name().String())
	}
	if k := ks.Next(); k.Name().String() != "system/b" {
		t.Fatalf("second Next = %q", k.Name().String())
	}
	if k := ks.Next(); k != nil {
		t.Fatalf("Next past end = %v, want nil", k)
	}
	ks.Rewind()
	if k := ks.Next(); k.Name().String() != "system/a" {
		t.Fatalf("Next after Rewind = %q", k.Name().String())
	}
}

func TestLookupExact(t *testing.T) {
	ks := New(0, kdbkey.New("system/a"), kdbkey.New("system/a/b"))
	k := ks.Lookup("system/a/b", LookupOptions{})
	if k == nil || k.Name().String() != "system/a/b" {
		t.Fatalf("Lookup exact = %v", k)
	}
	if ks.Lookup("system/missing", LookupOptions{}) != nil {
		t.Fatal("expected nil for missing key without cascade")
	}
}

func TestLookupCascadingFindsNearestAncestor(t *testing.T) {
	ks := New(0,
		kdbkey.New("system/app"),
		kdbkey.New("system/app/sub"),
	)
	k := ks.Lookup("system/app/sub/deep/leaf", LookupOptions{Cascade: true})
	if k == nil || k.Name().String() != "system/app/sub" {
		t.Fatalf("cascading lookup = %v, want system/app/sub", k)
	}
}

func TestLookupCascadingNoAncestorReturnsNil(t *testing.T) {
	ks := New(0, kdbkey.New("user/other"))
	if k := ks.Lookup("system/app/sub", LookupOptions{Cascade: true}); k != nil {
		t.Fatalf("expected nil, got %v", k)
	}
}

func TestDelDecrementsAllAndEmptiesSet(t *testing.T) {
	a := kdbkey.New("system/a")
	b := kdbkey.New("system/b")
	ks := New(0, a, b)

	ks.Del()
	if ks.Len() != 0 {
		t.Fatalf("len after Del = %d", ks.Len())
	}
	if a.GetRef() != 0 || b.GetRef() != 0 {
		t.Fatalf("refcounts after Del: a=%d b=%d", a.GetRef(), b.GetRef())
	}
}

func TestAppendKeyNilReturnsNegativeOne(t *testing.T) {
	ks := New(0)
	if got := ks.AppendKey(nil); got != -1 {
		t.Fatalf("AppendKey(nil) = %d, want -1", got)
	}
}
