package source

import (
	"fmt"
	"sync"
	"testing"
)

func TestInternerBasic(t *testing.T) {
	in := NewInterner(InternerOptions{})

	a := in.Intern("hello")
	b := in.Intern("hello")
	if !a.Equal(b) || a.shared != b.shared {
		t.Errorf("Intern must return one shared ident for equal text")
	}
	if a.IsStatic() {
		t.Errorf("interned user name should be shared, not static")
	}
	if in.Len() != 1 {
		t.Errorf("Len() = %d, want 1", in.Len())
	}
	if c := in.InternBytes([]byte("hello")); c.shared != a.shared {
		t.Errorf("InternBytes must reuse the existing ident")
	}
	if _, ok := in.Lookup("world"); ok {
		t.Errorf("Lookup must not create idents")
	}
}

func TestInternerPreload(t *testing.T) {
	in := NewInterner(InternerOptions{})
	in.Preload("Int32", "Bool", "Int32")

	id := in.Intern("Int32")
	if !id.IsStatic() {
		t.Errorf("preloaded name should stay static")
	}
	if got := in.Snapshot(); len(got) != 2 || got[0] != "Int32" || got[1] != "Bool" {
		t.Errorf("Snapshot() = %v, want [Int32 Bool]", got)
	}
}

func TestInternerNormalizeNFC(t *testing.T) {
	composed := "caf\u00e9"
	decomposed := "cafe\u0301"

	plain := NewInterner(InternerOptions{})
	if plain.Intern(composed).Equal(plain.Intern(decomposed)) {
		t.Fatalf("without normalization the spellings must stay distinct")
	}

	nfc := NewInterner(InternerOptions{NormalizeNFC: true})
	a, b := nfc.Intern(composed), nfc.Intern(decomposed)
	if !a.Equal(b) || nfc.Len() != 1 {
		t.Fatalf("NFC interner: %q vs %q, len=%d", a, b, nfc.Len())
	}
}

func TestInternerConcurrent(t *testing.T) {
	in := NewInterner(InternerOptions{})
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := range 100 {
				in.Intern(fmt.Sprintf("name%d", (i+g)%50))
			}
		}(g)
	}
	wg.Wait()
	if in.Len() != 50 {
		t.Fatalf("Len() = %d, want 50", in.Len())
	}
}
