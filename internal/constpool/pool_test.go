package constpool

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"scriptir/internal/ast"
	"scriptir/internal/source"
)

func samplePool(t *testing.T) *Pool {
	t.Helper()
	p := New(Options{})
	mustAdd := func(_ Index, err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	mustAdd(p.AddName(source.NewIdent("Player")))
	mustAdd(p.AddName(source.NewIdent("GetHealth")))
	mustAdd(p.AddType(ast.TypeInt32))
	mustAdd(p.AddType(ast.RefOf(ast.NewTypeName(source.NewIdent("Entity")))))
	mustAdd(p.AddConst(ast.StringConst(ast.LiteralName, "Player")))
	mustAdd(p.AddConst(ast.I32Const(42)))
	mustAdd(p.AddConst(ast.F64Const(0.5)))
	return p
}

func TestPoolDeduplicates(t *testing.T) {
	p := samplePool(t)

	i1, _ := p.AddName(source.Static("Player"))
	if i1 != 0 {
		t.Errorf("AddName(Player) = %d, want 0", i1)
	}
	i2, _ := p.AddType(ast.RefOf(ast.NewTypeName(source.NewIdent("Entity"))))
	if i2 != 1 {
		t.Errorf("AddType(ref<Entity>) = %d, want 1", i2)
	}
	i3, _ := p.AddConst(ast.I32Const(42))
	if i3 != 1 {
		t.Errorf("AddConst(42) = %d, want 1", i3)
	}
	i4, _ := p.AddConst(ast.I64Const(42))
	if i4 != 3 {
		t.Errorf("AddConst(42l) = %d, want 3 (a new entry)", i4)
	}

	want := Stats{Names: 2, Types: 2, Consts: 4}
	if got := p.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}

func TestPoolLookup(t *testing.T) {
	p := samplePool(t)

	n, err := p.Name(1)
	if err != nil || n.String() != "GetHealth" {
		t.Errorf("Name(1) = %q, %v", n, err)
	}
	typ, err := p.Type(1)
	if err != nil || typ.Pretty().String() != "ref<Entity>" {
		t.Errorf("Type(1) = %s, %v", typ.Pretty(), err)
	}
	c, err := p.Const(0)
	if err != nil || c.String() != `n"Player"` {
		t.Errorf("Const(0) = %s, %v", c, err)
	}

	if _, err := p.Name(9); !errors.Is(err, ErrIndex) {
		t.Errorf("Name(9) error = %v, want ErrIndex", err)
	}
	if _, err := p.Type(2); !errors.Is(err, ErrIndex) {
		t.Errorf("Type(2) error = %v, want ErrIndex", err)
	}
	if _, err := p.Const(3); !errors.Is(err, ErrIndex) {
		t.Errorf("Const(3) error = %v, want ErrIndex", err)
	}
}

func TestPoolNormalizesMultiArgumentTypes(t *testing.T) {
	p := New(Options{})
	m := ast.NewTypeName(source.NewIdent("Map"), ast.TypeInt32, ast.TypeString)
	i, err := p.AddType(m)
	if err != nil {
		t.Fatal(err)
	}
	got, _ := p.Type(i)
	if got.Pretty().String() != "Map<Int32<String>>" {
		t.Errorf("Type() = %s, want the repr-decoded form", got.Pretty())
	}
}

func TestPoolAddTypeReprRejectsMalformed(t *testing.T) {
	p := New(Options{})
	if _, err := p.AddTypeRepr("array::Int32"); !errors.Is(err, ast.ErrMalformedRepr) {
		t.Errorf("AddTypeRepr error = %v, want ErrMalformedRepr", err)
	}
	if p.Stats().Types != 0 {
		t.Error("malformed repr was stored")
	}
}

func TestPoolUsesInterner(t *testing.T) {
	in := source.NewInterner(source.InternerOptions{})
	a := New(Options{Interner: in})
	b := New(Options{Interner: in})
	ia, _ := a.AddName(source.NewIdent("Shared"))
	ib, _ := b.AddName(source.NewIdent("Shared"))
	na, _ := a.Name(ia)
	nb, _ := b.Name(ib)
	if !na.Equal(nb) || in.Len() != 1 {
		t.Errorf("interned names: %q vs %q, interner has %d", na, nb, in.Len())
	}
}

func TestPoolFloatIdentity(t *testing.T) {
	p := New(Options{})
	pos, _ := p.AddConst(ast.F64Const(0))
	neg, _ := p.AddConst(ast.F64Const(math.Copysign(0, -1)))
	if pos == neg {
		t.Fatalf("AddConst(-0) = %d, shares the index of +0", neg)
	}
	c, err := p.Const(neg)
	if err != nil {
		t.Fatal(err)
	}
	if !math.Signbit(c.Float) {
		t.Errorf("Const(%d) = %v, lost the sign", neg, c.Float)
	}

	n1, _ := p.AddConst(ast.F64Const(math.NaN()))
	n2, _ := p.AddConst(ast.F64Const(math.NaN()))
	if n1 != n2 {
		t.Errorf("AddConst(NaN) = %d then %d, want one entry", n1, n2)
	}
	if got := p.Stats().Consts; got != 3 {
		t.Errorf("Stats().Consts = %d, want 3", got)
	}

	var buf bytes.Buffer
	if err := p.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	back, err := Decode(&buf, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if back.Stats() != p.Stats() {
		t.Fatalf("Decode() stats = %+v, want %+v", back.Stats(), p.Stats())
	}
	if c, _ := back.Const(neg); !math.Signbit(c.Float) {
		t.Errorf("decoded Const(%d) = %v, lost the sign", neg, c.Float)
	}
	if c, _ := back.Const(n1); !math.IsNaN(c.Float) {
		t.Errorf("decoded Const(%d) = %v, want NaN", n1, c.Float)
	}
}

func TestPoolNormalizedNames(t *testing.T) {
	in := source.NewInterner(source.InternerOptions{NormalizeNFC: true})
	p := New(Options{Interner: in})

	decomposed, _ := p.AddName(source.NewIdent("e\u0301"))
	composed, _ := p.AddName(source.NewIdent("\u00e9"))
	if decomposed != composed {
		t.Errorf("AddName() = %d and %d for the same normalized text", decomposed, composed)
	}
	if got := p.Names(); len(got) != 1 || got[0].String() != "\u00e9" {
		t.Errorf("Names() = %q, want one composed entry", got)
	}

	// without normalization the spellings stay apart
	raw := New(Options{})
	a, _ := raw.AddName(source.NewIdent("e\u0301"))
	b, _ := raw.AddName(source.NewIdent("\u00e9"))
	if a == b {
		t.Error("AddName() merged distinct spellings without normalization")
	}
}

func TestPoolMerge(t *testing.T) {
	dst := New(Options{})
	if _, err := dst.AddConst(ast.I32Const(42)); err != nil {
		t.Fatal(err)
	}
	src := samplePool(t)

	r, err := dst.Merge(src)
	if err != nil {
		t.Fatal(err)
	}
	// 42 was already in dst at 0; the other constants are appended.
	if r.Consts[1] != 0 || r.Consts[0] != 1 || r.Consts[2] != 2 {
		t.Errorf("const remap = %v", r.Consts)
	}
	if len(r.Names) != 2 || len(r.Types) != 2 {
		t.Errorf("remap = %+v", r)
	}
	if got := dst.Stats(); got != (Stats{Names: 2, Types: 2, Consts: 3}) {
		t.Errorf("Stats() after merge = %+v", got)
	}
	if _, err := dst.Merge(dst); err == nil {
		t.Error("Merge into itself should fail")
	}
}
