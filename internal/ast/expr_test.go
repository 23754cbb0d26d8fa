package ast

import (
	"testing"

	"pgregory.net/rapid"

	"scriptir/internal/source"
)

func sp(low, high uint32) source.Span {
	return source.NewSpan(source.Pos(low), source.Pos(high))
}

func ident(name string, low, high uint32) *SourceIdentExpr {
	return &SourceIdentExpr{Name: source.NewIdent(name), Loc: sp(low, high)}
}

func i32(v int32, low, high uint32) *SourceConstExpr {
	return &SourceConstExpr{Value: I32Const(v), Loc: sp(low, high)}
}

func jump(pos uint16, resolved bool, low, high uint32) *SourceGotoExpr {
	return &SourceGotoExpr{Target: Target{Position: pos, Resolved: resolved}, Loc: sp(low, high)}
}

func seq(exprs ...SourceExpr) *SourceSeq {
	return NewSourceSeq(exprs...)
}

func TestSeqSpan(t *testing.T) {
	tests := []struct {
		name string
		seq  *SourceSeq
		want source.Span
	}{
		{"empty", seq(), source.NoSpan},
		{"single", seq(ident("a", 4, 5)), sp(4, 5)},
		{"first to last", seq(ident("a", 2, 3), i32(1, 10, 11), ident("b", 20, 25)), sp(2, 25)},
		{"nested", seq(ident("a", 2, 3), seq(i32(1, 30, 31))), sp(2, 31)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.seq.Span(); got != tt.want {
				t.Errorf("Span() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSeqSpanIgnoresMiddle(t *testing.T) {
	// Only the first and last elements take part, even if a middle element
	// reaches further.
	s := seq(ident("a", 5, 6), ident("wide", 0, 100), ident("b", 7, 9))
	if got, want := s.Span(), sp(5, 9); got != want {
		t.Errorf("Span() = %s, want %s", got, want)
	}
}

func TestSeqSpanProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 8).Draw(t, "n")
		var exprs []SourceExpr
		for range n {
			low := rapid.Uint32Range(0, 1000).Draw(t, "low")
			length := rapid.Uint32Range(0, 50).Draw(t, "len")
			exprs = append(exprs, &SourceBreakExpr{Loc: sp(low, low+length)})
		}
		s := seq(exprs...)
		want := exprs[0].Span().Merge(exprs[n-1].Span())
		if got := s.Span(); got != want {
			t.Fatalf("Span() = %s, want %s", got, want)
		}
	})
}

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		expr SourceExpr
		want bool
	}{
		{"empty seq", seq(), true},
		{"canonical empty", SourceEmpty(), true},
		{"seq with break", seq(&SourceBreakExpr{}), false},
		{"resolved goto", jump(3, true, 0, 1), true},
		{"pending goto", jump(3, false, 0, 1), false},
		{"seq of resolved gotos", seq(jump(1, true, 0, 1), jump(2, true, 1, 2)), true},
		{"seq with one pending goto", seq(jump(1, true, 0, 1), jump(2, false, 1, 2)), false},
		{"nested empty seqs", seq(seq(), seq(seq())), true},
		{"null literal", &SourceNullExpr{}, false},
		{"if with empty body", &SourceIfExpr{Cond: ident("c", 0, 1)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.expr.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGotoResolveIsMonotonic(t *testing.T) {
	g := jump(7, false, 0, 1)
	g.Resolve()
	g.Resolve()
	if !g.Target.Resolved || !g.IsEmpty() {
		t.Fatalf("goto not resolved: %+v", g.Target)
	}
	if g.Target.Position != 7 {
		t.Errorf("Position = %d, want 7", g.Target.Position)
	}
}

func TestLeafSpans(t *testing.T) {
	loc := sp(3, 8)
	leaves := []SourceExpr{
		&SourceIdentExpr{Loc: loc},
		&SourceConstExpr{Loc: loc},
		&SourceThisExpr{Loc: loc},
		&SourceSuperExpr{Loc: loc},
		&SourceBreakExpr{Loc: loc},
		&SourceNullExpr{Loc: loc},
		&SourceGotoExpr{Loc: loc},
		&SourceBinOpExpr{Left: ident("a", 0, 1), Right: ident("b", 20, 21), Loc: loc},
	}
	for _, e := range leaves {
		if got := e.Span(); got != loc {
			t.Errorf("%s.Span() = %s, want %s", e.Kind(), got, loc)
		}
	}
}

func TestSeqAppend(t *testing.T) {
	s := SourceEmpty()
	s.Append(ident("a", 0, 1), ident("b", 4, 6))
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if got := s.Span(); got != sp(0, 6) {
		t.Errorf("Span() = %s", got)
	}
	var nilSeq *SourceSeq
	if nilSeq.Len() != 0 || !nilSeq.IsEmpty() || nilSeq.Span() != source.NoSpan {
		t.Error("nil Seq should behave as empty")
	}
}

func TestExprKindString(t *testing.T) {
	if got := ExprInterpolatedString.String(); got != "InterpolatedString" {
		t.Errorf("String() = %q", got)
	}
	if got := ExprKind(99).String(); got != "Unknown" {
		t.Errorf("String() = %q", got)
	}
}
