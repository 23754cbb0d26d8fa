package diag

import (
	"testing"

	"scriptir/internal/source"
)

func TestBagLimitAndSeverity(t *testing.T) {
	b := NewBag(2)
	if !b.Add(New(SevWarning, IRUnresolvedJump, source.NewSpan(4, 6), "jump")) {
		t.Fatalf("first Add should succeed")
	}
	if b.HasErrors() || !b.HasWarnings() {
		t.Fatalf("expected warnings only")
	}
	b.Add(NewError(TypWrapperArity, source.NewSpan(0, 3), "ref"))
	if b.Add(NewError(TypArrayArity, source.NewSpan(1, 2), "array")) {
		t.Fatalf("Add past the limit should be rejected")
	}
	if !b.HasErrors() || b.Len() != 2 {
		t.Fatalf("Len() = %d, HasErrors() = %v", b.Len(), b.HasErrors())
	}
}

func TestBagSortAndFormat(t *testing.T) {
	b := NewBag(10)
	b.Add(New(SevWarning, IRUnresolvedJump, source.NewSpan(10, 12), "unresolved\njump"))
	b.Add(NewError(TypWrapperArity, source.NewSpan(0, 3), "ref needs an argument").
		WithNote(source.NewSpan(1, 2), "here"))
	b.Sort()

	expected := "error TYP1001 0..3 ref needs an argument\n" +
		"note TYP1001 1..2 here\n" +
		"warning IR2001 10..12 unresolved jump"
	if got := FormatShort(b.Items(), true); got != expected {
		t.Fatalf("unexpected format:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}

func TestDedupReporter(t *testing.T) {
	b := NewBag(10)
	r := NewDedupReporter(BagReporter{Bag: b})
	for range 3 {
		ReportError(r, TypArrayArity, source.NewSpan(1, 5), "array").Emit()
	}
	ReportWarning(r, TypArrayArity, source.NewSpan(1, 5), "array").Emit()
	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}
}

func TestCodeStrings(t *testing.T) {
	tests := []struct {
		code Code
		id   string
	}{
		{TypMalformedRepr, "TYP1003"},
		{IRMissingOperand, "IR2002"},
		{PoolSchema, "POOL3002"},
		{UnknownCode, "E0000"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.id {
			t.Errorf("ID() = %q, want %q", got, tt.id)
		}
	}
	if Code(999).Title() != "Unknown error" {
		t.Errorf("unknown code title = %q", Code(999).Title())
	}
}
