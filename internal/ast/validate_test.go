package ast

import (
	"testing"

	"scriptir/internal/diag"
	"scriptir/internal/source"
)

func validate(e SourceExpr, opts ValidateOptions) (bool, []diag.Diagnostic) {
	bag := diag.NewBag(32)
	ok := Validate(e, diag.BagReporter{Bag: bag}, opts)
	bag.Sort()
	return ok, bag.Items()
}

func codes(ds []diag.Diagnostic) []diag.Code {
	out := make([]diag.Code, len(ds))
	for i, d := range ds {
		out[i] = d.Code
	}
	return out
}

func TestValidateCleanTree(t *testing.T) {
	ok, ds := validate(SourceExpr(sampleTree()), ValidateOptions{})
	if !ok || len(ds) != 0 {
		t.Fatalf("Validate() = %v, %v", ok, ds)
	}
}

func TestValidateReports(t *testing.T) {
	badRef := named("ref")
	tests := []struct {
		name string
		expr SourceExpr
		opts ValidateOptions
		want []diag.Code
	}{
		{
			name: "bare ref annotation",
			expr: &SourceDeclareExpr{Local: source.NewIdent("x"), Type: &badRef, Loc: sp(0, 9)},
			want: []diag.Code{diag.TypWrapperArity},
		},
		{
			name: "array with two arguments",
			expr: &SourceNewExpr{Type: named("array", TypeInt32, TypeBool), Loc: sp(0, 9)},
			want: []diag.Code{diag.TypArrayArity},
		},
		{
			name: "empty cast type",
			expr: &SourceCastExpr{Type: NewTypeName(source.Static("")), Expr: ident("x", 5, 6), Loc: sp(0, 7)},
			want: []diag.Code{diag.TypEmptyName},
		},
		{
			name: "missing binary operand",
			expr: &SourceBinOpExpr{Left: ident("a", 0, 1), Op: BinAdd, Loc: sp(0, 3)},
			want: []diag.Code{diag.IRMissingOperand},
		},
		{
			name: "unknown operator",
			expr: &SourceUnOpExpr{Operand: ident("a", 1, 2), Op: UnOp(42), Loc: sp(0, 2)},
			want: []diag.Code{diag.IRInvalidOperator},
		},
		{
			name: "pending jump before structuring",
			expr: seq(jump(3, false, 0, 1)),
			want: nil,
		},
		{
			name: "pending jump after structuring",
			expr: seq(jump(3, false, 0, 1), jump(4, true, 1, 2)),
			opts: ValidateOptions{Structured: true},
			want: []diag.Code{diag.IRUnresolvedJump},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, ds := validate(tt.expr, tt.opts)
			if ok != (len(tt.want) == 0) {
				t.Errorf("Validate() = %v with %d diagnostics", ok, len(ds))
			}
			got := codes(ds)
			if len(got) != len(tt.want) {
				t.Fatalf("codes = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("codes[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestValidateSeverity(t *testing.T) {
	_, ds := validate(seq(jump(3, false, 4, 5)), ValidateOptions{Structured: true})
	if len(ds) != 1 || ds[0].Severity != diag.SevWarning || ds[0].Primary != sp(4, 5) {
		t.Fatalf("diagnostics = %+v", ds)
	}
}

func TestValidateNilReporter(t *testing.T) {
	if Validate(&SourceBinOpExpr{Op: BinAdd}, nil, ValidateOptions{}) {
		t.Error("Validate() = true for a tree with missing operands")
	}
}
