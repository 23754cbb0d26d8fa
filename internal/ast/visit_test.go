package ast

import (
	"slices"
	"testing"

	"scriptir/internal/source"
)

func sampleTree() *SourceSeq {
	loop := &SourceWhileExpr{
		Cond: &SourceBinOpExpr{Left: ident("i", 7, 8), Right: i32(10, 11, 13), Op: BinLess, Loc: sp(7, 13)},
		Body: *seq(
			&SourceAssignExpr{Left: ident("i", 16, 17), Right: i32(1, 21, 22), Loc: sp(16, 22)},
			jump(4, false, 23, 24),
		),
		Loc: sp(0, 25),
	}
	typ := TypeInt32
	return seq(
		&SourceDeclareExpr{Local: source.NewIdent("i"), Type: &typ, Init: i32(0, 4, 5), Loc: sp(0, 5)},
		loop,
		&SourceReturnExpr{Value: ident("i", 33, 34), Loc: sp(26, 34)},
	)
}

func TestInspectPreOrder(t *testing.T) {
	var kinds []ExprKind
	Inspect(SourceExpr(sampleTree()), func(e SourceExpr) bool {
		kinds = append(kinds, e.Kind())
		return true
	})
	want := []ExprKind{
		ExprSeq,
		ExprDeclare, ExprConstant,
		ExprWhile, ExprBinOp, ExprIdent, ExprConstant,
		ExprSeq, ExprAssign, ExprIdent, ExprConstant, ExprGoto,
		ExprReturn, ExprIdent,
	}
	if !slices.Equal(kinds, want) {
		t.Errorf("Inspect order = %v\nwant %v", kinds, want)
	}
}

func TestInspectSkipsChildren(t *testing.T) {
	count := 0
	Inspect(SourceExpr(sampleTree()), func(e SourceExpr) bool {
		count++
		return e.Kind() != ExprWhile
	})
	// Seq, Declare, Constant, While, Return, Ident
	if count != 6 {
		t.Errorf("visited %d nodes, want 6", count)
	}
}

func TestChildrenPointIntoTree(t *testing.T) {
	loop := &SourceWhileExpr{Cond: ident("c", 0, 1), Loc: sp(0, 10)}
	kids := SourceChildren(loop)
	if len(kids) != 2 {
		t.Fatalf("len(Children) = %d, want 2", len(kids))
	}
	body := kids[1].(*SourceSeq)
	body.Append(&SourceBreakExpr{Loc: sp(5, 6)})
	if loop.Body.Len() != 1 {
		t.Error("appending through Children did not reach the While body")
	}
}

func TestChildrenSkipsMissingOperands(t *testing.T) {
	ret := &SourceReturnExpr{Loc: sp(0, 6)}
	if kids := SourceChildren(ret); len(kids) != 0 {
		t.Errorf("Children(return) = %v, want none", kids)
	}
	sw := &SourceSwitchExpr{
		Scrutinee: ident("x", 7, 8),
		Cases:     []SourceSwitchCase{{Matcher: i32(1, 15, 16)}},
		Default:   seq(),
	}
	// scrutinee, matcher, case body, default
	if kids := SourceChildren(sw); len(kids) != 4 {
		t.Errorf("len(Children(switch)) = %d, want 4", len(kids))
	}
}
