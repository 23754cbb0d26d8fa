package ast

import (
	"scriptir/internal/source"
)

// IdentExpr is a reference to a named entity.
type IdentExpr[R, C, L, F, M, T any] struct {
	Name R
	Loc  source.Span
}

func (*IdentExpr[R, C, L, F, M, T]) Kind() ExprKind { return ExprIdent }
func (n *IdentExpr[R, C, L, F, M, T]) Span() source.Span { return n.Loc }
func (*IdentExpr[R, C, L, F, M, T]) IsEmpty() bool { return false }
func (*IdentExpr[R, C, L, F, M, T]) exprNode() {}

// ConstExpr is a literal value.
type ConstExpr[R, C, L, F, M, T any] struct {
	Value Constant
	Loc   source.Span
}

func (*ConstExpr[R, C, L, F, M, T]) Kind() ExprKind { return ExprConstant }
func (n *ConstExpr[R, C, L, F, M, T]) Span() source.Span { return n.Loc }
func (*ConstExpr[R, C, L, F, M, T]) IsEmpty() bool { return false }
func (*ConstExpr[R, C, L, F, M, T]) exprNode() {}

// ArrayLitExpr is a fixed-size array literal.
type ArrayLitExpr[R, C, L, F, M, T any] struct {
	Elems []Expr[R, C, L, F, M, T]
	Type  *T // nil when the element type is inferred
	Loc   source.Span
}

func (*ArrayLitExpr[R, C, L, F, M, T]) Kind() ExprKind { return ExprArrayLit }
func (n *ArrayLitExpr[R, C, L, F, M, T]) Span() source.Span { return n.Loc }
func (*ArrayLitExpr[R, C, L, F, M, T]) IsEmpty() bool { return false }
func (*ArrayLitExpr[R, C, L, F, M, T]) exprNode() {}

// InterpolatedStringExpr alternates literal segments with embedded expressions:
// Prefix, Parts[0].Expr, Parts[0].Suffix, Parts[1].Expr, ...
type InterpolatedStringExpr[R, C, L, F, M, T any] struct {
	Prefix string
	Parts  []InterpolatedPart[R, C, L, F, M, T]
	Loc    source.Span
}

func (*InterpolatedStringExpr[R, C, L, F, M, T]) Kind() ExprKind { return ExprInterpolatedString }
func (n *InterpolatedStringExpr[R, C, L, F, M, T]) Span() source.Span { return n.Loc }
func (*InterpolatedStringExpr[R, C, L, F, M, T]) IsEmpty() bool { return false }
func (*InterpolatedStringExpr[R, C, L, F, M, T]) exprNode() {}

// InterpolatedPart is an embedded expression and the literal text after it.
type InterpolatedPart[R, C, L, F, M, T any] struct {
	Expr   Expr[R, C, L, F, M, T]
	Suffix string
}

// DeclareExpr declares a local variable.
type DeclareExpr[R, C, L, F, M, T any] struct {
	Local L
	Type  *T                     // nil if not annotated
	Init  Expr[R, C, L, F, M, T] // nil if not initialized
	Loc   source.Span
}

func (*DeclareExpr[R, C, L, F, M, T]) Kind() ExprKind { return ExprDeclare }
func (n *DeclareExpr[R, C, L, F, M, T]) Span() source.Span { return n.Loc }
func (*DeclareExpr[R, C, L, F, M, T]) IsEmpty() bool { return false }
func (*DeclareExpr[R, C, L, F, M, T]) exprNode() {}

type CastExpr[R, C, L, F, M, T any] struct {
	Type T
	Expr Expr[R, C, L, F, M, T]
	Loc  source.Span
}

func (*CastExpr[R, C, L, F, M, T]) Kind() ExprKind { return ExprCast }
func (n *CastExpr[R, C, L, F, M, T]) Span() source.Span { return n.Loc }
func (*CastExpr[R, C, L, F, M, T]) IsEmpty() bool { return false }
func (*CastExpr[R, C, L, F, M, T]) exprNode() {}

// AssignExpr stores Right into Left. Left is expected to be an lvalue;
// that is not checked here.
type AssignExpr[R, C, L, F, M, T any] struct {
	Left  Expr[R, C, L, F, M, T]
	Right Expr[R, C, L, F, M, T]
	Loc   source.Span
}

func (*AssignExpr[R, C, L, F, M, T]) Kind() ExprKind { return ExprAssign }
func (n *AssignExpr[R, C, L, F, M, T]) Span() source.Span { return n.Loc }
func (*AssignExpr[R, C, L, F, M, T]) IsEmpty() bool { return false }
func (*AssignExpr[R, C, L, F, M, T]) exprNode() {}

// CallExpr invokes a callable with explicit generic arguments.
type CallExpr[R, C, L, F, M, T any] struct {
	Callee   C
	TypeArgs []T
	Args     []Expr[R, C, L, F, M, T]
	Loc      source.Span
}

func (*CallExpr[R, C, L, F, M, T]) Kind() ExprKind { return ExprCall }
func (n *CallExpr[R, C, L, F, M, T]) Span() source.Span { return n.Loc }
func (*CallExpr[R, C, L, F, M, T]) IsEmpty() bool { return false }
func (*CallExpr[R, C, L, F, M, T]) exprNode() {}

// MethodCallExpr invokes Func on Recv.
type MethodCallExpr[R, C, L, F, M, T any] struct {
	Recv Expr[R, C, L, F, M, T]
	Func F
	Args []Expr[R, C, L, F, M, T]
	Loc  source.Span
}

func (*MethodCallExpr[R, C, L, F, M, T]) Kind() ExprKind { return ExprMethodCall }
func (n *MethodCallExpr[R, C, L, F, M, T]) Span() source.Span { return n.Loc }
func (*MethodCallExpr[R, C, L, F, M, T]) IsEmpty() bool { return false }
func (*MethodCallExpr[R, C, L, F, M, T]) exprNode() {}

// MemberExpr reads a field or property.
type MemberExpr[R, C, L, F, M, T any] struct {
	Recv   Expr[R, C, L, F, M, T]
	Member M
	Loc    source.Span
}

func (*MemberExpr[R, C, L, F, M, T]) Kind() ExprKind { return ExprMember }
func (n *MemberExpr[R, C, L, F, M, T]) Span() source.Span { return n.Loc }
func (*MemberExpr[R, C, L, F, M, T]) IsEmpty() bool { return false }
func (*MemberExpr[R, C, L, F, M, T]) exprNode() {}

type ArrayElemExpr[R, C, L, F, M, T any] struct {
	Array Expr[R, C, L, F, M, T]
	Index Expr[R, C, L, F, M, T]
	Loc   source.Span
}

func (*ArrayElemExpr[R, C, L, F, M, T]) Kind() ExprKind { return ExprArrayElem }
func (n *ArrayElemExpr[R, C, L, F, M, T]) Span() source.Span { return n.Loc }
func (*ArrayElemExpr[R, C, L, F, M, T]) IsEmpty() bool { return false }
func (*ArrayElemExpr[R, C, L, F, M, T]) exprNode() {}

// NewExpr constructs an object.
type NewExpr[R, C, L, F, M, T any] struct {
	Type T
	Args []Expr[R, C, L, F, M, T]
	Loc  source.Span
}

func (*NewExpr[R, C, L, F, M, T]) Kind() ExprKind { return ExprNew }
func (n *NewExpr[R, C, L, F, M, T]) Span() source.Span { return n.Loc }
func (*NewExpr[R, C, L, F, M, T]) IsEmpty() bool { return false }
func (*NewExpr[R, C, L, F, M, T]) exprNode() {}

type ReturnExpr[R, C, L, F, M, T any] struct {
	Value Expr[R, C, L, F, M, T] // nil for a bare return
	Loc   source.Span
}

func (*ReturnExpr[R, C, L, F, M, T]) Kind() ExprKind { return ExprReturn }
func (n *ReturnExpr[R, C, L, F, M, T]) Span() source.Span { return n.Loc }
func (*ReturnExpr[R, C, L, F, M, T]) IsEmpty() bool { return false }
func (*ReturnExpr[R, C, L, F, M, T]) exprNode() {}

// SwitchExpr matches Scrutinee against each case in order.
type SwitchExpr[R, C, L, F, M, T any] struct {
	Scrutinee Expr[R, C, L, F, M, T]
	Cases     []SwitchCase[R, C, L, F, M, T]
	Default   *Seq[R, C, L, F, M, T] // nil without a default branch
	Loc       source.Span
}

func (*SwitchExpr[R, C, L, F, M, T]) Kind() ExprKind { return ExprSwitch }
func (n *SwitchExpr[R, C, L, F, M, T]) Span() source.Span { return n.Loc }
func (*SwitchExpr[R, C, L, F, M, T]) IsEmpty() bool { return false }
func (*SwitchExpr[R, C, L, F, M, T]) exprNode() {}

type SwitchCase[R, C, L, F, M, T any] struct {
	Matcher Expr[R, C, L, F, M, T]
	Body    Seq[R, C, L, F, M, T]
}

// GotoExpr is an unstructured jump recovered from bytecode. Once its target
// is resolved the node is inert but stays in the tree.
type GotoExpr[R, C, L, F, M, T any] struct {
	Target Target
	Loc    source.Span
}

func (*GotoExpr[R, C, L, F, M, T]) Kind() ExprKind { return ExprGoto }
func (n *GotoExpr[R, C, L, F, M, T]) Span() source.Span { return n.Loc }
func (n *GotoExpr[R, C, L, F, M, T]) IsEmpty() bool { return n.Target.Resolved }
func (*GotoExpr[R, C, L, F, M, T]) exprNode() {}

// Resolve marks the jump as absorbed by a structured construct.
func (n *GotoExpr[R, C, L, F, M, T]) Resolve() { n.Target.Resolve() }

type IfExpr[R, C, L, F, M, T any] struct {
	Cond Expr[R, C, L, F, M, T]
	Then Seq[R, C, L, F, M, T]
	Else *Seq[R, C, L, F, M, T] // nil without an else branch
	Loc  source.Span
}

func (*IfExpr[R, C, L, F, M, T]) Kind() ExprKind { return ExprIf }
func (n *IfExpr[R, C, L, F, M, T]) Span() source.Span { return n.Loc }
func (*IfExpr[R, C, L, F, M, T]) IsEmpty() bool { return false }
func (*IfExpr[R, C, L, F, M, T]) exprNode() {}

// ConditionalExpr is the ternary cond ? then : else.
type ConditionalExpr[R, C, L, F, M, T any] struct {
	Cond Expr[R, C, L, F, M, T]
	Then Expr[R, C, L, F, M, T]
	Else Expr[R, C, L, F, M, T]
	Loc  source.Span
}

func (*ConditionalExpr[R, C, L, F, M, T]) Kind() ExprKind { return ExprConditional }
func (n *ConditionalExpr[R, C, L, F, M, T]) Span() source.Span { return n.Loc }
func (*ConditionalExpr[R, C, L, F, M, T]) IsEmpty() bool { return false }
func (*ConditionalExpr[R, C, L, F, M, T]) exprNode() {}

type WhileExpr[R, C, L, F, M, T any] struct {
	Cond Expr[R, C, L, F, M, T]
	Body Seq[R, C, L, F, M, T]
	Loc  source.Span
}

func (*WhileExpr[R, C, L, F, M, T]) Kind() ExprKind { return ExprWhile }
func (n *WhileExpr[R, C, L, F, M, T]) Span() source.Span { return n.Loc }
func (*WhileExpr[R, C, L, F, M, T]) IsEmpty() bool { return false }
func (*WhileExpr[R, C, L, F, M, T]) exprNode() {}

// ForInExpr binds Local to each element of Iter.
type ForInExpr[R, C, L, F, M, T any] struct {
	Local L
	Iter  Expr[R, C, L, F, M, T]
	Body  Seq[R, C, L, F, M, T]
	Loc   source.Span
}

func (*ForInExpr[R, C, L, F, M, T]) Kind() ExprKind { return ExprForIn }
func (n *ForInExpr[R, C, L, F, M, T]) Span() source.Span { return n.Loc }
func (*ForInExpr[R, C, L, F, M, T]) IsEmpty() bool { return false }
func (*ForInExpr[R, C, L, F, M, T]) exprNode() {}

type BinOpExpr[R, C, L, F, M, T any] struct {
	Left  Expr[R, C, L, F, M, T]
	Right Expr[R, C, L, F, M, T]
	Op    BinOp
	Loc   source.Span
}

func (*BinOpExpr[R, C, L, F, M, T]) Kind() ExprKind { return ExprBinOp }
func (n *BinOpExpr[R, C, L, F, M, T]) Span() source.Span { return n.Loc }
func (*BinOpExpr[R, C, L, F, M, T]) IsEmpty() bool { return false }
func (*BinOpExpr[R, C, L, F, M, T]) exprNode() {}

type UnOpExpr[R, C, L, F, M, T any] struct {
	Operand Expr[R, C, L, F, M, T]
	Op      UnOp
	Loc     source.Span
}

func (*UnOpExpr[R, C, L, F, M, T]) Kind() ExprKind { return ExprUnOp }
func (n *UnOpExpr[R, C, L, F, M, T]) Span() source.Span { return n.Loc }
func (*UnOpExpr[R, C, L, F, M, T]) IsEmpty() bool { return false }
func (*UnOpExpr[R, C, L, F, M, T]) exprNode() {}

type ThisExpr[R, C, L, F, M, T any] struct {
	Loc source.Span
}

func (*ThisExpr[R, C, L, F, M, T]) Kind() ExprKind { return ExprThis }
func (n *ThisExpr[R, C, L, F, M, T]) Span() source.Span { return n.Loc }
func (*ThisExpr[R, C, L, F, M, T]) IsEmpty() bool { return false }
func (*ThisExpr[R, C, L, F, M, T]) exprNode() {}

type SuperExpr[R, C, L, F, M, T any] struct {
	Loc source.Span
}

func (*SuperExpr[R, C, L, F, M, T]) Kind() ExprKind { return ExprSuper }
func (n *SuperExpr[R, C, L, F, M, T]) Span() source.Span { return n.Loc }
func (*SuperExpr[R, C, L, F, M, T]) IsEmpty() bool { return false }
func (*SuperExpr[R, C, L, F, M, T]) exprNode() {}

type BreakExpr[R, C, L, F, M, T any] struct {
	Loc source.Span
}

func (*BreakExpr[R, C, L, F, M, T]) Kind() ExprKind { return ExprBreak }
func (n *BreakExpr[R, C, L, F, M, T]) Span() source.Span { return n.Loc }
func (*BreakExpr[R, C, L, F, M, T]) IsEmpty() bool { return false }
func (*BreakExpr[R, C, L, F, M, T]) exprNode() {}

type NullExpr[R, C, L, F, M, T any] struct {
	Loc source.Span
}

func (*NullExpr[R, C, L, F, M, T]) Kind() ExprKind { return ExprNull }
func (n *NullExpr[R, C, L, F, M, T]) Span() source.Span { return n.Loc }
func (*NullExpr[R, C, L, F, M, T]) IsEmpty() bool { return false }
func (*NullExpr[R, C, L, F, M, T]) exprNode() {}
