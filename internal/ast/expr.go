package ast

import (
	"scriptir/internal/source"
)

// ExprKind enumerates tree node kinds.
type ExprKind uint8

const (
	ExprIdent ExprKind = iota
	ExprConstant
	ExprArrayLit
	ExprInterpolatedString
	ExprDeclare
	ExprCast
	ExprAssign
	ExprCall
	ExprMethodCall
	ExprMember
	ExprArrayElem
	ExprNew
	ExprReturn
	ExprSeq
	ExprSwitch
	ExprGoto
	ExprIf
	ExprConditional
	ExprWhile
	ExprForIn
	ExprBinOp
	ExprUnOp
	ExprThis
	ExprSuper
	ExprBreak
	ExprNull
)

// String returns a human-readable name for the expression kind.
func (k ExprKind) String() string {
	switch k {
	case ExprIdent:
		return "Ident"
	case ExprConstant:
		return "Constant"
	case ExprArrayLit:
		return "ArrayLit"
	case ExprInterpolatedString:
		return "InterpolatedString"
	case ExprDeclare:
		return "Declare"
	case ExprCast:
		return "Cast"
	case ExprAssign:
		return "Assign"
	case ExprCall:
		return "Call"
	case ExprMethodCall:
		return "MethodCall"
	case ExprMember:
		return "Member"
	case ExprArrayElem:
		return "ArrayElem"
	case ExprNew:
		return "New"
	case ExprReturn:
		return "Return"
	case ExprSeq:
		return "Seq"
	case ExprSwitch:
		return "Switch"
	case ExprGoto:
		return "Goto"
	case ExprIf:
		return "If"
	case ExprConditional:
		return "Conditional"
	case ExprWhile:
		return "While"
	case ExprForIn:
		return "ForIn"
	case ExprBinOp:
		return "BinOp"
	case ExprUnOp:
		return "UnOp"
	case ExprThis:
		return "This"
	case ExprSuper:
		return "Super"
	case ExprBreak:
		return "Break"
	case ExprNull:
		return "Null"
	default:
		return "Unknown"
	}
}

// Expr is a node of the program tree.
//
// The tree is shared by every compiler phase. A phase picks what its names
// look like by binding the six type parameters:
//
//	R  identifier reference   (IdentExpr.Name)
//	C  call target            (CallExpr.Callee)
//	L  local binding          (DeclareExpr.Local, ForInExpr.Local)
//	F  method reference       (MethodCallExpr.Func)
//	M  member reference       (MemberExpr.Member)
//	T  type annotation        (casts, declarations, generic arguments, New)
//
// The parse phase binds all names to source.Ident and T to TypeName (see
// SourceExpr); later phases bind resolved handles and reuse every node type.
//
// Nodes are owned top-down; none keeps a reference to its parent.
type Expr[R, C, L, F, M, T any] interface {
	Kind() ExprKind
	// Span returns the syntactic extent of the node.
	Span() source.Span
	// IsEmpty reports whether the node is a structural no-op: a Seq of
	// no-ops or a Goto whose target has been resolved.
	IsEmpty() bool

	exprNode()
}

// Empty returns the canonical empty sequence.
func Empty[R, C, L, F, M, T any]() *Seq[R, C, L, F, M, T] {
	return &Seq[R, C, L, F, M, T]{}
}

// Seq is an ordered block of expressions. Its span runs from the first
// element to the last; an empty Seq spans nothing.
type Seq[R, C, L, F, M, T any] struct {
	Exprs []Expr[R, C, L, F, M, T]
}

func NewSeq[R, C, L, F, M, T any](exprs ...Expr[R, C, L, F, M, T]) *Seq[R, C, L, F, M, T] {
	return &Seq[R, C, L, F, M, T]{Exprs: exprs}
}

func (*Seq[R, C, L, F, M, T]) Kind() ExprKind { return ExprSeq }
func (*Seq[R, C, L, F, M, T]) exprNode()      {}

func (s *Seq[R, C, L, F, M, T]) Span() source.Span {
	if s == nil || len(s.Exprs) == 0 {
		return source.NoSpan
	}
	first := s.Exprs[0].Span()
	last := s.Exprs[len(s.Exprs)-1].Span()
	return first.Merge(last)
}

func (s *Seq[R, C, L, F, M, T]) IsEmpty() bool {
	if s == nil {
		return true
	}
	for _, e := range s.Exprs {
		if !e.IsEmpty() {
			return false
		}
	}
	return true
}

func (s *Seq[R, C, L, F, M, T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Exprs)
}

// Append adds exprs to the end of the sequence.
func (s *Seq[R, C, L, F, M, T]) Append(exprs ...Expr[R, C, L, F, M, T]) {
	s.Exprs = append(s.Exprs, exprs...)
}
