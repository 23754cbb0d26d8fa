package ast

import (
	"io"

	"scriptir/internal/source"
)

// The parse phase binds every name slot to a plain source.Ident and type
// annotations to TypeName.
type (
	SourceExpr                   = Expr[source.Ident, source.Ident, source.Ident, source.Ident, source.Ident, TypeName]
	SourceSeq                    = Seq[source.Ident, source.Ident, source.Ident, source.Ident, source.Ident, TypeName]
	SourceSwitchCase             = SwitchCase[source.Ident, source.Ident, source.Ident, source.Ident, source.Ident, TypeName]
	SourceInterpolatedPart       = InterpolatedPart[source.Ident, source.Ident, source.Ident, source.Ident, source.Ident, TypeName]
	SourceIdentExpr              = IdentExpr[source.Ident, source.Ident, source.Ident, source.Ident, source.Ident, TypeName]
	SourceConstExpr              = ConstExpr[source.Ident, source.Ident, source.Ident, source.Ident, source.Ident, TypeName]
	SourceArrayLitExpr           = ArrayLitExpr[source.Ident, source.Ident, source.Ident, source.Ident, source.Ident, TypeName]
	SourceInterpolatedStringExpr = InterpolatedStringExpr[source.Ident, source.Ident, source.Ident, source.Ident, source.Ident, TypeName]
	SourceDeclareExpr            = DeclareExpr[source.Ident, source.Ident, source.Ident, source.Ident, source.Ident, TypeName]
	SourceCastExpr               = CastExpr[source.Ident, source.Ident, source.Ident, source.Ident, source.Ident, TypeName]
	SourceAssignExpr             = AssignExpr[source.Ident, source.Ident, source.Ident, source.Ident, source.Ident, TypeName]
	SourceCallExpr               = CallExpr[source.Ident, source.Ident, source.Ident, source.Ident, source.Ident, TypeName]
	SourceMethodCallExpr         = MethodCallExpr[source.Ident, source.Ident, source.Ident, source.Ident, source.Ident, TypeName]
	SourceMemberExpr             = MemberExpr[source.Ident, source.Ident, source.Ident, source.Ident, source.Ident, TypeName]
	SourceArrayElemExpr          = ArrayElemExpr[source.Ident, source.Ident, source.Ident, source.Ident, source.Ident, TypeName]
	SourceNewExpr                = NewExpr[source.Ident, source.Ident, source.Ident, source.Ident, source.Ident, TypeName]
	SourceReturnExpr             = ReturnExpr[source.Ident, source.Ident, source.Ident, source.Ident, source.Ident, TypeName]
	SourceSwitchExpr             = SwitchExpr[source.Ident, source.Ident, source.Ident, source.Ident, source.Ident, TypeName]
	SourceGotoExpr               = GotoExpr[source.Ident, source.Ident, source.Ident, source.Ident, source.Ident, TypeName]
	SourceIfExpr                 = IfExpr[source.Ident, source.Ident, source.Ident, source.Ident, source.Ident, TypeName]
	SourceConditionalExpr        = ConditionalExpr[source.Ident, source.Ident, source.Ident, source.Ident, source.Ident, TypeName]
	SourceWhileExpr              = WhileExpr[source.Ident, source.Ident, source.Ident, source.Ident, source.Ident, TypeName]
	SourceForInExpr              = ForInExpr[source.Ident, source.Ident, source.Ident, source.Ident, source.Ident, TypeName]
	SourceBinOpExpr              = BinOpExpr[source.Ident, source.Ident, source.Ident, source.Ident, source.Ident, TypeName]
	SourceUnOpExpr               = UnOpExpr[source.Ident, source.Ident, source.Ident, source.Ident, source.Ident, TypeName]
	SourceThisExpr               = ThisExpr[source.Ident, source.Ident, source.Ident, source.Ident, source.Ident, TypeName]
	SourceSuperExpr              = SuperExpr[source.Ident, source.Ident, source.Ident, source.Ident, source.Ident, TypeName]
	SourceBreakExpr              = BreakExpr[source.Ident, source.Ident, source.Ident, source.Ident, source.Ident, TypeName]
	SourceNullExpr               = NullExpr[source.Ident, source.Ident, source.Ident, source.Ident, source.Ident, TypeName]
)

// SourceEmpty returns an empty parse-phase sequence.
func SourceEmpty() *SourceSeq {
	return Empty[source.Ident, source.Ident, source.Ident, source.Ident, source.Ident, TypeName]()
}

// NewSourceSeq builds a parse-phase sequence.
func NewSourceSeq(exprs ...SourceExpr) *SourceSeq {
	return &SourceSeq{Exprs: exprs}
}

// The helpers below pin the phase for the walkers whose only argument is an
// Expr, since Go cannot infer the payload types from an interface value.

// SourceChildren is Children for parse-phase trees.
func SourceChildren(e SourceExpr) []SourceExpr {
	return Children[source.Ident, source.Ident, source.Ident, source.Ident, source.Ident, TypeName](e)
}

// PendingSourceJumps is PendingJumps for parse-phase trees.
func PendingSourceJumps(e SourceExpr) []*SourceGotoExpr {
	return PendingJumps[source.Ident, source.Ident, source.Ident, source.Ident, source.Ident, TypeName](e)
}

// ResolveSourceJumps is ResolveJumps for parse-phase trees.
func ResolveSourceJumps(e SourceExpr, positions ...uint16) int {
	return ResolveJumps[source.Ident, source.Ident, source.Ident, source.Ident, source.Ident, TypeName](e, positions...)
}

// DumpSource is Dump for parse-phase trees.
func DumpSource(w io.Writer, e SourceExpr, opts DumpOptions) error {
	return Dump[source.Ident, source.Ident, source.Ident, source.Ident, source.Ident, TypeName](w, e, opts)
}
