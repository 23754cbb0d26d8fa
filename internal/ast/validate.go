package ast

import (
	"errors"
	"fmt"

	"scriptir/internal/diag"
	"scriptir/internal/source"
)

// ErrTypeArity is returned by ValidateTypeName for a wrapper or array with
// the wrong number of type arguments.
var ErrTypeArity = errors.New("wrong number of type arguments")

// ValidateTypeName checks every level of t: names must be non-empty and
// ref, wref, script_ref and array take exactly one argument.
func ValidateTypeName(t TypeName) error {
	if code, msg, ok := CheckTypeName(t); !ok {
		if code == diag.TypEmptyName {
			return fmt.Errorf("%w: %s", ErrMalformedRepr, msg)
		}
		return fmt.Errorf("%w: %s", ErrTypeArity, msg)
	}
	return nil
}

// CheckTypeName is ValidateTypeName reporting the diagnostic code and
// message of the first problem instead of an error.
func CheckTypeName(t TypeName) (diag.Code, string, bool) {
	if t.name.IsEmpty() {
		return diag.TypEmptyName, "type name is empty", false
	}
	kind := t.Kind()
	if want := kind.Arity(); want >= 0 && len(t.args) != want {
		code := diag.TypWrapperArity
		if kind == KindArray {
			code = diag.TypArrayArity
		}
		return code, fmt.Sprintf("%s expects %d type argument, got %d in %s", kind, want, len(t.args), t.Pretty()), false
	}
	for _, arg := range t.args {
		if code, msg, ok := CheckTypeName(arg); !ok {
			return code, msg, false
		}
	}
	return diag.UnknownCode, "", true
}

// ValidateOptions tunes Validate.
type ValidateOptions struct {
	// Structured reports every Goto that is still unresolved. Set it after
	// the control-flow structuring pass has run.
	Structured bool
}

// Validate checks a parse-phase tree for problems producers are expected to
// avoid: malformed type annotations, missing operands, unknown operators and,
// with opts.Structured, leftover jumps. It returns true when nothing was
// reported.
func Validate(e SourceExpr, r diag.Reporter, opts ValidateOptions) bool {
	if r == nil {
		r = diag.NopReporter{}
	}
	v := &validator{r: r, opts: opts, clean: true}
	Inspect(e, v.visit)
	return v.clean
}

type validator struct {
	r     diag.Reporter
	opts  ValidateOptions
	clean bool
}

func (v *validator) typ(t TypeName, span source.Span) {
	if code, msg, ok := CheckTypeName(t); !ok {
		diag.ReportError(v.r, code, span, msg).Emit()
		v.clean = false
	}
}

func (v *validator) optTyp(t *TypeName, span source.Span) {
	if t != nil {
		v.typ(*t, span)
	}
}

func (v *validator) operands(kind ExprKind, span source.Span, operands ...SourceExpr) {
	for _, op := range operands {
		if op == nil {
			diag.ReportError(v.r, diag.IRMissingOperand, span, kind.String()+" is missing an operand").Emit()
			v.clean = false
			return
		}
	}
}

func (v *validator) visit(e SourceExpr) bool {
	switch n := e.(type) {
	case *SourceArrayLitExpr:
		v.optTyp(n.Type, n.Loc)
	case *SourceInterpolatedStringExpr:
		for _, p := range n.Parts {
			v.operands(ExprInterpolatedString, n.Loc, p.Expr)
		}
	case *SourceDeclareExpr:
		v.optTyp(n.Type, n.Loc)
	case *SourceCastExpr:
		v.typ(n.Type, n.Loc)
		v.operands(ExprCast, n.Loc, n.Expr)
	case *SourceAssignExpr:
		v.operands(ExprAssign, n.Loc, n.Left, n.Right)
	case *SourceCallExpr:
		for _, t := range n.TypeArgs {
			v.typ(t, n.Loc)
		}
	case *SourceMethodCallExpr:
		v.operands(ExprMethodCall, n.Loc, n.Recv)
	case *SourceMemberExpr:
		v.operands(ExprMember, n.Loc, n.Recv)
	case *SourceArrayElemExpr:
		v.operands(ExprArrayElem, n.Loc, n.Array, n.Index)
	case *SourceNewExpr:
		v.typ(n.Type, n.Loc)
	case *SourceSwitchExpr:
		v.operands(ExprSwitch, n.Loc, n.Scrutinee)
		for _, c := range n.Cases {
			v.operands(ExprSwitch, n.Loc, c.Matcher)
		}
	case *SourceGotoExpr:
		if v.opts.Structured && !n.Target.Resolved {
			diag.ReportWarning(v.r, diag.IRUnresolvedJump, n.Loc,
				fmt.Sprintf("jump to %d was not absorbed into a structured statement", n.Target.Position)).Emit()
			v.clean = false
		}
	case *SourceIfExpr:
		v.operands(ExprIf, n.Loc, n.Cond)
	case *SourceConditionalExpr:
		v.operands(ExprConditional, n.Loc, n.Cond, n.Then, n.Else)
	case *SourceWhileExpr:
		v.operands(ExprWhile, n.Loc, n.Cond)
	case *SourceForInExpr:
		v.operands(ExprForIn, n.Loc, n.Iter)
	case *SourceBinOpExpr:
		v.operands(ExprBinOp, n.Loc, n.Left, n.Right)
		if !n.Op.Valid() {
			diag.ReportError(v.r, diag.IRInvalidOperator, n.Loc, fmt.Sprintf("unknown binary operator %d", n.Op)).Emit()
			v.clean = false
		}
	case *SourceUnOpExpr:
		v.operands(ExprUnOp, n.Loc, n.Operand)
		if !n.Op.Valid() {
			diag.ReportError(v.r, diag.IRInvalidOperator, n.Loc, fmt.Sprintf("unknown unary operator %d", n.Op)).Emit()
			v.clean = false
		}
	}
	return true
}
