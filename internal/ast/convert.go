package ast

import (
	"fmt"

	"scriptir/internal/source"
)

// Mapper translates the six name payloads of one phase into the next.
// Each call gets the span of the node that owns the payload.
type Mapper[R, C, L, F, M, T, R2, C2, L2, F2, M2, T2 any] interface {
	Reference(name R, span source.Span) (R2, error)
	Callable(name C, span source.Span) (C2, error)
	Local(name L, span source.Span) (L2, error)
	Function(name F, span source.Span) (F2, error)
	Member(name M, span source.Span) (M2, error)
	Type(t T, span source.Span) (T2, error)
}

// ConvertError reports which node a Mapper rejected.
type ConvertError struct {
	Kind ExprKind
	Span source.Span
	Err  error
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("convert %s at %s: %v", e.Kind, e.Span, e.Err)
}

func (e *ConvertError) Unwrap() error { return e.Err }

// Convert rebuilds e under another phase. Shape and spans are preserved
// node for node; only the name payloads go through m. The input is not
// modified. The first Mapper error stops the conversion.
func Convert[R, C, L, F, M, T, R2, C2, L2, F2, M2, T2 any](
	e Expr[R, C, L, F, M, T],
	m Mapper[R, C, L, F, M, T, R2, C2, L2, F2, M2, T2],
) (Expr[R2, C2, L2, F2, M2, T2], error) {
	c := converter[R, C, L, F, M, T, R2, C2, L2, F2, M2, T2]{m: m}
	return c.expr(e)
}

type converter[R, C, L, F, M, T, R2, C2, L2, F2, M2, T2 any] struct {
	m Mapper[R, C, L, F, M, T, R2, C2, L2, F2, M2, T2]
}

func fail(kind ExprKind, span source.Span, err error) error {
	return &ConvertError{Kind: kind, Span: span, Err: err}
}

func (c converter[R, C, L, F, M, T, R2, C2, L2, F2, M2, T2]) expr(e Expr[R, C, L, F, M, T]) (Expr[R2, C2, L2, F2, M2, T2], error) {
	if e == nil {
		return nil, nil
	}

	switch n := e.(type) {
	case *IdentExpr[R, C, L, F, M, T]:
		name, err := c.m.Reference(n.Name, n.Loc)
		if err != nil {
			return nil, fail(ExprIdent, n.Loc, err)
		}
		return &IdentExpr[R2, C2, L2, F2, M2, T2]{Name: name, Loc: n.Loc}, nil

	case *ConstExpr[R, C, L, F, M, T]:
		return &ConstExpr[R2, C2, L2, F2, M2, T2]{Value: n.Value, Loc: n.Loc}, nil

	case *ArrayLitExpr[R, C, L, F, M, T]:
		elems, err := c.exprs(n.Elems)
		if err != nil {
			return nil, err
		}
		typ, err := c.optType(n.Type, ExprArrayLit, n.Loc)
		if err != nil {
			return nil, err
		}
		return &ArrayLitExpr[R2, C2, L2, F2, M2, T2]{Elems: elems, Type: typ, Loc: n.Loc}, nil

	case *InterpolatedStringExpr[R, C, L, F, M, T]:
		parts := make([]InterpolatedPart[R2, C2, L2, F2, M2, T2], len(n.Parts))
		for i, p := range n.Parts {
			pe, err := c.expr(p.Expr)
			if err != nil {
				return nil, err
			}
			parts[i] = InterpolatedPart[R2, C2, L2, F2, M2, T2]{Expr: pe, Suffix: p.Suffix}
		}
		return &InterpolatedStringExpr[R2, C2, L2, F2, M2, T2]{Prefix: n.Prefix, Parts: parts, Loc: n.Loc}, nil

	case *DeclareExpr[R, C, L, F, M, T]:
		local, err := c.m.Local(n.Local, n.Loc)
		if err != nil {
			return nil, fail(ExprDeclare, n.Loc, err)
		}
		typ, err := c.optType(n.Type, ExprDeclare, n.Loc)
		if err != nil {
			return nil, err
		}
		init, err := c.expr(n.Init)
		if err != nil {
			return nil, err
		}
		return &DeclareExpr[R2, C2, L2, F2, M2, T2]{Local: local, Type: typ, Init: init, Loc: n.Loc}, nil

	case *CastExpr[R, C, L, F, M, T]:
		typ, err := c.m.Type(n.Type, n.Loc)
		if err != nil {
			return nil, fail(ExprCast, n.Loc, err)
		}
		inner, err := c.expr(n.Expr)
		if err != nil {
			return nil, err
		}
		return &CastExpr[R2, C2, L2, F2, M2, T2]{Type: typ, Expr: inner, Loc: n.Loc}, nil

	case *AssignExpr[R, C, L, F, M, T]:
		left, right, err := c.pair(n.Left, n.Right)
		if err != nil {
			return nil, err
		}
		return &AssignExpr[R2, C2, L2, F2, M2, T2]{Left: left, Right: right, Loc: n.Loc}, nil

	case *CallExpr[R, C, L, F, M, T]:
		callee, err := c.m.Callable(n.Callee, n.Loc)
		if err != nil {
			return nil, fail(ExprCall, n.Loc, err)
		}
		var typeArgs []T2
		if n.TypeArgs != nil {
			typeArgs = make([]T2, len(n.TypeArgs))
			for i, t := range n.TypeArgs {
				if typeArgs[i], err = c.m.Type(t, n.Loc); err != nil {
					return nil, fail(ExprCall, n.Loc, err)
				}
			}
		}
		args, err := c.exprs(n.Args)
		if err != nil {
			return nil, err
		}
		return &CallExpr[R2, C2, L2, F2, M2, T2]{Callee: callee, TypeArgs: typeArgs, Args: args, Loc: n.Loc}, nil

	case *MethodCallExpr[R, C, L, F, M, T]:
		recv, err := c.expr(n.Recv)
		if err != nil {
			return nil, err
		}
		fn, err := c.m.Function(n.Func, n.Loc)
		if err != nil {
			return nil, fail(ExprMethodCall, n.Loc, err)
		}
		args, err := c.exprs(n.Args)
		if err != nil {
			return nil, err
		}
		return &MethodCallExpr[R2, C2, L2, F2, M2, T2]{Recv: recv, Func: fn, Args: args, Loc: n.Loc}, nil

	case *MemberExpr[R, C, L, F, M, T]:
		recv, err := c.expr(n.Recv)
		if err != nil {
			return nil, err
		}
		member, err := c.m.Member(n.Member, n.Loc)
		if err != nil {
			return nil, fail(ExprMember, n.Loc, err)
		}
		return &MemberExpr[R2, C2, L2, F2, M2, T2]{Recv: recv, Member: member, Loc: n.Loc}, nil

	case *ArrayElemExpr[R, C, L, F, M, T]:
		arr, idx, err := c.pair(n.Array, n.Index)
		if err != nil {
			return nil, err
		}
		return &ArrayElemExpr[R2, C2, L2, F2, M2, T2]{Array: arr, Index: idx, Loc: n.Loc}, nil

	case *NewExpr[R, C, L, F, M, T]:
		typ, err := c.m.Type(n.Type, n.Loc)
		if err != nil {
			return nil, fail(ExprNew, n.Loc, err)
		}
		args, err := c.exprs(n.Args)
		if err != nil {
			return nil, err
		}
		return &NewExpr[R2, C2, L2, F2, M2, T2]{Type: typ, Args: args, Loc: n.Loc}, nil

	case *ReturnExpr[R, C, L, F, M, T]:
		val, err := c.expr(n.Value)
		if err != nil {
			return nil, err
		}
		return &ReturnExpr[R2, C2, L2, F2, M2, T2]{Value: val, Loc: n.Loc}, nil

	case *Seq[R, C, L, F, M, T]:
		out, err := c.optSeq(n)
		if err != nil || out == nil {
			return nil, err
		}
		return out, nil

	case *SwitchExpr[R, C, L, F, M, T]:
		scrutinee, err := c.expr(n.Scrutinee)
		if err != nil {
			return nil, err
		}
		cases := make([]SwitchCase[R2, C2, L2, F2, M2, T2], len(n.Cases))
		for i := range n.Cases {
			matcher, err := c.expr(n.Cases[i].Matcher)
			if err != nil {
				return nil, err
			}
			body, err := c.seq(&n.Cases[i].Body)
			if err != nil {
				return nil, err
			}
			cases[i] = SwitchCase[R2, C2, L2, F2, M2, T2]{Matcher: matcher, Body: body}
		}
		def, err := c.optSeq(n.Default)
		if err != nil {
			return nil, err
		}
		return &SwitchExpr[R2, C2, L2, F2, M2, T2]{Scrutinee: scrutinee, Cases: cases, Default: def, Loc: n.Loc}, nil

	case *GotoExpr[R, C, L, F, M, T]:
		return &GotoExpr[R2, C2, L2, F2, M2, T2]{Target: n.Target, Loc: n.Loc}, nil

	case *IfExpr[R, C, L, F, M, T]:
		cond, err := c.expr(n.Cond)
		if err != nil {
			return nil, err
		}
		then, err := c.seq(&n.Then)
		if err != nil {
			return nil, err
		}
		els, err := c.optSeq(n.Else)
		if err != nil {
			return nil, err
		}
		return &IfExpr[R2, C2, L2, F2, M2, T2]{Cond: cond, Then: then, Else: els, Loc: n.Loc}, nil

	case *ConditionalExpr[R, C, L, F, M, T]:
		cond, err := c.expr(n.Cond)
		if err != nil {
			return nil, err
		}
		then, els, err := c.pair(n.Then, n.Else)
		if err != nil {
			return nil, err
		}
		return &ConditionalExpr[R2, C2, L2, F2, M2, T2]{Cond: cond, Then: then, Else: els, Loc: n.Loc}, nil

	case *WhileExpr[R, C, L, F, M, T]:
		cond, err := c.expr(n.Cond)
		if err != nil {
			return nil, err
		}
		body, err := c.seq(&n.Body)
		if err != nil {
			return nil, err
		}
		return &WhileExpr[R2, C2, L2, F2, M2, T2]{Cond: cond, Body: body, Loc: n.Loc}, nil

	case *ForInExpr[R, C, L, F, M, T]:
		local, err := c.m.Local(n.Local, n.Loc)
		if err != nil {
			return nil, fail(ExprForIn, n.Loc, err)
		}
		iter, err := c.expr(n.Iter)
		if err != nil {
			return nil, err
		}
		body, err := c.seq(&n.Body)
		if err != nil {
			return nil, err
		}
		return &ForInExpr[R2, C2, L2, F2, M2, T2]{Local: local, Iter: iter, Body: body, Loc: n.Loc}, nil

	case *BinOpExpr[R, C, L, F, M, T]:
		left, right, err := c.pair(n.Left, n.Right)
		if err != nil {
			return nil, err
		}
		return &BinOpExpr[R2, C2, L2, F2, M2, T2]{Left: left, Right: right, Op: n.Op, Loc: n.Loc}, nil

	case *UnOpExpr[R, C, L, F, M, T]:
		operand, err := c.expr(n.Operand)
		if err != nil {
			return nil, err
		}
		return &UnOpExpr[R2, C2, L2, F2, M2, T2]{Operand: operand, Op: n.Op, Loc: n.Loc}, nil

	case *ThisExpr[R, C, L, F, M, T]:
		return &ThisExpr[R2, C2, L2, F2, M2, T2]{Loc: n.Loc}, nil
	case *SuperExpr[R, C, L, F, M, T]:
		return &SuperExpr[R2, C2, L2, F2, M2, T2]{Loc: n.Loc}, nil
	case *BreakExpr[R, C, L, F, M, T]:
		return &BreakExpr[R2, C2, L2, F2, M2, T2]{Loc: n.Loc}, nil
	case *NullExpr[R, C, L, F, M, T]:
		return &NullExpr[R2, C2, L2, F2, M2, T2]{Loc: n.Loc}, nil
	}

	return nil, fmt.Errorf("convert: unexpected node %T", e)
}

func (c converter[R, C, L, F, M, T, R2, C2, L2, F2, M2, T2]) pair(a, b Expr[R, C, L, F, M, T]) (Expr[R2, C2, L2, F2, M2, T2], Expr[R2, C2, L2, F2, M2, T2], error) {
	ca, err := c.expr(a)
	if err != nil {
		return nil, nil, err
	}
	cb, err := c.expr(b)
	if err != nil {
		return nil, nil, err
	}
	return ca, cb, nil
}

func (c converter[R, C, L, F, M, T, R2, C2, L2, F2, M2, T2]) exprs(es []Expr[R, C, L, F, M, T]) ([]Expr[R2, C2, L2, F2, M2, T2], error) {
	if es == nil {
		return nil, nil
	}
	out := make([]Expr[R2, C2, L2, F2, M2, T2], len(es))
	for i, e := range es {
		ce, err := c.expr(e)
		if err != nil {
			return nil, err
		}
		out[i] = ce
	}
	return out, nil
}

func (c converter[R, C, L, F, M, T, R2, C2, L2, F2, M2, T2]) seq(s *Seq[R, C, L, F, M, T]) (Seq[R2, C2, L2, F2, M2, T2], error) {
	exprs, err := c.exprs(s.Exprs)
	if err != nil {
		return Seq[R2, C2, L2, F2, M2, T2]{}, err
	}
	return Seq[R2, C2, L2, F2, M2, T2]{Exprs: exprs}, nil
}

// optSeq keeps a nil sequence nil.
func (c converter[R, C, L, F, M, T, R2, C2, L2, F2, M2, T2]) optSeq(s *Seq[R, C, L, F, M, T]) (*Seq[R2, C2, L2, F2, M2, T2], error) {
	if s == nil {
		return nil, nil
	}
	out, err := c.seq(s)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c converter[R, C, L, F, M, T, R2, C2, L2, F2, M2, T2]) optType(t *T, kind ExprKind, span source.Span) (*T2, error) {
	if t == nil {
		return nil, nil
	}
	out, err := c.m.Type(*t, span)
	if err != nil {
		return nil, fail(kind, span, err)
	}
	return &out, nil
}
