package ast

// Children returns the direct sub-expressions of e in source order.
// Statement bodies are returned as *Seq nodes pointing into e, so callers
// may mutate through them.
//
// The phase parameters cannot be inferred from an Expr value; generic code
// instantiates explicitly, parse-phase code calls SourceChildren.
func Children[R, C, L, F, M, T any](e Expr[R, C, L, F, M, T]) []Expr[R, C, L, F, M, T] {
	var out []Expr[R, C, L, F, M, T]
	add := func(es ...Expr[R, C, L, F, M, T]) {
		for _, c := range es {
			if c != nil {
				out = append(out, c)
			}
		}
	}

	switch n := e.(type) {
	case *Seq[R, C, L, F, M, T]:
		if n != nil {
			add(n.Exprs...)
		}
	case *ArrayLitExpr[R, C, L, F, M, T]:
		add(n.Elems...)
	case *InterpolatedStringExpr[R, C, L, F, M, T]:
		for _, p := range n.Parts {
			add(p.Expr)
		}
	case *DeclareExpr[R, C, L, F, M, T]:
		add(n.Init)
	case *CastExpr[R, C, L, F, M, T]:
		add(n.Expr)
	case *AssignExpr[R, C, L, F, M, T]:
		add(n.Left, n.Right)
	case *CallExpr[R, C, L, F, M, T]:
		add(n.Args...)
	case *MethodCallExpr[R, C, L, F, M, T]:
		add(n.Recv)
		add(n.Args...)
	case *MemberExpr[R, C, L, F, M, T]:
		add(n.Recv)
	case *ArrayElemExpr[R, C, L, F, M, T]:
		add(n.Array, n.Index)
	case *NewExpr[R, C, L, F, M, T]:
		add(n.Args...)
	case *ReturnExpr[R, C, L, F, M, T]:
		add(n.Value)
	case *SwitchExpr[R, C, L, F, M, T]:
		add(n.Scrutinee)
		for i := range n.Cases {
			add(n.Cases[i].Matcher, &n.Cases[i].Body)
		}
		if n.Default != nil {
			add(n.Default)
		}
	case *IfExpr[R, C, L, F, M, T]:
		add(n.Cond, &n.Then)
		if n.Else != nil {
			add(n.Else)
		}
	case *ConditionalExpr[R, C, L, F, M, T]:
		add(n.Cond, n.Then, n.Else)
	case *WhileExpr[R, C, L, F, M, T]:
		add(n.Cond, &n.Body)
	case *ForInExpr[R, C, L, F, M, T]:
		add(n.Iter, &n.Body)
	case *BinOpExpr[R, C, L, F, M, T]:
		add(n.Left, n.Right)
	case *UnOpExpr[R, C, L, F, M, T]:
		add(n.Operand)
	}
	return out
}

// Inspect walks the tree rooted at e in pre-order. If f returns false the
// children of that node are skipped.
func Inspect[R, C, L, F, M, T any](e Expr[R, C, L, F, M, T], f func(Expr[R, C, L, F, M, T]) bool) {
	if e == nil || !f(e) {
		return
	}
	for _, c := range Children[R, C, L, F, M, T](e) {
		Inspect(c, f)
	}
}
