package ast

import "slices"

// PendingJumps returns the unresolved Gotos under e in pre-order.
func PendingJumps[R, C, L, F, M, T any](e Expr[R, C, L, F, M, T]) []*GotoExpr[R, C, L, F, M, T] {
	var out []*GotoExpr[R, C, L, F, M, T]
	Inspect(e, func(n Expr[R, C, L, F, M, T]) bool {
		if g, ok := n.(*GotoExpr[R, C, L, F, M, T]); ok && !g.Target.Resolved {
			out = append(out, g)
		}
		return true
	})
	return out
}

// ResolveJumps marks every Goto under e whose target position is listed and
// returns how many changed state. Already resolved Gotos are left alone.
func ResolveJumps[R, C, L, F, M, T any](e Expr[R, C, L, F, M, T], positions ...uint16) int {
	resolved := 0
	for _, g := range PendingJumps[R, C, L, F, M, T](e) {
		if slices.Contains(positions, g.Target.Position) {
			g.Resolve()
			resolved++
		}
	}
	return resolved
}

// StripInert returns a copy of s without the direct elements that are
// no-ops (resolved Gotos, empty nested sequences). Nodes are shared with s.
func StripInert[R, C, L, F, M, T any](s *Seq[R, C, L, F, M, T]) *Seq[R, C, L, F, M, T] {
	out := &Seq[R, C, L, F, M, T]{}
	if s == nil {
		return out
	}
	for _, e := range s.Exprs {
		if e.IsEmpty() {
			continue
		}
		out.Exprs = append(out.Exprs, e)
	}
	return out
}
