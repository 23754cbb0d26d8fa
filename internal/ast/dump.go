package ast

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// DumpOptions controls Dump output.
type DumpOptions struct {
	Indent int  // spaces per level, 2 when zero
	Spans  bool // append the span of every node in an aligned column
}

type dumpLine struct {
	depth int
	label string
	span  string
}

// Dump writes an indented outline of the tree rooted at e, one node per line.
// Payloads are printed with fmt, so phases whose handles implement
// fmt.Stringer read naturally. Use DumpSource for parse-phase trees.
func Dump[R, C, L, F, M, T any](w io.Writer, e Expr[R, C, L, F, M, T], opts DumpOptions) error {
	if opts.Indent <= 0 {
		opts.Indent = 2
	}

	var lines []dumpLine
	var walk func(e Expr[R, C, L, F, M, T], depth int)
	walk = func(e Expr[R, C, L, F, M, T], depth int) {
		lines = append(lines, dumpLine{depth: depth, label: nodeLabel[R, C, L, F, M, T](e), span: e.Span().String()})
		if s, ok := e.(*InterpolatedStringExpr[R, C, L, F, M, T]); ok {
			for _, p := range s.Parts {
				if p.Expr != nil {
					walk(p.Expr, depth+1)
				}
				lines = append(lines, dumpLine{depth: depth + 1, label: "Text " + strconv.Quote(p.Suffix)})
			}
			return
		}
		for _, c := range Children[R, C, L, F, M, T](e) {
			walk(c, depth+1)
		}
	}
	if e != nil {
		walk(e, 0)
	}

	width := 0
	for _, l := range lines {
		width = max(width, l.depth*opts.Indent+runewidth.StringWidth(l.label))
	}

	bw := bufio.NewWriter(w)
	for _, l := range lines {
		text := strings.Repeat(" ", l.depth*opts.Indent) + l.label
		if opts.Spans && l.span != "" {
			text = runewidth.FillRight(text, width) + "  " + l.span
		}
		if _, err := bw.WriteString(text + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func nodeLabel[R, C, L, F, M, T any](e Expr[R, C, L, F, M, T]) string {
	kind := e.Kind().String()
	switch n := e.(type) {
	case *IdentExpr[R, C, L, F, M, T]:
		return kind + " " + fmt.Sprint(n.Name)
	case *ConstExpr[R, C, L, F, M, T]:
		return kind + " " + n.Value.String()
	case *ArrayLitExpr[R, C, L, F, M, T]:
		if n.Type != nil {
			return kind + " " + fmt.Sprint(*n.Type)
		}
	case *InterpolatedStringExpr[R, C, L, F, M, T]:
		return kind + " " + strconv.Quote(n.Prefix)
	case *DeclareExpr[R, C, L, F, M, T]:
		if n.Type != nil {
			return fmt.Sprintf("%s %v: %v", kind, n.Local, *n.Type)
		}
		return kind + " " + fmt.Sprint(n.Local)
	case *CastExpr[R, C, L, F, M, T]:
		return kind + " " + fmt.Sprint(n.Type)
	case *CallExpr[R, C, L, F, M, T]:
		if len(n.TypeArgs) > 0 {
			args := make([]string, len(n.TypeArgs))
			for i, t := range n.TypeArgs {
				args[i] = fmt.Sprint(t)
			}
			return fmt.Sprintf("%s %v<%s>", kind, n.Callee, strings.Join(args, ", "))
		}
		return kind + " " + fmt.Sprint(n.Callee)
	case *MethodCallExpr[R, C, L, F, M, T]:
		return kind + " " + fmt.Sprint(n.Func)
	case *MemberExpr[R, C, L, F, M, T]:
		return kind + " " + fmt.Sprint(n.Member)
	case *NewExpr[R, C, L, F, M, T]:
		return kind + " " + fmt.Sprint(n.Type)
	case *ForInExpr[R, C, L, F, M, T]:
		return kind + " " + fmt.Sprint(n.Local)
	case *GotoExpr[R, C, L, F, M, T]:
		return kind + " " + n.Target.String()
	case *BinOpExpr[R, C, L, F, M, T]:
		return kind + " " + n.Op.Symbol()
	case *UnOpExpr[R, C, L, F, M, T]:
		return kind + " " + n.Op.Symbol()
	}
	return kind
}
