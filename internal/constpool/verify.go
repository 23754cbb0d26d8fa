package constpool

import (
	"errors"
	"fmt"

	"scriptir/internal/ast"
	"scriptir/internal/diag"
	"scriptir/internal/source"
)

// Verify reports type entries that are not well formed (bare ref, array
// with two arguments, ...) and returns true when there were none.
// Pool entries carry no source position, so diagnostics use NoSpan and name
// the entry in the message.
func Verify(p *Pool, file string, r diag.Reporter) bool {
	if r == nil {
		r = diag.NopReporter{}
	}
	ok := true
	for i, t := range p.Types() {
		if err := ast.ValidateTypeName(t); err != nil {
			diag.ReportError(r, diag.PoolBadTypeRepr, source.NoSpan,
				fmt.Sprintf("%s: type %d (%s): %v", file, i, t.Repr(), err)).Emit()
			ok = false
		}
	}
	return ok
}

// ReportLoadError converts a Load failure into a diagnostic. Load errors
// already name the file.
func ReportLoadError(r diag.Reporter, err error) {
	code := diag.PoolLoadError
	if errors.Is(err, ErrSchema) {
		code = diag.PoolSchema
	}
	diag.ReportError(r, code, source.NoSpan, err.Error()).Emit()
}
