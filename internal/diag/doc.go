// Package diag defines the diagnostic model shared by the IR passes.
//
// Producers (tree validation, constant-pool loading) emit diagnostics
// through a Reporter; the CLI collects them in a Bag and renders them.
//
// Package diag does not perform any IO. Diagnostic is the central record:
//
//   - Severity – Info, Warning or Error.
//   - Code – compact numeric identifier with a stable string form (codes.go).
//   - Message – short, actionable text.
//   - Primary – the source.Span of the offending node.
//   - Notes – optional secondary spans with extra context.
package diag
