// Package trace records what the scriptir tools are doing: which command
// runs, which pool files are read or written, how long each step takes.
//
// Enable it from the command line:
//
//	scriptir pool dump --trace=- --trace-level=detail game.pool
//
// or from scriptir.toml:
//
//	[trace]
//	level = "phase"
//	format = "ndjson"
//	output = "trace.ndjson"
//
// # Tracers
//
//   - Nop: zero overhead when tracing is off
//   - StreamTracer: writes every event as it happens (text or NDJSON)
//   - RingTracer: keeps the last N events in memory, dumped when a command fails
//   - MultiTracer: fans out to several tracers
//
// # Levels and scopes
//
// A level admits every scope up to its granularity:
//
//   - LevelPhase: ScopeCommand and ScopePass
//   - LevelDetail: adds ScopeFile (one event pair per pool file)
//   - LevelDebug: adds ScopeNode (per entry)
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span, ctx := trace.Start(ctx, trace.ScopePass, "pool.load")
//	defer span.End("")
//
// Library code that does not take a context stays silent.
package trace
