// Package trace is the structured event log of jsrestyle.
//
// Events are written to stderr or a file when tracing is enabled:
//
//	jsrestyle --trace=- --trace-level=detail src/
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: only failures
//   - LevelPhase: run boundaries
//   - LevelDetail: one span per file
//   - LevelDebug: every rewrite step
//
// # Context propagation
//
// The tracer travels with the context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, path, parentID)
//	defer span.End("")
package trace
