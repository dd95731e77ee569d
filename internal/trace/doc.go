// Package trace is the structured event log of a bashate run.
//
// # Usage
//
//	bashate --trace=- --trace-level=file scripts/*.sh
//
// # Levels
//
//   - LevelOff: nothing is written
//   - LevelRun: one span around the whole run
//   - LevelFile: plus one span per scanned file
//   - LevelDebug: plus a point event per logical line
//
// # Context Propagation
//
// The tracer and the current span travel on the context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, "file", trace.ParentFrom(ctx))
//	defer span.End("")
package trace
