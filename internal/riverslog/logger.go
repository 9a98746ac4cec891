// Package riverslog provides leveled, trace-tagged logging for the RIVERS
// engine, in the same style as the reference project's pkg/logging: thin
// wrappers over the standard log package, keyed by a trace id pulled from
// context.Context. Unlike an HTTP service, this engine has no middleware to
// source a request id from, so the trace id is attached by whoever installs
// a snapshot or issues a prediction.
package riverslog

import (
	"context"
	"fmt"
	"log"
)

type traceIDKey struct{}

// WithTraceID attaches a trace id to ctx for the downstream log calls to
// pick up.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceID retrieves the trace id from ctx, or "unknown" if none was set.
func TraceID(ctx context.Context) string {
	if id, ok := ctx.Value(traceIDKey{}).(string); ok && id != "" {
		return id
	}
	return "unknown"
}

// Info logs an info message tagged with ctx's trace id.
func Info(ctx context.Context, format string, args ...interface{}) {
	log.Printf("[INFO] [%s] %s", TraceID(ctx), fmt.Sprintf(format, args...))
}

// Warn logs a warning message tagged with ctx's trace id.
func Warn(ctx context.Context, format string, args ...interface{}) {
	log.Printf("[WARN] [%s] %s", TraceID(ctx), fmt.Sprintf(format, args...))
}

// Error logs an error message tagged with ctx's trace id.
func Error(ctx context.Context, format string, args ...interface{}) {
	log.Printf("[ERROR] [%s] %s", TraceID(ctx), fmt.Sprintf(format, args...))
}

// Debug logs a debug message tagged with ctx's trace id.
func Debug(ctx context.Context, format string, args ...interface{}) {
	log.Printf("[DEBUG] [%s] %s", TraceID(ctx), fmt.Sprintf(format, args...))
}

// Degraded records a local degradation (spec §7 family 3): an empty subset,
// an unknown grade, an unknown injury position, missing weather. These are
// never errors, only diagnostics, but they are worth a log line in
// production.
func Degraded(ctx context.Context, component string, reason string) {
	log.Printf("[DEGRADED] [%s] %s: %s", TraceID(ctx), component, reason)
}

// SnapshotInstalled logs a successful snapshot swap.
func SnapshotInstalled(ctx context.Context, snapshotID string, plays, teams, injuries int) {
	log.Printf("[SNAPSHOT] [%s] installed %s: %d plays, %d teams graded, %d teams with injuries",
		TraceID(ctx), snapshotID, plays, teams, injuries)
}

// CacheHit logs a prediction-cache hit.
func CacheHit(ctx context.Context, key string) {
	log.Printf("[CACHE-HIT] [%s] %s", TraceID(ctx), key)
}

// CacheMiss logs a prediction-cache miss.
func CacheMiss(ctx context.Context, key string) {
	log.Printf("[CACHE-MISS] [%s] %s", TraceID(ctx), key)
}
