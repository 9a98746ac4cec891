package riverslog

import (
	"context"
	"testing"
)

func TestTraceID_WithContext(t *testing.T) {
	ctx := WithTraceID(context.Background(), "trace-123")

	if got := TraceID(ctx); got != "trace-123" {
		t.Errorf("TraceID() = %s, want trace-123", got)
	}
}

func TestTraceID_WithoutContext(t *testing.T) {
	if got := TraceID(context.Background()); got != "unknown" {
		t.Errorf("TraceID() = %s, want unknown", got)
	}
}

func TestLoggingFunctions_DoNotPanic(t *testing.T) {
	ctx := WithTraceID(context.Background(), "log-test")

	Info(ctx, "info: %s", "value")
	Warn(ctx, "warn: %d", 42)
	Error(ctx, "error: %v", "oops")
	Debug(ctx, "debug: %s", "detail")
	Degraded(ctx, "epa_scorer", "insufficient data for team XXX")
	SnapshotInstalled(ctx, "snap-1", 105000, 32, 5)
	CacheHit(ctx, "pred:snap-1:BUF:MIA:3:2025")
	CacheMiss(ctx, "pred:snap-1:BUF:MIA:3:2025")
}
