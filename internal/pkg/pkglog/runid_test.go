package pkglog

import (
	"context"
	"testing"
)

func TestRunID(t *testing.T) {
	ctx := context.Background()
	if got := GetRunID(ctx); got != "[invalid_run_id]" {
		t.Fatalf("expected invalid run id, got %q", got)
	}

	ctx = SetRunID(ctx, "run-123")
	if got := GetRunID(ctx); got != "run-123" {
		t.Fatalf("expected run-123, got %q", got)
	}
}
