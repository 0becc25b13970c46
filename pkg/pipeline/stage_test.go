package pipeline

import (
	"context"
	"errors"
	"testing"
)

func TestRun_PassesThrough(t *testing.T) {
	stage := StageFunc[int, int](func(ctx context.Context, in int) (int, error) {
		return in * 2, nil
	})

	out, err := Run(context.Background(), stage, 21)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if out != 42 {
		t.Errorf("expected 42, got %d", out)
	}
}

func TestRun_CancelledContext(t *testing.T) {
	called := false
	stage := StageFunc[int, int](func(ctx context.Context, in int) (int, error) {
		called = true
		return in, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, stage, 1)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if called {
		t.Error("stage must not run after cancellation")
	}
}
