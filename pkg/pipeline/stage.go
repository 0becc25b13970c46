// Package pipeline provides the stage infrastructure and the data types
// flowing between export stages.
package pipeline

import (
	"context"
)

// Stage is one step of the export pipeline. Each stage consumes the
// previous stage's output and produces input for the next.
type Stage[In, Out any] interface {
	// Execute runs the stage with the given input and returns the output.
	Execute(ctx context.Context, input In) (Out, error)
}

// StageFunc is a function adapter for Stage interface.
type StageFunc[In, Out any] func(ctx context.Context, input In) (Out, error)

// Execute implements Stage interface.
func (f StageFunc[In, Out]) Execute(ctx context.Context, input In) (Out, error) {
	return f(ctx, input)
}

// Run executes stage after checking ctx, so a cancelled export stops
// between stages instead of starting the next one.
func Run[In, Out any](ctx context.Context, stage Stage[In, Out], input In) (Out, error) {
	if err := ctx.Err(); err != nil {
		var zero Out
		return zero, err
	}
	return stage.Execute(ctx, input)
}
