package pipeline

import (
	"context"
	"errors"

	llmclient "coursegen/internal/llm/client"
)

// ErrExhausted is passed to the fallback when every attempt was rejected.
var ErrExhausted = errors.New("pipeline: attempts exhausted")

// RetryOrFallback calls try up to attempts times and returns the first
// accepted value. A permanent error or a done context ends the loop early.
// When nothing is accepted, fallback is called with the last rejection and
// its value is returned with accepted=false.
func RetryOrFallback[T any](
	ctx context.Context,
	attempts int,
	try func(ctx context.Context, attempt int) (T, error),
	fallback func(last error) T,
) (out T, accepted bool) {
	if attempts < 1 {
		attempts = 1
	}
	last := ErrExhausted
	for i := 1; i <= attempts; i++ {
		if err := ctx.Err(); err != nil {
			last = err
			break
		}
		v, err := try(ctx, i)
		if err == nil {
			return v, true
		}
		last = err
		if llmclient.IsPermanent(err) {
			break
		}
	}
	return fallback(last), false
}
