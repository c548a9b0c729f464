package llm

import (
	"context"
	"time"

	llmclient "coursegen/internal/llm/client"
)

// WithTimeout bounds every provider call. d <= 0 leaves calls unbounded.
func WithTimeout(d time.Duration) Middleware {
	return func(next llmclient.Provider) llmclient.Provider {
		if d <= 0 {
			return next
		}
		return &timed{next: next, d: d}
	}
}

type timed struct {
	next llmclient.Provider
	d    time.Duration
}

func (t *timed) Name() string { return t.next.Name() }
func (t *timed) Close() error { return t.next.Close() }

func (t *timed) GenerateText(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	return t.next.GenerateText(ctx, prompt)
}

func (t *timed) GenerateImage(ctx context.Context, prompt string) (llmclient.Image, error) {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	return t.next.GenerateImage(ctx, prompt)
}
