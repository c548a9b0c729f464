package llm

import (
	"context"

	llmclient "coursegen/internal/llm/client"

	"golang.org/x/time/rate"
)

// RateLimit bounds the process-wide request rate with a token bucket shared
// by text and image calls. If rps <= 0, the limiter is disabled.
func RateLimit(rps float64, burst int) Middleware {
	return func(next llmclient.Provider) llmclient.Provider {
		if rps <= 0 {
			return next
		}
		if burst <= 0 {
			burst = 1
		}
		return &rateLimited{next: next, rl: rate.NewLimiter(rate.Limit(rps), burst)}
	}
}

type rateLimited struct {
	next llmclient.Provider
	rl   *rate.Limiter
}

func (c *rateLimited) Name() string { return c.next.Name() }
func (c *rateLimited) Close() error { return c.next.Close() }

func (c *rateLimited) GenerateText(ctx context.Context, prompt string) (string, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return "", err
	}
	return c.next.GenerateText(ctx, prompt)
}

func (c *rateLimited) GenerateImage(ctx context.Context, prompt string) (llmclient.Image, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return llmclient.Image{}, err
	}
	return c.next.GenerateImage(ctx, prompt)
}
