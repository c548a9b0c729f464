package llm

import (
	"context"
	"time"

	llmclient "coursegen/internal/llm/client"
	"coursegen/internal/platform/logger"
)

// WithLogging logs request size, latency and errors. A nil logger discards.
func WithLogging(log *logger.Logger) Middleware {
	log = logger.OrNop(log)
	return func(next llmclient.Provider) llmclient.Provider {
		return &logging{next: next, log: log}
	}
}

type logging struct {
	next llmclient.Provider
	log  *logger.Logger
}

func (l *logging) Name() string { return l.next.Name() }
func (l *logging) Close() error { return l.next.Close() }

func (l *logging) GenerateText(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	l.log.Debug("llm text request", "phase", PhaseFrom(ctx), "provider", l.next.Name(), "bytes", len(prompt))
	out, err := l.next.GenerateText(ctx, prompt)
	if err != nil {
		l.log.Warn("llm text error", "phase", PhaseFrom(ctx), "elapsed", time.Since(start), "error", err)
		return out, err
	}
	l.log.Debug("llm text response", "phase", PhaseFrom(ctx), "elapsed", time.Since(start), "bytes", len(out))
	return out, nil
}

func (l *logging) GenerateImage(ctx context.Context, prompt string) (llmclient.Image, error) {
	start := time.Now()
	l.log.Debug("llm image request", "phase", PhaseFrom(ctx), "provider", l.next.Name(), "bytes", len(prompt))
	img, err := l.next.GenerateImage(ctx, prompt)
	if err != nil {
		l.log.Warn("llm image error", "phase", PhaseFrom(ctx), "elapsed", time.Since(start), "error", err)
		return img, err
	}
	l.log.Debug("llm image response", "phase", PhaseFrom(ctx), "elapsed", time.Since(start), "mime", img.MIMEType, "bytes", len(img.Data))
	return img, nil
}
