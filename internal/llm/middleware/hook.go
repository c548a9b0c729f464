package llm

import (
	"context"

	llmclient "coursegen/internal/llm/client"
)

// PromptHook defines callbacks around provider requests. out is the
// generated text, or the image MIME type for image calls.
type PromptHook interface {
	Before(ctx context.Context, phase, prompt string)
	After(ctx context.Context, phase, out string, err error)
}

type ctxKeyHook struct{}
type ctxKeyPhase struct{}

// WithPhase labels the requests made with ctx ("outline", "image:section-2").
func WithPhase(ctx context.Context, phase string) context.Context {
	return context.WithValue(ctx, ctxKeyPhase{}, phase)
}

// PhaseFrom returns the phase stored in the context.
func PhaseFrom(ctx context.Context) string {
	if v := ctx.Value(ctxKeyPhase{}); v != nil {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return "unknown"
}

// WithPromptHook attaches a PromptHook to the context. Middlewares that call
// HookFrom(ctx) can use this to invoke Before/After around requests.
func WithPromptHook(ctx context.Context, hook PromptHook) context.Context {
	return context.WithValue(ctx, ctxKeyHook{}, hook)
}

// HookFrom returns the hook stored in the context.
func HookFrom(ctx context.Context) PromptHook {
	if v := ctx.Value(ctxKeyHook{}); v != nil {
		if h, ok := v.(PromptHook); ok {
			return h
		}
	}
	return nil
}

// WithHooks calls HookFrom(ctx).Before/After around every request.
// If no hook is present in the context, it is a no-op.
func WithHooks() Middleware {
	return func(next llmclient.Provider) llmclient.Provider {
		return &hooked{next: next}
	}
}

type hooked struct{ next llmclient.Provider }

func (h *hooked) Name() string { return h.next.Name() }
func (h *hooked) Close() error { return h.next.Close() }

func (h *hooked) GenerateText(ctx context.Context, prompt string) (string, error) {
	hook := HookFrom(ctx)
	if hook != nil {
		hook.Before(ctx, PhaseFrom(ctx), prompt)
	}
	out, err := h.next.GenerateText(ctx, prompt)
	if hook != nil {
		hook.After(ctx, PhaseFrom(ctx), out, err)
	}
	return out, err
}

func (h *hooked) GenerateImage(ctx context.Context, prompt string) (llmclient.Image, error) {
	hook := HookFrom(ctx)
	if hook != nil {
		hook.Before(ctx, PhaseFrom(ctx), prompt)
	}
	img, err := h.next.GenerateImage(ctx, prompt)
	if hook != nil {
		hook.After(ctx, PhaseFrom(ctx), img.MIMEType, err)
	}
	return img, err
}
