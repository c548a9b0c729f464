package llm

import (
	"context"

	llmclient "coursegen/internal/llm/client"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "coursegen/llm"

// WithTracing opens a span per provider call. A nil tracer uses the global
// provider, which is a no-op until observability.InitOTel installs one.
func WithTracing(tracer trace.Tracer) Middleware {
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	return func(next llmclient.Provider) llmclient.Provider {
		return &traced{next: next, tracer: tracer}
	}
}

type traced struct {
	next   llmclient.Provider
	tracer trace.Tracer
}

func (t *traced) Name() string { return t.next.Name() }
func (t *traced) Close() error { return t.next.Close() }

func (t *traced) start(ctx context.Context, name string, prompt string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("llm.provider", t.next.Name()),
		attribute.String("llm.phase", PhaseFrom(ctx)),
		attribute.Int("llm.prompt_bytes", len(prompt)),
	))
}

func finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (t *traced) GenerateText(ctx context.Context, prompt string) (string, error) {
	ctx, span := t.start(ctx, "llm.generate_text", prompt)
	out, err := t.next.GenerateText(ctx, prompt)
	span.SetAttributes(attribute.Int("llm.response_bytes", len(out)))
	finish(span, err)
	return out, err
}

func (t *traced) GenerateImage(ctx context.Context, prompt string) (llmclient.Image, error) {
	ctx, span := t.start(ctx, "llm.generate_image", prompt)
	img, err := t.next.GenerateImage(ctx, prompt)
	span.SetAttributes(attribute.Int("llm.image_bytes", len(img.Data)))
	finish(span, err)
	return img, err
}
