package app

import (
	"context"
	"fmt"

	"coursegen/internal/config"
	llmclient "coursegen/internal/llm/client"
	llm "coursegen/internal/llm/middleware"
	"coursegen/internal/pipeline"
	"coursegen/internal/platform/logger"
)

// NewPipeline builds the generation service from cfg. Without a Gemini
// credential the service runs offline: fallback outlines and placeholder
// images. The returned close func releases the provider.
func NewPipeline(ctx context.Context, cfg *config.Config, log *logger.Logger) (*pipeline.Service, func() error, error) {
	log = logger.OrNop(log)
	opts := pipeline.Options{
		Logger:          log.With("component", "pipeline"),
		OutlineAttempts: cfg.Pipeline.OutlineAttempts,
		ImagePacing:     cfg.ImagePacing(),
	}
	if !cfg.HasGeminiCredential() {
		log.Warn("no Gemini credential configured; generation runs offline")
		return pipeline.New(opts), func() error { return nil }, nil
	}

	gemini, err := llmclient.NewGeminiClient(ctx, llmclient.GeminiConfig{
		APIKey:     cfg.Gemini.APIKey,
		TextModel:  cfg.Gemini.TextModel,
		ImageModel: cfg.Gemini.ImageModel,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("init gemini client: %w", err)
	}
	provider := WrapProvider(gemini, cfg, log)
	opts.Text = provider
	opts.Image = provider
	log.Info("gemini provider ready", "provider", provider.Name())
	return pipeline.New(opts), provider.Close, nil
}

// WrapProvider applies the provider middleware chain, outermost first.
func WrapProvider(p llmclient.Provider, cfg *config.Config, log *logger.Logger) llmclient.Provider {
	log = logger.OrNop(log)
	return llm.Wrap(p,
		llm.RateLimit(cfg.LLM.RPS, cfg.LLM.Burst),
		llm.WithTimeout(cfg.Pipeline.ProviderTimeout),
		llm.WithLogging(log.With("component", "llm")),
		llm.WithHooks(),
		llm.WithTracing(nil),
	)
}
