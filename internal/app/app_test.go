package app

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"coursegen/internal/config"
	llmclient "coursegen/internal/llm/client"
	llm "coursegen/internal/llm/middleware"
	"coursegen/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPipelineOffline(t *testing.T) {
	cfg := config.Default()
	svc, closeFn, err := NewPipeline(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer closeFn()

	caps := svc.Capabilities()
	assert.False(t, caps.TextGeneration)
	assert.False(t, caps.ImageGeneration)

	outline, err := svc.GenerateOutline(context.Background(), types.GenerationBrief{Topic: "Volcanoes", Audience: "Grade 4"})
	require.NoError(t, err)
	assert.Len(t, outline.Sections, 3)
}

func TestNewAppOffline(t *testing.T) {
	cfg := config.Default()
	cfg.Port = "127.0.0.1:0"
	a, err := New(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:0", a.Addr())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, a.Shutdown(ctx))
}

func TestWrapProviderChain(t *testing.T) {
	cfg := config.Default()
	cfg.Pipeline.ProviderTimeout = time.Second
	fake := llmclient.FakeProvider{
		FakeText:  &llmclient.FakeText{Replies: []string{"hello"}},
		FakeImage: &llmclient.FakeImage{Err: errors.New("quota")},
	}
	p := WrapProvider(fake, cfg, nil)

	var buf bytes.Buffer
	ctx := llm.WithPromptHook(llm.WithPhase(context.Background(), "outline"), NewPromptEcho(&buf))
	out, err := p.GenerateText(ctx, "make an outline")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)

	_, err = p.GenerateImage(llm.WithPhase(ctx, "image:section-1"), "draw")
	require.Error(t, err)

	assert.Contains(t, buf.String(), "--- outline prompt ---\nmake an outline\n")
	assert.Contains(t, buf.String(), "--- outline reply ---\nhello\n")
	assert.Contains(t, buf.String(), "--- image:section-1 error ---\nquota\n")
}
