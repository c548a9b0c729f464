package llmclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	genai "google.golang.org/genai"
)

// GeminiConfig selects credential and models for GeminiClient.
type GeminiConfig struct {
	APIKey     string
	TextModel  string
	ImageModel string
	// HandleCacheSize bounds the number of cached model handles.
	HandleCacheSize int
}

// GeminiClient is a thin wrapper around the official genai client.
// It only focuses on the API call itself. Cross-cutting concerns
// (rate limiting, logging, hooks, tracing) are applied via middleware.
type GeminiClient struct {
	cli        *genai.Client
	textModel  string
	imageModel string
	handles    *handleCache
}

var _ Provider = (*GeminiClient)(nil)

func NewGeminiClient(ctx context.Context, cfg GeminiConfig) (*GeminiClient, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, NewPermanentError(ErrUnavailable)
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("init genai client: %w", err)
	}
	handles, err := newHandleCache(cfg.HandleCacheSize)
	if err != nil {
		return nil, err
	}
	return &GeminiClient{
		cli:        cli,
		textModel:  firstNonEmpty(cfg.TextModel, DefaultTextModel),
		imageModel: firstNonEmpty(cfg.ImageModel, DefaultImageModel),
		handles:    handles,
	}, nil
}

func (g *GeminiClient) Name() string { return "gemini:" + g.textModel + "+" + g.imageModel }
func (g *GeminiClient) Close() error { return nil }

// GenerateText sends prompt to the text model and returns the concatenated
// text parts of the first candidate.
func (g *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	h := g.handles.get(ModelKindText, g.textModel)
	resp, err := g.cli.Models.GenerateContent(ctx, h.model, genai.Text(prompt), h.config)
	if err != nil {
		return "", classifyAPIError(err)
	}
	parts := firstCandidateParts(resp)
	var b strings.Builder
	for _, p := range parts {
		if p == nil || p.Thought {
			continue
		}
		b.WriteString(p.Text)
	}
	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", ErrEmptyResponse
	}
	return out, nil
}

// GenerateImage asks the image model for an illustration and returns the
// first inline image part.
func (g *GeminiClient) GenerateImage(ctx context.Context, prompt string) (Image, error) {
	h := g.handles.get(ModelKindImage, g.imageModel)
	resp, err := g.cli.Models.GenerateContent(ctx, h.model, genai.Text(prompt), h.config)
	if err != nil {
		return Image{}, classifyAPIError(err)
	}
	for _, p := range firstCandidateParts(resp) {
		if p == nil || p.InlineData == nil || len(p.InlineData.Data) == 0 {
			continue
		}
		return Image{Data: p.InlineData.Data, MIMEType: p.InlineData.MIMEType}, nil
	}
	return Image{}, ErrEmptyResponse
}

// classifyAPIError marks credential and permission failures permanent. The
// Gemini API reports a malformed key as 400 INVALID_ARGUMENT.
func classifyAPIError(err error) error {
	code, status, msg := apiErrorFields(err)
	switch {
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return NewPermanentError(err)
	case code == http.StatusBadRequest && status == "INVALID_ARGUMENT" && strings.Contains(strings.ToLower(msg), "api key"):
		return NewPermanentError(err)
	}
	return err
}

func apiErrorFields(err error) (int, string, string) {
	var v genai.APIError
	if errors.As(err, &v) {
		return v.Code, v.Status, v.Message
	}
	var p *genai.APIError
	if errors.As(err, &p) && p != nil {
		return p.Code, p.Status, p.Message
	}
	return 0, "", ""
}

func firstCandidateParts(resp *genai.GenerateContentResponse) []*genai.Part {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].Content == nil {
		return nil
	}
	return resp.Candidates[0].Content.Parts
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			return v
		}
	}
	return ""
}
