package llmclient

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
	genai "google.golang.org/genai"
)

const (
	DefaultTextModel  = "gemini-2.5-flash"
	DefaultImageModel = "gemini-2.5-flash-image"

	defaultHandleCacheSize = 16
)

// ModelKind selects the request configuration a handle is built with.
type ModelKind string

const (
	ModelKindText  ModelKind = "text"
	ModelKindImage ModelKind = "image"
)

// modelHandle pairs a model id with the request config used for every call
// against it. Handles are built lazily the first time a model is used.
type modelHandle struct {
	kind   ModelKind
	model  string
	config *genai.GenerateContentConfig
}

func newModelHandle(kind ModelKind, model string) *modelHandle {
	h := &modelHandle{kind: kind, model: model}
	switch kind {
	case ModelKindImage:
		h.config = &genai.GenerateContentConfig{
			ResponseModalities: []string{"TEXT", "IMAGE"},
		}
	default:
		temperature := float32(0.7)
		h.config = &genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			Temperature:      &temperature,
		}
	}
	return h
}

// handleCache keeps model handles keyed by kind and model id.
type handleCache struct {
	cache *lru.Cache[string, *modelHandle]
	group singleflight.Group
}

func newHandleCache(size int) (*handleCache, error) {
	if size <= 0 {
		size = defaultHandleCacheSize
	}
	c, err := lru.New[string, *modelHandle](size)
	if err != nil {
		return nil, fmt.Errorf("init model handle cache: %w", err)
	}
	return &handleCache{cache: c}, nil
}

func handleKey(kind ModelKind, model string) string {
	return string(kind) + ":" + strings.TrimSpace(model)
}

func (c *handleCache) get(kind ModelKind, model string) *modelHandle {
	key := handleKey(kind, model)
	if h, ok := c.cache.Get(key); ok {
		return h
	}
	v, _, _ := c.group.Do(key, func() (any, error) {
		if h, ok := c.cache.Get(key); ok {
			return h, nil
		}
		h := newModelHandle(kind, strings.TrimSpace(model))
		c.cache.Add(key, h)
		return h, nil
	})
	return v.(*modelHandle)
}

