package llmclient

import (
	"context"
	"sync"
)

// FakeText replays scripted replies for offline runs and tests. The i-th call
// returns Replies[i] (or Errs[i] when set); calls past the script repeat the
// last entry. With an empty script every call fails with ErrEmptyResponse.
type FakeText struct {
	Replies []string
	Errs    []error

	mu      sync.Mutex
	prompts []string
}

var _ TextGenerator = (*FakeText)(nil)

func (f *FakeText) Name() string { return "fake-text" }
func (f *FakeText) Close() error { return nil }

func (f *FakeText) GenerateText(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := len(f.prompts)
	f.prompts = append(f.prompts, prompt)
	if n := len(f.Errs); n > 0 {
		if err := f.Errs[min(i, n-1)]; err != nil {
			return "", err
		}
	}
	if len(f.Replies) == 0 {
		return "", ErrEmptyResponse
	}
	return f.Replies[min(i, len(f.Replies)-1)], nil
}

// Prompts returns the prompts received so far.
func (f *FakeText) Prompts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.prompts...)
}

// FakeImage returns the same payload for every prompt, or Err when set.
// FailOn lists zero-based call indexes that fail with ErrEmptyResponse.
type FakeImage struct {
	Payload Image
	Err     error
	FailOn  map[int]bool

	mu      sync.Mutex
	prompts []string
}

var _ ImageGenerator = (*FakeImage)(nil)

func (f *FakeImage) Name() string { return "fake-image" }
func (f *FakeImage) Close() error { return nil }

func (f *FakeImage) GenerateImage(_ context.Context, prompt string) (Image, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := len(f.prompts)
	f.prompts = append(f.prompts, prompt)
	if f.Err != nil {
		return Image{}, f.Err
	}
	if f.FailOn[i] || len(f.Payload.Data) == 0 {
		return Image{}, ErrEmptyResponse
	}
	return f.Payload, nil
}

// Prompts returns the prompts received so far.
func (f *FakeImage) Prompts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.prompts...)
}

// FakeProvider joins a FakeText and a FakeImage into a Provider.
type FakeProvider struct {
	*FakeText
	*FakeImage
}

var _ Provider = FakeProvider{}

func (p FakeProvider) Name() string { return "fake" }
func (p FakeProvider) Close() error { return nil }
