package app

import (
	"context"
	"fmt"
	"io"
	"sync"

	llm "coursegen/internal/llm/middleware"
)

// PromptEcho writes every provider prompt and reply to w.
type PromptEcho struct {
	mu sync.Mutex
	w  io.Writer
}

var _ llm.PromptHook = (*PromptEcho)(nil)

func NewPromptEcho(w io.Writer) *PromptEcho {
	return &PromptEcho{w: w}
}

func (p *PromptEcho) Before(_ context.Context, phase, prompt string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.w, "--- %s prompt ---\n%s\n", phase, prompt)
}

func (p *PromptEcho) After(_ context.Context, phase, out string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		fmt.Fprintf(p.w, "--- %s error ---\n%v\n", phase, err)
		return
	}
	fmt.Fprintf(p.w, "--- %s reply ---\n%s\n", phase, out)
}
