package llm

import (
	llmclient "coursegen/internal/llm/client"
)

// Middleware decorates a Provider to inject cross-cutting concerns
// (rate limiting, timeouts, logging, hooks, tracing).
type Middleware func(llmclient.Provider) llmclient.Provider

// Wrap applies middlewares in left-to-right order.
// Example: Wrap(inner, A, B) => A(B(inner))
func Wrap(inner llmclient.Provider, mws ...Middleware) llmclient.Provider {
	out := inner
	for i := len(mws) - 1; i >= 0; i-- {
		if mws[i] == nil {
			continue
		}
		out = mws[i](out)
	}
	return out
}
