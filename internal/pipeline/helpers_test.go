package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	llmclient "coursegen/internal/llm/client"
)

func seqIDs() IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

type sleepRecorder struct {
	mu     sync.Mutex
	delays []time.Duration
	err    error
}

func (r *sleepRecorder) sleep(ctx context.Context, d time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.delays = append(r.delays, d)
	if r.err != nil {
		return r.err
	}
	return ctx.Err()
}

type eventLog struct {
	mu     sync.Mutex
	events []Event
}

func (l *eventLog) Emit(ev Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, ev)
}

func (l *eventLog) types() []EventType {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]EventType, 0, len(l.events))
	for _, ev := range l.events {
		out = append(out, ev.Type)
	}
	return out
}

func pngImage() llmclient.Image {
	return llmclient.Image{Data: []byte{0x89, 'P', 'N', 'G'}, MIMEType: "image/png"}
}

var fixedNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
