// Package pacing spaces sequential provider calls by a minimum interval.
package pacing

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is the spacing between section image requests.
const DefaultInterval = time.Second

// Sleeper blocks for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// SleepContext is the wall-clock Sleeper.
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Gate lets the first caller through immediately and delays every later
// caller by the interval. A Gate belongs to one request; it is not a global
// limiter.
type Gate struct {
	interval time.Duration
	sleep    Sleeper

	mu     sync.Mutex
	passed int
}

// NewGate returns a gate. A nil sleeper uses SleepContext; interval <= 0
// disables the delay.
func NewGate(interval time.Duration, sleep Sleeper) *Gate {
	if sleep == nil {
		sleep = SleepContext
	}
	return &Gate{interval: interval, sleep: sleep}
}

// Wait blocks until the caller may issue its request.
func (g *Gate) Wait(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	first := g.passed == 0
	if !first && g.interval > 0 {
		if err := g.sleep(ctx, g.interval); err != nil {
			return err
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}
	g.passed++
	return nil
}
