package pipeline

import "context"

// EventType names a progress event.
type EventType string

const (
	EventOutlineAttempt   EventType = "outline.attempt"
	EventOutlineAccepted  EventType = "outline.accepted"
	EventOutlineFallback  EventType = "outline.fallback"
	EventImageStart       EventType = "image.start"
	EventImageDone        EventType = "image.done"
	EventImagePlaceholder EventType = "image.placeholder"
	EventCompileDone      EventType = "compile.done"
)

// Event reports pipeline progress. Section is 1-based; zero when the event
// is not tied to a section.
type Event struct {
	Type    EventType `json:"type"`
	Section int       `json:"section,omitempty"`
	Total   int       `json:"total,omitempty"`
	Message string    `json:"message,omitempty"`
}

// Emitter receives progress events.
type Emitter interface {
	Emit(Event)
}

type emitterKey struct{}

// WithEmitter attaches an emitter to the context.
func WithEmitter(ctx context.Context, e Emitter) context.Context {
	return context.WithValue(ctx, emitterKey{}, e)
}

// EmitterFrom retrieves the emitter from context, or returns a no-op emitter.
func EmitterFrom(ctx context.Context) Emitter {
	if e, ok := ctx.Value(emitterKey{}).(Emitter); ok && e != nil {
		return e
	}
	return noopEmitter{}
}

type noopEmitter struct{}

func (noopEmitter) Emit(Event) {}

// ChannelEmitter sends events to a channel without blocking; events are
// dropped when the channel is full.
type ChannelEmitter struct {
	Ch chan<- Event
}

func (e *ChannelEmitter) Emit(ev Event) {
	select {
	case e.Ch <- ev:
	default:
	}
}
