package pipeline

import (
	"context"
	"fmt"
	"net/url"

	llm "coursegen/internal/llm/middleware"
	"coursegen/internal/pacing"
	"coursegen/internal/types"
)

const placeholderBase = "https://placehold.co/1280x720/png?text="

// PlaceholderURL is the stand-in illustration for slide n (1-based).
func PlaceholderURL(n int) string {
	return placeholderBase + url.QueryEscape(fmt.Sprintf("Slide %d", n))
}

// AltText describes a section illustration.
func AltText(title string) string {
	return "Illustration for " + title
}

// orchestrateImages requests one illustration per section, strictly in order.
// The pacing gate lives for this call only. Every failure becomes a
// placeholder; the result is aligned 1:1 with the outline sections.
func (s *Service) orchestrateImages(ctx context.Context, outline types.CourseOutline, brief types.GenerationBrief) []types.CoursewareImage {
	emit := EmitterFrom(ctx)
	total := len(outline.Sections)
	gate := pacing.NewGate(s.imagePacing, s.sleep)
	out := make([]types.CoursewareImage, 0, total)

	for i, sec := range outline.Sections {
		n := i + 1
		img := types.CoursewareImage{
			Prompt: ImagePrompt(sec, brief),
			URL:    PlaceholderURL(n),
			Alt:    AltText(sec.Title),
		}
		if s.image == nil {
			emit.Emit(Event{Type: EventImagePlaceholder, Section: n, Total: total, Message: "image generation unavailable"})
			out = append(out, img)
			continue
		}
		if err := gate.Wait(ctx); err != nil {
			s.log.Warn("image pacing interrupted", "section", n, "error", err)
			emit.Emit(Event{Type: EventImagePlaceholder, Section: n, Total: total, Message: "canceled"})
			out = append(out, img)
			continue
		}

		emit.Emit(Event{Type: EventImageStart, Section: n, Total: total})
		payload, err := s.image.GenerateImage(llm.WithPhase(ctx, fmt.Sprintf("image:section-%d", n)), img.Prompt)
		switch {
		case err != nil:
			s.log.Warn("image generation failed", "section", n, "error", err)
			emit.Emit(Event{Type: EventImagePlaceholder, Section: n, Total: total, Message: "generation failed"})
		case len(payload.Data) == 0:
			s.log.Warn("image generation returned no payload", "section", n)
			emit.Emit(Event{Type: EventImagePlaceholder, Section: n, Total: total, Message: "empty image"})
		default:
			img.URL = payload.DataURI()
			emit.Emit(Event{Type: EventImageDone, Section: n, Total: total})
		}
		out = append(out, img)
	}
	return out
}
