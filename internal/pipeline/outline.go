package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	llm "coursegen/internal/llm/middleware"
	"coursegen/internal/types"
	"coursegen/internal/util/jsonutil"
)

// DefaultOutlineAttempts is one initial call plus two retries.
const DefaultOutlineAttempts = 3

// SummaryPlaceholder fills a section the model left without a summary.
const SummaryPlaceholder = "Key ideas for this section."

var (
	errNoJSON     = errors.New("outline: no JSON object in reply")
	errNoSections = errors.New("outline: reply has no sections")
)

// synthesizeOutline never fails: any provider or parsing problem ends in the
// fallback skeleton.
func (s *Service) synthesizeOutline(ctx context.Context, brief types.GenerationBrief) types.CourseOutline {
	emit := EmitterFrom(ctx)
	if s.text == nil {
		s.log.Info("outline fallback", "reason", "text generation unavailable")
		emit.Emit(Event{Type: EventOutlineFallback, Message: "text generation unavailable"})
		return FallbackOutline(brief, s.newID)
	}
	prompt, err := OutlinePrompt(brief)
	if err != nil {
		s.log.Error("outline prompt", "error", err)
		emit.Emit(Event{Type: EventOutlineFallback, Message: "prompt unavailable"})
		return FallbackOutline(brief, s.newID)
	}

	ctx = llm.WithPhase(ctx, "outline")
	outline, _ := RetryOrFallback(ctx, s.outlineAttempts,
		func(ctx context.Context, attempt int) (types.CourseOutline, error) {
			emit.Emit(Event{Type: EventOutlineAttempt, Section: attempt, Total: s.outlineAttempts})
			reply, err := s.requestOutline(ctx, prompt)
			if err != nil {
				s.log.Warn("outline attempt failed", "attempt", attempt, "error", err)
				return types.CourseOutline{}, err
			}
			emit.Emit(Event{Type: EventOutlineAccepted, Total: len(reply.Sections)})
			return buildOutline(reply, brief, s.newID), nil
		},
		func(last error) types.CourseOutline {
			s.log.Info("outline fallback", "reason", last.Error())
			emit.Emit(Event{Type: EventOutlineFallback, Message: "generation unusable"})
			return FallbackOutline(brief, s.newID)
		})
	return outline
}

func (s *Service) requestOutline(ctx context.Context, prompt string) (outlineReply, error) {
	text, err := s.text.GenerateText(ctx, prompt)
	if err != nil {
		return outlineReply{}, err
	}
	var reply outlineReply
	if !jsonutil.ExtractInto(text, &reply) {
		return outlineReply{}, errNoJSON
	}
	if len(reply.Sections) == 0 {
		return outlineReply{}, errNoSections
	}
	return reply, nil
}

// buildOutline turns an accepted reply into an outline: fresh ids everywhere
// and defaults for whatever the model left out.
func buildOutline(reply outlineReply, brief types.GenerationBrief, newID IDFunc) types.CourseOutline {
	newID = newID.orDefault()
	title := strings.TrimSpace(reply.Title)
	if title == "" {
		title = strings.TrimSpace(brief.Topic)
	}
	out := types.CourseOutline{ID: newID(), Title: title, Sections: make([]types.OutlineSection, 0, len(reply.Sections))}
	for i, r := range reply.Sections {
		sec := types.OutlineSection{
			ID:         newID(),
			Title:      strings.TrimSpace(r.Title),
			Summary:    strings.TrimSpace(r.Summary),
			AssetsHint: strings.TrimSpace(r.AssetsHint),
		}
		if sec.Title == "" {
			sec.Title = fmt.Sprintf("Section %d", i+1)
		}
		if sec.Summary == "" {
			sec.Summary = SummaryPlaceholder
		}
		if hint := types.InteractionType(strings.ToLower(strings.TrimSpace(r.InteractionHint))); hint.Graded() {
			sec.InteractionHint = hint
		} else {
			sec.InteractionHint = EffectiveType(i, brief.InteractionTypes)
		}
		if sec.AssetsHint == "" {
			sec.AssetsHint = assetsHintFor(sec.Title)
		}
		out.Sections = append(out.Sections, sec)
	}
	return out
}

// FallbackOutline is the fixed three-section skeleton, parameterized only by
// the brief's topic.
func FallbackOutline(brief types.GenerationBrief, newID IDFunc) types.CourseOutline {
	newID = newID.orDefault()
	topic := strings.TrimSpace(brief.Topic)
	skeleton := []struct{ title, summary string }{
		{"Introduction", fmt.Sprintf("What %s is and why it matters.", topic)},
		{"Core Content", fmt.Sprintf("The key ideas and processes behind %s.", topic)},
		{"Summary", fmt.Sprintf("A recap of the most important points about %s.", topic)},
	}
	out := types.CourseOutline{ID: newID(), Title: topic, Sections: make([]types.OutlineSection, 0, len(skeleton))}
	for i, sk := range skeleton {
		out.Sections = append(out.Sections, types.OutlineSection{
			ID:              newID(),
			Title:           sk.title,
			Summary:         sk.summary,
			InteractionHint: EffectiveType(i, brief.InteractionTypes),
			AssetsHint:      assetsHintFor(sk.title + ": " + topic),
		})
	}
	return out
}
