// Package pipeline turns a generation brief into an outline and an outline
// into rendered courseware.
package pipeline

import (
	"context"
	"time"

	llmclient "coursegen/internal/llm/client"
	"coursegen/internal/pacing"
	"coursegen/internal/platform/logger"
	"coursegen/internal/render"
	"coursegen/internal/types"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Options configures a Service. Text and Image may be nil, which routes the
// corresponding stage to its fallback.
type Options struct {
	Text   llmclient.TextGenerator
	Image  llmclient.ImageGenerator
	Logger *logger.Logger
	Tracer trace.Tracer

	// OutlineAttempts defaults to DefaultOutlineAttempts.
	OutlineAttempts int
	// ImagePacing is the spacing between image requests. Zero means
	// pacing.DefaultInterval; negative disables pacing.
	ImagePacing time.Duration
	Sleep       pacing.Sleeper

	NewID IDFunc
	Now   func() time.Time
}

// Capabilities reports which providers are configured.
type Capabilities struct {
	TextGeneration  bool `json:"textGeneration"`
	ImageGeneration bool `json:"imageGeneration"`
}

// Service runs the generation pipeline. It holds no per-request state and is
// safe for concurrent use.
type Service struct {
	text   llmclient.TextGenerator
	image  llmclient.ImageGenerator
	log    *logger.Logger
	tracer trace.Tracer

	outlineAttempts int
	imagePacing     time.Duration
	sleep           pacing.Sleeper
	newID           IDFunc
	now             func() time.Time
}

func New(opts Options) *Service {
	s := &Service{
		text:            opts.Text,
		image:           opts.Image,
		log:             logger.OrNop(opts.Logger),
		tracer:          opts.Tracer,
		outlineAttempts: opts.OutlineAttempts,
		imagePacing:     opts.ImagePacing,
		sleep:           opts.Sleep,
		newID:           opts.NewID.orDefault(),
		now:             opts.Now,
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer("coursegen/pipeline")
	}
	if s.outlineAttempts <= 0 {
		s.outlineAttempts = DefaultOutlineAttempts
	}
	switch {
	case s.imagePacing == 0:
		s.imagePacing = pacing.DefaultInterval
	case s.imagePacing < 0:
		s.imagePacing = 0
	}
	if s.sleep == nil {
		s.sleep = pacing.SleepContext
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Capabilities reports whether text and image generation are configured.
func (s *Service) Capabilities() Capabilities {
	return Capabilities{TextGeneration: s.text != nil, ImageGeneration: s.image != nil}
}

// GenerateOutline always yields a usable outline. The only error is a context
// that is already done when the call starts.
func (s *Service) GenerateOutline(ctx context.Context, brief types.GenerationBrief) (types.CourseOutline, error) {
	if err := ctx.Err(); err != nil {
		return types.CourseOutline{}, err
	}
	ctx, span := s.tracer.Start(ctx, "pipeline.generate_outline",
		trace.WithAttributes(attribute.Bool("pipeline.text_configured", s.text != nil)))
	defer span.End()

	outline := s.synthesizeOutline(ctx, brief)
	span.SetAttributes(attribute.Int("pipeline.sections", len(outline.Sections)))
	s.log.Info("outline ready", "outline_id", outline.ID, "sections", len(outline.Sections))
	return outline, nil
}

// GenerateCourseware illustrates, quizzes, compiles and renders outline.
// Provider failures degrade to placeholders; the only error is a context that
// is already done when the call starts.
func (s *Service) GenerateCourseware(ctx context.Context, outline types.CourseOutline, brief types.GenerationBrief) (types.CoursewareArtifact, error) {
	if err := ctx.Err(); err != nil {
		return types.CoursewareArtifact{}, err
	}
	ctx, span := s.tracer.Start(ctx, "pipeline.generate_courseware",
		trace.WithAttributes(
			attribute.Int("pipeline.sections", len(outline.Sections)),
			attribute.Bool("pipeline.image_configured", s.image != nil),
		))
	defer span.End()

	images := s.orchestrateImages(ctx, outline, brief)
	contents := make([]SectionContent, len(outline.Sections))
	for i, sec := range outline.Sections {
		contents[i] = SectionContent{
			Image:       images[i],
			Interaction: SynthesizeInteraction(sec, i, brief.InteractionTypes, s.newID),
		}
	}
	cw := Compile(outline, brief, contents, s.newID(), s.now().UTC())
	EmitterFrom(ctx).Emit(Event{Type: EventCompileDone, Total: len(cw.Sections)})

	doc := render.Render(cw)
	s.log.Info("courseware ready", "courseware_id", cw.ID, "sections", len(cw.Sections), "interactions", cw.InteractionCount(), "html_bytes", len(doc))
	return types.CoursewareArtifact{Courseware: cw, HTML: doc}, nil
}
