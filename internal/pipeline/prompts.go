package pipeline

import (
	"fmt"
	"strings"

	"coursegen/internal/llmtool"
	"coursegen/internal/types"
)

// minPromptSections is what the model is asked for; a reply with fewer but
// at least one section is still accepted.
const minPromptSections = 3

// outlineReply is the JSON shape requested from the text model.
type outlineReply struct {
	Title    string         `json:"title" prompt_desc:"Short course title."`
	Sections []sectionReply `json:"sections" prompt_desc:"At least 3 sections in teaching order."`
}

type sectionReply struct {
	Title           string `json:"title" prompt_desc:"Slide heading, at most 8 words."`
	Summary         string `json:"summary" prompt_desc:"What the learner should take away, at most two sentences."`
	InteractionHint string `json:"interactionHint,omitempty" prompt_desc:"One of single, multi, truefalse."`
	AssetsHint      string `json:"assetsHint,omitempty" prompt_desc:"Visual description for one illustration, no text in the image."`
}

var outlinePromptSpec = llmtool.ApplyPresets(llmtool.StructuredPromptSpec{
	Purpose:      "Design a slide-based micro course outline for the brief in INPUT.",
	Background:   "Each section becomes one slide with an illustration and an optional quiz question. Sections are shown in the order returned.",
	OutputFields: outlineFields(),
	Constraints: []string{
		fmt.Sprintf("Return at least %d sections.", minPromptSections),
		"Address the audience and objectives in INPUT; respect every entry of constraints.",
		"When interactionTypes is non-empty, pick interactionHint values from it (open counts as single).",
	},
	OutputFormat: `JSON only: {"title": string, "sections": [{"title", "summary", "interactionHint", "assetsHint"}]}`,
	Language:     "Match the language of the topic.",
}, llmtool.PresetStrictJSON(), llmtool.PresetSlideBudget(), llmtool.PresetInstructorTone(), llmtool.PresetNoTextInImages())

func outlineFields() []llmtool.PromptField {
	fields := llmtool.MustFieldsFromStruct(outlineReply{})
	for _, f := range llmtool.MustFieldsFromStruct(sectionReply{}) {
		f.Name = "sections[]." + f.Name
		fields = append(fields, f)
	}
	return fields
}

// OutlinePrompt renders the outline request for brief.
func OutlinePrompt(brief types.GenerationBrief) (string, error) {
	input := map[string]any{
		"topic":    strings.TrimSpace(brief.Topic),
		"audience": strings.TrimSpace(brief.Audience),
	}
	if len(brief.Objectives) > 0 {
		input["objectives"] = brief.Objectives
	}
	if len(brief.InteractionTypes) > 0 {
		input["interactionTypes"] = brief.InteractionTypes
	}
	if t := strings.TrimSpace(brief.Tone); t != "" {
		input["tone"] = t
	}
	if len(brief.Constraints) > 0 {
		input["constraints"] = brief.Constraints
	}
	return llmtool.Render(outlinePromptSpec, input)
}

// DefaultImageStyle is used when the brief names no image style.
const DefaultImageStyle = "flat vector illustration, soft colors, simple shapes, clean background, no text"

// ImagePrompt keeps only visual direction: the section's assets hint and the
// style, joined by " | ".
func ImagePrompt(section types.OutlineSection, brief types.GenerationBrief) string {
	hint := strings.TrimSpace(section.AssetsHint)
	if hint == "" {
		hint = assetsHintFor(section.Title)
	}
	style := strings.TrimSpace(brief.ImageStyle)
	if style == "" {
		style = DefaultImageStyle
	}
	return hint + " | " + style
}

func assetsHintFor(title string) string {
	return fmt.Sprintf("Educational illustration representing %q, no text or lettering in the image", title)
}
