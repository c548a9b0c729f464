package llmtool

// PromptPreset holds reusable constraints and rules for structured prompts.
type PromptPreset struct {
	Constraints []string
	Rules       []string
}

// ApplyPresets prepends preset constraints/rules to a structured prompt spec.
func ApplyPresets(spec StructuredPromptSpec, presets ...PromptPreset) StructuredPromptSpec {
	if len(presets) == 0 {
		return spec
	}
	var merged PromptPreset
	for _, p := range presets {
		merged.Constraints = append(merged.Constraints, p.Constraints...)
		merged.Rules = append(merged.Rules, p.Rules...)
	}
	spec.Constraints = append(merged.Constraints, spec.Constraints...)
	spec.Rules = append(merged.Rules, spec.Rules...)
	return spec
}

// PresetStrictJSON enforces strict JSON-only output.
func PresetStrictJSON() PromptPreset {
	return PromptPreset{
		Constraints: []string{
			"Return strict JSON only.",
			"Match the schema exactly; no extra fields.",
			"No markdown, comments, or trailing commas.",
		},
	}
}

// PresetSlideBudget keeps each section small enough for one slide.
func PresetSlideBudget() PromptPreset {
	return PromptPreset{
		Constraints: []string{
			"Each section must fit on a single slide: one short title and a summary of at most two sentences (about 40 words).",
			"Cover one idea per section; split larger ideas into additional sections.",
		},
	}
}

// PresetInstructorTone fixes the register of generated copy.
func PresetInstructorTone() PromptPreset {
	return PromptPreset{
		Rules: []string{
			"Write as a friendly, encouraging instructor speaking directly to the learner.",
			"Prefer plain words and concrete examples over jargon.",
		},
	}
}

// PresetNoTextInImages keeps requested illustrations free of lettering.
func PresetNoTextInImages() PromptPreset {
	return PromptPreset{
		Rules: []string{
			"assetsHint describes imagery only and must ask for no text, letters, numbers, or labels inside the image.",
		},
	}
}
