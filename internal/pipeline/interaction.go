package pipeline

import (
	"fmt"

	"coursegen/internal/types"
)

// Points awarded per interaction type.
const (
	PointsTrueFalse = 5
	PointsSingle    = 10
	PointsMulti     = 15
)

// EffectiveType is the interaction type section index receives: the requested
// types rotate, and anything that is not gradable becomes single.
func EffectiveType(index int, requested []types.InteractionType) types.InteractionType {
	if len(requested) == 0 {
		return ""
	}
	t := requested[index%len(requested)]
	if !t.Graded() {
		return types.InteractionSingle
	}
	return t
}

// SynthesizeInteraction builds the graded block for a section, or nil when no
// interaction types were requested. Correct options are always built first
// and recorded in Answers; option order is never shuffled.
func SynthesizeInteraction(section types.OutlineSection, index int, requested []types.InteractionType, newID IDFunc) *types.InteractionBlock {
	kind := EffectiveType(index, requested)
	if kind == "" {
		return nil
	}
	newID = newID.orDefault()
	opt := func(label string) types.InteractionOption {
		return types.InteractionOption{ID: newID(), Label: label}
	}
	block := &types.InteractionBlock{
		ID:      newID(),
		Type:    kind,
		Scoring: types.Scoring{AnalyticsKey: fmt.Sprintf("section-%d", index+1)},
	}

	switch kind {
	case types.InteractionTrueFalse:
		t, f := opt("True"), opt("False")
		block.Question = "True or false: " + section.Summary
		block.Options = []types.InteractionOption{t, f}
		block.Answers = []string{t.ID}
		block.Explanation = section.Summary
		block.Scoring.Points = PointsTrueFalse
	case types.InteractionMulti:
		summary := opt(section.Summary)
		applied := opt(fmt.Sprintf("The ideas in %q can be applied to a real-world situation.", section.Title))
		offTopic := opt("It is mostly about memorizing unrelated trivia.")
		block.Question = fmt.Sprintf("Which statements about %q are correct? Select all that apply.", section.Title)
		block.Options = []types.InteractionOption{summary, applied, offTopic}
		block.Answers = []string{summary.ID, applied.ID}
		block.Explanation = "The summary and its real-world application are both correct. " + section.Summary
		block.Scoring.Points = PointsMulti
	default:
		correct := opt(section.Summary)
		block.Question = fmt.Sprintf("Which statement best describes %q?", section.Title)
		block.Options = []types.InteractionOption{
			correct,
			opt(fmt.Sprintf("%q is only a historical footnote with no practical use.", section.Title)),
			opt("Taking a short break between study sessions."),
		}
		block.Answers = []string{correct.ID}
		block.Explanation = section.Summary
		block.Scoring.Points = PointsSingle
	}
	return block
}
