package types

import (
	"fmt"
	"strings"
)

// InteractionType names a kind of quiz widget a section may carry.
type InteractionType string

const (
	InteractionSingle    InteractionType = "single"
	InteractionMulti     InteractionType = "multi"
	InteractionTrueFalse InteractionType = "truefalse"
	// InteractionOpen may be requested in a brief but is never graded; it is
	// synthesized as a single-choice block.
	InteractionOpen InteractionType = "open"
)

// Valid reports whether t is one of the requestable interaction types.
func (t InteractionType) Valid() bool {
	switch t {
	case InteractionSingle, InteractionMulti, InteractionTrueFalse, InteractionOpen:
		return true
	default:
		return false
	}
}

// Graded reports whether t can be attached to a section as a graded block.
func (t InteractionType) Graded() bool {
	switch t {
	case InteractionSingle, InteractionMulti, InteractionTrueFalse:
		return true
	default:
		return false
	}
}

// GenerationBrief is the pedagogical input for a generation request.
type GenerationBrief struct {
	Topic            string            `json:"topic" yaml:"topic"`
	Audience         string            `json:"audience" yaml:"audience"`
	Objectives       []string          `json:"objectives,omitempty" yaml:"objectives,omitempty"`
	InteractionTypes []InteractionType `json:"interactionTypes,omitempty" yaml:"interactionTypes,omitempty"`
	Tone             string            `json:"tone,omitempty" yaml:"tone,omitempty"`
	ImageStyle       string            `json:"imageStyle,omitempty" yaml:"imageStyle,omitempty"`
	Constraints      []string          `json:"constraints,omitempty" yaml:"constraints,omitempty"`
}

// Validate checks the wire-level shape of a brief. The pipeline itself does
// not call it; transports do before handing the brief over.
func (b GenerationBrief) Validate() error {
	if strings.TrimSpace(b.Topic) == "" {
		return fmt.Errorf("brief: topic is required")
	}
	if strings.TrimSpace(b.Audience) == "" {
		return fmt.Errorf("brief: audience is required")
	}
	for _, t := range b.InteractionTypes {
		if !t.Valid() {
			return fmt.Errorf("brief: unsupported interaction type %q", string(t))
		}
	}
	return nil
}
