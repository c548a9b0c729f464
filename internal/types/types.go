package types

import "time"

// Outline -------------------------------------------------------------------------

type OutlineSection struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Summary         string          `json:"summary"`
	InteractionHint InteractionType `json:"interactionHint,omitempty"`
	AssetsHint      string          `json:"assetsHint,omitempty"`
}

// CourseOutline is the ordered list of section stubs. Section order is the
// presentation order all the way to the rendered document.
type CourseOutline struct {
	ID       string           `json:"id"`
	Title    string           `json:"title"`
	Sections []OutlineSection `json:"sections"`
}

// Interactions --------------------------------------------------------------------

type InteractionOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type Scoring struct {
	Points       int    `json:"points"`
	AnalyticsKey string `json:"analyticsKey"`
}

// InteractionBlock is one graded question. Every id in Answers names an
// entry of Options.
type InteractionBlock struct {
	ID          string              `json:"id"`
	Type        InteractionType     `json:"type"`
	Question    string              `json:"question"`
	Options     []InteractionOption `json:"options"`
	Answers     []string            `json:"answers"`
	Explanation string              `json:"explanation"`
	Scoring     Scoring             `json:"scoring"`
}

// IsCorrect reports whether optionID is one of the block's answers.
func (b *InteractionBlock) IsCorrect(optionID string) bool {
	if b == nil {
		return false
	}
	for _, id := range b.Answers {
		if id == optionID {
			return true
		}
	}
	return false
}

// Courseware ----------------------------------------------------------------------

type CoursewareImage struct {
	Prompt string `json:"prompt"`
	URL    string `json:"url"`
	Alt    string `json:"alt"`
}

type CoursewareSection struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	Image       CoursewareImage   `json:"image"`
	Interaction *InteractionBlock `json:"interaction,omitempty"`
}

type CoursewareMetadata struct {
	Topic       string    `json:"topic"`
	Audience    string    `json:"audience"`
	Objectives  []string  `json:"objectives"`
	GeneratedAt time.Time `json:"generatedAt"`
}

type Courseware struct {
	ID       string              `json:"id"`
	Title    string              `json:"title"`
	Metadata CoursewareMetadata  `json:"metadata"`
	Sections []CoursewareSection `json:"sections"`
}

// InteractionCount returns how many sections carry a graded block.
func (c Courseware) InteractionCount() int {
	n := 0
	for _, s := range c.Sections {
		if s.Interaction != nil {
			n++
		}
	}
	return n
}

// CoursewareArtifact is the terminal output. HTML is derived from Courseware
// and can be re-rendered at any time.
type CoursewareArtifact struct {
	Courseware Courseware `json:"courseware"`
	HTML       string     `json:"html"`
}
