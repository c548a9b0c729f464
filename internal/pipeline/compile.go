package pipeline

import (
	"html"
	"strings"
	"time"

	"coursegen/internal/types"
)

// SectionContent is what the image and interaction stages produce for one
// outline section.
type SectionContent struct {
	Image       types.CoursewareImage
	Interaction *types.InteractionBlock
}

// Compile zips outline sections with their content into a Courseware. Order
// and section ids come from the outline. A missing content entry gets a
// placeholder image and no interaction.
func Compile(outline types.CourseOutline, brief types.GenerationBrief, contents []SectionContent, id string, now time.Time) types.Courseware {
	objectives := make([]string, 0, len(brief.Objectives))
	objectives = append(objectives, brief.Objectives...)

	title := strings.TrimSpace(outline.Title)
	if title == "" {
		title = strings.TrimSpace(brief.Topic)
	}
	cw := types.Courseware{
		ID:    id,
		Title: title,
		Metadata: types.CoursewareMetadata{
			Topic:       brief.Topic,
			Audience:    brief.Audience,
			Objectives:  objectives,
			GeneratedAt: now,
		},
		Sections: make([]types.CoursewareSection, 0, len(outline.Sections)),
	}
	for i, sec := range outline.Sections {
		content := SectionContent{Image: types.CoursewareImage{
			Prompt: ImagePrompt(sec, brief),
			URL:    PlaceholderURL(i + 1),
			Alt:    AltText(sec.Title),
		}}
		if i < len(contents) {
			content = contents[i]
		}
		cw.Sections = append(cw.Sections, types.CoursewareSection{
			ID:          sec.ID,
			Title:       sec.Title,
			Body:        SectionBody(sec, brief),
			Image:       content.Image,
			Interaction: content.Interaction,
		})
	}
	return cw
}

// SectionBody maps section and brief fields to escaped markup.
func SectionBody(sec types.OutlineSection, brief types.GenerationBrief) string {
	var b strings.Builder
	b.WriteString("<h2>" + html.EscapeString(sec.Title) + "</h2>\n")
	b.WriteString("<p>" + html.EscapeString(sec.Summary) + "</p>\n")
	b.WriteString("<p><strong>Audience:</strong> " + html.EscapeString(brief.Audience) + "</p>")
	if tone := strings.TrimSpace(brief.Tone); tone != "" {
		b.WriteString("\n<p><em>Tone: " + html.EscapeString(tone) + "</em></p>")
	}
	return b.String()
}
