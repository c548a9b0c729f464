package render

import (
	"strings"
	"testing"
	"time"

	"coursegen/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCourseware() types.Courseware {
	return types.Courseware{
		ID:    "cw-1",
		Title: "Photosynthesis",
		Metadata: types.CoursewareMetadata{
			Topic:       "Photosynthesis",
			Audience:    "Grade 5",
			Objectives:  []string{"Name the inputs", "Explain the outputs"},
			GeneratedAt: time.Date(2026, 3, 4, 23, 30, 0, 0, time.FixedZone("x", -5*3600)),
		},
		Sections: []types.CoursewareSection{
			{
				ID:    "s1",
				Title: "Introduction",
				Body:  "<h2>Introduction</h2>\n<p>Plants make food.</p>\n<p><strong>Audience:</strong> Grade 5</p>",
				Image: types.CoursewareImage{URL: "https://placehold.co/1280x720/png?text=Slide+1", Alt: "Illustration for Introduction"},
				Interaction: &types.InteractionBlock{
					ID: "q1", Type: types.InteractionSingle, Question: "Which is right?",
					Options:     []types.InteractionOption{{ID: "a", Label: "Plants make food."}, {ID: "b", Label: "Nope"}, {ID: "c", Label: "Also no"}},
					Answers:     []string{"a"},
					Explanation: "Plants make food.",
					Scoring:     types.Scoring{Points: 10, AnalyticsKey: "section-1"},
				},
			},
			{
				ID:    "s2",
				Title: "Core Content",
				Body:  "<p>Light becomes sugar.</p>",
				Image: types.CoursewareImage{URL: "data:image/png;base64,AAAA", Alt: "Illustration for Core Content"},
				Interaction: &types.InteractionBlock{
					ID: "q2", Type: types.InteractionMulti, Question: "Select all",
					Options: []types.InteractionOption{{ID: "x", Label: "one"}, {ID: "y", Label: "two"}, {ID: "z", Label: "three"}},
					Answers: []string{"x", "y"},
					Scoring: types.Scoring{Points: 15, AnalyticsKey: "section-2"},
				},
			},
			{ID: "s3", Title: "Summary", Body: "<p>Recap.</p>"},
		},
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	cw := sampleCourseware()
	assert.Equal(t, Render(cw), Render(cw))
}

func TestRenderStructure(t *testing.T) {
	out := Render(sampleCourseware())

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Equal(t, 1, strings.Count(out, "<script>"), "one shared script")
	assert.Equal(t, 1, strings.Count(out, "<style>"))
	assert.NotContains(t, out, "<script src")
	assert.NotContains(t, out, "<link")

	assert.Equal(t, 3, strings.Count(out, `data-role="slide" data-index=`))
	assert.Equal(t, 2, strings.Count(out, "\" hidden>\n<h2 class=\"slide-title\">"), "all slides but the first start hidden")
	assert.Contains(t, out, `data-role="score" aria-live="polite">0 / 2</p>`)
	assert.Contains(t, out, `<span data-role="progress">1 / 3</span>`)
	assert.Contains(t, out, `data-action="prev" disabled`)
	assert.Contains(t, out, `<button type="button" data-action="next">Next</button>`)
	assert.Contains(t, out, "Generated 2026-03-05")
	assert.Contains(t, out, "<li>Name the inputs</li>")

	assert.Contains(t, out, `data-interaction-id="q1" data-interaction-type="single" data-points="10" data-analytics-key="section-1"`)
	assert.Equal(t, 3, strings.Count(out, `type="radio" name="q1"`))
	assert.Equal(t, 3, strings.Count(out, `type="checkbox" name="q2"`))
	assert.Contains(t, out, `value="a" data-option-id="a" data-correct="true"`)
	assert.Contains(t, out, `value="b" data-option-id="b" data-correct="false"`)
	assert.Equal(t, 3, strings.Count(out, `data-correct="true"`))
	assert.Equal(t, 2, strings.Count(out, `<button type="reset">`))
	assert.Equal(t, 1, strings.Count(out, `data-role="explanation" hidden>`), "blank explanations are omitted")
	assert.Contains(t, out, `src="data:image/png;base64,AAAA"`)
}

func TestRenderStripsDuplicateTitleAndAudience(t *testing.T) {
	out := Render(sampleCourseware())
	assert.Equal(t, 1, strings.Count(out, ">Introduction</h2>"), "only the slide heading remains")
	assert.NotContains(t, out, "Audience:")
	assert.Contains(t, out, "<div class=\"slide-body\">\n<p>Plants make food.</p>\n</div>")
}

func TestRenderEscapesInterpolatedText(t *testing.T) {
	evil := `<script>alert("x")</script>`
	cw := sampleCourseware()
	cw.Title = evil
	cw.Metadata.Audience = evil
	cw.Metadata.Objectives = []string{evil}
	cw.Sections[0].Title = evil
	cw.Sections[0].Image.Alt = evil
	cw.Sections[0].Interaction.Question = evil
	cw.Sections[0].Interaction.Options[1].Label = evil
	cw.Sections[0].Interaction.Explanation = evil

	out := Render(cw)
	require.Equal(t, 1, strings.Count(out, "<script>"), "only the shared script tag may appear")
	assert.NotContains(t, out, `alert("x")`)
	assert.Contains(t, out, "&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;")
}

func TestRenderSingleSlideNav(t *testing.T) {
	cw := sampleCourseware()
	cw.Sections = cw.Sections[2:]
	out := Render(cw)
	assert.Contains(t, out, `<button type="button" data-action="next" disabled>Next</button>`)
	assert.Contains(t, out, "0 / 0</p>")
	assert.NotContains(t, out, " hidden>")
}

func TestRenderEmptyCourseware(t *testing.T) {
	out := Render(types.Courseware{Title: "Empty"})
	assert.Contains(t, out, `<span data-role="progress">0 / 0</span>`)
	assert.NotContains(t, out, "Generated")
}

func TestCleanBody(t *testing.T) {
	cases := []struct {
		name, body, title, want string
	}{
		{"heading", "<h3 class=\"x\">  intro </h3><p>keep</p>", "Intro", "<p>keep</p>"},
		{"paragraph", "<P>Intro</P><p>keep</p>", "intro", "<p>keep</p>"},
		{"audience plain", "<p>keep</p><p>Audience: kids</p>", "T", "<p>keep</p>"},
		{"audience bold", "<p><b>AUDIENCE :</b> kids\nand adults</p><p>keep</p>", "T", "<p>keep</p>"},
		{"empty", "<p> </p><p>keep</p><p class=\"a\"></p>", "T", "<p>keep</p>"},
		{"escaped title", "<h2>Salt &amp; Pepper</h2><p>keep</p>", "Salt & Pepper", "<p>keep</p>"},
		{"title inside text stays", "<p>Intro to cells</p>", "Intro", "<p>Intro to cells</p>"},
		{"regex chars", "<h2>a+b (c)?</h2><p>keep</p>", "a+b (c)?", "<p>keep</p>"},
		{"tone kept", "<p><em>Tone: playful</em></p>", "T", "<p><em>Tone: playful</em></p>"},
		{"pre audience kept", "<pre>audience: all</pre><p>keep</p>", "T", "<pre>audience: all</pre><p>keep</p>"},
		{"pre title kept", "<pre>Intro</p></pre>", "Intro", "<pre>Intro</p></pre>"},
		{"param empty kept", "<param name=\"a\"> </p><p>keep</p>", "T", "<param name=\"a\"> </p><p>keep</p>"},
		{"paragraph attrs", "<p\tclass=\"t\">Intro</p><p>keep</p>", "Intro", "<p>keep</p>"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CleanBody(tc.body, tc.title))
		})
	}
}

func TestAnchorsAreUnique(t *testing.T) {
	a := newAnchorSet(3)
	first := a.next("s1", "Intro")
	assert.True(t, strings.HasPrefix(first, "slide-intro-"))
	assert.Equal(t, first+"-2", a.next("s1", "Intro"))
	assert.NotEqual(t, first, a.next("s2", "Intro"))
	assert.True(t, strings.HasPrefix(a.next("s4", "!!!"), "slide-section-"))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "photosynthesis-101.html", FileName("  Photosynthesis 101! "))
	assert.Equal(t, "caf.html", FileName("Café"))
	assert.Equal(t, "courseware.html", FileName("¿?"))
}
