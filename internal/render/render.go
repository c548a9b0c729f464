// Package render compiles courseware into one self-contained HTML document.
package render

import (
	"html"
	"strconv"
	"strings"

	"coursegen/internal/types"
)

// Render is pure: the same courseware always yields the same bytes.
func Render(cw types.Courseware) string {
	total := cw.InteractionCount()
	slides := len(cw.Sections)
	anchors := newAnchorSet(slides)

	var b strings.Builder
	b.Grow(4096 + 2048*slides)
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	b.WriteString("<meta name=\"generator\" content=\"coursegen\">\n")
	b.WriteString("<title>" + esc(cw.Title) + "</title>\n")
	b.WriteString("<style>\n" + stylesheet + "</style>\n")
	b.WriteString("</head>\n<body>\n")

	b.WriteString(`<main class="courseware" data-role="courseware" data-courseware-id="` + esc(cw.ID) +
		`" data-total-interactions="` + strconv.Itoa(total) + "\">\n")
	writeHeader(&b, cw, total)
	for i, sec := range cw.Sections {
		writeSlide(&b, i, sec, anchors.next(sec.ID, sec.Title))
	}
	writeNav(&b, slides)
	b.WriteString("</main>\n")

	b.WriteString("<script>\n" + script + "</script>\n")
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func esc(s string) string { return html.EscapeString(s) }

func writeHeader(b *strings.Builder, cw types.Courseware, total int) {
	md := cw.Metadata
	b.WriteString("<header class=\"cw-header\">\n")
	b.WriteString("<h1>" + esc(cw.Title) + "</h1>\n")

	var meta []string
	if a := strings.TrimSpace(md.Audience); a != "" {
		meta = append(meta, "For "+esc(a))
	}
	if !md.GeneratedAt.IsZero() {
		meta = append(meta, "Generated "+md.GeneratedAt.UTC().Format("2006-01-02"))
	}
	if len(meta) > 0 {
		b.WriteString("<p class=\"cw-meta\">" + strings.Join(meta, " &middot; ") + "</p>\n")
	}
	if len(md.Objectives) > 0 {
		b.WriteString("<ul class=\"cw-objectives\" data-role=\"objectives\">\n")
		for _, o := range md.Objectives {
			b.WriteString("<li>" + esc(o) + "</li>\n")
		}
		b.WriteString("</ul>\n")
	}
	b.WriteString("<p class=\"cw-score\" data-role=\"score\" aria-live=\"polite\">0 / " + strconv.Itoa(total) + "</p>\n")
	b.WriteString("</header>\n")
}

func writeSlide(b *strings.Builder, i int, sec types.CoursewareSection, anchor string) {
	b.WriteString(`<section class="slide" id="` + anchor + `" data-role="slide" data-index="` + strconv.Itoa(i) +
		`" data-section-id="` + esc(sec.ID) + `"`)
	if i > 0 {
		b.WriteString(" hidden")
	}
	b.WriteString(">\n")
	b.WriteString("<h2 class=\"slide-title\">" + esc(sec.Title) + "</h2>\n")
	if url := strings.TrimSpace(sec.Image.URL); url != "" {
		b.WriteString(`<figure class="slide-figure"><img src="` + esc(url) + `" alt="` + esc(sec.Image.Alt) + `" loading="lazy"></figure>` + "\n")
	}
	if body := CleanBody(sec.Body, sec.Title); body != "" {
		b.WriteString("<div class=\"slide-body\">\n" + body + "\n</div>\n")
	}
	if sec.Interaction != nil {
		writeInteraction(b, sec.Interaction)
	}
	b.WriteString("</section>\n")
}

func writeInteraction(b *strings.Builder, in *types.InteractionBlock) {
	inputType := "radio"
	if in.Type == types.InteractionMulti {
		inputType = "checkbox"
	}
	id := esc(in.ID)
	b.WriteString(`<form class="quiz" data-role="interaction" data-interaction-id="` + id +
		`" data-interaction-type="` + esc(string(in.Type)) +
		`" data-points="` + strconv.Itoa(in.Scoring.Points) +
		`" data-analytics-key="` + esc(in.Scoring.AnalyticsKey) + "\">\n")
	b.WriteString("<fieldset>\n<legend>" + esc(in.Question) + "</legend>\n")
	for _, opt := range in.Options {
		oid := esc(opt.ID)
		b.WriteString(`<label class="option" data-role="option"><input type="` + inputType +
			`" name="` + id + `" value="` + oid + `" data-option-id="` + oid +
			`" data-correct="` + strconv.FormatBool(in.IsCorrect(opt.ID)) + `"> <span>` +
			esc(opt.Label) + "</span></label>\n")
	}
	b.WriteString("</fieldset>\n")
	b.WriteString("<div class=\"quiz-actions\"><button type=\"submit\">Check answer</button> <button type=\"reset\">Reset</button></div>\n")
	b.WriteString("<p class=\"quiz-feedback\" data-role=\"feedback\" aria-live=\"polite\"></p>\n")
	if strings.TrimSpace(in.Explanation) != "" {
		b.WriteString("<p class=\"quiz-explanation\" data-role=\"explanation\" hidden>" + esc(in.Explanation) + "</p>\n")
	}
	b.WriteString("</form>\n")
}

func writeNav(b *strings.Builder, slides int) {
	first := 0
	if slides > 0 {
		first = 1
	}
	b.WriteString("<nav class=\"cw-nav\" data-role=\"nav\">\n")
	b.WriteString("<button type=\"button\" data-action=\"prev\" disabled>Previous</button>\n")
	b.WriteString("<span data-role=\"progress\">" + strconv.Itoa(first) + " / " + strconv.Itoa(slides) + "</span>\n")
	b.WriteString("<button type=\"button\" data-action=\"next\"")
	if slides <= 1 {
		b.WriteString(" disabled")
	}
	b.WriteString(">Next</button>\n</nav>\n")
}
