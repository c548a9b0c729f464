package render

import (
	"html"
	"regexp"
	"strings"
)

// paragraphOpen matches <p> and <p attr...> but not <pre> or <param>.
const paragraphOpen = `<p(?:\s[^>]*)?>`

var (
	audienceParagraph = regexp.MustCompile(`(?is)` + paragraphOpen + `\s*(?:<(?:strong|b|em)>\s*)?audience\s*:.*?</p>`)
	emptyParagraph    = regexp.MustCompile(`(?is)` + paragraphOpen + `\s*</p>`)
	blankLines        = regexp.MustCompile(`\n\s*\n+`)
)

// CleanBody removes generation leftovers from a section body: paragraphs and
// headings that only repeat the section title, the "Audience:" paragraph, and
// empty paragraphs. It does nothing else; it is not a sanitizer.
func CleanBody(body, title string) string {
	out := body
	if t := strings.TrimSpace(title); t != "" {
		escaped := regexp.QuoteMeta(html.EscapeString(t))
		out = regexp.MustCompile(`(?is)`+paragraphOpen+`\s*`+escaped+`\s*</p>`).ReplaceAllString(out, "")
		out = regexp.MustCompile(`(?is)<h[1-6][^>]*>\s*`+escaped+`\s*</h[1-6]>`).ReplaceAllString(out, "")
	}
	out = audienceParagraph.ReplaceAllString(out, "")
	out = emptyParagraph.ReplaceAllString(out, "")
	out = blankLines.ReplaceAllString(out, "\n")
	return strings.TrimSpace(out)
}
