package render

import (
	"fmt"
	"hash/fnv"
	"strings"
	"unicode"
)

// anchorSet hands out unique, readable element ids for slides. An id has the
// shape "slide-<slug>-<hash>" ("...-N" on collision) and depends only on the
// section id and title, so rendering is repeatable.
type anchorSet struct {
	used    map[string]struct{}
	counter map[string]int
}

func newAnchorSet(n int) *anchorSet {
	return &anchorSet{
		used:    make(map[string]struct{}, n),
		counter: make(map[string]int, n),
	}
}

func (a *anchorSet) next(sectionID, title string) string {
	slug := Slug(title)
	if slug == "" {
		slug = "section"
	}
	base := fmt.Sprintf("slide-%s-%s", slug, shortHashHex(sectionID+"\x00"+title))
	if _, ok := a.used[base]; !ok {
		a.used[base] = struct{}{}
		a.counter[base] = 1
		return base
	}
	n := a.counter[base]
	for {
		n++
		candidate := fmt.Sprintf("%s-%d", base, n)
		if _, exists := a.used[candidate]; exists {
			continue
		}
		a.used[candidate] = struct{}{}
		a.counter[base] = n
		return candidate
	}
}

func shortHashHex(s string) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return fmt.Sprintf("%08x", uint32(h.Sum64()&0xffffffff))
}

// Slug lowercases s and joins its letter/digit runs with dashes.
func Slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

// FileName is the download name for a rendered course.
func FileName(title string) string {
	slug := Slug(title)
	if slug == "" {
		slug = "courseware"
	}
	return slug + ".html"
}
