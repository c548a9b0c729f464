package jsonutil

import (
	"encoding/json"
	"regexp"
	"strings"
)

var fencedJSON = regexp.MustCompile("(?i)```json\\s*([\\s\\S]*?)```")

// ExtractRaw locates a JSON object inside free-form model text.
//
// When the text holds a ```json fenced block, only the block body is searched;
// otherwise the whole text is. The candidate is the span from the first '{' to
// the last '}' of that window. No brace balancing is attempted, so two sibling
// objects ("{a}{b}") are tried as one span and usually fail to parse.
func ExtractRaw(text string) (json.RawMessage, bool) {
	window := text
	if m := fencedJSON.FindStringSubmatch(text); m != nil {
		window = m[1]
	}
	start := strings.Index(window, "{")
	end := strings.LastIndex(window, "}")
	if start < 0 || end < 0 || end < start {
		return nil, false
	}
	candidate := []byte(window[start : end+1])
	if !json.Valid(candidate) {
		return nil, false
	}
	return json.RawMessage(candidate), true
}

// ExtractObject is ExtractRaw decoded into a generic object.
func ExtractObject(text string) (map[string]any, bool) {
	raw, ok := ExtractRaw(text)
	if !ok {
		return nil, false
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false
	}
	return out, true
}

// ExtractInto decodes the object found by ExtractRaw into v. A false result
// means the text held nothing usable; callers treat that like a failed call.
func ExtractInto(text string, v any) bool {
	raw, ok := ExtractRaw(text)
	if !ok {
		return false
	}
	return UnmarshalFlex(raw, v) == nil
}
