package gateway

import (
	"encoding/json"
	"regexp"
	"strings"

	"personapilot/internal/structured"
)

var fencedJSON = regexp.MustCompile("(?s)```json\\s*(.+?)\\s*```")

// ExtractJSON pulls a JSON value out of model output. It tries, in order, a
// fenced ```json block, the whole text, and finally each balanced top-level
// object found by scanning. Reports false if nothing parses.
func ExtractJSON(text string) (any, bool) {
	if m := fencedJSON.FindStringSubmatch(text); m != nil {
		if value, err := structured.Decode(m[1]); err == nil {
			return value, true
		}
	}

	if value, err := structured.Decode(strings.TrimSpace(text)); err == nil {
		return value, true
	}

	for _, candidate := range findJSONCandidates(text) {
		if value, err := structured.Decode(candidate); err == nil {
			return value, true
		}
	}

	return nil, false
}

// findJSONCandidates returns every balanced {...} span in s, outermost only.
// Brace depth is tracked outside of string literals, with backslash escapes
// honored, so a "}" inside a quoted value never closes a span. Byte iteration
// is fine here: the delimiters are ASCII and cannot appear mid-rune in UTF-8.
func findJSONCandidates(s string) []string {
	var candidates []string
	var depth int
	start := -1
	var inString, escape bool

	for i := 0; i < len(s); i++ {
		b := s[i]

		if escape {
			escape = false
			continue
		}

		if inString {
			if b == '\\' {
				escape = true
			} else if b == '"' {
				inString = false
			}
			continue
		}

		if b == '"' {
			inString = true
			continue
		}

		if b == '{' {
			if depth == 0 {
				start = i
			}
			depth++
		} else if b == '}' {
			if depth > 0 {
				depth--
				if depth == 0 && start != -1 {
					candidates = append(candidates, s[start:i+1])
					start = -1
				}
			}
		}
	}

	return candidates
}

// FallbackRecord wraps unparseable model output in the standard response
// shape so the renderer always has something structured to work with.
func FallbackRecord(raw string) *structured.Object {
	item := structured.NewObject().
		Set("step", json.Number("1")).
		Set("action", "Review the raw response below").
		Set("time_required", "N/A").
		Set("cost", "N/A")

	inner := structured.NewObject().
		Set("summary", "Response could not be structured as JSON").
		Set("action_items", []any{item}).
		Set("tips", []any{"The AI generated an invalid JSON response"}).
		Set("raw_response", raw)

	return structured.NewObject().Set("response", inner)
}

// NonJSONRecord carries a plain-text response with its requested format.
func NonJSONRecord(text, format string) *structured.Object {
	return structured.NewObject().
		Set("response", text).
		Set("format", format)
}
