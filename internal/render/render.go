// Package render turns structured model responses into display text. Every
// renderer is total: any well-typed input produces a string, never an error.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"personapilot/internal/structured"
)

// Format selects which renderer interprets a structured response.
type Format string

const (
	FormatJSON             Format = "json"
	FormatMarkdown         Format = "markdown"
	FormatStructuredList   Format = "structured_list"
	FormatItinerary        Format = "itinerary"
	FormatTechnicalGuide   Format = "technical_guide"
	FormatBusinessPlan     Format = "business_plan"
	FormatStoryOutline     Format = "story_outline"
	FormatBusinessStrategy Format = "business_strategy"
)

// Render dispatches to the renderer for the given format. Unknown formats use
// the generic renderer, and a panic inside a shape renderer downgrades to the
// generic renderer rather than surfacing.
func Render(data any, format Format) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = renderGeneric(data)
		}
	}()

	switch format {
	case FormatJSON:
		return renderJSON(data)
	case FormatItinerary:
		return shapeOrGeneric(data, renderItinerary)
	case FormatTechnicalGuide:
		return shapeOrGeneric(data, renderTechnicalGuide)
	case FormatBusinessPlan:
		return shapeOrGeneric(data, renderBusinessPlan)
	case FormatStoryOutline:
		return shapeOrGeneric(data, renderStoryOutline)
	case FormatBusinessStrategy:
		return shapeOrGeneric(data, renderBusinessStrategy)
	case FormatMarkdown, FormatStructuredList:
		return renderGeneric(data)
	default:
		return renderGeneric(data)
	}
}

// shapeOrGeneric applies a shape renderer to the response payload. A
// top-level "response" wrapper is unwrapped first, since shape renderers
// expect the persona schema's keys directly. A shape renderer that recognizes
// nothing yields empty output, in which case the generic renderer takes over
// with the original data.
func shapeOrGeneric(data any, fn func(*structured.Object) string) string {
	obj, ok := data.(*structured.Object)
	if !ok {
		return scalar(data)
	}

	payload := obj
	if inner, ok := obj.Get("response"); ok {
		if innerObj, ok := inner.(*structured.Object); ok {
			payload = innerObj
		}
	}

	if out := fn(payload); out != "" {
		return out
	}
	return renderGeneric(data)
}

func renderJSON(data any) string {
	if s, ok := data.(string); ok {
		if value, err := structured.Decode(s); err == nil {
			data = value
		} else {
			return s
		}
	}
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return scalar(data)
	}
	return string(out)
}

// renderGeneric prints each top-level key as a "## Title" section. Lists get
// one line per element, maps get sub-key lines, and anything nested deeper
// than that is flattened to a comma-joined string with no braces or quotes.
func renderGeneric(data any) string {
	obj, ok := data.(*structured.Object)
	if !ok {
		return scalar(data)
	}

	var b strings.Builder
	for _, key := range obj.Keys() {
		value, _ := obj.Get(key)
		b.WriteString("\n## " + titleize(key) + "\n")

		switch v := value.(type) {
		case []any:
			for _, item := range v {
				if itemObj, ok := item.(*structured.Object); ok {
					b.WriteString("\n")
					for _, ik := range itemObj.Keys() {
						iv, _ := itemObj.Get(ik)
						b.WriteString("**" + titleize(ik) + "**: " + itemValue(iv) + "\n")
					}
				} else {
					b.WriteString("- " + scalar(item) + "\n")
				}
			}
		case *structured.Object:
			for _, sk := range v.Keys() {
				sv, _ := v.Get(sk)
				title := titleize(sk)
				switch s := sv.(type) {
				case *structured.Object:
					b.WriteString("**" + title + "**:\n")
					for _, k := range s.Keys() {
						kv, _ := s.Get(k)
						b.WriteString("    **" + titleize(k) + "**: " + flatValue(kv) + "\n")
					}
				case []any:
					b.WriteString("**" + title + "**:\n")
					for _, item := range s {
						if itemObj, ok := item.(*structured.Object); ok {
							parts := make([]string, 0, itemObj.Len())
							for _, k := range itemObj.Keys() {
								kv, _ := itemObj.Get(k)
								parts = append(parts, titleize(k)+": "+flatValue(kv))
							}
							b.WriteString("    - " + strings.Join(parts, ", ") + "\n")
						} else {
							b.WriteString("    - " + scalar(item) + "\n")
						}
					}
				default:
					b.WriteString("**" + title + "**: " + scalar(sv) + "\n")
				}
			}
		default:
			b.WriteString(scalar(value) + "\n")
		}
	}
	return b.String()
}

// itemValue formats the value of a key inside a list element. Nested maps
// become an indented block of flattened lines, nested lists a comma-joined
// string.
func itemValue(v any) string {
	switch t := v.(type) {
	case *structured.Object:
		var b strings.Builder
		b.WriteString("\n    ")
		for _, k := range t.Keys() {
			kv, _ := t.Get(k)
			b.WriteString(titleize(k) + ": " + flatValue(kv) + "\n    ")
		}
		return b.String()
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, flatValue(item))
		}
		return strings.Join(parts, ", ")
	default:
		return scalar(v)
	}
}

// flatValue collapses a value to a single line: maps become "Key: value"
// pairs and lists comma-joined elements, with no structural punctuation left.
func flatValue(v any) string {
	switch t := v.(type) {
	case *structured.Object:
		parts := make([]string, 0, t.Len())
		for _, k := range t.Keys() {
			kv, _ := t.Get(k)
			parts = append(parts, k+": "+flatValue(kv))
		}
		return strings.Join(parts, ", ")
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, flatValue(item))
		}
		return strings.Join(parts, ", ")
	default:
		return scalar(v)
	}
}

// titleize turns snake_case keys into display headers.
func titleize(key string) string {
	words := strings.Fields(strings.ReplaceAll(key, "_", " "))
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		if len(runes) > 0 {
			runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

func scalar(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%v", t)
	}
}
