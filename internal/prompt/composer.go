// Package prompt assembles the final prompt strings sent to the model. It is
// pure string work: no network calls, fully testable offline.
package prompt

import (
	"personapilot/internal/persona"
)

// jsonContract is the formatting contract appended to every structured prompt.
const jsonContract = "IMPORTANT: Your response MUST be valid JSON. Ensure all strings are properly quoted with double quotes, avoid trailing commas, and escape special characters correctly. Do not include any text outside the JSON structure."

// Compose renders one complete prompt for a persona and query.
//
// When the persona analyzes queries (see persona.QueryAnalyzer), the resulting
// preference delta is applied to its stored preferences first, so the schema
// below reflects the current query. The delta overwrites both flags on every
// call; applying it repeatedly never duplicates schema fields.
//
// Context precedence: an explicit context wins, otherwise the persona's
// recent-context summary is used when non-empty.
func Compose(p persona.Persona, query, context string) (string, error) {
	if a, ok := p.(persona.QueryAnalyzer); ok {
		delta := a.AnalyzeQuery(query)
		prefs := p.Preferences()
		prefs.Set("include_time_estimates", delta.IncludeTimeEstimates)
		prefs.Set("include_cost_estimates", delta.IncludeCostEstimates)
	}

	contextPart := ""
	if context != "" {
		contextPart = "\n\nContext: " + context
	} else if summary := p.ContextSummary(); summary != "" {
		contextPart = "\n\n" + summary
	}

	schema, err := p.OutputFormat().MarshalIndent()
	if err != nil {
		return "", err
	}

	instructions := "\n\nPlease provide your response in valid JSON format exactly matching this structure: \n```json\n" +
		schema + "\n```\n\n" + jsonContract

	return p.SystemPrompt() + contextPart + "\n\nUser Query: " + query + instructions, nil
}
