package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personapilot/internal/gateway"
	"personapilot/internal/structured"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	v, err := structured.Decode(s)
	require.NoError(t, err)
	return v
}

func TestRenderGenericSections(t *testing.T) {
	data := decode(t, `{
		"summary": "Plan your week",
		"tips": ["sleep", "hydrate"],
		"details": {"effort": "low", "payoff": "high"}
	}`)

	got := Render(data, FormatStructuredList)

	assert.Contains(t, got, "\n## Summary\nPlan your week\n")
	assert.Contains(t, got, "\n## Tips\n- sleep\n- hydrate\n")
	assert.Contains(t, got, "\n## Details\n**Effort**: low\n**Payoff**: high\n")
}

func TestRenderGenericListOfMaps(t *testing.T) {
	data := decode(t, `{
		"action_items": [
			{"step": 1, "action": "read", "resources": ["book", "notes"]}
		]
	}`)

	got := Render(data, FormatStructuredList)

	assert.Contains(t, got, "\n## Action Items\n")
	assert.Contains(t, got, "**Step**: 1\n")
	assert.Contains(t, got, "**Action**: read\n")
	assert.Contains(t, got, "**Resources**: book, notes\n")
}

func TestRenderGenericDepthCap(t *testing.T) {
	data := decode(t, `{"a": {"b": {"c": "d"}}}`)

	got := Render(data, FormatStructuredList)

	assert.Contains(t, got, "\n## A\n")
	assert.Contains(t, got, "**B**:\n")
	assert.Contains(t, got, "    **C**: d\n")
	assert.NotContains(t, got, "{")
	assert.NotContains(t, got, "}")
}

func TestRenderGenericDeepListFlattened(t *testing.T) {
	data := decode(t, `{"section": {"entries": [{"name": "x", "meta": {"kind": "y"}}]}}`)

	got := Render(data, FormatStructuredList)

	assert.Contains(t, got, "**Entries**:\n")
	assert.Contains(t, got, "    - Name: x, Meta: kind: y\n")
	assert.NotContains(t, got, "{")
}

func TestRenderNonMapInput(t *testing.T) {
	assert.Equal(t, "just text", Render("just text", FormatStructuredList))
	assert.Equal(t, "just text", Render("just text", FormatItinerary))
}

func TestRenderUnknownTagMatchesGeneric(t *testing.T) {
	data := decode(t, `{"summary": "hello"}`)
	assert.Equal(t, Render(data, FormatStructuredList), Render(data, Format("haiku")))
}

func TestRenderFallbackRecord(t *testing.T) {
	record := gateway.FallbackRecord("the raw text")

	got := Render(record, FormatStructuredList)
	assert.Contains(t, got, "Review the raw response below")
	assert.Contains(t, got, "The AI generated an invalid JSON response")
	assert.Contains(t, got, "\n## Response\n")

	// A shape renderer finds none of its keys in the fallback record and
	// degrades to the same generic output.
	got = Render(record, FormatTechnicalGuide)
	assert.Contains(t, got, "\n## Response\n")
	assert.Contains(t, got, "Response could not be structured as JSON")
}

func TestRenderItinerary(t *testing.T) {
	data := decode(t, `{
		"destination": "Lisbon",
		"total_budget": "$900",
		"duration": "3 days",
		"itinerary": [
			{
				"day": 1,
				"activities": [
					{"time": "09:00", "activity": "Tram 28 ride", "cost": "$3", "location": "Alfama"},
					{"time": "13:00", "activity": "Beach walk"}
				],
				"accommodation": {"name": "Hostel A", "cost": "$25"},
				"transportation": {"method": "metro", "cost": "$2"}
			}
		],
		"budget_breakdown": {"food": "$120", "lodging": "$75"},
		"money_saving_tips": ["book early"]
	}`)

	got := Render(data, FormatItinerary)

	assert.Contains(t, got, "🗺️ **Destination**: Lisbon")
	assert.Contains(t, got, "💰 **Total Budget**: $900")
	assert.Contains(t, got, "⏱️ **Duration**: 3 days")
	assert.Contains(t, got, "📅 **Daily Itinerary**:")
	assert.Contains(t, got, "**Day 1**:")
	assert.Contains(t, got, "  09:00: Tram 28 ride (💰 $3) @ Alfama")
	assert.Contains(t, got, "  13:00: Beach walk\n")
	assert.Contains(t, got, "  🏨 **Accommodation**: Hostel A (💰 $25)")
	assert.Contains(t, got, "  🚗 **Transport**: metro (💰 $2)")
	assert.Contains(t, got, "💳 **Budget Breakdown**:")
	assert.Contains(t, got, "  Food: $120")
	assert.Contains(t, got, "💡 **Money-Saving Tips**:")
	assert.Contains(t, got, "  • book early")
}

func TestRenderItineraryUnwrapsResponse(t *testing.T) {
	data := decode(t, `{"response": {"destination": "Porto"}}`)
	got := Render(data, FormatItinerary)
	assert.Contains(t, got, "🗺️ **Destination**: Porto")
}

func TestRenderTechnicalGuide(t *testing.T) {
	data := decode(t, `{
		"problem_analysis": "Leaky listener",
		"solution_overview": "Remove on close",
		"implementation": [
			{
				"step": 1,
				"description": "Find the listener",
				"code_example": "server.on('close', cleanup)",
				"explanation": "listeners accumulate",
				"considerations": ["check hot paths"]
			}
		],
		"code_examples": [
			{"language": "js", "filename": "server.js", "code": "cleanup()", "usage": "node server.js"}
		]
	}`)

	got := Render(data, FormatTechnicalGuide)

	assert.Contains(t, got, "🔍 **Problem Analysis**: Leaky listener")
	assert.Contains(t, got, "💡 **Solution Overview**: Remove on close")
	assert.Contains(t, got, "⚙️ **Implementation Steps**:")
	assert.Contains(t, got, "**Step 1**: Find the listener")
	assert.Contains(t, got, "```\nserver.on('close', cleanup)\n```")
	assert.Contains(t, got, "*Why*: listeners accumulate")
	assert.Contains(t, got, "**Considerations**:\n  • check hot paths")
	assert.Contains(t, got, "💻 **Code Examples**:")
	assert.Contains(t, got, "**js** (server.js):")
	assert.Contains(t, got, "```js\ncleanup()\n```")
	assert.Contains(t, got, "*Usage*: node server.js")
}

func TestRenderBusinessPlan(t *testing.T) {
	data := decode(t, `{
		"market_analysis": {"target_market": "SMBs", "market_size": "large"},
		"strategy": {"positioning": "low cost"},
		"execution_plan": [
			{
				"phase": "Phase 1",
				"timeline": "Q1",
				"objectives": ["validate"],
				"actions": ["interview customers"]
			}
		]
	}`)

	got := Render(data, FormatBusinessPlan)

	assert.Contains(t, got, "📊 **Market Analysis**:")
	assert.Contains(t, got, "  **Target Market**: SMBs")
	assert.Contains(t, got, "🎯 **Strategy**:")
	assert.Contains(t, got, "  **Positioning**: low cost")
	assert.Contains(t, got, "📋 **Execution Plan**:")
	assert.Contains(t, got, "**Phase 1** (Q1):")
	assert.Contains(t, got, "  **Objectives**:\n    • validate")
	assert.Contains(t, got, "  **Actions**:\n    • interview customers")
}

func TestRenderStoryOutline(t *testing.T) {
	data := decode(t, `{
		"story_concept": {"premise": "colony ship wakes early", "themes": ["isolation", "memory"]},
		"world_building": {"setting": "deep space"},
		"characters": [
			{"name": "Mara", "role": "engineer", "background": "born aboard", "motivation": "go home", "arc": "acceptance"}
		]
	}`)

	got := Render(data, FormatStoryOutline)

	assert.Contains(t, got, "📖 **Story Concept**:")
	assert.Contains(t, got, "  **Premise**: colony ship wakes early")
	assert.Contains(t, got, "  **Themes**: isolation, memory")
	assert.Contains(t, got, "🌍 **World Building**:")
	assert.Contains(t, got, "  **Setting**: deep space")
	assert.Contains(t, got, "👥 **Characters**:")
	assert.Contains(t, got, "**Mara** (engineer):")
	assert.Contains(t, got, "  Background: born aboard")
	assert.Contains(t, got, "  Motivation: go home")
	assert.Contains(t, got, "  Arc: acceptance")
}

func TestRenderBusinessStrategy(t *testing.T) {
	data := decode(t, `{
		"strategic_overview": {"objective": "expand east"},
		"action_plan": [
			{"phase": "Entry", "timeline": "H2", "objectives": ["open office"], "actions": ["hire lead"]}
		]
	}`)

	got := Render(data, FormatBusinessStrategy)

	assert.Contains(t, got, "🎯 **Strategic Overview**:")
	assert.Contains(t, got, "  **Objective**: expand east")
	assert.Contains(t, got, "📋 **Action Plan**:")
	assert.Contains(t, got, "**Entry** (H2):")
	assert.Contains(t, got, "    • open office")
	assert.Contains(t, got, "    • hire lead")
}

func TestRenderShapePanicDowngrades(t *testing.T) {
	// "itinerary" is a string where the shape renderer expects a list.
	data := decode(t, `{"itinerary": "not a list", "summary": "still shown"}`)

	got := Render(data, FormatItinerary)
	assert.Contains(t, got, "\n## Summary\nstill shown\n")
	assert.Contains(t, got, "\n## Itinerary\n")
}

func TestRenderJSON(t *testing.T) {
	data := decode(t, `{"b": 1, "a": 2}`)
	got := Render(data, FormatJSON)
	assert.Equal(t, "{\n  \"b\": 1,\n  \"a\": 2\n}", got)

	// String input gets parsed and pretty-printed when possible.
	got = Render(`{"x":1}`, FormatJSON)
	assert.Equal(t, "{\n  \"x\": 1\n}", got)

	assert.Equal(t, "not json", Render("not json", FormatJSON))
}

func TestTitleize(t *testing.T) {
	assert.Equal(t, "Raw Response", titleize("raw_response"))
	assert.Equal(t, "Summary", titleize("summary"))
	assert.Equal(t, "Money Saving Tips", titleize("money_saving_tips"))
}
