package persona

import (
	"strings"

	"personapilot/internal/structured"
)

// Keyword sets driving the college student's dynamic output preferences.
// Matching is a case-insensitive substring check, OR across the set.
var (
	timeKeywords = []string{"time", "duration", "how long", "timeline", "schedule", "when", "hours", "minutes", "days"}
	costKeywords = []string{"cost", "price", "budget", "money", "expense", "spend", "cheap", "affordable", "free"}
)

// CollegeStudent is the practical-planner persona. It is the one persona
// whose output preferences are adjusted per query: time and cost fields are
// only requested from the model when the query asks about them.
type CollegeStudent struct {
	base
}

// NewCollegeStudent creates the college student persona.
func NewCollegeStudent() *CollegeStudent {
	return &CollegeStudent{base: base{
		name:        "college_student",
		description: "A resourceful college student focused on academic success, personal growth, and practical solutions",
		traits: []string{
			"budget-conscious",
			"time-efficient",
			"practical",
			"tech-savvy",
			"ambitious",
			"socially aware",
		},
		expertise: []string{
			"academic planning",
			"budget management",
			"time management",
			"skill development",
			"side hustles",
			"networking",
			"personal productivity",
		},
		style: "Direct, practical, and encouraging with actionable steps",
		prefs: structured.NewObject().
			Set("format", "structured_list").
			Set("include_cost_estimates", false).
			Set("include_time_estimates", false).
			Set("prioritize_free_resources", true),
		systemPrompt: collegeStudentPrompt,
		examples: []string{
			"Plan a side hustle I can start with no money",
			"How can I improve my study habits?",
			"What skills should I learn this semester?",
			"Plan a budget-friendly weekend trip",
			"How do I network effectively as a student?",
			"What free resources can help me learn coding?",
			"Plan my week to balance classes and part-time work",
		},
	}}
}

const collegeStudentPrompt = `You are a college student persona - practical, budget-conscious, and focused on maximizing opportunities.

Your characteristics:
- You think in terms of cost-benefit and time efficiency
- You prefer free or low-cost solutions
- You're comfortable with technology and digital tools
- You value practical, actionable advice over theoretical concepts
- You're always looking for ways to build skills and experience
- You understand the importance of networking and social connections

When providing advice:
- Break down complex topics into simple, actionable steps
- Suggest free resources and tools when possible
- Include specific examples and real-world applications
- Focus on immediate, practical benefits
- Consider long-term skill development and career impact

IMPORTANT: Your response format will be dynamically adjusted based on the user's query:
- Only include time estimates and timeline information when the user specifically asks about timing, duration, or scheduling
- Only include cost estimates when the user specifically asks about budget, costs, or pricing
- Always provide practical, actionable steps regardless of whether time/cost details are requested`

// AnalyzeQuery inspects the query for time- and cost-related keywords and
// returns the preference delta to apply before composing the prompt.
func (c *CollegeStudent) AnalyzeQuery(query string) PreferenceDelta {
	lower := strings.ToLower(query)
	return PreferenceDelta{
		IncludeTimeEstimates: containsAny(lower, timeKeywords),
		IncludeCostEstimates: containsAny(lower, costKeywords),
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// OutputFormat builds the schema from the base shape plus the current
// preference flags. Rebuilding from scratch keeps the widening idempotent:
// composing twice never duplicates the optional fields.
func (c *CollegeStudent) OutputFormat() *structured.Object {
	item := structured.NewObject().
		Set("step", "Numbered step").
		Set("action", "Specific action to take").
		Set("resources", []any{"List of helpful resources"})

	format := structured.NewObject().
		Set("summary", "Brief overview of the solution").
		Set("action_items", []any{item}).
		Set("tips", []any{"Practical tips and warnings"}).
		Set("next_steps", "What to do after completing these actions")

	if boolPref(c.prefs, "include_time_estimates") {
		item.Set("time_required", "Estimated time")
	}
	if boolPref(c.prefs, "include_cost_estimates") {
		item.Set("cost", "Estimated cost (if any)")
	}
	if boolPref(c.prefs, "include_time_estimates") {
		format.Set("timeline", "Suggested timeline for implementation")
	}

	return format
}
