package render

import (
	"strings"

	"personapilot/internal/structured"
)

// Accessors for shape renderers. A missing key reads as the zero value so
// absent fields are skipped, never an error. Wrongly-typed fields panic and
// are downgraded to the generic renderer at the dispatch boundary.

func field(o *structured.Object, key string) string {
	v, ok := o.Get(key)
	if !ok || v == nil {
		return ""
	}
	return scalar(v)
}

func childObject(o *structured.Object, key string) (*structured.Object, bool) {
	v, ok := o.Get(key)
	if !ok {
		return nil, false
	}
	return v.(*structured.Object), true
}

func childList(o *structured.Object, key string) ([]any, bool) {
	v, ok := o.Get(key)
	if !ok {
		return nil, false
	}
	return v.([]any), true
}

func renderItinerary(data *structured.Object) string {
	var out []string

	if data.Has("destination") {
		out = append(out, "🗺️ **Destination**: "+field(data, "destination"))
	}
	if data.Has("total_budget") {
		out = append(out, "💰 **Total Budget**: "+field(data, "total_budget"))
	}
	if data.Has("duration") {
		out = append(out, "⏱️ **Duration**: "+field(data, "duration"))
	}

	if days, ok := childList(data, "itinerary"); ok {
		out = append(out, "\n📅 **Daily Itinerary**:")
		for _, d := range days {
			day := d.(*structured.Object)
			out = append(out, "\n**Day "+field(day, "day")+"**:")

			if activities, ok := childList(day, "activities"); ok {
				for _, a := range activities {
					activity := a.(*structured.Object)
					line := "  " + field(activity, "time") + ": " + field(activity, "activity")
					if cost := field(activity, "cost"); cost != "" {
						line += " (💰 " + cost + ")"
					}
					if location := field(activity, "location"); location != "" {
						line += " @ " + location
					}
					out = append(out, line)
				}
			}

			if acc, ok := childObject(day, "accommodation"); ok {
				out = append(out, "  🏨 **Accommodation**: "+field(acc, "name")+" (💰 "+field(acc, "cost")+")")
			}
			if trans, ok := childObject(day, "transportation"); ok {
				out = append(out, "  🚗 **Transport**: "+field(trans, "method")+" (💰 "+field(trans, "cost")+")")
			}
		}
	}

	if breakdown, ok := childObject(data, "budget_breakdown"); ok {
		out = append(out, "\n💳 **Budget Breakdown**:")
		for _, category := range breakdown.Keys() {
			out = append(out, "  "+titleize(category)+": "+field(breakdown, category))
		}
	}

	if tips, ok := childList(data, "money_saving_tips"); ok {
		out = append(out, "\n💡 **Money-Saving Tips**:")
		for _, tip := range tips {
			out = append(out, "  • "+scalar(tip))
		}
	}

	return strings.Join(out, "\n")
}

func renderTechnicalGuide(data *structured.Object) string {
	var out []string

	if data.Has("problem_analysis") {
		out = append(out, "🔍 **Problem Analysis**: "+field(data, "problem_analysis"))
	}
	if data.Has("solution_overview") {
		out = append(out, "💡 **Solution Overview**: "+field(data, "solution_overview"))
	}

	if steps, ok := childList(data, "implementation"); ok {
		out = append(out, "\n⚙️ **Implementation Steps**:")
		for _, s := range steps {
			step := s.(*structured.Object)
			out = append(out, "\n**Step "+field(step, "step")+"**: "+field(step, "description"))

			if step.Has("code_example") {
				out = append(out, "```\n"+field(step, "code_example")+"\n```")
			}
			if step.Has("explanation") {
				out = append(out, "*Why*: "+field(step, "explanation"))
			}
			if considerations, ok := childList(step, "considerations"); ok {
				out = append(out, "**Considerations**:")
				for _, c := range considerations {
					out = append(out, "  • "+scalar(c))
				}
			}
		}
	}

	if examples, ok := childList(data, "code_examples"); ok {
		out = append(out, "\n💻 **Code Examples**:")
		for _, e := range examples {
			example := e.(*structured.Object)
			lang := field(example, "language")
			out = append(out, "\n**"+lang+"** ("+field(example, "filename")+"):")
			out = append(out, "```"+lang+"\n"+field(example, "code")+"\n```")
			if example.Has("usage") {
				out = append(out, "*Usage*: "+field(example, "usage"))
			}
		}
	}

	return strings.Join(out, "\n")
}

func renderBusinessPlan(data *structured.Object) string {
	var out []string

	if analysis, ok := childObject(data, "market_analysis"); ok {
		out = append(out, "📊 **Market Analysis**:")
		appendKeyValues(&out, analysis, "  ")
	}
	if strategy, ok := childObject(data, "strategy"); ok {
		out = append(out, "\n🎯 **Strategy**:")
		appendKeyValues(&out, strategy, "  ")
	}
	if phases, ok := childList(data, "execution_plan"); ok {
		out = append(out, "\n📋 **Execution Plan**:")
		appendPhases(&out, phases)
	}

	return strings.Join(out, "\n")
}

func renderStoryOutline(data *structured.Object) string {
	var out []string

	if concept, ok := childObject(data, "story_concept"); ok {
		out = append(out, "📖 **Story Concept**:")
		for _, key := range concept.Keys() {
			v, _ := concept.Get(key)
			if items, ok := v.([]any); ok {
				parts := make([]string, 0, len(items))
				for _, item := range items {
					parts = append(parts, scalar(item))
				}
				out = append(out, "  **"+titleize(key)+"**: "+strings.Join(parts, ", "))
			} else {
				out = append(out, "  **"+titleize(key)+"**: "+scalar(v))
			}
		}
	}

	if world, ok := childObject(data, "world_building"); ok {
		out = append(out, "\n🌍 **World Building**:")
		appendKeyValues(&out, world, "  ")
	}

	if characters, ok := childList(data, "characters"); ok {
		out = append(out, "\n👥 **Characters**:")
		for _, c := range characters {
			char := c.(*structured.Object)
			out = append(out, "\n**"+field(char, "name")+"** ("+field(char, "role")+"):")
			out = append(out, "  Background: "+field(char, "background"))
			out = append(out, "  Motivation: "+field(char, "motivation"))
			out = append(out, "  Arc: "+field(char, "arc"))
		}
	}

	return strings.Join(out, "\n")
}

func renderBusinessStrategy(data *structured.Object) string {
	var out []string

	if overview, ok := childObject(data, "strategic_overview"); ok {
		out = append(out, "🎯 **Strategic Overview**:")
		appendKeyValues(&out, overview, "  ")
	}
	if phases, ok := childList(data, "action_plan"); ok {
		out = append(out, "\n📋 **Action Plan**:")
		appendPhases(&out, phases)
	}

	return strings.Join(out, "\n")
}

func appendKeyValues(out *[]string, o *structured.Object, indent string) {
	for _, key := range o.Keys() {
		v, _ := o.Get(key)
		*out = append(*out, indent+"**"+titleize(key)+"**: "+scalar(v))
	}
}

func appendPhases(out *[]string, phases []any) {
	for _, p := range phases {
		phase := p.(*structured.Object)
		*out = append(*out, "\n**"+field(phase, "phase")+"** ("+field(phase, "timeline")+"):")
		if objectives, ok := childList(phase, "objectives"); ok {
			*out = append(*out, "  **Objectives**:")
			for _, o := range objectives {
				*out = append(*out, "    • "+scalar(o))
			}
		}
		if actions, ok := childList(phase, "actions"); ok {
			*out = append(*out, "  **Actions**:")
			for _, a := range actions {
				*out = append(*out, "    • "+scalar(a))
			}
		}
	}
}
