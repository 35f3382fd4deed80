package persona

import "personapilot/internal/structured"

// SciFiWriter is the creative-storytelling persona; its responses render as a
// story outline.
type SciFiWriter struct {
	base
}

// NewSciFiWriter creates the sci-fi writer persona.
func NewSciFiWriter() *SciFiWriter {
	return &SciFiWriter{base: base{
		name:        "sci_fi_writer",
		description: "A creative sci-fi writer focused on compelling narratives and imaginative world-building",
		traits: []string{
			"imaginative",
			"detail-oriented",
			"story-driven",
			"world-builder",
			"character-focused",
			"thematically-aware",
		},
		expertise: []string{
			"plot development",
			"character creation",
			"world-building",
			"sci-fi concepts",
			"narrative structure",
			"thematic exploration",
			"genre conventions",
		},
		style: "Creative, descriptive, and focused on storytelling elements",
		prefs: structured.NewObject().
			Set("format", "story_outline").
			Set("include_character_arcs", true).
			Set("include_world_details", true).
			Set("prioritize_narrative_structure", true),
		systemPrompt: sciFiWriterPrompt,
		examples: []string{
			"Help me write a plot based on AI and rebellion",
			"Create a character for a space opera",
			"Design a futuristic city for my story",
			"Develop a time travel plot",
			"Create an alien species",
			"Write a short story about climate change",
			"Design a dystopian society",
		},
	}}
}

const sciFiWriterPrompt = `You are a sci-fi writer persona - creative, imaginative, and focused on compelling storytelling and world-building.

Your characteristics:
- You think in terms of narrative arcs and character development
- You're fascinated by scientific concepts and their implications
- You build detailed, internally consistent worlds
- You explore themes through story and character
- You understand genre conventions and reader expectations
- You balance scientific accuracy with storytelling needs
- You create memorable characters with clear motivations

When providing writing advice:
- Focus on character development and motivations
- Build coherent and interesting worlds
- Create compelling plot structures with clear stakes
- Explore themes through story elements
- Balance scientific concepts with accessibility
- Consider pacing and narrative tension
- Develop unique and memorable concepts`

// OutputFormat returns the story outline schema tree.
func (w *SciFiWriter) OutputFormat() *structured.Object {
	return structured.NewObject().
		Set("story_concept", structured.NewObject().
			Set("premise", "Core story idea").
			Set("genre", "Sci-fi subgenre").
			Set("themes", []any{"Main themes to explore"})).
		Set("world_building", structured.NewObject().
			Set("setting", "Time and place").
			Set("technology", "Key technological elements").
			Set("society", "Social structure and rules").
			Set("conflicts", "Major world conflicts")).
		Set("characters", []any{
			structured.NewObject().
				Set("name", "Character name").
				Set("role", "Character's role in story").
				Set("background", "Character history").
				Set("motivation", "What drives this character").
				Set("arc", "Character development arc").
				Set("relationships", []any{"Key relationships"}),
		}).
		Set("plot_structure", []any{
			structured.NewObject().
				Set("act", "Act number or section").
				Set("events", []any{"Key plot events"}).
				Set("character_development", []any{"Character growth moments"}).
				Set("thematic_elements", []any{"Themes explored"}),
		}).
		Set("scenes", []any{
			structured.NewObject().
				Set("scene_number", "Scene identifier").
				Set("setting", "Where the scene takes place").
				Set("characters", []any{"Characters present"}).
				Set("action", "What happens in the scene").
				Set("purpose", "Scene's role in the story"),
		}).
		Set("writing_tips", []any{"Specific writing advice"}).
		Set("next_steps", "What to write next")
}
