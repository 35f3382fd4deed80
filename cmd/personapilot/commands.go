package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"personapilot/internal/persona"
	"personapilot/internal/retrieval"
	"personapilot/internal/session"
)

var (
	askPersona string
	askContext string
	askMode    string
)

var personasCmd = &cobra.Command{
	Use:   "personas [name]",
	Short: "List available personas or show one in detail",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := persona.NewRegistry(logger)

		if len(args) == 1 {
			info, err := registry.Describe(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", personaStyle.Render(info.Name))
			fmt.Printf("  %s\n", info.Description)
			fmt.Printf("  Style: %s\n", info.CommunicationStyle)
			fmt.Printf("  Traits: %s\n", strings.Join(info.PersonalityTraits, ", "))
			fmt.Printf("  Expertise: %s\n", strings.Join(info.ExpertiseAreas, ", "))
			fmt.Println("  Example queries:")
			for _, q := range info.ExampleQueries {
				fmt.Printf("    • %s\n", q)
			}
			return nil
		}

		for _, name := range registry.List() {
			info, err := registry.Describe(name)
			if err != nil {
				return err
			}
			fmt.Printf("%s - %s\n", personaStyle.Render(name), info.Description)
		}
		return nil
	},
}

var askCmd = &cobra.Command{
	Use:   "ask [query]",
	Short: "Ask a single question and exit",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(cmd)
		if err != nil {
			return err
		}

		name := askPersona
		if name == "" {
			name = a.cfg.Persona.Default
		}
		mode := askMode
		if mode == "" {
			mode = a.cfg.Output.DefaultFormat
		}

		out, err := a.session.Respond(cmd.Context(), name, strings.Join(args, " "), session.Options{
			Context: askContext,
			Mode:    session.Mode(mode),
		})
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

var knowledgeCmd = &cobra.Command{
	Use:   "knowledge",
	Short: "Manage the retrieval knowledge base",
}

var knowledgeAddCmd = &cobra.Command{
	Use:   "add [directory]",
	Short: "Ingest .txt, .md, and .json files from a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		before := store.Len()
		if err := store.AddKnowledgeBase(args[0]); err != nil {
			return err
		}
		fmt.Printf("Ingested %d documents from %s\n", store.Len()-before, args[0])
		return nil
	},
}

var knowledgeStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show knowledge base statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		stats := store.Statistics()
		fmt.Printf("Documents: %d\n", stats.TotalDocuments)
		fmt.Printf("Path:      %s\n", stats.Path)
		fmt.Printf("Ready:     %t\n", stats.SystemReady)
		return nil
	},
}

// openStore opens the document store without requiring an API key, so
// knowledge management works before Gemini credentials exist.
func openStore(cmd *cobra.Command) (*retrieval.Store, error) {
	cfg := configFrom(cmd)
	return retrieval.NewStore(cfg.Retrieval.VectorDBPath, logger)
}

func init() {
	askCmd.Flags().StringVarP(&askPersona, "persona", "p", "", "Persona to answer as (default from config)")
	askCmd.Flags().StringVarP(&askContext, "context", "c", "", "Extra context for the query")
	askCmd.Flags().StringVarP(&askMode, "mode", "m", "", "Output mode: structured, raw, or plain")

	knowledgeCmd.AddCommand(knowledgeAddCmd)
	knowledgeCmd.AddCommand(knowledgeStatsCmd)
}
