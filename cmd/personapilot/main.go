// PersonaPilot is a persona-driven CLI assistant backed by the Gemini API.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"personapilot/internal/config"
	"personapilot/internal/gateway"
	"personapilot/internal/logging"
	"personapilot/internal/persona"
	"personapilot/internal/retrieval"
	"personapilot/internal/session"
)

var (
	configPath string
	logger     *zap.Logger
)

// app bundles the wired components behind each command.
type app struct {
	cfg     *config.Config
	session *session.Session
	store   *retrieval.Store
}

var rootCmd = &cobra.Command{
	Use:   "personapilot",
	Short: "PersonaPilot - persona-driven AI assistant",
	Long: `PersonaPilot answers questions in the voice of a chosen persona, from
budget traveler to startup founder. Each persona carries its own system
prompt, output schema, and short-term context memory.

Run without arguments to start the interactive session.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.Logging)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(cmd)
		if err != nil {
			return err
		}
		return runInteractive(cmd.Context(), a)
	},
}

type configKey struct{}

func configFrom(cmd *cobra.Command) *config.Config {
	if cfg, ok := cmd.Context().Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return config.DefaultConfig()
}

// buildApp wires the full pipeline. A missing API key fails here, before any
// interaction starts.
func buildApp(cmd *cobra.Command) (*app, error) {
	cfg := configFrom(cmd)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, err := gateway.New(cmd.Context(), gateway.Config{
		APIKey: cfg.Gemini.APIKey,
		Model:  cfg.Gemini.Model,
	}, logger)
	if err != nil {
		return nil, err
	}

	store, err := retrieval.NewStore(cfg.Retrieval.VectorDBPath, logger)
	if err != nil {
		return nil, err
	}

	registry := persona.NewRegistry(logger)
	sess := session.New(registry, client, store, cfg.Persona.MaxContextLength, logger)

	logger.Info("PersonaPilot started", zap.String("model", cfg.Gemini.Model))
	return &app{cfg: cfg, session: sess, store: store}, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "personapilot.yaml", "Path to config file")

	rootCmd.AddCommand(personasCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(knowledgeCmd)
}

func main() {
	rootCmd.SetContext(context.Background())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("❌ "+err.Error()))
		os.Exit(1)
	}
}
