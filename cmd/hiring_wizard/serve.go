package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/marisa/hiring-wizard/internal/config"
	"github.com/marisa/hiring-wizard/internal/copilot"
	"github.com/marisa/hiring-wizard/internal/llm"
	"github.com/marisa/hiring-wizard/internal/logger"
	"github.com/marisa/hiring-wizard/internal/server"
	"github.com/marisa/hiring-wizard/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the hiring copilot REST endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", config.DefaultPort, "Port to listen on")
	serveCmd.Flags().String("data-file", config.DefaultDataFile, "Path to the candidate CSV file")

	viper.BindPFlag("port", serveCmd.Flags().Lookup("port"))
	viper.BindPFlag("data-file", serveCmd.Flags().Lookup("data-file"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.JSONLog, cfg.Debug)
	if err != nil {
		return fmt.Errorf("creating a logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting the hiring wizard", zap.String("version", version))

	client, err := llm.NewClient(cmd.Context(), geminiConfig(cfg), cfg.Gemini.APIKey)
	if err != nil {
		return fmt.Errorf("creating LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	st := store.New(cfg.DataFile, log)
	svc := copilot.New(client, st, log, cfg.MaxLogLength)

	srv := server.New(server.Config{Port: cfg.Port}, svc, log)
	return srv.Start()
}

// geminiConfig applies per-tier model overrides from the configuration.
func geminiConfig(cfg *config.Config) *llm.Config {
	mc := llm.DefaultGeminiConfig()
	if cfg.Gemini.LiteModel != "" {
		mc = mc.WithModel(llm.TierLite, cfg.Gemini.LiteModel)
	}
	if cfg.Gemini.StandardModel != "" {
		mc = mc.WithModel(llm.TierStandard, cfg.Gemini.StandardModel)
	}
	if cfg.Gemini.AdvancedModel != "" {
		mc = mc.WithModel(llm.TierAdvanced, cfg.Gemini.AdvancedModel)
	}
	return mc
}
