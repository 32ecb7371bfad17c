package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/marisa/hiring-wizard/internal/config"
	"github.com/marisa/hiring-wizard/internal/copilot"
	"github.com/marisa/hiring-wizard/internal/llm"
	"github.com/marisa/hiring-wizard/internal/logger"
	"github.com/marisa/hiring-wizard/internal/observability"
	"github.com/marisa/hiring-wizard/internal/store"
	"github.com/marisa/hiring-wizard/internal/types"
)

const (
	PromptMatch    = "Match a profile against a query"
	PromptSearch   = "Search candidates"
	PromptLocation = "Extract location from a query"
	PromptOutreach = "Draft an outreach email"
	PromptExit     = "Exit"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Try the copilot workflows interactively against the live gateway",
	RunE:  runConsole,
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}

func runConsole(cmd *cobra.Command, _ []string) error {
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

	client, err := llm.NewClient(cmd.Context(), geminiConfig(cfg), cfg.Gemini.APIKey)
	if err != nil {
		return fmt.Errorf("creating LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	st := store.New(cfg.DataFile, log)
	svc := copilot.New(client, st, log, cfg.MaxLogLength)
	printer := observability.NewPrinter(os.Stdout)

	for {
		selector := promptui.Select{
			Label: "Workflow",
			Items: []string{PromptMatch, PromptSearch, PromptLocation, PromptOutreach, PromptExit},
		}

		_, choice, err := selector.Run()
		if err != nil {
			return err
		}

		switch choice {
		case PromptMatch:
			err = consoleMatch(cmd, svc, printer)
		case PromptSearch:
			err = consoleSearch(cmd, svc, printer)
		case PromptLocation:
			err = consoleLocation(cmd, svc, printer)
		case PromptOutreach:
			err = consoleOutreach(cmd, svc, printer)
		case PromptExit:
			return nil
		}
		if err != nil {
			log.Warn("workflow failed", zap.Error(err))
		}
	}
}

func consoleMatch(cmd *cobra.Command, svc *copilot.Service, printer *observability.Printer) error {
	query, err := promptLine("Recruiter query")
	if err != nil {
		return err
	}
	profile, err := promptLine("Candidate profile")
	if err != nil {
		return err
	}

	result, err := svc.Match(cmd.Context(), query, profile)
	if err != nil {
		return err
	}

	printer.PrintMatchResult(result)
	return nil
}

func consoleSearch(cmd *cobra.Command, svc *copilot.Service, printer *observability.Printer) error {
	query, err := promptLine("Recruiter query")
	if err != nil {
		return err
	}

	printer.PrintCandidates(svc.Search(cmd.Context(), query))
	return nil
}

func consoleLocation(cmd *cobra.Command, svc *copilot.Service, printer *observability.Printer) error {
	query, err := promptLine("Recruiter query")
	if err != nil {
		return err
	}

	location, ok, err := svc.ExtractLocation(cmd.Context(), query)
	if err != nil {
		return err
	}

	printer.PrintLocation(location, ok)
	return nil
}

func consoleOutreach(cmd *cobra.Command, svc *copilot.Service, printer *observability.Printer) error {
	req := types.OutreachRequest{}

	var err error
	if req.CandidateName, err = promptLine("Candidate name"); err != nil {
		return err
	}
	if req.CandidateEmail, err = promptLine("Candidate email"); err != nil {
		return err
	}
	if req.Subject, err = promptLine("Subject"); err != nil {
		return err
	}
	if req.Message, err = promptLine("Your message"); err != nil {
		return err
	}
	if req.CandidateResume, err = promptLine("Candidate résumé text"); err != nil {
		return err
	}

	message, err := svc.Outreach(cmd.Context(), req)
	if err != nil {
		return err
	}

	printer.PrintOutreach(message)
	return nil
}

func promptLine(label string) (string, error) {
	p := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return fmt.Errorf("value is required")
			}
			return nil
		},
	}
	return p.Run()
}
