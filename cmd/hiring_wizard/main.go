// Package main provides the entry point for the Hiring Wizard HTTP API server.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	_ "github.com/marisa/hiring-wizard/docs" // Swagger docs
	"github.com/marisa/hiring-wizard/internal/config"
)

const app = "hiring_wizard"

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "Hiring Wizard HTTP API Server",
		Long:  "Hiring Wizard is an LLM-powered hiring copilot: it scores candidates against recruiter queries, extracts skills, location and experience from résumés, and drafts personalized outreach emails via REST API.",
	}
)

// @title Hiring Wizard API
// @version 1.0
// @description LLM-powered hiring copilot API for matching, searching, and reaching out to candidates.

// @host localhost:8080
// @BasePath /

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is hiring-wizard.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	viper.SetEnvPrefix("HW")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	config.SetDefaults(viper.GetViper())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		cobra.CheckErr(viper.ReadInConfig())
		return
	}

	viper.AddConfigPath(".")
	viper.SetConfigName("hiring-wizard")
	viper.SetConfigType("yaml")

	// A missing config file is fine; flags and environment cover everything.
	_ = viper.ReadInConfig()
}
