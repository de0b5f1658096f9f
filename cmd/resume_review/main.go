// Package main provides the entry point for the resume_review CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-review/internal/config"
)

var (
	configFile string
	verbose    bool
	logLevel   string
	strict     bool

	// settings holds the merged configuration for the running command
	settings config.Config
)

var rootCmd = &cobra.Command{
	Use:               "resume_review",
	Short:             "Review AI-generated résumé suggestions",
	Long:              "resume_review reads a résumé document and a registry of suggested edits grouped by aspect, and lets you inspect, approve, dismiss or directly edit them path by path.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a JSON or YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Reject suggestion sets where two suggestions target the same path")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadSettings merges config file, environment and flag values. Flags win.
func loadSettings(_ *cobra.Command, _ []string) error {
	var cfg *config.Config
	var err error
	if configFile != "" {
		cfg, err = config.LoadConfig(configFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	merged := cfg.MergeWithDefaults(config.Defaults())
	if logLevel != "" {
		merged.LogLevel = logLevel
	}
	if verbose {
		merged.Verbose = true
		merged.LogLevel = "debug"
	}
	if strict {
		merged.Strict = true
	}

	if err := merged.Validate(); err != nil {
		return err
	}
	settings = merged
	return nil
}
