package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-review/internal/observability"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Show pending suggestions by path",
	Long:  "Builds the path index over all pending suggestions and prints each one rendered by its target shape, followed by the remaining count.",
	RunE:  runIndex,
}

var (
	indexResumeFile      string
	indexSuggestionsFile string
)

func init() {
	indexCmd.Flags().StringVarP(&indexResumeFile, "resume", "r", "", "Path to résumé JSON or YAML file")
	indexCmd.Flags().StringVarP(&indexSuggestionsFile, "suggestions", "s", "", "Path to suggestions file")

	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, _ []string) error {
	r, logger, err := openReviewer(
		orDefault(indexResumeFile, settings.Resume),
		orDefault(indexSuggestionsFile, settings.Suggestions),
	)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	observability.NewPrinter(cmd.OutOrStdout()).PrintPending(r.Registry(), r.Index())
	return nil
}
