package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-review/internal/observability"
)

var remainingCmd = &cobra.Command{
	Use:   "remaining",
	Short: "Count pending suggestions",
	Long:  "Prints the total number of pending suggestions and the count per aspect.",
	RunE:  runRemaining,
}

var remainingSuggestionsFile string

func init() {
	remainingCmd.Flags().StringVarP(&remainingSuggestionsFile, "suggestions", "s", "", "Path to suggestions file")

	rootCmd.AddCommand(remainingCmd)
}

func runRemaining(cmd *cobra.Command, _ []string) error {
	registry, err := loadRegistry(orDefault(remainingSuggestionsFile, settings.Suggestions))
	if err != nil {
		return err
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintRemaining(registry)
	return nil
}
