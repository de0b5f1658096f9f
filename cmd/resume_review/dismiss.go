package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-review/internal/review"
)

var dismissCmd = &cobra.Command{
	Use:   "dismiss",
	Short: "Dismiss suggestions without changing the résumé",
	Long:  "Dismisses suggestions by id (comma-separated) or every suggestion in an aspect, removing them from the suggestion set. The résumé is written back unchanged.",
	RunE:  runDismiss,
}

var dismissFlags resolveFlags

func init() {
	dismissFlags.register(dismissCmd)

	rootCmd.AddCommand(dismissCmd)
}

func runDismiss(cmd *cobra.Command, _ []string) error {
	return dismissFlags.run(cmd, func(r *review.Reviewer, id string) (bool, error) {
		return r.Dismiss(id), nil
	}, func(r *review.Reviewer, aspect string) (int, error) {
		return r.DismissAspect(aspect), nil
	})
}
