package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-review/internal/docio"
	"github.com/jonathan/resume-review/internal/review"
	"github.com/jonathan/resume-review/internal/types"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the document directly during a review",
	Long:  "Writes a value at a path as a reviewer's own edit. Pending suggestions are left untouched, including one targeting the same path.",
	RunE:  runEdit,
}

var (
	editResumeFile      string
	editSuggestionsFile string
	editPath            string
	editValue           string
	editOutFile         string
)

func init() {
	editCmd.Flags().StringVarP(&editResumeFile, "resume", "r", "", "Path to résumé JSON or YAML file")
	editCmd.Flags().StringVarP(&editSuggestionsFile, "suggestions", "s", "", "Path to suggestions file (optional)")
	editCmd.Flags().StringVarP(&editPath, "path", "p", "", "Dotted path to write (required)")
	editCmd.Flags().StringVar(&editValue, "value", "", "Value to write, as JSON or a plain string")
	editCmd.Flags().StringVarP(&editOutFile, "out", "o", "", "Output file (defaults to the input file)")

	_ = editCmd.MarkFlagRequired("path")

	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, _ []string) error {
	resumePath := orDefault(editResumeFile, settings.Resume)
	doc, err := loadResume(resumePath)
	if err != nil {
		return err
	}

	registry := types.Registry{}
	if suggestionsPath := orDefault(editSuggestionsFile, settings.Suggestions); suggestionsPath != "" {
		if registry, err = loadRegistry(suggestionsPath); err != nil {
			return err
		}
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	r, err := review.NewReviewer(doc, registry, review.WithLogger(logger))
	if err != nil {
		return err
	}
	if err := r.Edit(editPath, parseValue(editValue)); err != nil {
		return err
	}

	out := orDefault(editOutFile, resumePath)
	if err := docio.WriteDocument(out, r.Document()); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "Edited %s in %s\n", editPath, out)
	if s, ok := r.Pending(editPath); ok {
		_, _ = fmt.Fprintf(w, "Suggestion %s for this path is still pending\n", s.ID)
	}
	return nil
}
