package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-review/internal/observability"
	"github.com/jonathan/resume-review/internal/review"
)

var approveCmd = &cobra.Command{
	Use:   "approve",
	Short: "Approve suggestions and apply them to the résumé",
	Long:  "Approves suggestions by id (comma-separated) or every suggestion in an aspect, writes their values into the résumé and removes them from the suggestion set.",
	RunE:  runApprove,
}

var approveFlags resolveFlags

func init() {
	approveFlags.register(approveCmd)

	rootCmd.AddCommand(approveCmd)
}

func runApprove(cmd *cobra.Command, _ []string) error {
	return approveFlags.run(cmd, func(r *review.Reviewer, id string) (bool, error) {
		return r.Approve(id)
	}, func(r *review.Reviewer, aspect string) (int, error) {
		return r.ApproveAspect(aspect)
	})
}

// resolveFlags holds the flags shared by approve and dismiss.
type resolveFlags struct {
	resumeFile         string
	suggestionsFile    string
	ids                string
	aspect             string
	outResumeFile      string
	outSuggestionsFile string
}

func (f *resolveFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.resumeFile, "resume", "r", "", "Path to résumé JSON or YAML file")
	cmd.Flags().StringVarP(&f.suggestionsFile, "suggestions", "s", "", "Path to suggestions file")
	cmd.Flags().StringVar(&f.ids, "id", "", "Suggestion ids, comma-separated")
	cmd.Flags().StringVar(&f.aspect, "aspect", "", "Resolve every suggestion in this aspect")
	cmd.Flags().StringVar(&f.outResumeFile, "out-resume", "", "Output résumé file (defaults to the input file)")
	cmd.Flags().StringVar(&f.outSuggestionsFile, "out-suggestions", "", "Output suggestions file (defaults to the input file)")
}

func (f *resolveFlags) idList() []string {
	var ids []string
	for _, id := range strings.Split(f.ids, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func (f *resolveFlags) run(
	cmd *cobra.Command,
	byID func(*review.Reviewer, string) (bool, error),
	byAspect func(*review.Reviewer, string) (int, error),
) error {
	ids := f.idList()
	if len(ids) == 0 && f.aspect == "" {
		return fmt.Errorf("--id or --aspect is required")
	}

	resumePath := orDefault(f.resumeFile, settings.Resume)
	suggestionsPath := orDefault(f.suggestionsFile, settings.Suggestions)
	r, logger, err := openReviewer(resumePath, suggestionsPath)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	w := cmd.OutOrStdout()
	for _, id := range ids {
		resolved, err := byID(r, id)
		if err != nil {
			return fmt.Errorf("suggestion %s: %w", id, err)
		}
		if !resolved {
			_, _ = fmt.Fprintf(w, "Suggestion %s is not pending, skipped\n", id)
		}
	}
	if f.aspect != "" {
		if _, err := byAspect(r, f.aspect); err != nil {
			return err
		}
	}

	if err := saveReview(r,
		orDefault(f.outResumeFile, resumePath),
		orDefault(f.outSuggestionsFile, suggestionsPath),
	); err != nil {
		return err
	}

	p := observability.NewPrinter(w)
	p.PrintHistory(r.History())
	_, _ = fmt.Fprintf(w, "Remaining: %d\n", r.Remaining())
	if r.Complete() {
		_, _ = fmt.Fprintln(w, "✅ All suggestions resolved")
	}
	return nil
}
