package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-review/internal/docio"
	"github.com/jonathan/resume-review/internal/docpath"
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Write a value at a path",
	Long:  "Writes a value at a dotted path of a résumé document, creating missing containers along the way. The value is parsed as JSON, falling back to a plain string.",
	RunE:  runSet,
}

var (
	setResumeFile string
	setPath       string
	setValue      string
	setOutFile    string
)

func init() {
	setCmd.Flags().StringVarP(&setResumeFile, "resume", "r", "", "Path to résumé JSON or YAML file")
	setCmd.Flags().StringVarP(&setPath, "path", "p", "", "Dotted path to write (required)")
	setCmd.Flags().StringVar(&setValue, "value", "", "Value to write, as JSON or a plain string")
	setCmd.Flags().StringVarP(&setOutFile, "out", "o", "", "Output file (defaults to the input file)")

	_ = setCmd.MarkFlagRequired("path")

	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, _ []string) error {
	resumePath := orDefault(setResumeFile, settings.Resume)
	doc, err := loadResume(resumePath)
	if err != nil {
		return err
	}

	existed := docpath.Has(doc, setPath)
	updated, err := docpath.Set(doc, setPath, parseValue(setValue))
	if err != nil {
		return err
	}

	out := orDefault(setOutFile, resumePath)
	if err := docio.WriteDocument(out, updated); err != nil {
		return err
	}
	verb := "Set"
	if !existed {
		verb = "Created"
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s in %s\n", verb, setPath, out)
	return nil
}
