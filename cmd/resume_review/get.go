package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-review/internal/docpath"
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the value at a path",
	Long:  "Prints the JSON value found at a dotted path (e.g. workExperience[0].company) of a résumé document. Prints null when the path does not resolve.",
	RunE:  runGet,
}

var (
	getResumeFile string
	getPath       string
)

func init() {
	getCmd.Flags().StringVarP(&getResumeFile, "resume", "r", "", "Path to résumé JSON or YAML file")
	getCmd.Flags().StringVarP(&getPath, "path", "p", "", "Dotted path to read (empty for the whole document)")

	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, _ []string) error {
	doc, err := loadResume(orDefault(getResumeFile, settings.Resume))
	if err != nil {
		return err
	}

	value := docpath.Get(doc, getPath, nil)
	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
