package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-review/internal/docio"
	"github.com/jonathan/resume-review/internal/review"
	"github.com/jonathan/resume-review/internal/schemas"
	"github.com/jonathan/resume-review/internal/types"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a résumé and suggestion file",
	Long:  "Checks a résumé and/or suggestion file against the embedded JSON Schemas and field rules, and checks that the suggestions can be indexed.",
	RunE:  runValidate,
}

var (
	validateResumeFile      string
	validateSuggestionsFile string
	validateSchemaFile      string
)

func init() {
	validateCmd.Flags().StringVarP(&validateResumeFile, "resume", "r", "", "Path to résumé JSON or YAML file")
	validateCmd.Flags().StringVarP(&validateSuggestionsFile, "suggestions", "s", "", "Path to suggestions file")
	validateCmd.Flags().StringVar(&validateSchemaFile, "schema", "", "JSON Schema file to check the résumé against instead of the built-in one")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	resumePath := orDefault(validateResumeFile, settings.Resume)
	suggestionsPath := orDefault(validateSuggestionsFile, settings.Suggestions)
	if resumePath == "" && suggestionsPath == "" {
		return fmt.Errorf("--resume or --suggestions is required")
	}

	w := cmd.OutOrStdout()
	if resumePath != "" {
		if err := validateResume(resumePath); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "✅ %s is a valid résumé\n", resumePath)
	}
	if suggestionsPath != "" {
		if err := validateSuggestions(suggestionsPath); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "✅ %s is a valid suggestion set\n", suggestionsPath)
	}
	return nil
}

func validateResume(path string) error {
	doc, err := docio.ReadDocument(path)
	if err != nil {
		return err
	}
	data, err := docio.ToJSON(doc)
	if err != nil {
		return err
	}
	if validateSchemaFile != "" {
		err = schemas.ValidateWithSchemaFile(validateSchemaFile, data)
	} else {
		err = schemas.ValidateResume(data)
	}
	if err != nil {
		return fmt.Errorf("resume %s: %w", path, err)
	}

	resume, err := types.ResumeFromDocument(doc)
	if err != nil {
		return err
	}
	if err := resume.Validate(); err != nil {
		return fmt.Errorf("resume %s: %w", path, err)
	}
	return nil
}

func validateSuggestions(path string) error {
	doc, err := docio.ReadDocument(path)
	if err != nil {
		return err
	}
	data, err := docio.ToJSON(doc)
	if err != nil {
		return err
	}
	if err := schemas.ValidateRegistry(data); err != nil {
		return fmt.Errorf("suggestions %s: %w", path, err)
	}

	registry, err := docio.DecodeRegistry(path, doc)
	if err != nil {
		return err
	}
	registry = registry.EnsureIDs()
	if err := registry.Validate(); err != nil {
		return fmt.Errorf("suggestions %s: %w", path, err)
	}
	if _, err := review.BuildIndex(registry, settings.Strict); err != nil {
		return fmt.Errorf("suggestions %s: %w", path, err)
	}
	return nil
}
