package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-review/internal/config"
	"github.com/jonathan/resume-review/internal/docio"
)

const testResume = `{
  "personalInfo": {"name": "Jane Doe", "title": "Senior Dev"},
  "skills": ["Go", "Python"],
  "workExperience": [
    {"id": "exp-1", "company": "Acme", "position": "Engineer", "responsibilities": ["Built APIs"]}
  ]
}`

const testSuggestions = `{
  "clarity": [
    {
      "id": "s1",
      "path": "personalInfo.title",
      "reason": "more precise",
      "diff": [
        {"kind": "unchanged", "value": "Senior "},
        {"kind": "deletion", "value": "Dev"},
        {"kind": "suggestion", "value": "Engineer"}
      ]
    }
  ],
  "impact": [
    {
      "id": "s2",
      "path": "skills",
      "diff": [
        {"kind": "unchanged", "value": "Go"},
        {"kind": "deletion", "value": "Python"},
        {"kind": "suggestion", "value": "Rust"}
      ]
    },
    {
      "id": "s3",
      "path": "workExperience[0].company",
      "diff": [
        {"kind": "deletion", "value": "Acme"},
        {"kind": "suggestion", "value": "Acme Corp"}
      ]
    }
  ]
}`

// fixture writes the standard résumé and suggestion files into a temp dir.
func fixture(t *testing.T) (resumePath, suggestionsPath string) {
	t.Helper()
	dir := t.TempDir()
	resumePath = filepath.Join(dir, "resume.json")
	suggestionsPath = filepath.Join(dir, "suggestions.json")
	require.NoError(t, os.WriteFile(resumePath, []byte(testResume), 0644))
	require.NoError(t, os.WriteFile(suggestionsPath, []byte(testSuggestions), 0644))
	return resumePath, suggestionsPath
}

// execute runs the root command in-process with fresh flag values.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	settings = config.Config{}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

func readDoc(t *testing.T, path string) map[string]any {
	t.Helper()
	doc, err := docio.ReadDocument(path)
	require.NoError(t, err)
	m, ok := doc.(map[string]any)
	require.True(t, ok)
	return m
}
