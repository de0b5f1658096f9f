package main

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-review/internal/docio"
	"github.com/jonathan/resume-review/internal/docpath"
)

func TestGetCommand(t *testing.T) {
	resumePath, _ := fixture(t)

	out, err := execute(t, "get", "--resume", resumePath, "--path", "workExperience[0].company")
	require.NoError(t, err)
	assert.Equal(t, "\"Acme\"\n", out)

	out, err = execute(t, "get", "--resume", resumePath, "--path", "workExperience[5].company")
	require.NoError(t, err)
	assert.Equal(t, "null\n", out)
}

func TestGetCommand_MissingResume(t *testing.T) {
	_, err := execute(t, "get", "--path", "skills")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--resume is required")
}

func TestSetCommand(t *testing.T) {
	resumePath, _ := fixture(t)
	outPath := filepath.Join(t.TempDir(), "out.yaml")

	_, err := execute(t, "set", "--resume", resumePath, "--path", "personalInfo.links[0]", "--value", "https://example.com", "--out", outPath)
	require.NoError(t, err)

	doc := readDoc(t, outPath)
	assert.Equal(t, "https://example.com", docpath.Get(doc, "personalInfo.links[0]", nil))
	assert.Equal(t, "Senior Dev", readDoc(t, resumePath)["personalInfo"].(map[string]any)["title"], "input left unchanged")
}

func TestSetCommand_ReportsCreatedPath(t *testing.T) {
	resumePath, _ := fixture(t)

	out, err := execute(t, "set", "--resume", resumePath, "--path", "personalInfo.title", "--value", "Lead")
	require.NoError(t, err)
	assert.Contains(t, out, "Set personalInfo.title")

	out, err = execute(t, "set", "--resume", resumePath, "--path", "personalInfo.email", "--value", "jane@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "Created personalInfo.email")
}

func TestSetCommand_JSONValue(t *testing.T) {
	resumePath, _ := fixture(t)

	_, err := execute(t, "set", "--resume", resumePath, "--path", "skills", "--value", `["Go","Rust"]`)
	require.NoError(t, err)

	assert.Equal(t, []any{"Go", "Rust"}, readDoc(t, resumePath)["skills"])
}

func TestSetCommand_Conflict(t *testing.T) {
	resumePath, _ := fixture(t)

	_, err := execute(t, "set", "--resume", resumePath, "--path", "personalInfo.title.0", "--value", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "personalInfo.title.0")
}

func TestIndexCommand(t *testing.T) {
	resumePath, suggestionsPath := fixture(t)

	out, err := execute(t, "index", "--resume", resumePath, "--suggestions", suggestionsPath)
	require.NoError(t, err)
	assert.Contains(t, out, "SUGGESTION s1")
	assert.Contains(t, out, "Senior [-Dev-]{+Engineer+}")
	assert.Contains(t, out, "• Rust")
	assert.Contains(t, out, "Remaining: 3")
}

func TestApproveCommand(t *testing.T) {
	resumePath, suggestionsPath := fixture(t)

	out, err := execute(t, "approve", "--resume", resumePath, "--suggestions", suggestionsPath, "--id", "s1, s2")
	require.NoError(t, err)
	assert.Contains(t, out, "Remaining: 1")

	doc := readDoc(t, resumePath)
	assert.Equal(t, "Senior Engineer", docpath.Get(doc, "personalInfo.title", nil))
	assert.Equal(t, []any{"Go", "Rust"}, doc["skills"])

	registry, err := docio.ReadRegistry(suggestionsPath)
	require.NoError(t, err)
	assert.Empty(t, registry["clarity"])
	require.Len(t, registry["impact"], 1)
	assert.Equal(t, "s3", registry["impact"][0].ID)
}

func TestApproveCommand_Aspect(t *testing.T) {
	resumePath, suggestionsPath := fixture(t)
	outResume := filepath.Join(t.TempDir(), "reviewed.json")
	outSuggestions := filepath.Join(t.TempDir(), "left.json")

	out, err := execute(t, "approve",
		"--resume", resumePath, "--suggestions", suggestionsPath,
		"--aspect", "impact", "--id", "s1",
		"--out-resume", outResume, "--out-suggestions", outSuggestions)
	require.NoError(t, err)
	assert.Contains(t, out, "All suggestions resolved")

	doc := readDoc(t, outResume)
	assert.Equal(t, "Acme Corp", docpath.Get(doc, "workExperience[0].company", nil))

	registry, err := docio.ReadRegistry(outSuggestions)
	require.NoError(t, err)
	assert.Equal(t, 0, registry.Remaining())
}

func TestApproveCommand_UnknownID(t *testing.T) {
	resumePath, suggestionsPath := fixture(t)

	out, err := execute(t, "approve", "--resume", resumePath, "--suggestions", suggestionsPath, "--id", "nope")
	require.NoError(t, err)
	assert.Contains(t, out, "nope is not pending")
	assert.Contains(t, out, "Remaining: 3")
}

func TestApproveCommand_RequiresTarget(t *testing.T) {
	resumePath, suggestionsPath := fixture(t)

	_, err := execute(t, "approve", "--resume", resumePath, "--suggestions", suggestionsPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--id or --aspect is required")
}

func TestApproveCommand_IDAssignedByIndex(t *testing.T) {
	resumePath, suggestionsPath := fixture(t)
	withoutIDs := `{
	  "clarity": [
	    {"path": "personalInfo.title", "diff": [{"kind": "suggestion", "value": "Staff Engineer"}]}
	  ]
	}`
	require.NoError(t, os.WriteFile(suggestionsPath, []byte(withoutIDs), 0644))

	out, err := execute(t, "index", "--resume", resumePath, "--suggestions", suggestionsPath)
	require.NoError(t, err)
	match := regexp.MustCompile(`SUGGESTION (\S+)`).FindStringSubmatch(out)
	require.Len(t, match, 2)

	out, err = execute(t, "approve", "--resume", resumePath, "--suggestions", suggestionsPath, "--id", match[1])
	require.NoError(t, err)
	assert.NotContains(t, out, "not pending")
	assert.Contains(t, out, "Remaining: 0")
	assert.Equal(t, "Staff Engineer", docpath.Get(readDoc(t, resumePath), "personalInfo.title", nil))
}

func TestDismissCommand(t *testing.T) {
	resumePath, suggestionsPath := fixture(t)

	out, err := execute(t, "dismiss", "--resume", resumePath, "--suggestions", suggestionsPath, "--id", "s1")
	require.NoError(t, err)
	assert.Contains(t, out, "dismissed")
	assert.Contains(t, out, "Remaining: 2")

	assert.Equal(t, "Senior Dev", docpath.Get(readDoc(t, resumePath), "personalInfo.title", nil))
}

func TestEditCommand(t *testing.T) {
	resumePath, suggestionsPath := fixture(t)

	out, err := execute(t, "edit", "--resume", resumePath, "--suggestions", suggestionsPath,
		"--path", "personalInfo.title", "--value", "Staff Engineer")
	require.NoError(t, err)
	assert.Contains(t, out, "s1 for this path is still pending")

	assert.Equal(t, "Staff Engineer", docpath.Get(readDoc(t, resumePath), "personalInfo.title", nil))
}

func TestRemainingCommand(t *testing.T) {
	_, suggestionsPath := fixture(t)

	out, err := execute(t, "remaining", "--suggestions", suggestionsPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Total: 3")
	assert.Contains(t, out, "impact")
}

func TestValidateCommand(t *testing.T) {
	resumePath, suggestionsPath := fixture(t)

	out, err := execute(t, "validate", "--resume", resumePath, "--suggestions", suggestionsPath)
	require.NoError(t, err)
	assert.Contains(t, out, "valid résumé")
	assert.Contains(t, out, "valid suggestion set")
}

func TestValidateCommand_CustomSchema(t *testing.T) {
	resumePath, _ := fixture(t)
	schemaPath := filepath.Join(t.TempDir(), "strict.schema.json")
	schema := `{
	  "$schema": "http://json-schema.org/draft-07/schema#",
	  "type": "object",
	  "required": ["summary"]
	}`
	require.NoError(t, os.WriteFile(schemaPath, []byte(schema), 0644))

	_, err := execute(t, "validate", "--resume", resumePath, "--schema", schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "summary")

	_, err = execute(t, "set", "--resume", resumePath, "--path", "summary", "--value", "Backend engineer")
	require.NoError(t, err)

	out, err := execute(t, "validate", "--resume", resumePath, "--schema", schemaPath)
	require.NoError(t, err)
	assert.Contains(t, out, "valid résumé")
}

func TestRemainingCommand_WithoutSchemaCheck(t *testing.T) {
	_, suggestionsPath := fixture(t)
	require.NoError(t, os.WriteFile(suggestionsPath, []byte(`{"clarity": [{"path": "skills", "diff": [{"kind": "rewrite"}]}]}`), 0644))
	t.Setenv("RESUME_REVIEW_VALIDATE", "false")

	out, err := execute(t, "remaining", "--suggestions", suggestionsPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Total: 1")
}

func TestValidateCommand_InvalidSuggestions(t *testing.T) {
	_, suggestionsPath := fixture(t)
	require.NoError(t, os.WriteFile(suggestionsPath, []byte(`{"clarity": [{"path": "x", "diff": [{"kind": "rewrite"}]}]}`), 0644))

	_, err := execute(t, "validate", "--suggestions", suggestionsPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "suggestions")
}

func TestValidateCommand_StrictOverlap(t *testing.T) {
	_, suggestionsPath := fixture(t)
	overlapping := `{
	  "clarity": [{"id": "a", "path": "skills", "diff": [{"kind": "suggestion", "value": "Go"}]}],
	  "impact": [{"id": "b", "path": "skills", "diff": [{"kind": "suggestion", "value": "Rust"}]}]
	}`
	require.NoError(t, os.WriteFile(suggestionsPath, []byte(overlapping), 0644))

	_, err := execute(t, "validate", "--suggestions", suggestionsPath)
	require.NoError(t, err)

	_, err = execute(t, "--strict", "validate", "--suggestions", suggestionsPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "both target skills")
}

func TestConfigFileSuppliesPaths(t *testing.T) {
	resumePath, suggestionsPath := fixture(t)
	cfgPath := filepath.Join(t.TempDir(), "review.yaml")
	cfg := "resume: " + resumePath + "\nsuggestions: " + suggestionsPath + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0644))

	out, err := execute(t, "--config", cfgPath, "remaining")
	require.NoError(t, err)
	assert.Contains(t, out, "Total: 3")

	out, err = execute(t, "--config", cfgPath, "get", "--path", "personalInfo.name")
	require.NoError(t, err)
	assert.Equal(t, "\"Jane Doe\"\n", out)
}

func TestConfigFile_Invalid(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "remaining")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
