package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string"}
	}
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateResume(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{
			name: "valid resume",
			content: `{
				"personalInfo": {"name": "Jane Doe", "title": "Engineer"},
				"skills": ["Go", "Python"],
				"workExperience": [{"id": "exp-1", "company": "Acme", "responsibilities": ["Built APIs"]}],
				"projects": [{"id": "p1", "name": "resume-review", "techStack": ["Go"]}],
				"awards": [{"id": "a1", "title": "Hackathon winner"}]
			}`,
		},
		{
			name:    "empty document",
			content: `{}`,
		},
		{
			name:    "skills must be strings",
			content: `{"skills": ["Go", 3]}`,
			wantErr: true,
		},
		{
			name:    "experience records need an id",
			content: `{"workExperience": [{"company": "Acme"}]}`,
			wantErr: true,
		},
		{
			name:    "award records need an id",
			content: `{"awards": [{"title": "Best paper"}]}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResume([]byte(tt.content))
			if tt.wantErr {
				require.Error(t, err)
				var validationErr *ValidationError
				require.True(t, errors.As(err, &validationErr))
				assert.NotEmpty(t, validationErr.Errors)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRegistry(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{
			name: "valid registry",
			content: `{
				"clarity": [
					{"id": "s1", "path": "personalInfo.title", "reason": "Sharper", "diff": [
						{"kind": "unchanged", "value": "Senior "},
						{"kind": "suggestion", "value": "Engineer"}
					]}
				],
				"grammar": []
			}`,
		},
		{
			name:    "suggestion without id is allowed",
			content: `{"clarity": [{"path": "skills", "diff": []}]}`,
		},
		{
			name:    "bucket must be an array",
			content: `{"clarity": {"path": "skills"}}`,
			wantErr: true,
		},
		{
			name:    "missing path",
			content: `{"clarity": [{"id": "s1", "diff": []}]}`,
			wantErr: true,
		},
		{
			name:    "unknown segment kind",
			content: `{"clarity": [{"id": "s1", "path": "skills", "diff": [{"kind": "insert", "value": "Go"}]}]}`,
			wantErr: true,
		},
		{
			name:    "unknown target",
			content: `{"clarity": [{"id": "s1", "path": "skills", "target": "table", "diff": []}]}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegistry([]byte(tt.content))
			if tt.wantErr {
				require.Error(t, err)
				var validationErr *ValidationError
				require.True(t, errors.As(err, &validationErr))
				assert.NotEmpty(t, validationErr.Errors)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRegistry_MalformedJSON(t *testing.T) {
	err := ValidateRegistry([]byte("{ invalid json }"))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidateWithSchemaFile(t *testing.T) {
	schemaPath := writeFile(t, "schema.json", personSchema)

	assert.NoError(t, ValidateWithSchemaFile(schemaPath, []byte(`{"name": "test"}`)))

	err := ValidateWithSchemaFile(schemaPath, []byte(`{"name": 3}`))
	require.Error(t, err)
	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Equal(t, "name", validationErr.Errors[0].Field)

	err = ValidateWithSchemaFile(schemaPath, []byte(`{"age": 30}`))
	require.Error(t, err)
	validationErr, ok = err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
}

func TestValidateWithSchemaFile_RelativeRef(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "person.schema.json"), []byte(personSchema), 0644))
	teamSchema := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"properties": {
			"lead": {"$ref": "person.schema.json"}
		}
	}`
	teamPath := filepath.Join(dir, "team.schema.json")
	require.NoError(t, os.WriteFile(teamPath, []byte(teamSchema), 0644))

	assert.NoError(t, ValidateWithSchemaFile(teamPath, []byte(`{"lead": {"name": "Jane"}}`)))
	assert.Error(t, ValidateWithSchemaFile(teamPath, []byte(`{"lead": {"name": 1}}`)))
}

func TestValidateWithSchemaFile_MissingSchema(t *testing.T) {
	err := ValidateWithSchemaFile(filepath.Join(t.TempDir(), "missing.json"), []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "age", Message: "must be a number"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "1. name: is required")
	assert.Contains(t, errorMsg, "2. age: must be a number")
}
