package docio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-review/internal/types"
)

// DecodeError represents a file that could not be read or decoded
type DecodeError struct {
	Path   string
	Format Format
	Cause  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s file %s: %v", e.Format, e.Path, e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// ReadDocument reads a generic document from a JSON or YAML file.
func ReadDocument(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	codec := CodecFor(path)
	doc, err := codec.Decode(data)
	if err != nil {
		return nil, &DecodeError{Path: path, Format: codec.Format(), Cause: err}
	}
	return doc, nil
}

// WriteDocument encodes v by the file extension of path and writes it.
func WriteDocument(path string, v any) error {
	data, err := CodecFor(path).Encode(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// ReadRegistry reads a suggestion registry from a JSON or YAML file.
func ReadRegistry(path string) (types.Registry, error) {
	doc, err := ReadDocument(path)
	if err != nil {
		return nil, err
	}
	return DecodeRegistry(path, doc)
}

// DecodeRegistry converts a document already read from path into a registry.
// A null document yields an empty registry.
func DecodeRegistry(path string, doc any) (types.Registry, error) {
	var reg types.Registry
	if err := Convert(doc, &reg); err != nil {
		return nil, &DecodeError{Path: path, Format: CodecFor(path).Format(), Cause: err}
	}
	if reg == nil {
		reg = types.Registry{}
	}
	return reg, nil
}

// ToJSON encodes a generic document as compact JSON, e.g. for schema validation.
func ToJSON(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	return data, nil
}

// Convert copies a generic document into a typed value through JSON.
func Convert(doc any, out any) error {
	data, err := ToJSON(doc)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to convert document: %w", err)
	}
	return nil
}
