// Package docio reads and writes résumé documents and suggestion registries as JSON or YAML files.
package docio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format names a file encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Codec converts between bytes and generic documents made of
// map[string]any, []any and JSON scalars.
type Codec interface {
	Format() Format
	Decode(data []byte) (any, error)
	Encode(v any) ([]byte, error)
}

// CodecFor picks a codec from a file extension. .yaml and .yml select YAML,
// anything else JSON.
func CodecFor(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAMLCodec{}
	default:
		return JSONCodec{}
	}
}

// JSONCodec handles JSON content. Numbers decode as float64.
type JSONCodec struct{}

func (JSONCodec) Format() Format { return FormatJSON }

func (JSONCodec) Decode(data []byte) (any, error) {
	var v any
	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&v); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, fmt.Errorf("invalid json: unexpected data after top-level value")
	}
	return v, nil
}

func (JSONCodec) Encode(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// YAMLCodec handles YAML content. Decoded values are normalized through JSON
// so that a YAML file and its JSON equivalent produce identical documents.
type YAMLCodec struct{}

func (YAMLCodec) Format() Format { return FormatYAML }

func (YAMLCodec) Decode(data []byte) (any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("yaml content is not JSON-compatible: %w", err)
	}
	return JSONCodec{}.Decode(encoded)
}

func (YAMLCodec) Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
