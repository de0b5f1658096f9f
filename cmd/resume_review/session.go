package main

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/resume-review/internal/docio"
	"github.com/jonathan/resume-review/internal/observability"
	"github.com/jonathan/resume-review/internal/review"
	"github.com/jonathan/resume-review/internal/schemas"
	"github.com/jonathan/resume-review/internal/types"
)

// orDefault returns flag when set, otherwise the configured fallback.
func orDefault(flag, fallback string) string {
	if flag != "" {
		return flag
	}
	return fallback
}

func requirePath(name, path string) error {
	if path == "" {
		return fmt.Errorf("--%s is required (or set it in the config file)", name)
	}
	return nil
}

// loadResume reads a résumé document, schema-checking it when enabled.
func loadResume(path string) (any, error) {
	if err := requirePath("resume", path); err != nil {
		return nil, err
	}
	doc, err := docio.ReadDocument(path)
	if err != nil {
		return nil, err
	}
	if settings.Validate {
		data, err := docio.ToJSON(doc)
		if err != nil {
			return nil, err
		}
		if err := schemas.ValidateResume(data); err != nil {
			return nil, fmt.Errorf("resume %s: %w", path, err)
		}
	}
	return doc, nil
}

// loadRegistry reads a suggestion registry, schema-checking it when enabled,
// and assigns ids to suggestions that arrived without one.
func loadRegistry(path string) (types.Registry, error) {
	if err := requirePath("suggestions", path); err != nil {
		return nil, err
	}
	if !settings.Validate {
		registry, err := docio.ReadRegistry(path)
		if err != nil {
			return nil, err
		}
		return registry.EnsureIDs(), nil
	}

	doc, err := docio.ReadDocument(path)
	if err != nil {
		return nil, err
	}
	data, err := docio.ToJSON(doc)
	if err != nil {
		return nil, err
	}
	if err := schemas.ValidateRegistry(data); err != nil {
		return nil, fmt.Errorf("suggestions %s: %w", path, err)
	}
	registry, err := docio.DecodeRegistry(path, doc)
	if err != nil {
		return nil, err
	}
	return registry.EnsureIDs(), nil
}

func newLogger() (*zap.Logger, error) {
	return observability.NewLogger(settings.LogLevel)
}

// openReviewer loads both files and starts a review over them.
func openReviewer(resumePath, suggestionsPath string) (*review.Reviewer, *zap.Logger, error) {
	doc, err := loadResume(resumePath)
	if err != nil {
		return nil, nil, err
	}
	registry, err := loadRegistry(suggestionsPath)
	if err != nil {
		return nil, nil, err
	}
	logger, err := newLogger()
	if err != nil {
		return nil, nil, err
	}

	r, err := review.NewReviewer(doc, registry,
		review.WithLogger(logger),
		review.WithStrictIndex(settings.Strict))
	if err != nil {
		_ = logger.Sync()
		return nil, nil, fmt.Errorf("failed to start review: %w", err)
	}
	return r, logger, nil
}

// saveReview writes the document and the remaining suggestions.
func saveReview(r *review.Reviewer, resumeOut, suggestionsOut string) error {
	if err := docio.WriteDocument(resumeOut, r.Document()); err != nil {
		return err
	}
	return docio.WriteDocument(suggestionsOut, r.Registry())
}

// parseValue reads a flag value as a JSON literal, falling back to the raw
// string when it is not valid JSON.
func parseValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}
