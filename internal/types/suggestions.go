// Package types provides type definitions for structured data used throughout the resume-review system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// SegmentKind classifies a piece of a suggestion's diff
type SegmentKind string

const (
	SegmentUnchanged  SegmentKind = "unchanged"
	SegmentDeletion   SegmentKind = "deletion"
	SegmentSuggestion SegmentKind = "suggestion"
)

// TargetShape tells how a suggestion's diff maps onto the document location it targets.
// An empty TargetShape means the producer did not tag it and the shape is inferred.
type TargetShape string

const (
	TargetScalar     TargetShape = "scalar"
	TargetObject     TargetShape = "object"
	TargetRecordList TargetShape = "record_list"
	TargetStringList TargetShape = "string_list"
)

// DiffSegment is one piece of a suggestion. Value is a string for text targets,
// an object for record targets and an array for collection targets.
type DiffSegment struct {
	Kind  SegmentKind `json:"kind" validate:"required,oneof=unchanged deletion suggestion"`
	Value any         `json:"value"`
}

// Suggestion is a single proposed edit to one document path
type Suggestion struct {
	ID     string        `json:"id" validate:"required"`
	Path   string        `json:"path" validate:"required"`
	Reason string        `json:"reason,omitempty"`
	Target TargetShape   `json:"target,omitempty" validate:"omitempty,oneof=scalar object record_list string_list"`
	Diff   []DiffSegment `json:"diff" validate:"dive"`
}

// Validate validates the Suggestion using the validator.
func (s *Suggestion) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}

// FirstSuggested returns the first segment of kind suggestion, which is the
// authoritative one when resolving an applied value.
func (s *Suggestion) FirstSuggested() (DiffSegment, bool) {
	for _, seg := range s.Diff {
		if seg.Kind == SegmentSuggestion {
			return seg, true
		}
	}
	return DiffSegment{}, false
}

// Registry groups pending suggestions by review aspect (clarity, impact, grammar, ...)
type Registry map[string][]Suggestion

// Aspects returns the aspect names in sorted order.
func (r Registry) Aspects() []string {
	aspects := make([]string, 0, len(r))
	for aspect := range r {
		aspects = append(aspects, aspect)
	}
	sort.Strings(aspects)
	return aspects
}

// Remaining returns the number of suggestions across all aspects.
func (r Registry) Remaining() int {
	total := 0
	for _, bucket := range r {
		total += len(bucket)
	}
	return total
}

// Counts returns the number of suggestions per aspect.
func (r Registry) Counts() map[string]int {
	counts := make(map[string]int, len(r))
	for aspect, bucket := range r {
		counts[aspect] = len(bucket)
	}
	return counts
}

// Find returns the first suggestion with the given id and the aspect holding it.
// Aspects are searched in sorted order.
func (r Registry) Find(id string) (Suggestion, string, bool) {
	for _, aspect := range r.Aspects() {
		for _, s := range r[aspect] {
			if s.ID == id {
				return s, aspect, true
			}
		}
	}
	return Suggestion{}, "", false
}

// Without returns a new registry with every suggestion carrying id removed from
// every aspect. Aspects are kept even when they become empty.
func (r Registry) Without(id string) Registry {
	out := make(Registry, len(r))
	for aspect, bucket := range r {
		kept := make([]Suggestion, 0, len(bucket))
		for _, s := range bucket {
			if s.ID != id {
				kept = append(kept, s)
			}
		}
		out[aspect] = kept
	}
	return out
}

// Clone returns a copy of the registry whose buckets can be modified independently.
// Diff values are shared.
func (r Registry) Clone() Registry {
	out := make(Registry, len(r))
	for aspect, bucket := range r {
		out[aspect] = append(make([]Suggestion, 0, len(bucket)), bucket...)
	}
	return out
}

// suggestionNamespace seeds the name-based ids assigned by EnsureIDs.
var suggestionNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("resume-review/suggestion"))

// EnsureIDs returns a copy of the registry where every suggestion without an id
// has been given one derived from its aspect, position and path. The same
// registry content always yields the same ids.
func (r Registry) EnsureIDs() Registry {
	out := r.Clone()
	for aspect, bucket := range out {
		for i := range bucket {
			if bucket[i].ID == "" {
				name := fmt.Sprintf("%s\x00%d\x00%s", aspect, i, bucket[i].Path)
				bucket[i].ID = uuid.NewSHA1(suggestionNamespace, []byte(name)).String()
			}
		}
	}
	return out
}

// Validate validates every suggestion in the registry.
func (r Registry) Validate() error {
	for _, aspect := range r.Aspects() {
		for i := range r[aspect] {
			if err := r[aspect][i].Validate(); err != nil {
				return fmt.Errorf("aspect %q suggestion %d: %w", aspect, i, err)
			}
		}
	}
	return nil
}
