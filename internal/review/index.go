package review

import (
	"github.com/jonathan/resume-review/internal/docpath"
	"github.com/jonathan/resume-review/internal/types"
)

// Index maps a canonical document path to the suggestion targeting it
type Index map[string]types.Suggestion

// BuildIndex folds the registry into a path index. Aspects are visited in
// sorted order and suggestions in bucket order. Without strict, a later
// suggestion for an already indexed path replaces the earlier one; with strict,
// that situation is an *OverlapError. The same suggestion id listed under
// several aspects is not an overlap.
func BuildIndex(registry types.Registry, strict bool) (Index, error) {
	if strict {
		if err := firstOverlap(registry); err != nil {
			return nil, err
		}
	}
	return foldIndex(registry), nil
}

// foldIndex builds the last-write-wins index.
func foldIndex(registry types.Registry) Index {
	index := make(Index, registry.Remaining())
	for _, aspect := range registry.Aspects() {
		for _, s := range registry[aspect] {
			index[CanonicalPath(s.Path)] = s
		}
	}
	return index
}

// firstOverlap reports the first pair of distinct suggestions sharing a path,
// in fold order.
func firstOverlap(registry types.Registry) *OverlapError {
	type owner struct {
		id     string
		aspect string
	}
	seen := make(map[string]owner, registry.Remaining())

	for _, aspect := range registry.Aspects() {
		for _, s := range registry[aspect] {
			key := CanonicalPath(s.Path)
			if prev, ok := seen[key]; ok && prev.id != s.ID {
				return &OverlapError{
					Path:         key,
					FirstID:      prev.id,
					FirstAspect:  prev.aspect,
					SecondID:     s.ID,
					SecondAspect: aspect,
				}
			}
			seen[key] = owner{id: s.ID, aspect: aspect}
		}
	}
	return nil
}

// Lookup returns the suggestion indexed for path, if any.
func (idx Index) Lookup(path string) (types.Suggestion, bool) {
	s, ok := idx[CanonicalPath(path)]
	return s, ok
}

// CanonicalPath normalizes path text so that equivalent spellings share an
// index entry. Unparseable paths are returned unchanged.
func CanonicalPath(path string) string {
	p, err := docpath.Parse(path)
	if err != nil {
		return path
	}
	return p.String()
}
