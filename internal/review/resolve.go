package review

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-review/internal/docpath"
	"github.com/jonathan/resume-review/internal/types"
)

var (
	// fields holding a single record
	objectFields = map[string]bool{
		types.FieldPersonalInfo: true,
	}
	// fields holding a collection of records
	recordListFields = map[string]bool{
		types.FieldWorkExperience: true,
		types.FieldEducation:      true,
		types.FieldProjects:       true,
		types.FieldAwards:         true,
	}
	// fields holding a flat list of strings
	stringListFields = map[string]bool{
		types.FieldSkills:  true,
		"responsibilities": true,
		"techStack":        true,
	}
)

// Classify returns the target shape of a suggestion. An explicit Target wins;
// otherwise the shape is inferred from the last key of the path and the first
// suggestion-kind diff value.
func Classify(s types.Suggestion) types.TargetShape {
	if s.Target != "" {
		return s.Target
	}

	field := lastField(s.Path)
	first, hasFirst := s.FirstSuggested()

	switch {
	case objectFields[field] || (hasFirst && isObject(first.Value)):
		return types.TargetObject
	case recordListFields[field] && hasFirst && isRecordList(first.Value):
		return types.TargetRecordList
	case stringListFields[field]:
		return types.TargetStringList
	default:
		return types.TargetScalar
	}
}

// ResolveValue returns the value that approving s writes at s.Path. The second
// result is false when the diff has no suggestion-kind segment, in which case
// approval only removes the suggestion.
func ResolveValue(s types.Suggestion) (any, bool) {
	first, ok := s.FirstSuggested()
	if !ok {
		return nil, false
	}

	switch shape := Classify(s); {
	case shape == types.TargetObject:
		return first.Value, true
	case shape == types.TargetRecordList:
		return first.Value, true
	case shape == types.TargetStringList || CanonicalPath(s.Path) == types.FieldSkills:
		return AcceptedList(s.Diff), true
	default:
		return AcceptedText(s.Diff), true
	}
}

// AcceptedText concatenates every non-deletion segment in order. Non-string
// values are formatted with fmt. An empty diff yields "".
func AcceptedText(diff []types.DiffSegment) string {
	var sb strings.Builder
	for _, seg := range diff {
		if seg.Kind == types.SegmentDeletion || seg.Value == nil {
			continue
		}
		if text, ok := seg.Value.(string); ok {
			sb.WriteString(text)
		} else {
			sb.WriteString(fmt.Sprint(seg.Value))
		}
	}
	return sb.String()
}

// AcceptedList collects every non-deletion segment value in order. A segment
// holding a list contributes its items, so a diff whose only kept segment is a
// whole replacement list yields that list. An empty diff yields an empty,
// non-nil list.
func AcceptedList(diff []types.DiffSegment) []any {
	out := make([]any, 0, len(diff))
	for _, seg := range diff {
		if seg.Kind == types.SegmentDeletion {
			continue
		}
		if items, ok := seg.Value.([]any); ok {
			out = append(out, items...)
			continue
		}
		out = append(out, seg.Value)
	}
	return out
}

func lastField(path string) string {
	p, err := docpath.Parse(path)
	if err != nil || len(p) == 0 {
		return ""
	}
	last := p[len(p)-1]
	if last.Kind != docpath.KeyToken {
		return ""
	}
	return last.Key
}

func isObject(v any) bool {
	switch v.(type) {
	case map[string]any, map[string]string:
		return true
	}
	return false
}

func isRecordList(v any) bool {
	list, ok := v.([]any)
	if !ok || len(list) == 0 {
		return false
	}
	return isObject(list[0])
}
