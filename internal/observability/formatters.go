// Package observability provides formatted output utilities for the CLI and
// logger construction.
package observability

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-review/internal/review"
	"github.com/jonathan/resume-review/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for review sessions
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	for _, line := range lines {
		// Truncate long lines
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSuggestion outputs a suggestion rendered according to its target shape.
// Scalar diffs mark deletions as [-text-] and suggestions as {+text+}.
func (p *Printer) PrintSuggestion(aspect string, s types.Suggestion) {
	var sb strings.Builder
	shape := review.Classify(s)

	sb.WriteString(fmt.Sprintf("Path:   %s\n", s.Path))
	sb.WriteString(fmt.Sprintf("Aspect: %s\n", aspect))
	sb.WriteString(fmt.Sprintf("Shape:  %s\n", shape))
	if s.Reason != "" {
		sb.WriteString(fmt.Sprintf("Reason: %s\n", s.Reason))
	}
	sb.WriteString("\n")

	switch shape {
	case types.TargetScalar:
		sb.WriteString(FormatDiff(s.Diff))
		sb.WriteString("\n")
	case types.TargetStringList:
		value, _ := review.ResolveValue(s)
		items, _ := value.([]any)
		writeList(&sb, items)
	case types.TargetObject, types.TargetRecordList:
		value, ok := review.ResolveValue(s)
		if !ok {
			sb.WriteString("(no replacement)\n")
			break
		}
		sb.WriteString(formatValue(value))
		sb.WriteString("\n")
	}

	p.printBox(fmt.Sprintf("SUGGESTION %s", s.ID), sb.String())
}

// PrintPending outputs every suggestion in the index, ordered by path.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintPending(registry types.Registry, index review.Index) {
	paths := make([]string, 0, len(index))
	for path := range index {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		s := index[path]
		_, aspect, _ := registry.Find(s.ID)
		p.PrintSuggestion(aspect, s)
	}
	fmt.Fprintf(p.out, "Remaining: %d\n", registry.Remaining())
}

// PrintRemaining outputs the total and per-aspect suggestion counts.
func (p *Printer) PrintRemaining(registry types.Registry) {
	var sb strings.Builder
	counts := registry.Counts()

	sb.WriteString(fmt.Sprintf("Total: %d\n", registry.Remaining()))
	for _, aspect := range registry.Aspects() {
		sb.WriteString(fmt.Sprintf("  • %-20s %d\n", aspect, counts[aspect]))
	}

	p.printBox("REMAINING SUGGESTIONS", sb.String())
}

// PrintHistory outputs the resolutions recorded during a session.
func (p *Printer) PrintHistory(history []review.Resolution) {
	if len(history) == 0 {
		return
	}

	var sb strings.Builder
	for _, res := range history {
		line := fmt.Sprintf("%-9s %s (%s)", res.Action, res.Path, res.Aspect)
		if res.Action == review.ActionApproved && !res.Applied {
			line += " no change"
		}
		sb.WriteString(line + "\n")
	}

	p.printBox(fmt.Sprintf("RESOLVED (%d)", len(history)), sb.String())
}

// FormatDiff renders diff segments inline: unchanged text as is, deletions as
// [-text-] and suggestions as {+text+}.
func FormatDiff(diff []types.DiffSegment) string {
	var sb strings.Builder
	for _, seg := range diff {
		text := formatScalar(seg.Value)
		switch seg.Kind {
		case types.SegmentDeletion:
			sb.WriteString("[-" + text + "-]")
		case types.SegmentSuggestion:
			sb.WriteString("{+" + text + "+}")
		default:
			sb.WriteString(text)
		}
	}
	return sb.String()
}

func writeList(sb *strings.Builder, items []any) {
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", formatScalar(items[i])))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

func formatScalar(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func formatValue(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}
