// Package splitter partitions a deck document into raw slide segments.
package splitter

import (
	"strings"

	"github.com/dgallion1/slidedeck/internal/markup"
)

const (
	horizontalRule = "---"
	verticalRule   = "--"
)

// Segment is the raw, trimmed text of one slide with its coordinates.
type Segment struct {
	Horizontal int
	Vertical   int
	Raw        string
}

// Split breaks text on "---" lines into topic groups and each group on
// "--" lines into sub-slides. Separator lines inside fenced code blocks
// do not split. The result always holds at least one segment.
func Split(text string) []Segment {
	var segs []Segment
	for h, group := range splitOn(text, horizontalRule) {
		for v, part := range splitOn(group, verticalRule) {
			segs = append(segs, Segment{
				Horizontal: h,
				Vertical:   v,
				Raw:        strings.TrimSpace(part),
			})
		}
	}
	return segs
}

// Count returns the number of horizontal and vertical separators in text.
func Count(text string) (horizontal, vertical int) {
	groups := splitOn(text, horizontalRule)
	horizontal = len(groups) - 1
	for _, g := range groups {
		vertical += len(splitOn(g, verticalRule)) - 1
	}
	return horizontal, vertical
}

func splitOn(text, rule string) []string {
	var (
		fence   markup.Fence
		parts   []string
		current []string
	)
	for _, line := range markup.Lines(text) {
		if !fence.Scan(line) && isRule(line, rule) {
			parts = append(parts, strings.Join(current, "\n"))
			current = current[:0]
			continue
		}
		current = append(current, line)
	}
	return append(parts, strings.Join(current, "\n"))
}

func isRule(line, rule string) bool {
	return strings.TrimRight(line, " \t") == rule
}
