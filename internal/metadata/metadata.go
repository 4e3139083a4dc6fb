// Package metadata pulls slide-level directives, speaker notes and the
// title out of a raw slide segment.
package metadata

import (
	"strings"

	"github.com/dgallion1/slidedeck/internal/deck"
	"github.com/dgallion1/slidedeck/internal/markup"
)

// Metadata is the result of extracting one segment.
type Metadata struct {
	Style *deck.Style
	Notes string
	Title string
	Body  string
}

// Extract strips style directives and notes from segment and reads the
// title from what remains. It never fails, and Extract(m.Body) returns no
// style, no notes and the same title and body.
func Extract(segment string) Metadata {
	lines := markup.Lines(segment)
	lines, legacy, modern := parseStyle(lines)
	lines, notes := splitNotes(lines)
	body := cleanBody(lines)

	return Metadata{
		Style: ModernSyntaxWins(legacy, modern),
		Notes: notes,
		Title: extractTitle(body),
		Body:  body,
	}
}

// cleanBody drops blank leading and trailing lines. Indentation of the
// first line is kept so that a stripped directive never turns an indented
// line into something else.
func cleanBody(lines []string) string {
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return ""
	}
	lines[len(lines)-1] = strings.TrimRight(lines[len(lines)-1], " \t")
	return strings.Join(lines, "\n")
}
