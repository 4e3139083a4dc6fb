package importer

import (
	"fmt"
	"strings"

	"github.com/dgallion1/slidedeck/internal/markup"
)

// Render writes doc as deck markdown. The document title gets its own
// slide, every top-level section becomes a topic, and continuation pages
// and nested sections become its sub-slides.
func Render(doc *Document, maxWords int) string {
	if doc.Deck != "" {
		return doc.Deck
	}

	var topics []string
	if t := oneLine(doc.Title); t != "" && !leadsWith(doc.Sections, t) {
		topics = append(topics, "# "+t)
	}
	for _, s := range doc.Sections {
		slides := renderSection(s, "#", doc, maxWords)
		if len(slides) > 0 {
			topics = append(topics, strings.Join(slides, "\n\n--\n\n"))
		}
	}
	if len(topics) == 0 {
		return ""
	}
	return strings.Join(topics, "\n\n---\n\n") + "\n"
}

// renderSection returns the slides of s followed by those of its
// descendants, depth first.
func renderSection(s *Section, marker string, doc *Document, maxWords int) []string {
	title := oneLine(s.Title)
	text := s.Text
	if !doc.Markdown {
		text = escapeStructure(text)
	}

	var slides []string
	pages := paginate(text, maxWords, !doc.Markdown)
	for i, page := range pages {
		var b strings.Builder
		switch {
		case title != "" && i == 0:
			b.WriteString(marker + " " + title + "\n\n")
		case title != "":
			b.WriteString("## " + title + " (cont.)\n\n")
		}
		b.WriteString(page)
		if i == 0 && s.Page > 0 {
			fmt.Fprintf(&b, "\n\nNote: Source page %d", s.Page)
		}
		slides = append(slides, b.String())
	}
	if len(pages) == 0 && title != "" {
		slides = append(slides, marker+" "+title)
	}

	for _, c := range s.Children {
		slides = append(slides, renderSection(c, "##", doc, maxWords)...)
	}
	return slides
}

// escapeStructure backslash-escapes lines of imported prose that the deck
// compiler would otherwise read as separators, directives or notes.
func escapeStructure(text string) string {
	var fence markup.Fence
	lines := markup.Lines(text)
	for i, line := range lines {
		if fence.Scan(line) {
			continue
		}
		t := strings.TrimSpace(line)
		switch {
		case t == "---" || t == "--":
			lines[i] = `\` + t
		case strings.HasPrefix(t, ":::"):
			lines[i] = `\` + t
		case strings.HasPrefix(line, "Note:"):
			lines[i] = `Note\:` + strings.TrimPrefix(line, "Note:")
		}
	}
	return strings.Join(lines, "\n")
}

// leadsWith reports whether the first section already carries title.
func leadsWith(sections []*Section, title string) bool {
	return len(sections) > 0 && oneLine(sections[0].Title) == title
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
