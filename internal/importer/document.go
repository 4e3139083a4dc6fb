package importer

import "strings"

// Document is an imported file reduced to a tree of titled sections.
type Document struct {
	Title    string     // From metadata or the file name
	Sections []*Section // Top-level sections, each becomes a topic

	// Markdown is set when section text is markdown and must not be
	// escaped or split mid-paragraph.
	Markdown bool

	// Deck holds the source verbatim when it already is deck markdown.
	Deck string
}

// Section is one heading and the text under it.
type Section struct {
	Title    string
	Text     string
	Page     int // Source page, 0 if N/A
	Children []*Section
}

// sectionBuilder nests sections by heading level the way an outline
// does: a heading closes every open section of the same or deeper level.
type sectionBuilder struct {
	root  *Section
	stack []stackEntry
	text  strings.Builder
}

type stackEntry struct {
	section *Section
	level   int
}

func newSectionBuilder() *sectionBuilder {
	root := &Section{}
	return &sectionBuilder{
		root:  root,
		stack: []stackEntry{{section: root, level: 0}},
	}
}

func (b *sectionBuilder) heading(level int, title string) {
	b.flush()
	s := &Section{Title: title}
	for len(b.stack) > 1 && b.stack[len(b.stack)-1].level >= level {
		b.stack = b.stack[:len(b.stack)-1]
	}
	parent := b.stack[len(b.stack)-1].section
	parent.Children = append(parent.Children, s)
	b.stack = append(b.stack, stackEntry{section: s, level: level})
}

func (b *sectionBuilder) paragraph(t string) {
	t = strings.TrimSpace(t)
	if t == "" {
		return
	}
	if b.text.Len() > 0 {
		b.text.WriteString("\n\n")
	}
	b.text.WriteString(t)
}

func (b *sectionBuilder) flush() {
	t := strings.TrimSpace(b.text.String())
	if t != "" {
		top := b.stack[len(b.stack)-1].section
		if top.Text != "" {
			top.Text += "\n\n" + t
		} else {
			top.Text = t
		}
	}
	b.text.Reset()
}

// sections returns the top-level sections. Text before the first heading
// becomes a leading untitled section.
func (b *sectionBuilder) sections() []*Section {
	b.flush()
	out := b.root.Children
	if b.root.Text != "" {
		out = append([]*Section{{Text: b.root.Text}}, out...)
	}
	return out
}
