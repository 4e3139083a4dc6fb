package importer

import (
	"bufio"
	"io"
	"strings"
)

// TextImporter handles plain text files. Paragraphs are separated by blank
// lines and all land in one untitled section.
type TextImporter struct{}

func (p *TextImporter) Import(r io.Reader, filename string) (*Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	b := newSectionBuilder()
	var current strings.Builder

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if strings.TrimSpace(line) == "" {
			b.paragraph(current.String())
			current.Reset()
			continue
		}
		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(line)
	}
	b.paragraph(current.String())

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &Document{
		Title:    baseTitle(filename),
		Sections: b.sections(),
	}, nil
}
