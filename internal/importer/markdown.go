package importer

import (
	"bytes"
	"io"
	"strings"

	"github.com/dgallion1/slidedeck/internal/splitter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownImporter handles Markdown files. A file that already contains
// slide separators is returned verbatim; otherwise its top-level headings
// become sections and the markdown between them is kept as is.
type MarkdownImporter struct{}

func (p *MarkdownImporter) Import(r io.Reader, filename string) (*Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	src = bytes.ReplaceAll(src, []byte("\r\n"), []byte("\n"))

	doc := &Document{Title: baseTitle(filename), Markdown: true}
	if h, v := splitter.Count(string(src)); h+v > 0 {
		doc.Deck = string(src)
		return doc, nil
	}

	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(src))

	b := newSectionBuilder()
	pos := 0
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok || h.Lines().Len() == 0 {
			continue
		}
		start := lineStart(src, h.Lines().At(0).Start)
		b.paragraph(string(src[pos:start]))

		end := lineEnd(src, h.Lines().At(h.Lines().Len()-1).Start)
		if !bytes.HasPrefix(bytes.TrimLeft(src[start:], " "), []byte("#")) {
			// Setext: skip the underline too.
			end = lineEnd(src, end+1)
		}
		b.heading(h.Level, strings.Join(strings.Fields(string(h.Text(src))), " "))
		pos = min(end+1, len(src))
	}
	b.paragraph(string(src[pos:]))

	doc.Sections = b.sections()
	return doc, nil
}

func lineStart(src []byte, off int) int {
	return bytes.LastIndexByte(src[:off], '\n') + 1
}

// lineEnd returns the offset of the newline ending the line holding off,
// or len(src).
func lineEnd(src []byte, off int) int {
	if off >= len(src) {
		return len(src)
	}
	if i := bytes.IndexByte(src[off:], '\n'); i >= 0 {
		return off + i
	}
	return len(src)
}
