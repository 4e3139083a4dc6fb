package metadata

import (
	"bytes"

	"github.com/dgallion1/slidedeck/internal/markup"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var md = goldmark.New()

// extractTitle returns the plain text of the first non-empty ATX heading at
// the top level of body. Setext headings and headings nested in lists,
// quotes or code blocks do not count.
func extractTitle(body string) string {
	src := []byte(body)
	doc := md.Parser().Parse(text.NewReader(src))

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok || !isATX(h, src) {
			continue
		}
		var buf bytes.Buffer
		inlineText(&buf, h, src)
		if t := markup.PlainText(buf.String()); t != "" {
			return t
		}
	}
	return ""
}

// isATX reports whether the heading's source line starts with '#'.
func isATX(h *ast.Heading, src []byte) bool {
	lines := h.Lines()
	if lines.Len() == 0 {
		return false
	}
	start := lines.At(0).Start
	lineStart := bytes.LastIndexByte(src[:start], '\n') + 1
	prefix := bytes.TrimLeft(src[lineStart:start], " ")
	return len(prefix) > 0 && prefix[0] == '#'
}

// inlineText collects the text of n's inline children. Raw HTML such as
// fragment spans contributes nothing; the text between the tags does.
func inlineText(buf *bytes.Buffer, n ast.Node, src []byte) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			buf.Write(node.Value(src))
			if node.SoftLineBreak() || node.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(node.Value)
		case *ast.AutoLink:
			buf.Write(node.URL(src))
		case *ast.RawHTML:
		default:
			inlineText(buf, c, src)
		}
	}
}
