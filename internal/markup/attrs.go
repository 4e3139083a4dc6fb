package markup

import (
	"strings"

	"golang.org/x/net/html"
)

// ParseAttributes parses an HTML attribute list such as
// `data-background="#fff" data-auto-animate` into a map. Keys are
// lower-cased; valueless attributes map to "".
func ParseAttributes(s string) map[string]string {
	z := html.NewTokenizer(strings.NewReader("<x " + s + ">"))
	switch z.Next() {
	case html.StartTagToken, html.SelfClosingTagToken:
	default:
		return nil
	}
	tok := z.Token()
	attrs := make(map[string]string, len(tok.Attr))
	for _, a := range tok.Attr {
		attrs[a.Key] = a.Val
	}
	return attrs
}

// PlainText returns the text content of an inline HTML/markdown fragment:
// tags and comments are dropped, entities decoded, whitespace collapsed.
func PlainText(s string) string {
	z := html.NewTokenizer(strings.NewReader(s))
	var buf strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(buf.String()), " ")
		case html.TextToken:
			buf.WriteString(z.Token().Data)
		}
	}
}

// Classes splits a class attribute value.
func Classes(v string) []string {
	return strings.Fields(v)
}
