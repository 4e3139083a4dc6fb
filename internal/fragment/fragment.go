// Package fragment discovers the incremental-reveal fragments of a cleaned
// slide body.
package fragment

import (
	"slices"
	"strconv"
	"strings"

	"github.com/dgallion1/slidedeck/internal/deck"
	"github.com/dgallion1/slidedeck/internal/markup"
	"golang.org/x/net/html"
)

const (
	elementPrefix = ".element:"
	indexAttr     = "data-fragment-index"
	fragmentClass = "fragment"
)

// Index scans body for `.element: class="fragment ..."` annotation comments
// and for tags whose class list contains "fragment". Fenced code is
// skipped. A fragment without an explicit data-fragment-index gets the
// number of fragments found before it. The result is sorted by Index,
// stable on discovery order, with Step set to the rank of each Index among
// the distinct ordinals.
func Index(body string) []deck.Fragment {
	frags := []deck.Fragment{}
	if body == "" {
		return frags
	}

	z := html.NewTokenizer(strings.NewReader(markup.MaskCode(body)))
	offset := 0
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		start := offset
		offset += len(z.Raw())

		var attrs map[string]string
		switch tt {
		case html.CommentToken:
			attrs = annotationAttrs(string(z.Text()))
		case html.StartTagToken:
			attrs = tagAttrs(z)
			// Markdown text after <script> or <title> is still markdown.
			z.NextIsNotRawText()
		case html.SelfClosingTagToken:
			attrs = tagAttrs(z)
		}
		if attrs == nil {
			continue
		}
		classes := markup.Classes(attrs["class"])
		if !slices.Contains(classes, fragmentClass) {
			continue
		}
		frags = append(frags, deck.Fragment{
			Index:        explicitIndex(attrs, len(frags)),
			Kind:         deck.KindFromClasses(classes),
			SourceOffset: start,
		})
	}

	slices.SortStableFunc(frags, func(a, b deck.Fragment) int {
		return a.Index - b.Index
	})
	assignSteps(frags)
	return frags
}

func annotationAttrs(comment string) map[string]string {
	c := strings.TrimSpace(comment)
	if !strings.HasPrefix(c, elementPrefix) {
		return nil
	}
	return markup.ParseAttributes(strings.TrimPrefix(c, elementPrefix))
}

func tagAttrs(z *html.Tokenizer) map[string]string {
	_, hasAttr := z.TagName()
	if !hasAttr {
		return nil
	}
	attrs := make(map[string]string)
	for {
		key, val, more := z.TagAttr()
		attrs[string(key)] = string(val)
		if !more {
			return attrs
		}
	}
}

func explicitIndex(attrs map[string]string, discovered int) int {
	if v, ok := attrs[indexAttr]; ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n >= 0 {
			return n
		}
	}
	return discovered
}

func assignSteps(frags []deck.Fragment) {
	step := -1
	for i := range frags {
		if i == 0 || frags[i].Index != frags[i-1].Index {
			step++
		}
		frags[i].Step = step
	}
}
