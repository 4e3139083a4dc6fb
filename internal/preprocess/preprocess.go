// Package preprocess rewrites the symbolic fragment grammar into the
// canonical annotation grammar consumed by the rest of the compiler.
package preprocess

import (
	"fmt"
	"strings"

	"github.com/dgallion1/slidedeck/internal/deck"
	"github.com/dgallion1/slidedeck/internal/markup"
)

// Annotation returns the canonical block annotation for kind.
func Annotation(kind deck.FragmentKind) string {
	return fmt.Sprintf(`<!-- .element: class="fragment %s" -->`, kind)
}

// Span wraps text in a canonical inline fragment span.
func Span(kind deck.FragmentKind, text string) string {
	return fmt.Sprintf(`<span class="fragment fragment-%s">%s</span>`, kind, text)
}

// Preprocess rewrites block markers, then inline highlight markers, then
// inline wrap markers. Lines inside fenced code blocks and legacy
// annotations are left untouched. It never fails.
func Preprocess(raw string) string {
	if raw == "" {
		return raw
	}
	var fence markup.Fence
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		if fence.Scan(strings.TrimSuffix(line, "\r")) {
			continue
		}
		lines[i] = rewriteLine(line)
	}
	return strings.Join(lines, "\n")
}

func rewriteLine(line string) string {
	cr := strings.HasSuffix(line, "\r")
	line = strings.TrimSuffix(line, "\r")

	line = rewriteBlockMarker(line)
	line = highlightRegex.ReplaceAllStringFunc(line, func(m string) string {
		sub := highlightRegex.FindStringSubmatch(m)
		kind := blockMarkerKinds[">>"+sub[1]]
		return Span(kind, sub[2])
	})
	for _, im := range inlineMarkers {
		line = im.re.ReplaceAllString(line, Span(im.kind, "${1}"))
	}

	if cr {
		line += "\r"
	}
	return line
}

func rewriteBlockMarker(line string) string {
	m := blockMarkerRegex.FindStringSubmatch(line)
	if m == nil {
		return line
	}
	kind := blockMarkerKinds[m[2]]
	return m[1] + m[3] + " " + Annotation(kind)
}
