package preprocess

import (
	"regexp"

	"github.com/dgallion1/slidedeck/internal/deck"
)

var (
	// blockMarkerRegex matches a list item whose text starts with a symbolic
	// fragment marker: "- ^^^ text".
	blockMarkerRegex = regexp.MustCompile(`^(\s*(?:[-*+]|\d+[.)])\s+)(\^\^\^|vvv|--->|<---|\+\+\+|\.\.\.|~~~|>>red|>>green|>>blue|>>)\s+(.*\S)\s*$`)

	// highlightRegex matches "**>>red**text**>>**".
	highlightRegex = regexp.MustCompile(`\*\*>>(red|green|blue)\*\*(.+?)\*\*>>\*\*`)
)

var blockMarkerKinds = map[string]deck.FragmentKind{
	"^^^":     deck.FadeUp,
	"vvv":     deck.FadeDown,
	"--->":    deck.FadeRight,
	"<---":    deck.FadeLeft,
	"+++":     deck.Grow,
	"...":     deck.Shrink,
	"~~~":     deck.Strike,
	">>red":   deck.HighlightRed,
	">>green": deck.HighlightGreen,
	">>blue":  deck.HighlightBlue,
	">>":      deck.FadeIn,
}

type inlineMarker struct {
	re   *regexp.Regexp
	kind deck.FragmentKind
}

// inlineMarkers wrap text symmetrically; the span may not contain a newline
// or the marker character.
var inlineMarkers = []inlineMarker{
	{regexp.MustCompile(`\^\^\^([^\n^]+?)\^\^\^`), deck.FadeUp},
	{regexp.MustCompile(`vvv([^\nv]+?)vvv`), deck.FadeDown},
	{regexp.MustCompile(`\+\+\+([^\n+]+?)\+\+\+`), deck.Grow},
	{regexp.MustCompile(`\.\.\.([^\n.]+?)\.\.\.`), deck.Shrink},
	{regexp.MustCompile(`~~~([^\n~]+?)~~~`), deck.Strike},
}
