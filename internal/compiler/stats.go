package compiler

import (
	"fmt"
	"strings"

	"github.com/dgallion1/slidedeck/internal/deck"
	"github.com/dgallion1/slidedeck/internal/markup"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Stats summarizes a compiled deck.
type Stats struct {
	Slides          int            `json:"slides"`
	Topics          int            `json:"topics"`
	VerticalSlides  int            `json:"vertical_slides"`
	Fragments       int            `json:"fragments"`
	FragmentsByKind map[string]int `json:"fragments_by_kind"`
	StyledSlides    int            `json:"styled_slides"`
	SlidesWithNotes int            `json:"slides_with_notes"`
	UntitledSlides  int            `json:"untitled_slides"`
	CodeBlocks      int            `json:"code_blocks"`
	Images          int            `json:"images"`
}

var md = goldmark.New()

// Summarize counts slides, fragments, and the code blocks and images of
// every slide body.
func Summarize(d *deck.Deck) Stats {
	st := Stats{FragmentsByKind: make(map[string]int)}
	if d == nil {
		return st
	}
	st.Slides = len(d.Slides)
	st.Topics = len(d.Outline)
	for _, s := range d.Slides {
		if s.Position.Vertical > 0 {
			st.VerticalSlides++
		}
		if !s.Style.IsZero() {
			st.StyledSlides++
		}
		if s.Notes != "" {
			st.SlidesWithNotes++
		}
		if s.Title == "" {
			st.UntitledSlides++
		}
		st.Fragments += len(s.Fragments)
		for _, f := range s.Fragments {
			st.FragmentsByKind[f.Kind.String()]++
		}
		countBlocks(&st, s.Body)
	}
	return st
}

func countBlocks(st *Stats, body string) {
	if body == "" {
		return
	}
	doc := md.Parser().Parse(text.NewReader([]byte(body)))
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			st.CodeBlocks++
			return ast.WalkSkipChildren, nil
		case *ast.Image:
			st.Images++
		}
		return ast.WalkContinue, nil
	})
}

// Lint reports separator mistakes in src: "***" lines where "---" was
// probably meant and "##" lines where "--" was probably meant. Fenced code
// is ignored.
func Lint(src string) []string {
	var (
		fence  markup.Fence
		issues []string
	)
	for i, line := range markup.Lines(src) {
		if fence.Scan(line) {
			continue
		}
		switch strings.TrimSpace(line) {
		case "***":
			issues = append(issues, lintIssue(i, `found "***", use "---" for a horizontal slide break`))
		case "##":
			issues = append(issues, lintIssue(i, `found "##" on its own line, use "--" for a vertical slide break`))
		}
	}
	return issues
}

func lintIssue(line int, msg string) string {
	return fmt.Sprintf("line %d: %s", line+1, msg)
}
