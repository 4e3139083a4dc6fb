// Package compiler turns a markdown document into a deck.Deck.
package compiler

import (
	"strings"
	"unicode/utf8"

	"github.com/dgallion1/slidedeck/internal/deck"
	"github.com/dgallion1/slidedeck/internal/fragment"
	"github.com/dgallion1/slidedeck/internal/metadata"
	"github.com/dgallion1/slidedeck/internal/preprocess"
	"github.com/dgallion1/slidedeck/internal/splitter"
)

// Compile runs the whole pipeline over src. It is pure and total: empty or
// whitespace-only input gives an empty deck.
func Compile(src string) *deck.Deck {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	if strings.TrimSpace(src) == "" {
		return deck.Empty()
	}
	slides := Assemble(splitter.Split(preprocess.Preprocess(src)))
	return &deck.Deck{
		Slides:  slides,
		Outline: BuildOutline(slides),
	}
}

// CompileBytes compiles raw bytes. Input that is not valid UTF-8 is not a
// text document and gives an empty deck.
func CompileBytes(b []byte) *deck.Deck {
	if !utf8.Valid(b) {
		return deck.Empty()
	}
	return Compile(string(b))
}

// Assemble extracts metadata and fragments from every segment, keeping
// splitter order and assigning ids from 0. Empty segments become empty
// slides.
func Assemble(segs []splitter.Segment) []deck.Slide {
	slides := make([]deck.Slide, 0, len(segs))
	for i, seg := range segs {
		meta := metadata.Extract(seg.Raw)
		slides = append(slides, deck.Slide{
			ID: i,
			Position: deck.Position{
				Horizontal: seg.Horizontal,
				Vertical:   seg.Vertical,
			},
			Title:     meta.Title,
			Body:      meta.Body,
			Notes:     meta.Notes,
			Style:     meta.Style,
			Fragments: fragment.Index(meta.Body),
		})
	}
	return slides
}
