package compiler

import (
	"fmt"
	"strconv"

	"github.com/dgallion1/slidedeck/internal/deck"
	"github.com/gosimple/slug"
)

// BuildOutline groups slides into one entry per topic, in a single pass.
// Untitled topics are named "Slide {h+1}" and untitled sub-slides
// "Slide {h+1}.{v+1}". Every entry and child gets a unique anchor.
func BuildOutline(slides []deck.Slide) deck.Outline {
	outline := deck.Outline{}
	anchors := make(anchorSet)

	prev := -1
	for i, s := range slides {
		h, v := s.Position.Horizontal, s.Position.Vertical
		if i == 0 || h != prev {
			title := s.Title
			if title == "" {
				title = fmt.Sprintf("Slide %d", h+1)
			}
			outline = append(outline, deck.OutlineEntry{
				SlideID:    s.ID,
				Title:      title,
				Anchor:     anchors.take(title, s.ID),
				Horizontal: h,
				Children:   []deck.OutlineChild{},
			})
			prev = h
			continue
		}

		title := s.Title
		if title == "" {
			title = fmt.Sprintf("Slide %d.%d", h+1, v+1)
		}
		entry := &outline[len(outline)-1]
		entry.Children = append(entry.Children, deck.OutlineChild{
			SlideID:    s.ID,
			Title:      title,
			Anchor:     anchors.take(title, s.ID),
			Horizontal: h,
			Vertical:   v,
		})
	}
	return outline
}

type anchorSet map[string]bool

// take returns the slug of title, suffixed with -2, -3, ... when already
// used. Titles without any sluggable character fall back to slide-{id}.
func (a anchorSet) take(title string, id int) string {
	base := slug.Make(title)
	if base == "" {
		base = "slide-" + strconv.Itoa(id)
	}
	anchor := base
	for n := 2; a[anchor]; n++ {
		anchor = base + "-" + strconv.Itoa(n)
	}
	a[anchor] = true
	return anchor
}
