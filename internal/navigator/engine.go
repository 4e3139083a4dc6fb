// Package navigator implements the navigation and fragment-reveal state
// machine that runs over a compiled deck.
package navigator

import (
	"github.com/dgallion1/slidedeck/internal/deck"
)

// State is the live view of a presentation. Reveal is the last revealed
// reveal step of the current slide, -1 when none is revealed.
type State struct {
	Slide          int  `json:"slide"`
	Reveal         int  `json:"reveal"`
	OutlineVisible bool `json:"outline_visible"`
}

// Initial is the state of a freshly loaded deck.
var Initial = State{Slide: 0, Reveal: -1}

// Engine owns the navigation state of one deck. It never mutates the deck.
// An Engine is not safe for concurrent use.
type Engine struct {
	deck  *deck.Deck
	state State
}

// New returns an engine over d in the initial state.
func New(d *deck.Deck) *Engine {
	e := &Engine{}
	e.Load(d)
	return e
}

// Load replaces the deck and resets the state.
func (e *Engine) Load(d *deck.Deck) {
	if d == nil {
		d = deck.Empty()
	}
	e.deck = d
	e.state = Initial
}

// Deck returns the deck being presented.
func (e *Engine) Deck() *deck.Deck { return e.deck }

// State returns a copy of the current state.
func (e *Engine) State() State { return e.state }

// Current returns the current slide; ok is false for an empty deck.
func (e *Engine) Current() (deck.Slide, bool) {
	return e.deck.Slide(e.state.Slide)
}

// Handle applies ev and reports whether the state changed.
func (e *Engine) Handle(ev Event) bool {
	before := e.state
	switch ev.Kind {
	case Advance:
		e.advance()
	case Retreat:
		e.retreat()
	case GoTo:
		e.goTo(ev.Index)
	case GoFirst:
		e.goTo(0)
	case GoLast:
		e.goTo(e.deck.Len() - 1)
	case ToggleOutline:
		e.state.OutlineVisible = !e.state.OutlineVisible
	case CloseOutline:
		e.state.OutlineVisible = false
	}
	return e.state != before
}

func (e *Engine) Advance() bool { return e.Handle(Event{Kind: Advance}) }
func (e *Engine) Retreat() bool { return e.Handle(Event{Kind: Retreat}) }
func (e *Engine) GoTo(index int) bool { return e.Handle(Event{Kind: GoTo, Index: index}) }
func (e *Engine) GoFirst() bool { return e.Handle(Event{Kind: GoFirst}) }
func (e *Engine) GoLast() bool { return e.Handle(Event{Kind: GoLast}) }
func (e *Engine) ToggleOutline() bool { return e.Handle(Event{Kind: ToggleOutline}) }
func (e *Engine) CloseOutline() bool { return e.Handle(Event{Kind: CloseOutline}) }

func (e *Engine) advance() {
	if e.state.Reveal+1 < e.steps(e.state.Slide) {
		e.state.Reveal++
		return
	}
	if e.state.Slide+1 < e.deck.Len() {
		e.state.Slide++
		e.state.Reveal = -1
	}
}

func (e *Engine) retreat() {
	if e.state.Reveal > -1 {
		e.state.Reveal--
		return
	}
	if e.state.Slide > 0 {
		e.state.Slide--
		e.state.Reveal = e.steps(e.state.Slide) - 1
	}
}

func (e *Engine) goTo(index int) {
	if index < 0 || index >= e.deck.Len() {
		return
	}
	e.state.Slide = index
	e.state.Reveal = -1
}

// steps is the fragment count of slide i in reveal steps.
func (e *Engine) steps(i int) int {
	s, ok := e.deck.Slide(i)
	if !ok {
		return 0
	}
	return s.RevealSteps()
}

// Visible reports whether f, a fragment of the current slide, is shown.
func (e *Engine) Visible(f deck.Fragment) bool {
	return f.Step <= e.state.Reveal
}

// VisibleFragments returns the revealed fragments of the current slide.
func (e *Engine) VisibleFragments() []deck.Fragment {
	s, ok := e.Current()
	if !ok {
		return nil
	}
	var out []deck.Fragment
	for _, f := range s.Fragments {
		if e.Visible(f) {
			out = append(out, f)
		}
	}
	return out
}

// Remaining returns the number of unrevealed reveal steps of the current
// slide.
func (e *Engine) Remaining() int {
	return e.steps(e.state.Slide) - 1 - e.state.Reveal
}

// RevealedIndex returns the fragment index revealed by the last step on
// the current slide, or -1 when nothing is revealed. Unlike Reveal it
// keeps gaps between authored indices.
func (e *Engine) RevealedIndex() int {
	s, ok := e.Current()
	if !ok || e.state.Reveal < 0 {
		return -1
	}
	for _, f := range s.Fragments {
		if f.Step == e.state.Reveal {
			return f.Index
		}
	}
	return -1
}
