package navigator

import (
	"encoding/json"
	"testing"

	"github.com/dgallion1/slidedeck/internal/compiler"
	"github.com/dgallion1/slidedeck/internal/deck"
)

func fragments(n int) []deck.Fragment {
	out := make([]deck.Fragment, n)
	for i := range out {
		out[i] = deck.Fragment{Index: i, Step: i}
	}
	return out
}

func testDeck(counts ...int) *deck.Deck {
	d := deck.Empty()
	for i, n := range counts {
		d.Slides = append(d.Slides, deck.Slide{
			ID:        i,
			Position:  deck.Position{Horizontal: i},
			Fragments: fragments(n),
		})
	}
	return d
}

func TestNew_InitialState(t *testing.T) {
	e := New(testDeck(2, 0))
	if got := e.State(); got != Initial {
		t.Errorf("expected %+v, got %+v", Initial, got)
	}
	if Initial.Slide != 0 || Initial.Reveal != -1 || Initial.OutlineVisible {
		t.Errorf("unexpected initial state %+v", Initial)
	}
}

func TestRetreat_AtStartIsNoop(t *testing.T) {
	e := New(testDeck(2, 1))
	if e.Retreat() {
		t.Error("expected Retreat on initial state to report no change")
	}
	if e.State() != Initial {
		t.Errorf("expected initial state, got %+v", e.State())
	}
}

func TestAdvance_RevealsThenMoves(t *testing.T) {
	e := New(testDeck(3, 0))
	for i := 0; i < 3; i++ {
		if !e.Advance() {
			t.Fatalf("advance %d: expected change", i)
		}
		st := e.State()
		if st.Slide != 0 || st.Reveal != i {
			t.Fatalf("advance %d: expected slide 0 reveal %d, got %+v", i, i, st)
		}
	}
	e.Advance()
	if st := e.State(); st.Slide != 1 || st.Reveal != -1 {
		t.Errorf("expected slide 1 reveal -1, got %+v", st)
	}
}

func TestAdvance_AtEndIsNoop(t *testing.T) {
	e := New(testDeck(0, 1))
	e.Advance() // slide 1
	e.Advance() // reveal 0
	before := e.State()
	if e.Advance() {
		t.Error("expected Advance at the end to report no change")
	}
	if e.State() != before {
		t.Errorf("expected %+v, got %+v", before, e.State())
	}
}

func TestRetreat_LandsFullyRevealed(t *testing.T) {
	e := New(testDeck(2, 0))
	e.GoTo(1)
	e.Retreat()
	if st := e.State(); st.Slide != 0 || st.Reveal != 1 {
		t.Errorf("expected slide 0 reveal 1, got %+v", st)
	}
	e.Retreat()
	if st := e.State(); st.Reveal != 0 {
		t.Errorf("expected reveal 0, got %+v", st)
	}
}

func TestGoTo(t *testing.T) {
	e := New(testDeck(1, 1, 1))
	e.Advance()
	if !e.GoTo(2) {
		t.Fatal("expected GoTo(2) to change state")
	}
	if st := e.State(); st.Slide != 2 || st.Reveal != -1 {
		t.Errorf("expected slide 2 reveal -1, got %+v", st)
	}
	for _, bad := range []int{-1, 3, 100} {
		if e.GoTo(bad) {
			t.Errorf("GoTo(%d): expected no change", bad)
		}
	}
	if e.State().Slide != 2 {
		t.Errorf("expected slide 2 after invalid GoTo, got %d", e.State().Slide)
	}
}

func TestGoFirstAndLast(t *testing.T) {
	e := New(testDeck(0, 0, 0, 0))
	e.GoLast()
	if e.State().Slide != 3 {
		t.Errorf("expected slide 3, got %d", e.State().Slide)
	}
	e.GoFirst()
	if e.State().Slide != 0 {
		t.Errorf("expected slide 0, got %d", e.State().Slide)
	}
}

func TestOutlineToggles(t *testing.T) {
	e := New(testDeck(2))
	e.Advance()
	e.ToggleOutline()
	if !e.State().OutlineVisible {
		t.Error("expected outline visible")
	}
	if e.State().Reveal != 0 {
		t.Errorf("expected reveal untouched, got %d", e.State().Reveal)
	}
	e.ToggleOutline()
	if e.State().OutlineVisible {
		t.Error("expected outline hidden")
	}
	e.ToggleOutline()
	e.CloseOutline()
	if e.State().OutlineVisible {
		t.Error("expected outline closed")
	}
	if e.CloseOutline() {
		t.Error("expected closing a closed outline to be a no-op")
	}
}

func TestEmptyDeck(t *testing.T) {
	e := New(nil)
	for _, ev := range []Event{{Kind: Advance}, {Kind: Retreat}, {Kind: GoFirst}, {Kind: GoLast}, {Kind: GoTo, Index: 0}} {
		if e.Handle(ev) {
			t.Errorf("%s: expected no change on empty deck", ev)
		}
	}
	if _, ok := e.Current(); ok {
		t.Error("expected no current slide")
	}
	if e.VisibleFragments() != nil {
		t.Error("expected no visible fragments")
	}
}

func TestLoad_ResetsState(t *testing.T) {
	e := New(testDeck(2, 2))
	e.GoTo(1)
	e.Advance()
	e.ToggleOutline()
	e.Load(testDeck(0))
	if e.State() != Initial {
		t.Errorf("expected reset state, got %+v", e.State())
	}
}

func TestVisibleFragments(t *testing.T) {
	e := New(testDeck(3))
	if got := len(e.VisibleFragments()); got != 0 {
		t.Errorf("expected 0 visible, got %d", got)
	}
	e.Advance()
	e.Advance()
	vis := e.VisibleFragments()
	if len(vis) != 2 || vis[0].Index != 0 || vis[1].Index != 1 {
		t.Errorf("expected fragments 0 and 1 visible, got %+v", vis)
	}
	if e.Remaining() != 1 {
		t.Errorf("expected 1 remaining step, got %d", e.Remaining())
	}
}

func TestSharedOrdinalRevealsTogether(t *testing.T) {
	d := compiler.Compile(`<span class="fragment" data-fragment-index="4">a</span>
<span class="fragment" data-fragment-index="4">b</span>
<span class="fragment" data-fragment-index="9">c</span>`)
	e := New(d)
	e.Advance()
	if got := len(e.VisibleFragments()); got != 2 {
		t.Errorf("expected both fragments of ordinal 4 visible, got %d", got)
	}
	e.Advance()
	if got := len(e.VisibleFragments()); got != 3 {
		t.Errorf("expected all 3 visible, got %d", got)
	}
	if e.Advance() {
		t.Error("expected no further step on a single-slide deck")
	}
}

func TestRevealedIndexKeepsGaps(t *testing.T) {
	d := compiler.Compile(`<span class="fragment" data-fragment-index="4">a</span>
<span class="fragment" data-fragment-index="4">b</span>
<span class="fragment" data-fragment-index="9">c</span>`)
	e := New(d)
	want := []int{4, 9}
	if got := e.RevealedIndex(); got != -1 {
		t.Errorf("expected -1 before any reveal, got %d", got)
	}
	for _, w := range want {
		e.Advance()
		if got := e.RevealedIndex(); got != w {
			t.Errorf("expected revealed index %d, got %d", w, got)
		}
		if e.State().Reveal == w {
			t.Errorf("expected step %d to differ from index %d", e.State().Reveal, w)
		}
	}
	e.Retreat()
	if got := e.RevealedIndex(); got != 4 {
		t.Errorf("expected revealed index 4 after retreat, got %d", got)
	}
	if got := New(deck.Empty()).RevealedIndex(); got != -1 {
		t.Errorf("expected -1 on empty deck, got %d", got)
	}
}

// The engine alone decides when a slide may be left: every fragment of the
// compiled slide must be revealed first, whatever drives the events.
func TestEngineGatesAdvanceOnFragments(t *testing.T) {
	src := "# Agenda\n\n- ^^^ One\n- vvv Two\n- +++ Three\n\n---\n\n# Next\n\nNo fragments here"
	d := compiler.Compile(src)
	if d.Len() != 2 || len(d.Slides[0].Fragments) != 3 {
		t.Fatalf("expected 2 slides with 3 fragments on the first, got %d slides", d.Len())
	}

	e := New(d)
	for i := 0; i < 3; i++ {
		e.Handle(Event{Kind: Advance})
		st := e.State()
		if st.Slide != 0 {
			t.Fatalf("advance %d: left slide 0 with fragments still hidden", i)
		}
		if st.Reveal != i {
			t.Fatalf("advance %d: expected reveal %d, got %d", i, i, st.Reveal)
		}
		for _, f := range d.Slides[0].Fragments {
			if e.Visible(f) != (f.Index <= i) {
				t.Errorf("advance %d: fragment %d visibility %v", i, f.Index, e.Visible(f))
			}
		}
	}
	e.Handle(Event{Kind: Advance})
	if st := e.State(); st.Slide != 1 || st.Reveal != -1 {
		t.Errorf("expected slide 1 reveal -1 after all fragments, got %+v", st)
	}

	// Commands parsed from any input layer go through the same gate.
	e.Load(d)
	for _, cmd := range []string{"next", "ArrowRight", "space"} {
		ev, err := ParseEvent(cmd)
		if err != nil {
			t.Fatalf("ParseEvent(%q): %v", cmd, err)
		}
		e.Handle(ev)
	}
	if e.State().Slide != 0 || e.Remaining() != 0 {
		t.Errorf("expected slide 0 fully revealed, got %+v", e.State())
	}
}

func TestStateJSON(t *testing.T) {
	b, err := json.Marshal(State{Slide: 2, Reveal: -1, OutlineVisible: true})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"slide":2,"reveal":-1,"outline_visible":true}`
	if string(b) != want {
		t.Errorf("expected %s, got %s", want, b)
	}
}
