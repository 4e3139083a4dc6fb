package compiler

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/dgallion1/slidedeck/internal/deck"
	"github.com/dgallion1/slidedeck/internal/splitter"
)

func TestCompile_EmptyInputs(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\n\t\n", "\r\n"} {
		d := Compile(in)
		if d.Len() != 0 {
			t.Errorf("Compile(%q): expected 0 slides, got %d", in, d.Len())
		}
		if d.Outline == nil || len(d.Outline) != 0 {
			t.Errorf("Compile(%q): expected empty outline, got %#v", in, d.Outline)
		}
	}
}

func TestCompileBytes_NotText(t *testing.T) {
	d := CompileBytes([]byte{0xff, 0xfe, 0x00, 0x23})
	if d.Len() != 0 {
		t.Errorf("expected 0 slides for invalid UTF-8, got %d", d.Len())
	}
	if d := CompileBytes(nil); d.Len() != 0 {
		t.Errorf("expected 0 slides for nil input, got %d", d.Len())
	}
	if d := CompileBytes([]byte("# Hi")); d.Len() != 1 {
		t.Errorf("expected 1 slide, got %d", d.Len())
	}
}

func TestCompile_SlideCountMatchesSeparators(t *testing.T) {
	docs := []string{
		"# A\n\n---\n\n# B",
		"# A",
		"# A\n\n--\n\n## A2\n\n---\n\n# B\n\n--\n\n## B2\n\n--\n\n## B3",
		"# A\n\n---\n\n---\n\n# C",
		"```\n---\n```\n\n---\n\nx",
	}
	for _, doc := range docs {
		h, v := splitter.Count(doc)
		want := h + 1 + v
		if got := Compile(doc).Len(); got != want {
			t.Errorf("%q: expected %d slides, got %d", doc, want, got)
		}
	}
	if got := Compile("# A\n\n---\n\n# B").Len(); got != 2 {
		t.Errorf("expected 2 slides for one separator, got %d", got)
	}
}

func TestCompile_IDsAreContiguous(t *testing.T) {
	d := Compile("a\n---\nb\n--\nc\n---\n\n---\ne")
	for i, s := range d.Slides {
		if s.ID != i {
			t.Errorf("slide %d: expected id %d, got %d", i, i, s.ID)
		}
	}
	seen := map[deck.Position]bool{}
	for _, s := range d.Slides {
		if seen[s.Position] {
			t.Errorf("duplicate position %+v", s.Position)
		}
		seen[s.Position] = true
	}
}

func TestCompile_Titles(t *testing.T) {
	d := Compile("# Title Slide\n\nBody\n\n---\n\n## Second\n\nBody2")
	if d.Len() != 2 {
		t.Fatalf("expected 2 slides, got %d", d.Len())
	}
	if d.Slides[0].Title != "Title Slide" {
		t.Errorf("expected %q, got %q", "Title Slide", d.Slides[0].Title)
	}
	if d.Slides[1].Title != "Second" {
		t.Errorf("expected %q, got %q", "Second", d.Slides[1].Title)
	}
}

func TestCompile_Notes(t *testing.T) {
	d := Compile("# S\n\nContent\n\nNote: speaker text")
	s := d.Slides[0]
	if s.Notes != "speaker text" {
		t.Errorf("expected notes %q, got %q", "speaker text", s.Notes)
	}
	if strings.Contains(s.Body, "Note:") {
		t.Errorf("expected body without notes, got %q", s.Body)
	}
}

func TestCompile_EmptySegmentKept(t *testing.T) {
	d := Compile("# A\n\n---\n\n---\n\n# C")
	if d.Len() != 3 {
		t.Fatalf("expected 3 slides, got %d", d.Len())
	}
	mid := d.Slides[1]
	if mid.Body != "" || mid.Title != "" || len(mid.Fragments) != 0 {
		t.Errorf("expected empty slide, got %+v", mid)
	}
	if d.Outline[1].Title != "Slide 2" {
		t.Errorf("expected fallback title %q, got %q", "Slide 2", d.Outline[1].Title)
	}
}

func TestCompile_SymbolicFragments(t *testing.T) {
	d := Compile("## Items\n\n- ^^^ One\n- +++ Two\n- Three ~~~gone~~~")
	frags := d.Slides[0].Fragments
	if len(frags) != 3 {
		t.Fatalf("expected 3 fragments, got %d", len(frags))
	}
	want := []deck.FragmentKind{deck.FadeUp, deck.Grow, deck.Strike}
	for i, f := range frags {
		if f.Kind != want[i] || f.Index != i {
			t.Errorf("fragment %d: expected %s at %d, got %s at %d", i, want[i], i, f.Kind, f.Index)
		}
	}
}

func TestCompile_FragmentsBesideInlineCode(t *testing.T) {
	d := Compile("# HTML tips\n\n- ^^^ Load `<script>` tags last\n- ^^^ Set a `<title>`\n- vvv Validate markup\n")
	frags := d.Slides[0].Fragments
	if len(frags) != 3 {
		t.Fatalf("expected 3 fragments, got %d", len(frags))
	}
	want := []deck.FragmentKind{deck.FadeUp, deck.FadeUp, deck.FadeDown}
	for i, f := range frags {
		if f.Kind != want[i] {
			t.Errorf("fragment %d: expected %s, got %s", i, want[i], f.Kind)
		}
	}

	d = Compile("- ^^^ one\n- ^^^ two `<span class=\"fragment\">` in code")
	if n := len(d.Slides[0].Fragments); n != 2 {
		t.Errorf("expected 2 fragments, got %d", n)
	}
}

func TestCompile_CRLF(t *testing.T) {
	d := Compile("# A\r\n\r\n- ^^^ x\r\n\r\n---\r\n\r\n# B\r\n")
	if d.Len() != 2 {
		t.Fatalf("expected 2 slides, got %d", d.Len())
	}
	if strings.Contains(d.Slides[0].Body, "\r") {
		t.Errorf("expected CR removed, got %q", d.Slides[0].Body)
	}
	if len(d.Slides[0].Fragments) != 1 {
		t.Errorf("expected 1 fragment, got %d", len(d.Slides[0].Fragments))
	}
}

func TestCompile_IsPure(t *testing.T) {
	src := StarterTemplate("Purity")
	a, _ := json.Marshal(Compile(src))
	b, _ := json.Marshal(Compile(src))
	if string(a) != string(b) {
		t.Error("expected identical decks from identical input")
	}
}

func TestAssemble_KeepsOrderAndPositions(t *testing.T) {
	segs := []splitter.Segment{
		{Horizontal: 0, Vertical: 0, Raw: "# Zero"},
		{Horizontal: 0, Vertical: 1, Raw: ""},
		{Horizontal: 1, Vertical: 0, Raw: "::: #fff\n# Two"},
	}
	slides := Assemble(segs)
	if len(slides) != 3 {
		t.Fatalf("expected 3 slides, got %d", len(slides))
	}
	for i, s := range slides {
		if s.ID != i || s.Position.Horizontal != segs[i].Horizontal || s.Position.Vertical != segs[i].Vertical {
			t.Errorf("slide %d: unexpected id/position %d %+v", i, s.ID, s.Position)
		}
	}
	if slides[2].Style == nil || slides[2].Style.Color != "#fff" {
		t.Errorf("expected style on slide 2, got %+v", slides[2].Style)
	}
}

func TestStarterTemplate(t *testing.T) {
	src := StarterTemplate("  ")
	if !strings.HasPrefix(src, "# My Presentation\n") {
		t.Errorf("expected default title, got %q", src[:30])
	}
	d := Compile(StarterTemplate("Quarterly Review"))
	if d.Slides[0].Title != "Quarterly Review" {
		t.Errorf("expected title %q, got %q", "Quarterly Review", d.Slides[0].Title)
	}
	if d.Len() != 7 {
		t.Errorf("expected 7 slides, got %d", d.Len())
	}
	if len(d.Outline) != 6 {
		t.Errorf("expected 6 topics, got %d", len(d.Outline))
	}
	if d.Slides[0].Notes == "" {
		t.Error("expected notes on the first slide")
	}
	if d.Slides[4].Style.Kind() != deck.BackgroundImage || d.Slides[4].Style.Opacity == nil {
		t.Errorf("expected image background with opacity, got %+v", d.Slides[4].Style)
	}
	if len(d.Slides[3].Fragments) != 4 {
		t.Errorf("expected 4 fragments on the animation slide, got %d", len(d.Slides[3].Fragments))
	}
}
