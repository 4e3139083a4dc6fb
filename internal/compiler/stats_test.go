package compiler

import (
	"testing"
)

func TestSummarize(t *testing.T) {
	src := "# One\n\n- ^^^ a\n- ^^^ b\n\nNote: hi\n\n--\n\n## Sub\n\n![pic](/a.png)\n\n---\n\n::: #fff\n\n```go\nx := 1\n```\n\n+++big+++"
	st := Summarize(Compile(src))

	if st.Slides != 3 || st.Topics != 2 || st.VerticalSlides != 1 {
		t.Errorf("unexpected slide counts %+v", st)
	}
	if st.Fragments != 3 {
		t.Errorf("expected 3 fragments, got %d", st.Fragments)
	}
	if st.FragmentsByKind["fade-up"] != 2 || st.FragmentsByKind["grow"] != 1 {
		t.Errorf("unexpected kind counts %v", st.FragmentsByKind)
	}
	if st.StyledSlides != 1 || st.SlidesWithNotes != 1 || st.UntitledSlides != 1 {
		t.Errorf("unexpected per-slide counts %+v", st)
	}
	if st.CodeBlocks != 1 || st.Images != 1 {
		t.Errorf("expected 1 code block and 1 image, got %d and %d", st.CodeBlocks, st.Images)
	}
}

func TestSummarize_Nil(t *testing.T) {
	st := Summarize(nil)
	if st.Slides != 0 || st.FragmentsByKind == nil {
		t.Errorf("expected zero stats with map, got %+v", st)
	}
}

func TestLint(t *testing.T) {
	issues := Lint("# A\n\n***\n\n# B\n\n##\n\n```\n***\n```")
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %d: %v", len(issues), issues)
	}
	if issues[0][:7] != "line 3:" {
		t.Errorf("expected first issue on line 3, got %q", issues[0])
	}
	if len(Lint(StarterTemplate("x"))) != 0 {
		t.Error("expected starter template to lint clean")
	}
}
