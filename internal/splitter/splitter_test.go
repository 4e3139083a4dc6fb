package splitter

import "testing"

func TestSplit_NoSeparators(t *testing.T) {
	segs := Split("# Only\n\nbody\n")
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	if segs[0].Raw != "# Only\n\nbody" {
		t.Errorf("expected trimmed segment, got %q", segs[0].Raw)
	}
	if segs[0].Horizontal != 0 || segs[0].Vertical != 0 {
		t.Errorf("expected position (0,0), got (%d,%d)", segs[0].Horizontal, segs[0].Vertical)
	}
}

func TestSplit_HorizontalAndVertical(t *testing.T) {
	input := "# H1\n\nContent\n\n--\n\n## V1.1\n\n--\n\n## V1.2\n\n---\n\n# H2\n\nSecond"
	segs := Split(input)

	want := []struct {
		h, v  int
		title string
	}{
		{0, 0, "# H1\n\nContent"},
		{0, 1, "## V1.1"},
		{0, 2, "## V1.2"},
		{1, 0, "# H2\n\nSecond"},
	}
	if len(segs) != len(want) {
		t.Fatalf("expected %d segments, got %d", len(want), len(segs))
	}
	for i, w := range want {
		s := segs[i]
		if s.Horizontal != w.h || s.Vertical != w.v {
			t.Errorf("segment %d: expected (%d,%d), got (%d,%d)", i, w.h, w.v, s.Horizontal, s.Vertical)
		}
		if s.Raw != w.title {
			t.Errorf("segment %d: expected %q, got %q", i, w.title, s.Raw)
		}
	}
}

func TestSplit_ConsecutiveSeparatorsYieldEmptySegment(t *testing.T) {
	segs := Split("# First\n\n---\n\n---\n\n# Last")
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segs))
	}
	if segs[1].Raw != "" {
		t.Errorf("expected empty middle segment, got %q", segs[1].Raw)
	}
	if segs[2].Horizontal != 2 {
		t.Errorf("expected last segment in group 2, got %d", segs[2].Horizontal)
	}
}

func TestSplit_SeparatorMustBeWholeLine(t *testing.T) {
	segs := Split("a --- b\n----\n- ---> item\n-- x")
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
}

func TestSplit_IgnoresSeparatorsInFences(t *testing.T) {
	input := "# YAML\n\n```yaml\n---\nkey: value\n--\n```\n\n---\n\nnext"
	segs := Split(input)
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if segs[1].Raw != "next" {
		t.Errorf("expected second segment %q, got %q", "next", segs[1].Raw)
	}
}

func TestSplit_CRLFAndTrailingBlanks(t *testing.T) {
	segs := Split("one\r\n---  \r\ntwo\r\n--\r\nthree")
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segs))
	}
	if segs[2].Horizontal != 1 || segs[2].Vertical != 1 || segs[2].Raw != "three" {
		t.Errorf("unexpected last segment %+v", segs[2])
	}
}

func TestCount(t *testing.T) {
	h, v := Count("a\n---\nb\n--\nc\n--\nd\n---\ne")
	if h != 2 || v != 2 {
		t.Errorf("expected 2 horizontal and 2 vertical separators, got %d and %d", h, v)
	}
	segs := Split("a\n---\nb\n--\nc\n--\nd\n---\ne")
	if len(segs) != h+1+v {
		t.Errorf("expected %d segments, got %d", h+1+v, len(segs))
	}
}
