package deck

import (
	"fmt"
	"strings"
)

// FragmentKind is the reveal animation of a fragment.
type FragmentKind int

const (
	FadeIn FragmentKind = iota
	FadeOut
	FadeUp
	FadeDown
	FadeLeft
	FadeRight
	Grow
	Shrink
	Strike
	HighlightRed
	HighlightGreen
	HighlightBlue
)

var fragmentKindNames = [...]string{
	FadeIn:         "fade-in",
	FadeOut:        "fade-out",
	FadeUp:         "fade-up",
	FadeDown:       "fade-down",
	FadeLeft:       "fade-left",
	FadeRight:      "fade-right",
	Grow:           "grow",
	Shrink:         "shrink",
	Strike:         "strike",
	HighlightRed:   "highlight-red",
	HighlightGreen: "highlight-green",
	HighlightBlue:  "highlight-blue",
}

// FragmentKinds lists every kind in declaration order.
func FragmentKinds() []FragmentKind {
	kinds := make([]FragmentKind, len(fragmentKindNames))
	for i := range fragmentKindNames {
		kinds[i] = FragmentKind(i)
	}
	return kinds
}

func (k FragmentKind) String() string {
	if k < 0 || int(k) >= len(fragmentKindNames) {
		return fmt.Sprintf("FragmentKind(%d)", int(k))
	}
	return fragmentKindNames[k]
}

// ParseFragmentKind accepts a kind name with or without the "fragment-"
// class prefix.
func ParseFragmentKind(s string) (FragmentKind, error) {
	name := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "fragment-")
	for i, n := range fragmentKindNames {
		if n == name {
			return FragmentKind(i), nil
		}
	}
	return FadeIn, fmt.Errorf("unknown fragment kind: %q", s)
}

// KindFromClasses picks the animation kind from a fragment class list.
// Lists without a recognized kind class fall back to FadeIn.
func KindFromClasses(classes []string) FragmentKind {
	for _, c := range classes {
		if c == "fragment" {
			continue
		}
		if k, err := ParseFragmentKind(c); err == nil {
			return k
		}
	}
	return FadeIn
}

func (k FragmentKind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(fragmentKindNames) {
		return nil, fmt.Errorf("invalid fragment kind %d", int(k))
	}
	return []byte(fragmentKindNames[k]), nil
}

func (k *FragmentKind) UnmarshalText(b []byte) error {
	v, err := ParseFragmentKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
