package deck

// Deck is a compiled presentation. It is never mutated after compilation;
// a new source document produces a new Deck.
type Deck struct {
	Slides  []Slide `json:"slides"`
	Outline Outline `json:"outline"`
}

// Position addresses a slide by topic group and offset within the group.
type Position struct {
	Horizontal int `json:"horizontal"`
	Vertical   int `json:"vertical"`
}

// Slide is the unit of display.
type Slide struct {
	ID        int        `json:"id"`
	Position  Position   `json:"position"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	Notes     string     `json:"notes"`
	Style     *Style     `json:"style,omitempty"`
	Fragments []Fragment `json:"fragments"`
}

// Fragment is one incremental-reveal element of a slide body.
type Fragment struct {
	Index        int          `json:"index"`
	Kind         FragmentKind `json:"kind"`
	SourceOffset int          `json:"source_offset"` // Byte offset in Slide.Body, diagnostics only
	Step         int          `json:"step"`          // Rank of Index among the slide's distinct ordinals
}

// BackgroundKind classifies the effective background of a Style.
type BackgroundKind string

const (
	BackgroundNone     BackgroundKind = "none"
	BackgroundColor    BackgroundKind = "color"
	BackgroundGradient BackgroundKind = "gradient"
	BackgroundImage    BackgroundKind = "image"
)

// Style holds slide-level background and transition directives.
type Style struct {
	Color       string   `json:"color,omitempty"`
	Gradient    string   `json:"gradient,omitempty"`
	Image       string   `json:"image,omitempty"`
	Size        string   `json:"size,omitempty"`
	Position    string   `json:"position,omitempty"`
	Opacity     *float64 `json:"opacity,omitempty"`
	Transition  string   `json:"transition,omitempty"`
	AutoAnimate bool     `json:"auto_animate,omitempty"`
}

// Kind reports which background wins when several are set:
// image over gradient over color.
func (s *Style) Kind() BackgroundKind {
	switch {
	case s == nil:
		return BackgroundNone
	case s.Image != "":
		return BackgroundImage
	case s.Gradient != "":
		return BackgroundGradient
	case s.Color != "":
		return BackgroundColor
	}
	return BackgroundNone
}

// IsZero reports whether no directive field is set.
func (s *Style) IsZero() bool {
	return s == nil || *s == Style{}
}

// RevealSteps returns the number of reveal steps of the slide, i.e. the
// number of distinct fragment ordinals.
func (s Slide) RevealSteps() int {
	if len(s.Fragments) == 0 {
		return 0
	}
	return s.Fragments[len(s.Fragments)-1].Step + 1
}

// Outline is the two-level navigational summary of a deck.
type Outline []OutlineEntry

// OutlineEntry is one topic of the outline.
type OutlineEntry struct {
	SlideID    int            `json:"slide_id"`
	Title      string         `json:"title"`
	Anchor     string         `json:"anchor"`
	Horizontal int            `json:"horizontal"`
	Children   []OutlineChild `json:"children"`
}

// OutlineChild is a vertical sub-slide listed under its topic.
type OutlineChild struct {
	SlideID    int    `json:"slide_id"`
	Title      string `json:"title"`
	Anchor     string `json:"anchor"`
	Horizontal int    `json:"horizontal"`
	Vertical   int    `json:"vertical"`
}

// Empty returns a deck with no slides.
func Empty() *Deck {
	return &Deck{Slides: []Slide{}, Outline: Outline{}}
}

// Len returns the number of slides.
func (d *Deck) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Slides)
}

// Slide returns the slide at index i.
func (d *Deck) Slide(i int) (Slide, bool) {
	if i < 0 || i >= d.Len() {
		return Slide{}, false
	}
	return d.Slides[i], true
}
