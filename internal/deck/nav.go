package deck

// Direction selects the vertical axis for Vertical.
type Direction int

const (
	Down Direction = iota
	Up
)

// FlatIndex returns the traversal index of the slide at (h, v), or -1.
func (d *Deck) FlatIndex(h, v int) int {
	for i := 0; i < d.Len(); i++ {
		if d.Slides[i].Position == (Position{Horizontal: h, Vertical: v}) {
			return i
		}
	}
	return -1
}

// Next returns the slide following index i in traversal order.
func (d *Deck) Next(i int) (Slide, bool) {
	if i < 0 || i >= d.Len()-1 {
		return Slide{}, false
	}
	return d.Slides[i+1], true
}

// Previous returns the slide preceding index i in traversal order.
func (d *Deck) Previous(i int) (Slide, bool) {
	if i <= 0 || i >= d.Len() {
		return Slide{}, false
	}
	return d.Slides[i-1], true
}

// HasVerticalSlides reports whether topic h has sub-slides.
func (d *Deck) HasVerticalSlides(h int) bool {
	n := 0
	for i := 0; i < d.Len(); i++ {
		if d.Slides[i].Position.Horizontal == h {
			n++
		}
	}
	return n > 1
}

// Vertical returns the neighbouring sub-slide of (h, v) in direction dir.
func (d *Deck) Vertical(h, v int, dir Direction) (Slide, bool) {
	target := v + 1
	if dir == Up {
		target = v - 1
	}
	if i := d.FlatIndex(h, target); i >= 0 {
		return d.Slides[i], true
	}
	return Slide{}, false
}
