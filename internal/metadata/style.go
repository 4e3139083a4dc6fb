package metadata

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/dgallion1/slidedeck/internal/deck"
	"github.com/dgallion1/slidedeck/internal/markup"
)

var (
	// legacyRegex matches a single-line `<!-- .slide: key="value" ... -->`.
	legacyRegex = regexp.MustCompile(`<!--\s*\.slide:\s*(.*?)\s*-->`)

	schemeRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)
)

const modernPrefix = ":::"

// Directives is the partial style parsed from one directive grammar.
// Background reports whether the grammar set any of Color, Gradient or
// Image; a background value replaces the previous one from the same
// grammar.
type Directives struct {
	Color       string
	Gradient    string
	Image       string
	Size        string
	Position    string
	Opacity     *float64
	Transition  string
	AutoAnimate bool
	Background  bool
}

func (d *Directives) setBackground(v string) bool {
	kind := classifyBackground(v)
	if kind == deck.BackgroundNone {
		return false
	}
	d.Color, d.Gradient, d.Image = "", "", ""
	switch kind {
	case deck.BackgroundColor:
		d.Color = v
	case deck.BackgroundGradient:
		d.Gradient = v
	case deck.BackgroundImage:
		d.Image = v
	}
	d.Background = true
	return true
}

// ModernSyntaxWins merges the legacy and `:::` directive sets of one slide.
// A field set by a `:::` line overrides the legacy value for the same field;
// the background (color, gradient or image) counts as one field. Returns nil
// when neither grammar set anything.
func ModernSyntaxWins(legacy, modern Directives) *deck.Style {
	s := deck.Style{
		Color:       legacy.Color,
		Gradient:    legacy.Gradient,
		Image:       legacy.Image,
		Size:        legacy.Size,
		Position:    legacy.Position,
		Opacity:     legacy.Opacity,
		Transition:  legacy.Transition,
		AutoAnimate: legacy.AutoAnimate,
	}
	if modern.Background {
		s.Color, s.Gradient, s.Image = modern.Color, modern.Gradient, modern.Image
	}
	if modern.Opacity != nil {
		s.Opacity = modern.Opacity
	}
	if modern.Size != "" {
		s.Size = modern.Size
	}
	if modern.Position != "" {
		s.Position = modern.Position
	}
	if modern.Transition != "" {
		s.Transition = modern.Transition
	}
	if s.IsZero() {
		return nil
	}
	return &s
}

// parseStyle strips every directive line and legacy slide comment outside
// fenced code from lines and returns the remaining lines with the two
// directive sets.
func parseStyle(lines []string) (rest []string, legacy, modern Directives) {
	var fence markup.Fence
	rest = lines[:0:0]
	for _, line := range lines {
		if fence.Open() {
			fence.Scan(line)
			rest = append(rest, line)
			continue
		}
		// Fences and directives are judged on what is left once legacy
		// comments are gone, which is what a second pass would see.
		if legacyRegex.MatchString(line) {
			for _, m := range legacyRegex.FindAllStringSubmatch(line, -1) {
				applyLegacy(&legacy, m[1])
			}
			line = legacyRegex.ReplaceAllString(line, "")
			if strings.TrimSpace(line) == "" {
				continue
			}
			line = strings.TrimRight(line, " \t")
		}
		if fence.Scan(line) {
			rest = append(rest, line)
			continue
		}
		if v, ok := modernValue(line); ok {
			applyModern(&modern, v)
			continue
		}
		rest = append(rest, line)
	}
	return rest, legacy, modern
}

func modernValue(line string) (string, bool) {
	t := strings.TrimSpace(line)
	if !strings.HasPrefix(t, modernPrefix) {
		return "", false
	}
	v := strings.TrimSpace(strings.TrimPrefix(t, modernPrefix))
	if v == "" || strings.HasPrefix(v, ":") {
		return "", false
	}
	return v, true
}

// applyModern classifies one `:::` value. Unrecognised values are ignored.
func applyModern(d *Directives, v string) {
	if rest, ok := cutPrefixFold(v, "opacity:"); ok {
		if o, ok := parseOpacity(rest); ok {
			d.Opacity = &o
		}
		return
	}
	d.setBackground(v)
}

func applyLegacy(d *Directives, attrs string) {
	parsed := markup.ParseAttributes(attrs)
	for _, key := range []string{
		"data-background",
		"data-background-color",
		"data-background-image",
		"data-background-size",
		"data-background-position",
		"data-background-opacity",
		"data-transition",
		"data-auto-animate",
	} {
		v, ok := parsed[key]
		if !ok {
			continue
		}
		v = strings.TrimSpace(v)
		switch key {
		case "data-background":
			d.setBackground(v)
		case "data-background-color":
			if v != "" {
				d.Color = v
				d.Background = true
			}
		case "data-background-image":
			if v != "" {
				d.Image = v
				d.Background = true
			}
		case "data-background-size":
			d.Size = v
		case "data-background-position":
			d.Position = v
		case "data-background-opacity":
			if o, ok := parseOpacity(v); ok {
				d.Opacity = &o
			}
		case "data-transition":
			d.Transition = v
		case "data-auto-animate":
			d.AutoAnimate = v == "" || strings.EqualFold(v, "true")
		}
	}
}

func classifyBackground(v string) deck.BackgroundKind {
	lower := strings.ToLower(v)
	switch {
	case v == "":
		return deck.BackgroundNone
	case strings.HasPrefix(lower, "#"),
		strings.HasPrefix(lower, "rgb"),
		strings.HasPrefix(lower, "hsl"):
		return deck.BackgroundColor
	case strings.Contains(lower, "gradient"):
		return deck.BackgroundGradient
	case schemeRegex.MatchString(v),
		strings.HasPrefix(lower, "data:"),
		strings.HasPrefix(v, "/"),
		strings.HasPrefix(v, "./"),
		strings.HasPrefix(v, "../"):
		return deck.BackgroundImage
	}
	return deck.BackgroundNone
}

func parseOpacity(s string) (float64, bool) {
	o, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(o) || o < 0 || o > 1 {
		return 0, false
	}
	return o, true
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	return s[len(prefix):], true
}
