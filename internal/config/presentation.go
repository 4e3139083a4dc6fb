package config

import (
	"bytes"
	"fmt"
	"os"
	"slices"

	"github.com/dgallion1/slidedeck/internal/deck"
	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"
)

// Themes lists the theme names a presentation may use.
var Themes = []string{"black", "white", "league", "beige", "sky", "night", "serif", "simple", "solarized", "blood", "moon", "dracula"}

// LogoPositions lists the corners a logo may be anchored to.
var LogoPositions = []string{"top-left", "top-right", "bottom-left", "bottom-right"}

type (
	BrandingConfig struct {
		Logo         string `yaml:"logo" json:"logo"`
		LogoPosition string `yaml:"logo_position" json:"logo_position"`
		LogoSize     string `yaml:"logo_size" json:"logo_size"`
	}

	DefaultsConfig struct {
		Background        string `yaml:"background" json:"background"`
		Transition        string `yaml:"transition" json:"transition"`
		FragmentAnimation string `yaml:"fragment_animation" json:"fragment_animation"`
	}

	ColorsConfig struct {
		Primary   string `yaml:"primary" json:"primary"`
		Secondary string `yaml:"secondary" json:"secondary"`
		Accent    string `yaml:"accent" json:"accent"`
	}

	FontsConfig struct {
		Heading string `yaml:"heading" json:"heading"`
		Body    string `yaml:"body" json:"body"`
		Code    string `yaml:"code" json:"code"`
	}

	ThemeConfig struct {
		Name   string       `yaml:"name" json:"name"`
		Colors ColorsConfig `yaml:"colors" json:"colors"`
		Fonts  FontsConfig  `yaml:"fonts" json:"fonts"`
	}

	FeaturesConfig struct {
		Fragments            bool `yaml:"fragments" json:"fragments"`
		Math                 bool `yaml:"math" json:"math"`
		SyntaxHighlighting   bool `yaml:"syntax_highlighting" json:"syntax_highlighting"`
		TableOfContents      bool `yaml:"table_of_contents" json:"table_of_contents"`
		MouseWheelNavigation bool `yaml:"mouse_wheel_navigation" json:"mouse_wheel_navigation"`
	}

	// Presentation is the rendering-layer configuration of a deck. It is
	// served alongside compiled decks and never changes how a deck compiles.
	Presentation struct {
		Version  int            `yaml:"version" json:"version"`
		Branding BrandingConfig `yaml:"branding" json:"branding"`
		Defaults DefaultsConfig `yaml:"defaults" json:"defaults"`
		Theme    ThemeConfig    `yaml:"theme" json:"theme"`
		Features FeaturesConfig `yaml:"features" json:"features"`
	}
)

// DefaultPresentation returns the configuration used when no file is given.
func DefaultPresentation() *Presentation {
	return &Presentation{
		Version: 1,
		Branding: BrandingConfig{
			LogoPosition: "bottom-right",
			LogoSize:     "80px",
		},
		Defaults: DefaultsConfig{
			Transition:        "slide",
			FragmentAnimation: deck.FadeIn.String(),
		},
		Theme: ThemeConfig{
			Name: "black",
			Colors: ColorsConfig{
				Primary:   "#667eea",
				Secondary: "#764ba2",
				Accent:    "#4299e1",
			},
			Fonts: FontsConfig{
				Heading: "system-ui, -apple-system, sans-serif",
				Body:    "system-ui, -apple-system, sans-serif",
				Code:    "monospace",
			},
		},
		Features: FeaturesConfig{
			Fragments:            true,
			Math:                 true,
			SyntaxHighlighting:   true,
			TableOfContents:      true,
			MouseWheelNavigation: true,
		},
	}
}

func unmarshalPresentation(data []byte, cfg *Presentation) (*Presentation, error) {
	// Only fields defined above are accepted.
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode presentation config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParsePresentation decodes data on top of the defaults and validates it.
func ParsePresentation(data []byte) (*Presentation, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return DefaultPresentation(), nil
	}
	return unmarshalPresentation(data, DefaultPresentation())
}

// LoadPresentation reads the YAML file at path on top of the defaults. An
// empty path returns the defaults.
func LoadPresentation(path string) (*Presentation, error) {
	if path == "" {
		return DefaultPresentation(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read presentation config: %w", err)
	}
	cfg, err := ParsePresentation(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// DumpPresentation marshals cfg to YAML.
func DumpPresentation(cfg *Presentation) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal presentation config to yaml: %w", err)
	}
	return data, nil
}

// Validate reports every problem in the configuration.
func (p *Presentation) Validate() error {
	var err error
	if p.Version != 1 {
		err = multierr.Append(err, fmt.Errorf("unsupported version %d", p.Version))
	}
	if !slices.Contains(Themes, p.Theme.Name) {
		err = multierr.Append(err, fmt.Errorf("unknown theme %q", p.Theme.Name))
	}
	if !slices.Contains(LogoPositions, p.Branding.LogoPosition) {
		err = multierr.Append(err, fmt.Errorf("invalid logo position %q", p.Branding.LogoPosition))
	}
	if _, perr := deck.ParseFragmentKind(p.Defaults.FragmentAnimation); perr != nil {
		err = multierr.Append(err, fmt.Errorf("defaults.fragment_animation: %w", perr))
	}
	return err
}
