package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/multierr"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "SLIDEDECK_API_KEY", "SESSION_TTL", "MAX_SESSIONS", "RATE_LIMIT", "IMPORT_MAX_WORDS"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	if cfg.Port != "8090" {
		t.Errorf("expected port 8090, got %s", cfg.Port)
	}
	if cfg.SessionTTL != time.Hour {
		t.Errorf("expected 1h session TTL, got %s", cfg.SessionTTL)
	}
	if cfg.MaxSessions != 1000 || cfg.RateLimit != 20 || cfg.RateBurst != 40 || cfg.ImportMaxWords != 120 {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.MaxUploadBytes != 52428800 {
		t.Errorf("expected 50MB upload limit, got %d", cfg.MaxUploadBytes)
	}
}

func TestLoad_EnvOverridesAndBadValues(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SESSION_TTL", "5m")
	t.Setenv("MAX_SESSIONS", "-4")
	t.Setenv("RATE_LIMIT", "2.5")
	t.Setenv("DECK_CACHE_TTL", "soon")
	cfg := Load()
	if cfg.Port != "9000" || cfg.SessionTTL != 5*time.Minute {
		t.Errorf("expected overrides, got %+v", cfg)
	}
	if cfg.MaxSessions != 1000 {
		t.Errorf("expected negative value replaced by default, got %d", cfg.MaxSessions)
	}
	if cfg.RateLimit != 2.5 {
		t.Errorf("expected rate 2.5, got %v", cfg.RateLimit)
	}
	if cfg.DeckCacheTTL != 10*time.Minute {
		t.Errorf("expected unparsable duration to fall back, got %s", cfg.DeckCacheTTL)
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := Config{Port: "none", PresentationConfig: filepath.Join(t.TempDir(), "missing.yaml")}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if n := len(multierr.Errors(err)); n != 3 {
		t.Errorf("expected 3 errors, got %d: %v", n, err)
	}

	cfg = Config{Port: "8090", APIKey: "k"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestPresentation_Defaults(t *testing.T) {
	p := DefaultPresentation()
	if err := p.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if p.Theme.Colors.Primary != "#667eea" || p.Branding.LogoPosition != "bottom-right" {
		t.Errorf("unexpected defaults %+v", p)
	}
}

func TestParsePresentation_OverlaysDefaults(t *testing.T) {
	p, err := ParsePresentation([]byte("theme:\n  name: dracula\nfeatures:\n  math: false\n"))
	if err != nil {
		t.Fatal(err)
	}
	if p.Theme.Name != "dracula" {
		t.Errorf("expected dracula, got %s", p.Theme.Name)
	}
	if p.Features.Math {
		t.Error("expected math disabled")
	}
	if !p.Features.Fragments || p.Theme.Colors.Accent != "#4299e1" {
		t.Errorf("expected untouched defaults kept, got %+v", p)
	}
}

func TestParsePresentation_Errors(t *testing.T) {
	if _, err := ParsePresentation([]byte("colour: red\n")); err == nil {
		t.Error("expected unknown field to be rejected")
	}
	_, err := ParsePresentation([]byte("theme:\n  name: neon\nbranding:\n  logo_position: middle\ndefaults:\n  fragment_animation: spin\n"))
	if err == nil {
		t.Fatal("expected validation error")
	}
	if n := len(multierr.Errors(err)); n != 3 {
		t.Errorf("expected 3 errors, got %d: %v", n, err)
	}
}

func TestPresentation_DumpLoadRoundTrip(t *testing.T) {
	p := DefaultPresentation()
	p.Theme.Name = "moon"
	p.Branding.Logo = "logo.png"
	data, err := DumpPresentation(p)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "logo_position: bottom-right") {
		t.Errorf("expected snake_case keys in dump, got:\n%s", data)
	}

	path := filepath.Join(t.TempDir(), "slidedeck.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadPresentation(path)
	if err != nil {
		t.Fatal(err)
	}
	if *got != *p {
		t.Errorf("expected %+v, got %+v", p, got)
	}
}

func TestLoadPresentation_EmptyPath(t *testing.T) {
	p, err := LoadPresentation("")
	if err != nil || p.Theme.Name != "black" {
		t.Errorf("expected defaults, got %+v, %v", p, err)
	}
	if _, err := LoadPresentation(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
