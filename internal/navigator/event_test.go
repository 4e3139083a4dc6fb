package navigator

import (
	"encoding/json"
	"testing"
)

func TestParseEvent(t *testing.T) {
	tests := []struct {
		in   string
		want Event
	}{
		{"next", Event{Kind: Advance}},
		{"  ArrowRight ", Event{Kind: Advance}},
		{"Space", Event{Kind: Advance}},
		{"PageDown", Event{Kind: Advance}},
		{"prev", Event{Kind: Retreat}},
		{"ArrowLeft", Event{Kind: Retreat}},
		{"PageUp", Event{Kind: Retreat}},
		{"Home", Event{Kind: GoFirst}},
		{"End", Event{Kind: GoLast}},
		{"t", Event{Kind: ToggleOutline}},
		{"toc", Event{Kind: ToggleOutline}},
		{"Escape", Event{Kind: CloseOutline}},
		{"goto 3", Event{Kind: GoTo, Index: 3}},
		{"g 0", Event{Kind: GoTo, Index: 0}},
	}
	for _, tt := range tests {
		got, err := ParseEvent(tt.in)
		if err != nil {
			t.Errorf("ParseEvent(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseEvent(%q): expected %+v, got %+v", tt.in, tt.want, got)
		}
	}
}

func TestParseEvent_Errors(t *testing.T) {
	for _, in := range []string{"", "   ", "jump", "goto", "goto x", "goto 1 2", "next please"} {
		if _, err := ParseEvent(in); err == nil {
			t.Errorf("ParseEvent(%q): expected error", in)
		}
	}
}

func TestEventJSON(t *testing.T) {
	b, err := json.Marshal(Event{Kind: GoTo, Index: 4})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"kind":"goto","index":4}` {
		t.Errorf("unexpected JSON %s", b)
	}

	var ev Event
	if err := json.Unmarshal([]byte(`{"kind":"toggle_outline"}`), &ev); err != nil {
		t.Fatal(err)
	}
	if ev.Kind != ToggleOutline {
		t.Errorf("expected toggle_outline, got %s", ev.Kind)
	}
	if err := json.Unmarshal([]byte(`{"kind":"next"}`), &ev); err != nil || ev.Kind != Advance {
		t.Errorf("expected command alias to decode to advance, got %s (%v)", ev.Kind, err)
	}
	if err := json.Unmarshal([]byte(`{"kind":"fly"}`), &ev); err == nil {
		t.Error("expected error for unknown kind")
	}
}
