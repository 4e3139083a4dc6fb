package navigator

import (
	"fmt"
	"strconv"
	"strings"
)

// EventKind enumerates the inputs of the engine.
type EventKind int

const (
	Advance EventKind = iota
	Retreat
	GoTo
	GoFirst
	GoLast
	ToggleOutline
	CloseOutline
)

var eventKindNames = [...]string{
	Advance:       "advance",
	Retreat:       "retreat",
	GoTo:          "goto",
	GoFirst:       "first",
	GoLast:        "last",
	ToggleOutline: "toggle_outline",
	CloseOutline:  "close_outline",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventKindNames) {
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
	return eventKindNames[k]
}

func (k EventKind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(eventKindNames) {
		return nil, fmt.Errorf("invalid event kind %d", int(k))
	}
	return []byte(eventKindNames[k]), nil
}

func (k *EventKind) UnmarshalText(b []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(b)))
	for i, n := range eventKindNames {
		if n == name {
			*k = EventKind(i)
			return nil
		}
	}
	if kind, ok := commands[name]; ok {
		*k = kind
		return nil
	}
	return fmt.Errorf("unknown event kind %q", string(b))
}

// Event is one discrete input. Index is only read for GoTo.
type Event struct {
	Kind  EventKind `json:"kind"`
	Index int       `json:"index,omitempty"`
}

func (e Event) String() string {
	if e.Kind == GoTo {
		return fmt.Sprintf("goto %d", e.Index)
	}
	return e.Kind.String()
}

// commands maps command words and presenter key names onto events.
var commands = map[string]EventKind{
	"advance":        Advance,
	"next":           Advance,
	"n":              Advance,
	"arrowright":     Advance,
	"arrowdown":      Advance,
	"space":          Advance,
	"pagedown":       Advance,
	"retreat":        Retreat,
	"prev":           Retreat,
	"previous":       Retreat,
	"p":              Retreat,
	"arrowleft":      Retreat,
	"arrowup":        Retreat,
	"pageup":         Retreat,
	"first":          GoFirst,
	"home":           GoFirst,
	"last":           GoLast,
	"end":            GoLast,
	"toc":            ToggleOutline,
	"outline":        ToggleOutline,
	"toggle_outline": ToggleOutline,
	"t":              ToggleOutline,
	"close":          CloseOutline,
	"close_outline":  CloseOutline,
	"escape":         CloseOutline,
	"esc":            CloseOutline,
}

// ParseEvent parses a command such as "next", "goto 3" or a key name like
// "ArrowRight". GoTo indices are 0-based.
func ParseEvent(s string) (Event, error) {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 {
		return Event{}, fmt.Errorf("empty command")
	}
	if fields[0] == "goto" || fields[0] == "g" {
		if len(fields) != 2 {
			return Event{}, fmt.Errorf("goto needs one slide index")
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return Event{}, fmt.Errorf("invalid slide index %q: %w", fields[1], err)
		}
		return Event{Kind: GoTo, Index: n}, nil
	}
	if len(fields) != 1 {
		return Event{}, fmt.Errorf("unexpected arguments to %q", fields[0])
	}
	kind, ok := commands[fields[0]]
	if !ok {
		return Event{}, fmt.Errorf("unknown command %q", fields[0])
	}
	return Event{Kind: kind}, nil
}
