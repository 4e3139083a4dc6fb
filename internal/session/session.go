// Package session keeps live presentations: one compiled deck and one
// navigation engine per session.
package session

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/dgallion1/slidedeck/internal/deck"
	"github.com/dgallion1/slidedeck/internal/navigator"
	"github.com/google/uuid"
)

// Session is one running presentation. All access goes through its mutex,
// so events for the same session are applied one at a time.
type Session struct {
	mu sync.Mutex

	ID        string
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time

	contentHash string
	engine      *navigator.Engine
}

// New creates a session presenting d.
func New(d *deck.Deck, contentHash, title string) (*Session, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating session id: %w", err)
	}
	now := time.Now()
	return &Session{
		ID:          id.String(),
		Title:       title,
		CreatedAt:   now,
		UpdatedAt:   now,
		contentHash: contentHash,
		engine:      navigator.New(d),
	}, nil
}

// Handle applies ev and returns the resulting state and whether it changed.
func (s *Session) Handle(ev navigator.Event) (navigator.State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := s.engine.Handle(ev)
	s.UpdatedAt = time.Now()
	return s.engine.State(), changed
}

// Replace swaps in a newly compiled deck and resets navigation.
func (s *Session) Replace(d *deck.Deck, contentHash string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Load(d)
	s.contentHash = contentHash
	s.UpdatedAt = time.Now()
}

// Deck returns the deck being presented. Decks are never mutated, so the
// result may be read without holding the session.
func (s *Session) Deck() *deck.Deck {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Deck()
}

// touch marks the session as used without changing its state.
func (s *Session) touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.UpdatedAt = time.Now()
}

func (s *Session) lastUsed() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.UpdatedAt
}

// Snapshot is a read-only, JSON-safe copy of session state.
type Snapshot struct {
	ID          string          `json:"session_id"`
	Title       string          `json:"title"`
	ContentHash string          `json:"content_hash"`
	Slides      int             `json:"slides"`
	State       navigator.State `json:"state"`
	Current     *deck.Slide     `json:"current,omitempty"`
	Visible     []deck.Fragment `json:"visible_fragments"`
	Remaining   int             `json:"remaining_steps"`
	Revealed    int             `json:"revealed_index"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Snapshot returns a JSON-safe copy of the session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:          s.ID,
		Title:       s.Title,
		ContentHash: s.contentHash,
		Slides:      s.engine.Deck().Len(),
		State:       s.engine.State(),
		Visible:     s.engine.VisibleFragments(),
		Remaining:   s.engine.Remaining(),
		Revealed:    s.engine.RevealedIndex(),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	if cur, ok := s.engine.Current(); ok {
		snap.Current = &cur
	}
	if snap.Visible == nil {
		snap.Visible = []deck.Fragment{}
	}
	return snap
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
