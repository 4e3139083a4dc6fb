package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dgallion1/slidedeck/internal/compiler"
	"github.com/dgallion1/slidedeck/internal/config"
	"github.com/dgallion1/slidedeck/internal/deck"
	"github.com/dgallion1/slidedeck/internal/metrics"
	"github.com/patrickmn/go-cache"
)

const cleanupInterval = 5 * time.Minute

// Manager owns the session store and the compiled deck cache.
type Manager struct {
	store *Store
	decks *cache.Cache
	stats *metrics.CompileStats
	log   *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewManager(cfg config.Config, stats *metrics.CompileStats, log *slog.Logger) *Manager {
	return &Manager{
		store: NewStore(cfg.SessionTTL, cfg.MaxSessions),
		decks: cache.New(cfg.DeckCacheTTL, 2*cfg.DeckCacheTTL),
		stats: stats,
		log:   log,
	}
}

// Start launches the session cleanup loop.
func (m *Manager) Start(ctx context.Context) {
	loopCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-loopCtx.Done():
				return
			case <-ticker.C:
				if n := m.store.Cleanup(); n > 0 {
					m.log.Info("expired sessions removed", "count", n, "active", m.store.Len())
				}
			}
		}
	}()
}

// Stop ends the cleanup loop and waits for it.
func (m *Manager) Stop() {
	if m.cancel != nil {
		m.cancel()
	}
	m.wg.Wait()
}

// Compile returns the deck for src and its content hash. Identical sources
// share one cached deck.
func (m *Manager) Compile(src []byte) (*deck.Deck, string) {
	hash := ContentHashHex(src)
	if v, ok := m.decks.Get(hash); ok {
		return v.(*deck.Deck), hash
	}
	d := metrics.Time(m.stats, func() *deck.Deck {
		return compiler.CompileBytes(src)
	}, (*deck.Deck).Len)
	m.decks.SetDefault(hash, d)
	return d, hash
}

// Create compiles src and registers a new session presenting it.
func (m *Manager) Create(src []byte, title string) (*Session, error) {
	d, hash := m.Compile(src)
	sess, err := New(d, hash, title)
	if err != nil {
		return nil, err
	}
	if err := m.store.Put(sess); err != nil {
		return nil, err
	}
	m.log.Info("session created", "session_id", sess.ID, "slides", d.Len())
	return sess, nil
}

// Replace recompiles the source of session id. It returns nil when the
// session does not exist.
func (m *Manager) Replace(id string, src []byte) *Session {
	sess := m.store.Get(id)
	if sess == nil {
		return nil
	}
	d, hash := m.Compile(src)
	sess.Replace(d, hash)
	m.log.Info("session source replaced", "session_id", id, "slides", d.Len())
	return sess
}

// Get returns the session with id, or nil. A lookup counts as use, so
// sessions that are only read from are not evicted as idle.
func (m *Manager) Get(id string) *Session {
	s := m.store.Get(id)
	if s != nil {
		s.touch()
	}
	return s
}

func (m *Manager) Delete(id string) bool {
	return m.store.Delete(id)
}

// Active returns the number of live sessions.
func (m *Manager) Active() int {
	return m.store.Len()
}

// CachedDecks returns the number of decks held in the cache.
func (m *Manager) CachedDecks() int {
	return m.decks.ItemCount()
}
