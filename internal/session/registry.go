// Package session owns the per-session state containers: each guest
// session holds exactly one cart ledger and one customizer wizard, and all
// mutations of those containers go through the session's lock.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shahhardik4599/creatively-yours/internal/cart"
	"github.com/shahhardik4599/creatively-yours/internal/customizer"
	"github.com/shahhardik4599/creatively-yours/prometheus"
)

// Session is one guest's transient state. Cart and wizard state live only
// here, for the lifetime of the session; there is no persistence.
type Session struct {
	ID string

	mu       sync.Mutex
	cart     cart.Ledger
	wizard   customizer.Wizard
	lastSeen time.Time
}

// Do runs fn with exclusive access to the session's cart and wizard.
// This is the only way to touch them, which keeps each state container
// mutated solely by its owning session.
func (s *Session) Do(fn func(c *cart.Ledger, w *customizer.Wizard)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.cart, &s.wizard)
}

// Registry is the in-memory map of live sessions. Sessions are created on
// first contact, touched on every use, and evicted after sitting idle;
// eviction is the end of the session and destroys its cart.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	idle     time.Duration
	log      *zap.Logger
}

// NewRegistry creates a registry evicting sessions idle longer than idle
func NewRegistry(idle time.Duration, log *zap.Logger) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		idle:     idle,
		log:      log,
	}
}

// Create mints a new session with a random identifier
func (r *Registry) Create() *Session {
	s := &Session{
		ID:       uuid.New().String(),
		lastSeen: time.Now(),
	}

	r.mu.Lock()
	r.sessions[s.ID] = s
	count := len(r.sessions)
	r.mu.Unlock()

	prometheus.SetActiveSessions(float64(count))
	return s
}

// Get returns the session with the given ID and marks it as seen.
// A stale ID, including one evicted mid-request, simply reports false;
// the caller starts a fresh session instead of writing into a dead one.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}

	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
	return s, true
}

// Len returns the number of live sessions
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// StartSweeper evicts idle sessions every interval until ctx is done
func (r *Registry) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if evicted := r.sweep(now); evicted > 0 {
					r.log.Info("evicted idle sessions", zap.Int("count", evicted))
				}
			}
		}
	}()
}

func (r *Registry) sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, s := range r.sessions {
		s.mu.Lock()
		expired := now.Sub(s.lastSeen) > r.idle
		s.mu.Unlock()
		if expired {
			delete(r.sessions, id)
			evicted++
		}
	}

	prometheus.SetActiveSessions(float64(len(r.sessions)))
	return evicted
}
