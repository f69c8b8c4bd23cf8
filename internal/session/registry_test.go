package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shahhardik4599/creatively-yours/internal/cart"
	"github.com/shahhardik4599/creatively-yours/internal/customizer"
	"github.com/shahhardik4599/creatively-yours/internal/model"
)

func TestCreateAndGet(t *testing.T) {
	r := NewRegistry(30*time.Minute, zap.NewNop())

	s := r.Create()
	require.NotEmpty(t, s.ID)
	assert.Equal(t, 1, r.Len())

	got, ok := r.Get(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)

	_, ok = r.Get("unknown")
	assert.False(t, ok)
}

func TestSessionsAreIndependent(t *testing.T) {
	r := NewRegistry(30*time.Minute, zap.NewNop())
	a := r.Create()
	b := r.Create()

	a.Do(func(c *cart.Ledger, _ *customizer.Wizard) {
		c.Add(model.Product{ID: "WD1", Price: 999})
	})

	b.Do(func(c *cart.Ledger, _ *customizer.Wizard) {
		assert.True(t, c.Empty())
	})
	a.Do(func(c *cart.Ledger, _ *customizer.Wizard) {
		assert.Equal(t, 1, c.Count())
	})
}

func TestSweepEvictsIdleSessions(t *testing.T) {
	r := NewRegistry(10*time.Minute, zap.NewNop())
	stale := r.Create()
	fresh := r.Create()

	// Age the stale session past the idle limit
	stale.mu.Lock()
	stale.lastSeen = time.Now().Add(-20 * time.Minute)
	stale.mu.Unlock()

	evicted := r.sweep(time.Now())

	assert.Equal(t, 1, evicted)
	assert.Equal(t, 1, r.Len())
	_, ok := r.Get(stale.ID)
	assert.False(t, ok)
	_, ok = r.Get(fresh.ID)
	assert.True(t, ok)
}

func TestGetTouchesLastSeen(t *testing.T) {
	r := NewRegistry(10*time.Minute, zap.NewNop())
	s := r.Create()

	s.mu.Lock()
	s.lastSeen = time.Now().Add(-9 * time.Minute)
	s.mu.Unlock()

	// A touch just before the sweep keeps the session alive
	_, ok := r.Get(s.ID)
	require.True(t, ok)

	assert.Zero(t, r.sweep(time.Now()))
	assert.Equal(t, 1, r.Len())
}
