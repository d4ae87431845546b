// Package throttle implements the fetch recency guard shared by the
// listing and analytics use cases. For each user it tracks when the last
// fetch of a logical query started and whether an automatic retry is
// already pending, so repeated requests inside the cooldown window reuse
// the previous result instead of hitting the datastore again.
package throttle

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// guardEntry tracks fetch state for a single user.
type guardEntry struct {
	lastFetchAt  time.Time
	pendingRetry bool
}

// Guard is a per-user fetch recency guard. It is a debounce, not a rate
// limiter: a blocked caller is expected to serve the last known result.
type Guard struct {
	mu       sync.Mutex
	entries  map[uuid.UUID]*guardEntry
	cooldown time.Duration
	now      func() time.Time
}

// NewGuard creates a guard with the given cooldown window.
func NewGuard(cooldown time.Duration) *Guard {
	return &Guard{
		entries:  make(map[uuid.UUID]*guardEntry),
		cooldown: cooldown,
		now:      time.Now,
	}
}

// Allow reports whether a fetch for the user may start now. When it
// returns true the fetch is considered started and the window resets.
func (g *Guard) Allow(userID uuid.UUID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()

	entry, exists := g.entries[userID]
	if !exists {
		g.entries[userID] = &guardEntry{lastFetchAt: now}
		return true
	}

	if now.Sub(entry.lastFetchAt) < g.cooldown {
		return false
	}

	entry.lastFetchAt = now
	return true
}

// TryScheduleRetry marks a retry as pending for the user. It returns
// false if one is already pending, so at most one automatic retry is ever
// scheduled per failure; further failures wait for an explicit refetch.
func (g *Guard) TryScheduleRetry(userID uuid.UUID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	entry, exists := g.entries[userID]
	if !exists {
		entry = &guardEntry{}
		g.entries[userID] = entry
	}

	if entry.pendingRetry {
		return false
	}

	entry.pendingRetry = true
	return true
}

// ClearRetry clears the pending-retry mark after the retry has run.
func (g *Guard) ClearRetry(userID uuid.UUID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if entry, exists := g.entries[userID]; exists {
		entry.pendingRetry = false
	}
}

// Reset forgets the user's fetch state so the next request fetches
// immediately. Used after writes that invalidate the last result.
func (g *Guard) Reset(userID uuid.UUID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.entries, userID)
}

// SetNowFunc overrides the clock (useful for testing).
func (g *Guard) SetNowFunc(now func() time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.now = now
}
