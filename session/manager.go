package session

import (
	"sync"
	"time"
)

// DefaultTTL keeps an idle session alive for two hours.
const DefaultTTL = 2 * time.Hour

type entry struct {
	ledger   *Ledger
	lastSeen time.Time
}

// Manager is the in-memory session store. Ledgers are deliberately never
// persisted; they live only as long as someone keeps touching them.
type Manager struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]*entry
}

// Default is the manager the HTTP layer and the cron sweeper share.
var Default = NewManager(DefaultTTL)

func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		ttl:      ttl,
		sessions: make(map[string]*entry),
	}
}

// SetTTL overrides the idle timeout. Applies to future purges only.
func (m *Manager) SetTTL(ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ttl = ttl
}

// Put stores a ledger under its ID.
func (m *Manager) Put(l *Ledger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[l.ID] = &entry{ledger: l, lastSeen: time.Now()}
}

// Get returns a live ledger and bumps its idle clock.
func (m *Manager) Get(id string) (*Ledger, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = time.Now()
	return e.ledger, true
}

// Delete ends a session.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// PurgeExpired drops sessions idle past the TTL and returns how many went.
func (m *Manager) PurgeExpired() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := time.Now().Add(-m.ttl)
	purged := 0
	for id, e := range m.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
			purged++
		}
	}
	return purged
}
