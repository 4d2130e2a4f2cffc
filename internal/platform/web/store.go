package web

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/games/memory"
)

// Entry is one live web session. Callers must hold the entry lock while
// touching the session.
type Entry struct {
	mu         sync.Mutex
	id         string
	session    *memory.Session
	difficulty config.DifficultyPreset
	lastSeen   time.Time
	saved      bool
}

// ID returns the session identifier handed to the client.
func (e *Entry) ID() string { return e.id }

// Lock acquires the entry lock.
func (e *Entry) Lock() { e.mu.Lock() }

// Unlock releases the entry lock.
func (e *Entry) Unlock() { e.mu.Unlock() }

// catchUp feeds the wall-clock time since the last request into the session
// so a pending celebration can fire.
func (e *Entry) catchUp(now time.Time) {
	if dt := now.Sub(e.lastSeen); dt > 0 {
		e.session.Advance(dt)
	}
	e.lastSeen = now
}

// SessionStore tracks live sessions.
// Thread-safe for concurrent access.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Entry
	ttl      time.Duration
	now      func() time.Time

	done     chan struct{}
	stopOnce sync.Once
}

// NewSessionStore creates a store. Sessions idle for longer than ttl are
// removed by Expire; ttl <= 0 keeps idle sessions forever.
func NewSessionStore(ttl time.Duration, now func() time.Time) *SessionStore {
	if now == nil {
		now = time.Now
	}
	return &SessionStore{
		sessions: make(map[string]*Entry),
		ttl:      ttl,
		now:      now,
		done:     make(chan struct{}),
	}
}

// Create registers a session under a fresh id.
func (s *SessionStore) Create(session *memory.Session, difficulty config.DifficultyPreset) *Entry {
	e := &Entry{
		id:         uuid.NewString(),
		session:    session,
		difficulty: difficulty,
		lastSeen:   s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[e.id] = e
	return e
}

// Get looks up a session by id.
func (s *SessionStore) Get(id string) (*Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.sessions[id]
	return e, ok
}

// Delete removes a session.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len returns the number of tracked sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Expire removes exited sessions and sessions idle past the TTL, and returns
// what it removed.
func (s *SessionStore) Expire() []*Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var removed []*Entry
	for id, e := range s.sessions {
		e.mu.Lock()
		idle := s.ttl > 0 && now.Sub(e.lastSeen) > s.ttl
		exited := e.session.Exited()
		e.mu.Unlock()

		if idle || exited {
			delete(s.sessions, id)
			removed = append(removed, e)
		}
	}
	return removed
}

// Drain removes and returns every session.
func (s *SessionStore) Drain() []*Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make([]*Entry, 0, len(s.sessions))
	for id, e := range s.sessions {
		all = append(all, e)
		delete(s.sessions, id)
	}
	return all
}

// StartCleanup runs Expire every period until Stop is called, handing each
// removed session to onExpire.
func (s *SessionStore) StartCleanup(period time.Duration, onExpire func(*Entry)) {
	if period <= 0 {
		return
	}
	go s.cleanupLoop(period, onExpire)
}

func (s *SessionStore) cleanupLoop(period time.Duration, onExpire func(*Entry)) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			for _, e := range s.Expire() {
				if onExpire != nil {
					onExpire(e)
				}
			}
		case <-s.done:
			return
		}
	}
}

// Stop ends the cleanup loop. Safe to call multiple times.
func (s *SessionStore) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
}
