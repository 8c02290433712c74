package session

import (
	"errors"
	"sync"
)

// ErrSessionNotFound is returned when a session id is unknown or expired.
var ErrSessionNotFound = errors.New("session: not found")

// Store is an in-memory session registry.
type Store struct {
	deps Deps

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty registry. Every session it creates shares deps.
func NewStore(deps Deps) *Store {
	return &Store{
		deps:     deps,
		sessions: make(map[string]*Session),
	}
}

// Create registers a new session and returns it.
func (st *Store) Create() *Session {
	s := New(st.deps)
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get retrieves a session by id.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Delete removes a session and closes its lifecycles. Deleting an unknown
// id is a no-op.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	s, ok := st.sessions[id]
	delete(st.sessions, id)
	st.mu.Unlock()
	if ok {
		s.Close()
	}
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Shutdown closes every live session.
func (st *Store) Shutdown() {
	st.mu.Lock()
	sessions := st.sessions
	st.sessions = make(map[string]*Session)
	st.mu.Unlock()
	for _, s := range sessions {
		s.Close()
	}
}
