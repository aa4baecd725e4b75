package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/stockms-api/internal/application/session"
	"github.com/jhoicas/stockms-api/internal/domain"
)

var _ session.Store = (*SessionStore)(nil)

// SessionStore snapshots de sesión en memoria, por ID de sesión.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]session.State
}

// NewSessionStore construye el store vacío.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]session.State)}
}

// Save guarda el snapshot.
func (s *SessionStore) Save(_ context.Context, sessionID string, state session.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if state.User != nil {
		user := *state.User
		state.User = &user
	}
	s.sessions[sessionID] = state
	return nil
}

// Load devuelve el snapshot o ErrSessionNotFound.
func (s *SessionStore) Load(_ context.Context, sessionID string) (session.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.sessions[sessionID]
	if !ok {
		return session.State{}, domain.ErrSessionNotFound
	}
	if state.User != nil {
		user := *state.User
		state.User = &user
	}
	return state, nil
}

// Delete elimina el snapshot (idempotente).
func (s *SessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
