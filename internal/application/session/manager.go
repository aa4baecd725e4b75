package session

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/stockms-api/internal/domain"
)

// Manager serializa las transiciones de una sesión sobre un Store.
//
// Cada operación de login/registro obtiene una secuencia monótona por sesión;
// solo la finalización que porta la última secuencia emitida se aplica. Un doble
// submit deja una finalización obsoleta que se descarta con ErrStaleRequest en
// lugar de pisar el resultado más reciente.
//
// El mutex hace al Manager seguro bajo goroutines concurrentes (el original era
// de un solo hilo; aquí la exclusión es explícita).
type Manager struct {
	store Store

	mu   sync.Mutex
	seqs map[string]uint64 // última secuencia emitida por sesión
}

// NewManager construye el manager sobre el store dado.
func NewManager(store Store) *Manager {
	return &Manager{store: store, seqs: make(map[string]uint64)}
}

// Load hidrata el estado persistido. Una sesión inexistente o corrupta
// arranca en el estado inicial (anónimo), sin re-validar credenciales.
func (m *Manager) Load(ctx context.Context, sessionID string) (State, error) {
	state, err := m.store.Load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return Initial(), nil
		}
		return Initial(), err
	}
	return state, nil
}

// Begin despacha LoginStart y devuelve la secuencia para fencear la finalización.
func (m *Manager) Begin(ctx context.Context, sessionID string) (uint64, State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seqs[sessionID]++
	seq := m.seqs[sessionID]

	state, err := m.loadLocked(ctx, sessionID)
	if err != nil {
		return 0, Initial(), err
	}
	state = Reduce(state, LoginStart{})
	if err := m.store.Save(ctx, sessionID, state); err != nil {
		return 0, Initial(), err
	}
	return seq, state, nil
}

// Complete aplica la acción de finalización (LoginSuccess o LoginFailure) solo si
// seq sigue siendo la última secuencia emitida; si no, descarta con ErrStaleRequest.
func (m *Manager) Complete(ctx context.Context, sessionID string, seq uint64, action Action) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.seqs[sessionID] != seq {
		return Initial(), domain.ErrStaleRequest
	}

	state, err := m.loadLocked(ctx, sessionID)
	if err != nil {
		return Initial(), err
	}
	state = Reduce(state, action)
	if err := m.store.Save(ctx, sessionID, state); err != nil {
		return Initial(), err
	}
	return state, nil
}

// Dispatch aplica una acción sin fencing (UpdateProfile, ClearError).
func (m *Manager) Dispatch(ctx context.Context, sessionID string, action Action) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, err := m.loadLocked(ctx, sessionID)
	if err != nil {
		return Initial(), err
	}
	state = Reduce(state, action)
	if err := m.store.Save(ctx, sessionID, state); err != nil {
		return state, err
	}
	return state, nil
}

// Logout reduce con Logout y elimina el snapshot persistido: una recarga
// posterior arranca anónima.
func (m *Manager) Logout(ctx context.Context, sessionID string) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, err := m.loadLocked(ctx, sessionID)
	if err != nil {
		return Initial(), err
	}
	state = Reduce(state, Logout{})
	if err := m.store.Delete(ctx, sessionID); err != nil {
		return state, err
	}
	delete(m.seqs, sessionID)
	return state, nil
}

func (m *Manager) loadLocked(ctx context.Context, sessionID string) (State, error) {
	state, err := m.store.Load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return Initial(), nil
		}
		return Initial(), err
	}
	return state, nil
}
