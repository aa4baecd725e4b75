// Package redisstore implementa el almacén de sesiones y la blacklist de
// tokens sobre Redis. Es el backend para despliegues con más de una réplica:
// el snapshot de sesión y la revocación de tokens se comparten entre procesos.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/stockms-api/internal/application/session"
	"github.com/jhoicas/stockms-api/internal/domain"
)

const sessionKeyPrefix = "stockms:session:"

// sessionTTL tiempo de vida del snapshot; se renueva en cada Save.
const sessionTTL = 24 * time.Hour

var _ session.Store = (*SessionStore)(nil)

// SessionStore snapshots de sesión serializados como JSON en Redis.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore construye el store con el cliente dado.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Save serializa el snapshot y lo guarda con TTL renovado.
func (s *SessionStore) Save(ctx context.Context, sessionID string, state session.State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("serializar sesión: %w", err)
	}
	if err := s.client.Set(ctx, sessionKeyPrefix+sessionID, payload, sessionTTL).Err(); err != nil {
		return fmt.Errorf("guardar sesión: %w", err)
	}
	return nil
}

// Load devuelve el snapshot o ErrSessionNotFound.
// Un snapshot corrupto se trata como inexistente y se elimina.
func (s *SessionStore) Load(ctx context.Context, sessionID string) (session.State, error) {
	payload, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return session.State{}, domain.ErrSessionNotFound
		}
		return session.State{}, fmt.Errorf("leer sesión: %w", err)
	}
	var state session.State
	if err := json.Unmarshal(payload, &state); err != nil {
		_ = s.client.Del(ctx, sessionKeyPrefix+sessionID).Err()
		return session.State{}, domain.ErrSessionNotFound
	}
	return state, nil
}

// Delete elimina el snapshot (idempotente).
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("eliminar sesión: %w", err)
	}
	return nil
}
