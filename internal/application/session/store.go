package session

import "context"

// Store persiste el snapshot de sesión bajo una clave por sesión (el equivalente
// server-side del storage del navegador: el registro completo del usuario, no un token).
//
// Contrato: Load devuelve domain.ErrSessionNotFound si la clave no existe; una
// entrada corrupta se descarta silenciosamente y cuenta como no encontrada.
type Store interface {
	Save(ctx context.Context, sessionID string, state State) error
	Load(ctx context.Context, sessionID string) (State, error)
	Delete(ctx context.Context, sessionID string) error
}
