package auth

import (
	"context"
	"time"
)

// Notifier superficie de notificación transitoria (severidad, mensaje).
// Colaborador externo: la implementación por defecto solo registra en el log;
// no se consume ningún valor de retorno.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Blacklist invalida tokens individuales al hacer logout. El JTI queda vetado
// hasta la expiración natural del token; después la entrada puede purgarse.
type Blacklist interface {
	Add(ctx context.Context, jti string, expiresAt time.Time) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}
