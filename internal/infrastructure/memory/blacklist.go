package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/stockms-api/internal/application/auth"
)

var _ auth.Blacklist = (*Blacklist)(nil)

// Blacklist tokens revocados por JTI, con expiración perezosa.
type Blacklist struct {
	mu      sync.Mutex
	revoked map[string]time.Time // jti -> expiración del token
}

// NewBlacklist construye la lista vacía.
func NewBlacklist() *Blacklist {
	return &Blacklist{revoked: make(map[string]time.Time)}
}

// Add revoca el JTI hasta la expiración del token.
func (b *Blacklist) Add(_ context.Context, jti string, expiresAt time.Time) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.purge()
	b.revoked[jti] = expiresAt
	return nil
}

// IsBlacklisted indica si el JTI sigue revocado.
func (b *Blacklist) IsBlacklisted(_ context.Context, jti string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	expiresAt, ok := b.revoked[jti]
	if !ok {
		return false, nil
	}
	if time.Now().After(expiresAt) {
		delete(b.revoked, jti)
		return false, nil
	}
	return true, nil
}

// purge elimina entradas ya expiradas. Llamar con el mutex tomado.
func (b *Blacklist) purge() {
	now := time.Now()
	for jti, expiresAt := range b.revoked {
		if now.After(expiresAt) {
			delete(b.revoked, jti)
		}
	}
}
