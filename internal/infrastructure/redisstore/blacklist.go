package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/stockms-api/internal/application/auth"
)

const blacklistKeyPrefix = "stockms:blacklist:"

var _ auth.Blacklist = (*Blacklist)(nil)

// Blacklist tokens revocados por JTI. La clave expira junto con el token,
// así Redis limpia solo.
type Blacklist struct {
	client *redis.Client
}

// NewBlacklist construye la blacklist con el cliente dado.
func NewBlacklist(client *redis.Client) *Blacklist {
	return &Blacklist{client: client}
}

// Add revoca el JTI hasta la expiración del token.
func (b *Blacklist) Add(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil // el token ya expiró, nada que revocar
	}
	if err := b.client.Set(ctx, blacklistKeyPrefix+jti, "1", ttl).Err(); err != nil {
		return fmt.Errorf("revocar token: %w", err)
	}
	return nil
}

// IsBlacklisted indica si el JTI sigue revocado.
func (b *Blacklist) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	err := b.client.Get(ctx, blacklistKeyPrefix+jti).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("consultar blacklist: %w", err)
	}
	return true, nil
}
