package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResetTokenStore keeps password-reset tokens with their expiry enforced by
// Redis TTLs. Keys map token -> account email.
type ResetTokenStore struct {
	rdb       redis.UniversalClient
	keyPrefix string
	ttl       time.Duration
}

func NewResetTokenStore(rdb redis.UniversalClient, keyPrefix string, ttl time.Duration) *ResetTokenStore {
	return &ResetTokenStore{
		rdb:       rdb,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

func (s *ResetTokenStore) key(token string) string {
	return s.keyPrefix + ":reset_token:" + token
}

// Save 保存重置令牌，到期自动失效
func (s *ResetTokenStore) Save(ctx context.Context, token string, email string) error {
	return s.rdb.Set(ctx, s.key(token), email, s.ttl).Err()
}

// Consume returns the email bound to the token and invalidates it in the same
// step, so a token can only be used once. Unknown or expired tokens return an
// empty email and no error.
func (s *ResetTokenStore) Consume(ctx context.Context, token string) (string, error) {
	email, err := s.rdb.GetDel(ctx, s.key(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return email, nil
}
