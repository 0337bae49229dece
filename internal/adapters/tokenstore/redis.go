package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	domainauth "github.com/AbdelhakNemri/sports-arena-client/internal/domain/auth"
	"github.com/AbdelhakNemri/sports-arena-client/internal/ports"
)

// RedisStore keeps the token in Redis under a single well-known key, shared
// between client instances. TTL follows the token's own expiry so stale
// credentials age out on their own.
type RedisStore struct {
	client redis.UniversalClient
	key    string
}

// NewRedisStore creates a Redis-backed token store.
func NewRedisStore(client redis.UniversalClient, key string) *RedisStore {
	if key == "" {
		key = "sports_arena_token"
	}
	return &RedisStore{client: client, key: key}
}

func (s *RedisStore) Save(ctx context.Context, token string) error {
	if token == "" {
		return errors.New("token cannot be empty")
	}

	var ttl time.Duration
	if expiry, ok := domainauth.TokenExpiry(token); ok {
		ttl = time.Until(expiry)
		if ttl <= 0 {
			// Token is already expired, don't save it
			return errors.New("token is expired")
		}
	}

	return s.client.Set(ctx, s.key, token, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ports.ErrNoToken
		}
		return "", fmt.Errorf("redis get: %w", err)
	}
	return token, nil
}

func (s *RedisStore) Remove(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}

func (s *RedisStore) Has(ctx context.Context) bool {
	n, err := s.client.Exists(ctx, s.key).Result()
	return err == nil && n > 0
}
