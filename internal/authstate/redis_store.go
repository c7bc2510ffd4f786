package authstate

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a Redis-backed Store for multi-instance deployments.
// Redis key TTLs enforce expiry; GETDEL makes consumption one-shot
// even across instances.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "authstate:",
	}
}

func (r *RedisStore) key(state string) string {
	return r.prefix + state
}

func (r *RedisStore) Create(ctx context.Context, s Session) error {
	if s.State == "" {
		return fmt.Errorf("authstate: missing state")
	}

	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("authstate: expires_at must be in the future")
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("authstate: failed to marshal: %w", err)
	}

	return r.client.Set(ctx, r.key(s.State), data, ttl).Err()
}

func (r *RedisStore) Consume(ctx context.Context, state string) (*Session, error) {
	val, err := r.client.GetDel(ctx, r.key(state)).Result()
	if err == redis.Nil {
		return nil, nil // not found or already expired
	}
	if err != nil {
		return nil, err
	}

	var s Session
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return nil, fmt.Errorf("authstate: failed to unmarshal: %w", err)
	}

	return &s, nil
}
