package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a Store backed by a Redis instance, for sessions shared across
// devices. Each session gets its own key namespace; entries carry a TTL so
// abandoned sessions expire on their own.
type Redis struct {
	client  *redis.Client
	session string
	ttl     time.Duration
}

// NewRedis creates a Redis-backed store. session namespaces the keys so
// multiple sessions can share one database; ttl of zero disables expiry.
func NewRedis(client *redis.Client, session string, ttl time.Duration) *Redis {
	return &Redis{
		client:  client,
		session: session,
		ttl:     ttl,
	}
}

func (r *Redis) key(key string) string {
	return "session:" + r.session + ":" + key
}

// Get retrieves the value stored under key, or ErrKeyNotFound.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return data, nil
}

// Set stores value under key with the configured TTL.
func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.key(key), value, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete removes the key.
func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}
