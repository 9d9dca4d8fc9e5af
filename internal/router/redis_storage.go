package router

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix     = "ratelimit:"
	scanBatchSize = 100
)

// RedisStorage is a fiber.Storage backed by Redis so limiter counters are
// shared across instances.
type RedisStorage struct {
	client redis.UniversalClient
}

// NewRedisStorage returns nil for a nil client.
func NewRedisStorage(client redis.UniversalClient) *RedisStorage {
	if client == nil {
		return nil
	}
	return &RedisStorage{client: client}
}

// Get returns nil, nil for a missing key.
func (s *RedisStorage) Get(key string) ([]byte, error) {
	val, err := s.client.Get(context.Background(), keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return val, nil
}

// Set ignores empty keys and values. A zero exp means no expiration.
func (s *RedisStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	if err := s.client.Set(context.Background(), keyPrefix+key, val, exp).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *RedisStorage) Delete(key string) error {
	if err := s.client.Del(context.Background(), keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis delete: %w", err)
	}
	return nil
}

// Reset drops every limiter key, leaving the rest of the keyspace alone.
func (s *RedisStorage) Reset() error {
	ctx := context.Background()

	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, keyPrefix+"*", scanBatchSize).Result()
		if err != nil {
			return fmt.Errorf("redis scan: %w", err)
		}
		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis batch delete: %w", err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

// Close is a no-op; the client belongs to main.
func (*RedisStorage) Close() error {
	return nil
}
