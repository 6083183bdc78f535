package metadata

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// DefaultRedisPrefix namespaces slot keys inside a shared Redis database.
const DefaultRedisPrefix = "homefinder:"

// RedisRepository stores each slot as a plain Redis string under prefix+key.
type RedisRepository struct {
	client redis.UniversalClient
	prefix string
}

var _ Repository = (*RedisRepository)(nil)

func NewRedisRepository(client redis.UniversalClient, prefix string) *RedisRepository {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisRepository{client: client, prefix: prefix}
}

// NewRedisRepositoryFromURL parses a redis:// URL, connects and pings the
// server before returning.
func NewRedisRepositoryFromURL(ctx context.Context, url string) (*RedisRepository, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewRedisRepository(client, DefaultRedisPrefix), nil
}

func (r *RedisRepository) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return v, nil
}

func (r *RedisRepository) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}
	return nil
}

// Close releases the underlying client.
func (r *RedisRepository) Close() error {
	return r.client.Close()
}
