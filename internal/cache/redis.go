package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a string key/value store with expiry.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Key(parts ...string) string
}

type redisCache struct {
	client    redis.Cmdable
	namespace string
}

// NewRedisCache returns a Cache backed by the redis server at addr.
func NewRedisCache(addr, namespace string) Cache {
	return NewRedisCacheFromClient(redis.NewClient(&redis.Options{Addr: addr}), namespace)
}

// NewRedisCacheFromClient wraps an existing client.
func NewRedisCacheFromClient(client redis.Cmdable, namespace string) Cache {
	return &redisCache{client: client, namespace: namespace}
}

func (r *redisCache) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, true, nil
}

func (r *redisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (r *redisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (r *redisCache) Key(parts ...string) string {
	key := r.namespace
	for _, p := range parts {
		key += ":" + p
	}
	return key
}
