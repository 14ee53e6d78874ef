// Package redis backs the local fallback collections with a Redis instance
// running next to the service, so fallback data survives restarts.
package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// KV implements store.KV on a Redis string keyspace. Values are whole
// serialized collections, one key per entity type.
type KV struct {
	client *redis.Client
	prefix string
}

// NewKV wraps client. prefix namespaces the collection keys (e.g.
// "kanzanso:") and may be empty.
func NewKV(client *redis.Client, prefix string) *KV {
	return &KV{client: client, prefix: prefix}
}

func (s *KV) Load(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *KV) Store(ctx context.Context, key, value string) error {
	// No TTL: fallback collections are the durable copy, not a cache.
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}
