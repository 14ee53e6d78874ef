package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// KV is the durable local fallback store: string keys to string values.
// Implementations live in internal/infra (Redis in production, memory in
// tests).
type KV interface {
	// Load returns the value for key; ok is false when the key is absent.
	Load(ctx context.Context, key string) (value string, ok bool, err error)
	Store(ctx context.Context, key, value string) error
}

// localCollection keeps one entity type as a single serialized JSON array
// under a fixed key. There is no per-entity granularity: every write
// replaces the whole blob, so readers see either the old state or the new
// state, never a mix. The keys must stay stable across versions so data
// written by older builds remains readable.
type localCollection[T any] struct {
	key string
	kv  KV
}

func (c *localCollection[T]) load(ctx context.Context) ([]T, error) {
	raw, ok, err := c.kv.Load(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.key, err)
	}
	if !ok || raw == "" {
		return nil, nil
	}
	var entities []T
	if err := json.Unmarshal([]byte(raw), &entities); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.key, err)
	}
	return entities, nil
}

func (c *localCollection[T]) save(ctx context.Context, entities []T) error {
	if entities == nil {
		entities = []T{}
	}
	raw, err := json.Marshal(entities)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := c.kv.Store(ctx, c.key, string(raw)); err != nil {
		return fmt.Errorf("store %s: %w", c.key, err)
	}
	return nil
}
