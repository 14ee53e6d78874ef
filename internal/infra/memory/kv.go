// Package memory holds in-process implementations used by tests and
// redis-less demo runs.
package memory

import (
	"context"
	"sync"
)

// KV is an in-memory store.KV.
type KV struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewKV() *KV {
	return &KV{values: make(map[string]string)}
}

func (s *KV) Load(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok, nil
}

func (s *KV) Store(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
