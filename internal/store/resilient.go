// Package store implements the backend-optional CRUD contract shared by
// todos, gratitude entries, favorite quotes and quiz results. Every store
// instance prefers the upstream API and, once it proves unavailable, sticks
// to the local durable collection for the rest of the session. The two sides
// are never simultaneously authoritative.
package store

import (
	"context"
	"log"
	"strconv"
	"sync"
	"time"

	"kanzanso-wellness-service/internal/domain"
	"kanzanso-wellness-service/internal/remote"
)

// Mode is the per-store operating state.
type Mode int

const (
	// ModeRemote routes operations to the upstream API.
	ModeRemote Mode = iota
	// ModeFallback routes operations to the local durable collection.
	ModeFallback
)

func (m Mode) String() string {
	if m == ModeFallback {
		return "fallback"
	}
	return "remote"
}

// Remote is the upstream side of a store. *remote.Collection[T] satisfies
// it; tests substitute doubles.
type Remote[T any] interface {
	Create(ctx context.Context, entity T) (T, error)
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Update(ctx context.Context, id string, entity T) (T, error)
	Delete(ctx context.Context, id string) error
}

// Resilient gives callers one CRUD contract regardless of which backend
// serves it. T is the entity type; PT is its pointer form carrying the
// audit block.
type Resilient[T any, PT interface {
	*T
	domain.Record
}] struct {
	name   string
	remote Remote[T]
	local  localCollection[T]
	clock  func() time.Time

	mu   sync.Mutex
	mode Mode
}

// New builds a store in remote mode. key is the fixed local blob key for
// this entity type and must not change between versions.
func New[T any, PT interface {
	*T
	domain.Record
}](name, key string, rc Remote[T], kv KV) *Resilient[T, PT] {
	return &Resilient[T, PT]{
		name:   name,
		remote: rc,
		local:  localCollection[T]{key: key, kv: kv},
		clock:  time.Now,
	}
}

// Mode reports the store's current operating state.
func (s *Resilient[T, PT]) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// MarkFallback forces fallback mode, used when a startup probe already
// knows the upstream is down.
func (s *Resilient[T, PT]) MarkFallback() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeFallback {
		log.Printf("%s store: starting in fallback mode", s.name)
		s.mode = ModeFallback
	}
}

// Reset returns the store to remote mode. Fallback is sticky: nothing else
// flips a store back, the caller owns that decision.
func (s *Resilient[T, PT]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = ModeRemote
}

func (s *Resilient[T, PT]) inFallback() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode == ModeFallback
}

func (s *Resilient[T, PT]) enterFallback(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeFallback {
		log.Printf("%s store: upstream unavailable, entering fallback mode: %v", s.name, err)
		s.mode = ModeFallback
	}
}

// localID mints a fallback entity ID. Millisecond timestamps match what the
// app has always written, so previously stored entities sort consistently.
func localID(now time.Time) string {
	return "local-" + strconv.FormatInt(now.UnixMilli(), 10)
}

// Create stores a new entity. When the upstream rejects or never answers,
// the store flips to fallback and synthesizes the entity locally with a
// generated ID and fresh timestamps.
func (s *Resilient[T, PT]) Create(ctx context.Context, entity T) (T, error) {
	if !s.inFallback() {
		created, err := s.remote.Create(ctx, entity)
		if err == nil {
			return created, nil
		}
		if !remote.Unavailable(err) {
			var zero T
			return zero, err
		}
		s.enterFallback(err)
	}
	return s.createLocal(ctx, entity)
}

func (s *Resilient[T, PT]) createLocal(ctx context.Context, entity T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	now := s.clock()
	audit := PT(&entity).Meta()
	audit.ID = localID(now)
	audit.CreatedAt = now
	audit.UpdatedAt = now

	entities, err := s.local.load(ctx)
	if err != nil {
		return zero, err
	}
	entities = append(entities, entity)
	if err := s.local.save(ctx, entities); err != nil {
		return zero, err
	}
	return entity, nil
}

// List returns every entity in the active backend. In remote mode the
// upstream response is returned as-is (it scopes by the auth token); in
// fallback mode the same filter semantics are applied client-side so
// callers cannot tell the difference.
func (s *Resilient[T, PT]) List(ctx context.Context, keep func(T) bool) ([]T, error) {
	if !s.inFallback() {
		entities, err := s.remote.List(ctx)
		if err == nil {
			return entities, nil
		}
		if !remote.Unavailable(err) {
			return nil, err
		}
		s.enterFallback(err)
	}
	return s.listLocal(ctx, keep)
}

func (s *Resilient[T, PT]) listLocal(ctx context.Context, keep func(T) bool) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entities, err := s.local.load(ctx)
	if err != nil {
		return nil, err
	}
	if keep == nil {
		return entities, nil
	}
	kept := make([]T, 0, len(entities))
	for _, entity := range entities {
		if keep(entity) {
			kept = append(kept, entity)
		}
	}
	return kept, nil
}

// Get fetches one entity by ID. A remote 404 triggers a one-time local
// lookup without flipping the mode: the entity may have been created during
// an earlier fallback episode. Unavailability flips the mode as usual.
func (s *Resilient[T, PT]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	if !s.inFallback() {
		entity, err := s.remote.Get(ctx, id)
		if err == nil {
			return entity, nil
		}
		if remote.IsNotFound(err) {
			if entity, ok, lerr := s.getLocal(ctx, id); lerr == nil && ok {
				return entity, nil
			}
			return zero, domain.ErrNotFound
		}
		if !remote.Unavailable(err) {
			return zero, err
		}
		s.enterFallback(err)
	}
	entity, ok, err := s.getLocal(ctx, id)
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, domain.ErrNotFound
	}
	return entity, nil
}

func (s *Resilient[T, PT]) getLocal(ctx context.Context, id string) (T, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	entities, err := s.local.load(ctx)
	if err != nil {
		return zero, false, err
	}
	for _, entity := range entities {
		if PT(&entity).Meta().ID == id {
			return entity, true, nil
		}
	}
	return zero, false, nil
}

// Update applies mutate to the entity and refreshes UpdatedAt. Partial
// fields overwrite; everything else is preserved. Returns ErrNotFound when
// the ID does not exist in the active backend.
func (s *Resilient[T, PT]) Update(ctx context.Context, id string, mutate func(PT)) (T, error) {
	var zero T
	if !s.inFallback() {
		current, err := s.remote.Get(ctx, id)
		if err == nil {
			mutate(PT(&current))
			PT(&current).Meta().UpdatedAt = s.clock()
			updated, uerr := s.remote.Update(ctx, id, current)
			if uerr == nil {
				return updated, nil
			}
			err = uerr
		}
		if remote.IsNotFound(err) {
			return zero, domain.ErrNotFound
		}
		if !remote.Unavailable(err) {
			return zero, err
		}
		s.enterFallback(err)
	}
	return s.updateLocal(ctx, id, mutate)
}

func (s *Resilient[T, PT]) updateLocal(ctx context.Context, id string, mutate func(PT)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	entities, err := s.local.load(ctx)
	if err != nil {
		return zero, err
	}
	for i := range entities {
		audit := PT(&entities[i]).Meta()
		if audit.ID != id {
			continue
		}
		mutate(PT(&entities[i]))
		now := s.clock()
		if !now.After(audit.UpdatedAt) {
			// UpdatedAt must move strictly forward even on coarse clocks.
			now = audit.UpdatedAt.Add(time.Millisecond)
		}
		audit.UpdatedAt = now
		if err := s.local.save(ctx, entities); err != nil {
			return zero, err
		}
		return entities[i], nil
	}
	return zero, domain.ErrNotFound
}

// Toggle flips a boolean field via Update. It is read-then-write, not
// atomic against concurrent callers; acceptable for a single-user session.
func (s *Resilient[T, PT]) Toggle(ctx context.Context, id string, flip func(PT)) (T, error) {
	return s.Update(ctx, id, flip)
}

// Delete removes an entity by ID. In fallback mode the delete is
// idempotent: a missing ID still reports true so transitions between modes
// never surface spurious errors.
func (s *Resilient[T, PT]) Delete(ctx context.Context, id string) (bool, error) {
	if !s.inFallback() {
		err := s.remote.Delete(ctx, id)
		if err == nil {
			return true, nil
		}
		if remote.IsNotFound(err) {
			return false, domain.ErrNotFound
		}
		if !remote.Unavailable(err) {
			return false, err
		}
		s.enterFallback(err)
	}
	return s.deleteLocal(ctx, id)
}

func (s *Resilient[T, PT]) deleteLocal(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entities, err := s.local.load(ctx)
	if err != nil {
		return false, err
	}
	for i := range entities {
		if PT(&entities[i]).Meta().ID != id {
			continue
		}
		entities = append(entities[:i], entities[i+1:]...)
		if err := s.local.save(ctx, entities); err != nil {
			return false, err
		}
		return true, nil
	}
	return true, nil
}
