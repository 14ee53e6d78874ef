package questionbank

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"kanzanso-wellness-service/internal/domain"
)

// CachedRepository caches question sets with TTL to avoid repeated loads.
// When the loader fails it degrades to the embedded catalog, so a quiz can
// always start.
type CachedRepository struct {
	loader Loader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu    sync.RWMutex
	cache map[domain.QuizType]cachedSet
}

type cachedSet struct {
	questions []domain.Question
	expiresAt time.Time
}

func NewCachedRepository(loader Loader, ttl time.Duration) *CachedRepository {
	return &CachedRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:  make(map[domain.QuizType]cachedSet),
	}
}

func (r *CachedRepository) QuestionsByType(ctx context.Context, quizType domain.QuizType) ([]domain.Question, error) {
	now := r.clock()

	r.mu.RLock()
	if entry, ok := r.cache[quizType]; ok && entry.expiresAt.After(now) {
		r.mu.RUnlock()
		return entry.questions, nil
	}
	r.mu.RUnlock()

	result, err, _ := r.sf.Do(string(quizType), func() (interface{}, error) {
		now := r.clock()
		r.mu.RLock()
		if entry, ok := r.cache[quizType]; ok && entry.expiresAt.After(now) {
			r.mu.RUnlock()
			return entry.questions, nil
		}
		r.mu.RUnlock()

		questions, err := r.loader.LoadQuestions(ctx, quizType)
		if err != nil {
			// Serve the embedded catalog rather than failing the quiz.
			if fallback, ok := Catalog()[quizType]; ok {
				log.Printf("question loader failed for %s, using embedded catalog: %v", quizType, err)
				return fallback, nil
			}
			return nil, err
		}

		r.mu.Lock()
		r.cache[quizType] = cachedSet{
			questions: questions,
			expiresAt: now.Add(r.ttlWithJitter()),
		}
		r.mu.Unlock()
		return questions, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Question), nil
}

func (r *CachedRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
