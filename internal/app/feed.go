package app

import (
	"sync"

	"kanzanso-wellness-service/internal/domain"
)

// ResultFeed fans newly created quiz results out to subscribers (the
// websocket transport, mainly).
type ResultFeed struct {
	mu          sync.Mutex
	subscribers map[chan domain.QuizResult]struct{}
}

func NewResultFeed() *ResultFeed {
	return &ResultFeed{subscribers: make(map[chan domain.QuizResult]struct{})}
}

// Subscribe returns a channel of results. The caller must invoke the
// returned cancel function to avoid leaks.
func (f *ResultFeed) Subscribe() (<-chan domain.QuizResult, func()) {
	ch := make(chan domain.QuizResult, 8)

	f.mu.Lock()
	f.subscribers[ch] = struct{}{}
	f.mu.Unlock()

	cancel := func() {
		f.mu.Lock()
		if _, ok := f.subscribers[ch]; ok {
			delete(f.subscribers, ch)
			close(ch)
		}
		f.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers a result to every subscriber. Slow subscribers lose
// their oldest pending result instead of blocking publication.
func (f *ResultFeed) Publish(result domain.QuizResult) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for ch := range f.subscribers {
		select {
		case ch <- result:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- result
		}
	}
}
