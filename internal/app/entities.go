package app

import (
	"context"
	"fmt"
	"strings"

	"kanzanso-wellness-service/internal/domain"
	"kanzanso-wellness-service/internal/store"
)

// Local blob keys. These are a compatibility contract with data written by
// earlier releases and must never change.
const (
	TodosKey       = "todos"
	GratitudeKey   = "brightDaysGratitudeData"
	FavoritesKey   = "brightDaysFavoriteQuotes"
	QuizResultsKey = "fallback_quiz_results"
)

// TodoStore and friends alias the concrete resilient store instantiations.
type (
	TodoStore      = store.Resilient[domain.Todo, *domain.Todo]
	GratitudeStore = store.Resilient[domain.GratitudeEntry, *domain.GratitudeEntry]
	FavoriteStore  = store.Resilient[domain.FavoriteQuote, *domain.FavoriteQuote]
	ResultsStore   = store.Resilient[domain.QuizResult, *domain.QuizResult]
)

func byUser[T any](userID string, owner func(T) string) func(T) bool {
	if userID == "" {
		return nil
	}
	return func(entity T) bool { return owner(entity) == userID }
}

// TodoPatch carries a partial todo update; nil fields stay untouched.
type TodoPatch struct {
	Text      *string
	Completed *bool
	Priority  *string
	Tags      *[]string
}

// TodoService is the to-do list use cases over the resilient store.
type TodoService struct {
	todos *TodoStore
}

func NewTodoService(todos *TodoStore) *TodoService {
	return &TodoService{todos: todos}
}

func (s *TodoService) Create(ctx context.Context, userID, text, priority string, tags []string) (domain.Todo, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Todo{}, fmt.Errorf("%w: todo text required", domain.ErrValidation)
	}
	return s.todos.Create(ctx, domain.Todo{
		UserID:   userID,
		Text:     text,
		Priority: priority,
		Tags:     tags,
	})
}

func (s *TodoService) ForUser(ctx context.Context, userID string) ([]domain.Todo, error) {
	return s.todos.List(ctx, byUser(userID, func(t domain.Todo) string { return t.UserID }))
}

func (s *TodoService) Get(ctx context.Context, id string) (domain.Todo, error) {
	return s.todos.Get(ctx, id)
}

func (s *TodoService) Update(ctx context.Context, id string, patch TodoPatch) (domain.Todo, error) {
	if patch.Text != nil && strings.TrimSpace(*patch.Text) == "" {
		return domain.Todo{}, fmt.Errorf("%w: todo text required", domain.ErrValidation)
	}
	return s.todos.Update(ctx, id, func(todo *domain.Todo) {
		if patch.Text != nil {
			todo.Text = *patch.Text
		}
		if patch.Completed != nil {
			todo.Completed = *patch.Completed
		}
		if patch.Priority != nil {
			todo.Priority = *patch.Priority
		}
		if patch.Tags != nil {
			todo.Tags = *patch.Tags
		}
	})
}

// ToggleCompleted flips the completion flag.
func (s *TodoService) ToggleCompleted(ctx context.Context, id string) (domain.Todo, error) {
	return s.todos.Toggle(ctx, id, func(todo *domain.Todo) {
		todo.Completed = !todo.Completed
	})
}

func (s *TodoService) Delete(ctx context.Context, id string) (bool, error) {
	return s.todos.Delete(ctx, id)
}

// GratitudeService is the gratitude journal use cases.
type GratitudeService struct {
	entries *GratitudeStore
}

func NewGratitudeService(entries *GratitudeStore) *GratitudeService {
	return &GratitudeService{entries: entries}
}

func (s *GratitudeService) Create(ctx context.Context, userID, text, mood string) (domain.GratitudeEntry, error) {
	if strings.TrimSpace(text) == "" {
		return domain.GratitudeEntry{}, fmt.Errorf("%w: gratitude text required", domain.ErrValidation)
	}
	return s.entries.Create(ctx, domain.GratitudeEntry{UserID: userID, Text: text, Mood: mood})
}

func (s *GratitudeService) ForUser(ctx context.Context, userID string) ([]domain.GratitudeEntry, error) {
	return s.entries.List(ctx, byUser(userID, func(e domain.GratitudeEntry) string { return e.UserID }))
}

func (s *GratitudeService) Update(ctx context.Context, id, text, mood string) (domain.GratitudeEntry, error) {
	if strings.TrimSpace(text) == "" {
		return domain.GratitudeEntry{}, fmt.Errorf("%w: gratitude text required", domain.ErrValidation)
	}
	return s.entries.Update(ctx, id, func(entry *domain.GratitudeEntry) {
		entry.Text = text
		entry.Mood = mood
	})
}

func (s *GratitudeService) Delete(ctx context.Context, id string) (bool, error) {
	return s.entries.Delete(ctx, id)
}

// FavoriteService is the saved-quotes use cases.
type FavoriteService struct {
	favorites *FavoriteStore
}

func NewFavoriteService(favorites *FavoriteStore) *FavoriteService {
	return &FavoriteService{favorites: favorites}
}

func (s *FavoriteService) Add(ctx context.Context, userID, text, author string) (domain.FavoriteQuote, error) {
	if strings.TrimSpace(text) == "" {
		return domain.FavoriteQuote{}, fmt.Errorf("%w: quote text required", domain.ErrValidation)
	}
	// The same quote is not favorited twice; re-adding returns the original.
	existing, err := s.favorites.List(ctx, func(q domain.FavoriteQuote) bool {
		return q.UserID == userID && q.Text == text && q.Author == author
	})
	if err == nil && len(existing) > 0 {
		return existing[0], nil
	}
	return s.favorites.Create(ctx, domain.FavoriteQuote{UserID: userID, Text: text, Author: author})
}

func (s *FavoriteService) ForUser(ctx context.Context, userID string) ([]domain.FavoriteQuote, error) {
	return s.favorites.List(ctx, byUser(userID, func(q domain.FavoriteQuote) string { return q.UserID }))
}

func (s *FavoriteService) Delete(ctx context.Context, id string) (bool, error) {
	return s.favorites.Delete(ctx, id)
}
