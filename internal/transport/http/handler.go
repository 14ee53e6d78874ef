// Package http exposes the wellness use cases over REST and websockets.
package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"kanzanso-wellness-service/internal/app"
	"kanzanso-wellness-service/internal/domain"
	"kanzanso-wellness-service/internal/questionbank"
)

// Handler is the REST surface. Every route degrades with the underlying
// stores, so the API keeps answering while the upstream is down.
type Handler struct {
	quiz      *app.QuizService
	todos     *app.TodoService
	gratitude *app.GratitudeService
	favorites *app.FavoriteService
	ws        *WSHandler
	router    chi.Router
}

func NewHandler(quiz *app.QuizService, todos *app.TodoService, gratitude *app.GratitudeService, favorites *app.FavoriteService) *Handler {
	h := &Handler{
		quiz:      quiz,
		todos:     todos,
		gratitude: gratitude,
		favorites: favorites,
		ws:        NewWSHandler(quiz),
	}

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Get("/ws", h.ws.ServeWS)

	r.Route("/api", func(r chi.Router) {
		r.Get("/quiz-types", h.listQuizTypes)
		r.Get("/quiz-questions/type/{quizType}", h.questionsByType)
		r.Get("/quiz-questions/category/{category}", h.questionsByCategory)
		r.Post("/quiz-submissions", h.submitQuiz)
		r.Get("/quiz-results/{userID}", h.resultsForUser)

		r.Route("/todos", func(r chi.Router) {
			r.Get("/", h.listTodos)
			r.Post("/", h.createTodo)
			r.Get("/{id}", h.getTodo)
			r.Patch("/{id}", h.updateTodo)
			r.Post("/{id}/toggle", h.toggleTodo)
			r.Delete("/{id}", h.deleteTodo)
		})

		r.Route("/gratitude", func(r chi.Router) {
			r.Get("/", h.listGratitude)
			r.Post("/", h.createGratitude)
			r.Put("/{id}", h.updateGratitude)
			r.Delete("/{id}", h.deleteGratitude)
		})

		r.Route("/favorites", func(r chi.Router) {
			r.Get("/", h.listFavorites)
			r.Post("/", h.addFavorite)
			r.Delete("/{id}", h.deleteFavorite)
		})
	})
	h.router = r
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("write response: %v", err)
	}
}

type errorBody struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrQuizTypeUnknown):
		writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
	default:
		log.Printf("request failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}

func decode(r *http.Request, into any) error {
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		return errors.Join(domain.ErrValidation, err)
	}
	return nil
}

func (h *Handler) listQuizTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.quiz.QuizTypes())
}

func (h *Handler) questionsByType(w http.ResponseWriter, r *http.Request) {
	quizType := domain.QuizType(chi.URLParam(r, "quizType"))
	questions, err := h.quiz.QuestionsByType(r.Context(), quizType)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, questions)
}

func (h *Handler) questionsByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	questions := questionbank.QuestionsByCategory(questionbank.Catalog(), category)
	if len(questions) == 0 {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "no questions for category " + category})
		return
	}
	writeJSON(w, http.StatusOK, questions)
}

func (h *Handler) submitQuiz(w http.ResponseWriter, r *http.Request) {
	var submission domain.Submission
	if err := decode(r, &submission); err != nil {
		writeError(w, err)
		return
	}
	result, err := h.quiz.Submit(r.Context(), submission)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (h *Handler) resultsForUser(w http.ResponseWriter, r *http.Request) {
	results, err := h.quiz.ResultsForUser(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, err)
		return
	}
	if results == nil {
		results = []domain.QuizResult{}
	}
	writeJSON(w, http.StatusOK, results)
}

type todoRequest struct {
	UserID   string   `json:"userId"`
	Text     string   `json:"text"`
	Priority string   `json:"priority"`
	Tags     []string `json:"tags"`
}

func (h *Handler) listTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.todos.ForUser(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		writeError(w, err)
		return
	}
	if todos == nil {
		todos = []domain.Todo{}
	}
	writeJSON(w, http.StatusOK, todos)
}

func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	var req todoRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	todo, err := h.todos.Create(r.Context(), req.UserID, req.Text, req.Priority, req.Tags)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, todo)
}

func (h *Handler) getTodo(w http.ResponseWriter, r *http.Request) {
	todo, err := h.todos.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, todo)
}

func (h *Handler) updateTodo(w http.ResponseWriter, r *http.Request) {
	var patch app.TodoPatch
	if err := decode(r, &patch); err != nil {
		writeError(w, err)
		return
	}
	todo, err := h.todos.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, todo)
}

func (h *Handler) toggleTodo(w http.ResponseWriter, r *http.Request) {
	todo, err := h.todos.ToggleCompleted(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, todo)
}

func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.todos.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
}

type gratitudeRequest struct {
	UserID string `json:"userId"`
	Text   string `json:"text"`
	Mood   string `json:"mood"`
}

func (h *Handler) listGratitude(w http.ResponseWriter, r *http.Request) {
	entries, err := h.gratitude.ForUser(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		writeError(w, err)
		return
	}
	if entries == nil {
		entries = []domain.GratitudeEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) createGratitude(w http.ResponseWriter, r *http.Request) {
	var req gratitudeRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	entry, err := h.gratitude.Create(r.Context(), req.UserID, req.Text, req.Mood)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (h *Handler) updateGratitude(w http.ResponseWriter, r *http.Request) {
	var req gratitudeRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	entry, err := h.gratitude.Update(r.Context(), chi.URLParam(r, "id"), req.Text, req.Mood)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (h *Handler) deleteGratitude(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.gratitude.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
}

type favoriteRequest struct {
	UserID string `json:"userId"`
	Text   string `json:"text"`
	Author string `json:"author"`
}

func (h *Handler) listFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.favorites.ForUser(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		writeError(w, err)
		return
	}
	if favorites == nil {
		favorites = []domain.FavoriteQuote{}
	}
	writeJSON(w, http.StatusOK, favorites)
}

func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request) {
	var req favoriteRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	quote, err := h.favorites.Add(r.Context(), req.UserID, req.Text, req.Author)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, quote)
}

func (h *Handler) deleteFavorite(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.favorites.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
}
