package app

import (
	"fmt"
	"sync"

	"kanzanso-wellness-service/internal/domain"
)

// Phase tracks where a quiz attempt is in its lifecycle.
type Phase int

const (
	// PhaseAnswering means the attempt is walking through questions.
	PhaseAnswering Phase = iota
	// PhaseSubmitting means every question is answered and the attempt is
	// being scored and persisted.
	PhaseSubmitting
	// PhaseCompleted means a result exists for this attempt.
	PhaseCompleted
)

// Attempt walks a user through one quiz, one question at a time. Each answer
// is recorded before advancing; answering past the last question is an
// error. The question set is fixed for the attempt's lifetime.
type Attempt struct {
	userID    string
	quizType  domain.QuizType
	questions []domain.Question

	mu      sync.Mutex
	phase   Phase
	index   int
	answers map[string]int
}

// NewAttempt starts an attempt for a selected quiz type.
func NewAttempt(userID string, quizType domain.QuizType, questions []domain.Question) *Attempt {
	return &Attempt{
		userID:    userID,
		quizType:  quizType,
		questions: questions,
		answers:   make(map[string]int, len(questions)),
	}
}

// Current returns the question awaiting an answer, or false when the
// attempt has moved past answering.
func (a *Attempt) Current() (domain.Question, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.phase != PhaseAnswering || a.index >= len(a.questions) {
		return domain.Question{}, false
	}
	return a.questions[a.index], true
}

// Answer records the selected option for the current question and advances.
// The index is validated against the question's options before anything is
// stored.
func (a *Attempt) Answer(optionIndex int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.phase != PhaseAnswering || a.index >= len(a.questions) {
		return domain.ErrAttemptFinished
	}
	question := a.questions[a.index]
	if optionIndex < 0 || optionIndex >= len(question.Options) {
		return fmt.Errorf("%w: option %d out of range for question %s", domain.ErrValidation, optionIndex, question.ID)
	}
	a.answers[question.ID] = optionIndex
	a.index++
	if a.index == len(a.questions) {
		a.phase = PhaseSubmitting
	}
	return nil
}

// Phase reports the attempt's lifecycle phase.
func (a *Attempt) Phase() Phase {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.phase
}

// Submission snapshots the recorded answers for scoring.
func (a *Attempt) Submission() domain.Submission {
	a.mu.Lock()
	defer a.mu.Unlock()

	answers := make(map[string]int, len(a.answers))
	for id, idx := range a.answers {
		answers[id] = idx
	}
	return domain.Submission{
		UserID:   a.userID,
		QuizType: a.quizType,
		Answers:  answers,
	}
}

func (a *Attempt) complete() {
	a.mu.Lock()
	a.phase = PhaseCompleted
	a.mu.Unlock()
}
