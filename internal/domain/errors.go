package domain

import "errors"

var (
	// ErrNotFound is returned when an entity is absent from the store that
	// is currently authoritative.
	ErrNotFound = errors.New("entity not found")
	// ErrValidation is returned for malformed input rejected before any I/O.
	ErrValidation = errors.New("validation failed")
	// ErrQuizTypeUnknown indicates a quiz type outside the fixed enumeration.
	ErrQuizTypeUnknown = errors.New("unknown quiz type")
	// ErrQuestionNotFound indicates a question ID that is not in the bank.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrAttemptFinished is returned when answering past the last question.
	ErrAttemptFinished = errors.New("quiz attempt already finished")
)
