package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"kanzanso-wellness-service/internal/app"
	"kanzanso-wellness-service/internal/domain"
)

// WSHandler runs quiz attempts interactively over a websocket and streams
// every newly created result to the connection.
type WSHandler struct {
	quiz     *app.QuizService
	upgrader websocket.Upgrader
}

func NewWSHandler(quiz *app.QuizService) *WSHandler {
	return &WSHandler{
		quiz: quiz,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type startPayload struct {
	QuizType domain.QuizType `json:"quizType"`
}

type answerPayload struct {
	OptionIndex int `json:"optionIndex"`
}

type questionPayload struct {
	Question domain.Question `json:"question"`
	Number   int             `json:"number"`
	Total    int             `json:"total"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades the request and serves a quiz session. One writer
// goroutine owns the connection; the read loop and the feed forwarder hand
// it messages over the send channel so writes never race.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "missing userId", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	results, cancel := h.quiz.Subscribe()
	defer cancel()

	send := make(chan outboundMessage[any], 16)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	resultsDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		}
	}()

	go func() {
		defer close(resultsDone)
		for {
			select {
			case result, ok := <-results:
				if !ok {
					return
				}
				select {
				case send <- outboundMessage[any]{Type: "result", Payload: result}:
				case <-closeSignals:
					return
				}
			case <-closeSignals:
				return
			}
		}
	}()

	var attempt *app.Attempt
	var total int

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		switch inbound.Type {
		case "start":
			var payload startPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "invalid start payload"}}
				continue
			}
			started, err := h.quiz.StartAttempt(r.Context(), userID, payload.QuizType)
			if err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
				continue
			}
			attempt = started
			questions, _ := h.quiz.QuestionsByType(r.Context(), payload.QuizType)
			total = len(questions)
			h.sendCurrent(send, attempt, total)
		case "answer":
			if attempt == nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "no attempt in progress"}}
				continue
			}
			var payload answerPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "invalid answer payload"}}
				continue
			}
			if err := attempt.Answer(payload.OptionIndex); err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
				continue
			}
			if attempt.Phase() == app.PhaseSubmitting {
				result, err := h.quiz.CompleteAttempt(r.Context(), attempt)
				if err != nil {
					send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
					continue
				}
				send <- outboundMessage[any]{Type: "completed", Payload: result}
				attempt = nil
				continue
			}
			h.sendCurrent(send, attempt, total)
		default:
			send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "unsupported message type"}}
		}
	}

	close(closeSignals)
	<-resultsDone
	close(send)
	<-writerDone
}

func (h *WSHandler) sendCurrent(send chan<- outboundMessage[any], attempt *app.Attempt, total int) {
	question, ok := attempt.Current()
	if !ok {
		return
	}
	number := total - remaining(attempt, total) + 1
	send <- outboundMessage[any]{Type: "question", Payload: questionPayload{
		Question: question,
		Number:   number,
		Total:    total,
	}}
}

func remaining(attempt *app.Attempt, total int) int {
	// Current() only reports the next unanswered question; the count of
	// answers given so far is total minus what is left, derived from the
	// submission snapshot.
	return total - len(attempt.Submission().Answers)
}
