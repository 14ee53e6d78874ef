package http

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestWebSocketAttemptFlow(t *testing.T) {
	server := httptest.NewServer(newTestHandler())
	defer server.Close()

	u := "ws" + server.URL[len("http"):] + "/ws?userId=u1"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	start := map[string]any{
		"type":    "start",
		"payload": map[string]any{"quizType": "daily_mood"},
	}
	if err := conn.WriteJSON(start); err != nil {
		t.Fatalf("write start: %v", err)
	}

	msgType, payload := readNext(conn, t, "question")
	if msgType != "question" {
		t.Fatalf("expected first question, got %s", msgType)
	}
	if total, ok := payload["total"].(float64); !ok || total != 5 {
		t.Fatalf("expected total 5, got %v", payload["total"])
	}

	// Answer every question; the final answer completes the attempt.
	completedSeen := false
	broadcastSeen := false
	for i := 0; i < 5; i++ {
		answer := map[string]any{
			"type":    "answer",
			"payload": map[string]any{"optionIndex": 0},
		}
		if err := conn.WriteJSON(answer); err != nil {
			t.Fatalf("write answer %d: %v", i, err)
		}
		if i == 4 {
			break
		}
		readNext(conn, t, "question")
	}

	for i := 0; i < 3 && !(completedSeen && broadcastSeen); i++ {
		typ, payload := readNext(conn, t, "")
		switch typ {
		case "completed":
			completedSeen = true
			if score, ok := payload["totalScore"].(float64); !ok || score != 5 {
				t.Fatalf("expected totalScore 5, got %v", payload["totalScore"])
			}
		case "result":
			broadcastSeen = true
		}
	}
	if !completedSeen || !broadcastSeen {
		t.Fatalf("expected completed and broadcast result, got completed=%v result=%v", completedSeen, broadcastSeen)
	}
}

func TestWebSocketRequiresUser(t *testing.T) {
	server := httptest.NewServer(newTestHandler())
	defer server.Close()

	u := "ws" + server.URL[len("http"):] + "/ws"
	_, resp, err := websocket.DefaultDialer.Dial(u, nil)
	if err == nil {
		t.Fatalf("expected dial to fail without userId")
	}
	if resp == nil || resp.StatusCode != 400 {
		t.Fatalf("expected 400 handshake rejection, got %+v", resp)
	}
}

func TestWebSocketAnswerWithoutStart(t *testing.T) {
	server := httptest.NewServer(newTestHandler())
	defer server.Close()

	u := "ws" + server.URL[len("http"):] + "/ws?userId=u1"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	answer := map[string]any{
		"type":    "answer",
		"payload": map[string]any{"optionIndex": 0},
	}
	if err := conn.WriteJSON(answer); err != nil {
		t.Fatalf("write answer: %v", err)
	}
	msgType, _ := readNext(conn, t, "error")
	if msgType != "error" {
		t.Fatalf("expected error, got %s", msgType)
	}
}

func readNext(conn *websocket.Conn, t *testing.T, expect string) (string, map[string]any) {
	t.Helper()
	var msg struct {
		Type    string         `json:"type"`
		Payload map[string]any `json:"payload"`
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read json: %v", err)
	}
	if expect != "" && msg.Type != expect {
		t.Fatalf("expected type %s, got %s", expect, msg.Type)
	}
	return msg.Type, msg.Payload
}
