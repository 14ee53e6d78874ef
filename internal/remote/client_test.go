package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type todoPayload struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

func TestCollectionCreateSendsBearerToken(t *testing.T) {
	var gotAuth, gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotMethod = r.Method
		gotPath = r.URL.Path
		var in todoPayload
		_ = json.NewDecoder(r.Body).Decode(&in)
		in.ID = "srv-9"
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(in)
	}))
	defer server.Close()

	client := NewClient(server.URL, "token-123", time.Second)
	todos := NewCollection[todoPayload](client, "todos")

	created, err := todos.Create(context.Background(), todoPayload{Text: "hydrate"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "srv-9" || created.Text != "hydrate" {
		t.Fatalf("unexpected response %+v", created)
	}
	if gotAuth != "Bearer token-123" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
	if gotMethod != http.MethodPost || gotPath != "/todos" {
		t.Fatalf("unexpected request %s %s", gotMethod, gotPath)
	}
}

func TestErrorsAreTagged(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/todos/missing":
			http.Error(w, "no such todo", http.StatusNotFound)
		default:
			http.Error(w, "boom", http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, "", time.Second)
	todos := NewCollection[todoPayload](client, "todos")
	ctx := context.Background()

	_, err := todos.Get(ctx, "missing")
	if !IsNotFound(err) {
		t.Fatalf("expected tagged 404, got %v", err)
	}
	if Unavailable(err) {
		t.Fatalf("a 404 must not count as unavailability")
	}

	_, err = todos.Get(ctx, "anything")
	var se *StatusError
	if !errors.As(err, &se) || se.Status != http.StatusInternalServerError {
		t.Fatalf("expected tagged 500, got %v", err)
	}
	if !Unavailable(err) {
		t.Fatalf("a 500 must count as unavailability")
	}
}

func TestNetworkFailureIsTagged(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listening anymore

	client := NewClient(server.URL, "", 500*time.Millisecond)
	todos := NewCollection[todoPayload](client, "todos")

	_, err := todos.List(context.Background())
	var ne *NetworkError
	if !errors.As(err, &ne) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
	if !Unavailable(err) {
		t.Fatalf("network failure must count as unavailability")
	}
}

func TestPingProbesHealthEndpoint(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", time.Second)
	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if gotPath != "/healthz" {
		t.Fatalf("expected health probe path, got %q", gotPath)
	}
}
