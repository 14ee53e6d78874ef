// Package remote is the JSON client for the upstream wellness API. Failures
// come back as tagged errors so callers can tell "no response" from "server
// said no" without sniffing error shapes.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// StatusError is a response with a non-2xx status code.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned %d", e.Status)
}

// NetworkError wraps transport-level failures where no response arrived,
// including the client-side timeout.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return "upstream unreachable: " + e.Err.Error() }
func (e *NetworkError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == http.StatusNotFound
}

// Unavailable reports whether err should switch a store into fallback mode:
// either no response was received or the server failed outright. A 404 is a
// statement about one entity, not about availability.
func Unavailable(err error) bool {
	if err == nil {
		return false
	}
	var ne *NetworkError
	if errors.As(err, &ne) {
		return true
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status != http.StatusNotFound
	}
	return false
}

// Client issues authenticated JSON requests against a base URL.
type Client struct {
	baseURL    string
	token      string
	healthPath string
	httpClient *http.Client
}

func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		healthPath: "/healthz",
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Ping probes upstream availability. Any error means the caller should
// start in fallback mode.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, c.healthPath, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{Status: resp.StatusCode, Body: string(detail)}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Collection is a typed view of one upstream REST collection.
type Collection[T any] struct {
	client *Client
	path   string
}

func NewCollection[T any](client *Client, path string) *Collection[T] {
	return &Collection[T]{client: client, path: "/" + strings.Trim(path, "/")}
}

func (c *Collection[T]) Create(ctx context.Context, entity T) (T, error) {
	var created T
	err := c.client.do(ctx, http.MethodPost, c.path, entity, &created)
	return created, err
}

func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	var entities []T
	if err := c.client.do(ctx, http.MethodGet, c.path, nil, &entities); err != nil {
		return nil, err
	}
	return entities, nil
}

func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	var entity T
	err := c.client.do(ctx, http.MethodGet, c.path+"/"+id, nil, &entity)
	return entity, err
}

func (c *Collection[T]) Update(ctx context.Context, id string, entity T) (T, error) {
	var updated T
	err := c.client.do(ctx, http.MethodPut, c.path+"/"+id, entity, &updated)
	return updated, err
}

func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	return c.client.do(ctx, http.MethodDelete, c.path+"/"+id, nil, nil)
}
