// Package api is the thin REST client for the Vowsync backend.
//
// Every operation is a stateless fetch wrapper: build the request, attach
// the bearer token, decode the JSON envelope. All state lives in the domain
// stores that call these wrappers.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Wire formats used by the backend for dates and times.
const (
	DateTimeLayout = "2006-01-02 15:04:05"
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04:05"
)

// TokenSource supplies the current bearer token for authorized calls.
// It is typically session.(*Session).Token.
type TokenSource func(ctx context.Context) (string, error)

// Client calls the Vowsync REST API.
type Client struct {
	Base  string
	HTTP  *http.Client
	token TokenSource
}

// New creates a client for the API at base. tokens may be nil for a client
// that only performs unauthenticated calls (login, register).
func New(base string, tokens TokenSource) *Client {
	return &Client{
		Base:  base,
		HTTP:  http.DefaultClient,
		token: tokens,
	}
}

// errorBody is the shape servers use to report failures. Some endpoints
// populate "error", others "message"; either is accepted.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// do performs one JSON round trip. When authorized is true the bearer token
// is attached. A non-2xx status or transport failure becomes a *RequestError;
// out, when non-nil, receives the decoded success body.
func (c *Client) do(ctx context.Context, method, path string, authorized bool, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorized {
		if c.token == nil {
			return &RequestError{Message: "no token source configured"}
		}
		token, err := c.token(ctx)
		if err != nil {
			return &RequestError{Message: "no auth token available", cause: err}
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &RequestError{Message: err.Error(), cause: err}
	}
	defer resp.Body.Close()

	slog.Debug("API call",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, resp.Body)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &RequestError{StatusCode: resp.StatusCode, Message: "malformed response body", cause: err}
		}
	}
	return nil
}

// decodeError builds a RequestError from a failure response, preferring the
// server's own reason when the body carries one.
func decodeError(status int, body io.Reader) *RequestError {
	msg := fmt.Sprintf("server returned %s", http.StatusText(status))
	var eb errorBody
	if err := json.NewDecoder(body).Decode(&eb); err == nil {
		if eb.Error != "" {
			msg = eb.Error
		} else if eb.Message != "" {
			msg = eb.Message
		}
	}
	return &RequestError{StatusCode: status, Message: msg}
}
