// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api implements the HTTP client for the Ellie backend.
//
// The backend exposes four operations under {base}/api/: fetch history,
// send a chat message, reset history, and save the user profile. Every
// call is a single HTTP exchange; there are no retries and no automatic
// cancellation beyond the context and the client timeout.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/elliebot/ellie-tui/internal/model"
)

// Configuration constants for the backend client.
const (
	// DefaultTimeout bounds each request when no custom client is set.
	DefaultTimeout = 30 * time.Second

	// MaxResponseSize caps response bodies; a chat reply that needs more
	// than this is a backend bug, not a bigger buffer.
	MaxResponseSize = 4 * 1024 * 1024 // 4MB
)

// =============================================================================
// ERROR TYPE
// =============================================================================

// APIError is a non-success response from the backend. Error() prefers the
// backend's detail text when it sent one, else the HTTP status line.
type APIError struct {
	// Status is the HTTP status code.
	Status int
	// Detail is the backend's error description from the response body's
	// "detail" field, if present.
	Detail string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("%d %s", e.Status, http.StatusText(e.Status))
}

// detailResponse is the backend's error body shape (FastAPI-style).
type detailResponse struct {
	Detail string `json:"detail"`
}

// =============================================================================
// WIRE TYPES
// =============================================================================

// wireMessage is a message as the history endpoint serializes it.
type wireMessage struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// historyResponse is the response of GET /api/history/{userId}.
type historyResponse struct {
	Messages []wireMessage `json:"messages"`
}

// chatRequest is the body of POST /api/chat.
type chatRequest struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
}

// chatResponse is the response of POST /api/chat.
type chatResponse struct {
	Reply string `json:"reply"`
}

// resetRequest is the body of POST /api/reset.
type resetRequest struct {
	UserID string `json:"userId"`
}

// profileRequest is the body of POST /api/profile.
type profileRequest struct {
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	Preferences string `json:"preferences"`
}

// =============================================================================
// CLIENT
// =============================================================================

// Client talks to the Ellie backend. Construct with NewClient and the
// resolved base address; the zero value is not usable.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates a backend client for the given base address
// (e.g. "http://localhost:8000").
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		log:        zerolog.Nop(),
	}
}

// WithTimeout sets the per-request timeout.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	c.httpClient.Timeout = timeout
	return c
}

// WithHTTPClient replaces the underlying HTTP client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// WithLogger sets the request/response logger. Bodies are never logged;
// they carry conversation text.
func (c *Client) WithLogger(log zerolog.Logger) *Client {
	c.log = log
	return c
}

// BaseURL returns the configured backend base address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// =============================================================================
// OPERATIONS
// =============================================================================

// FetchHistory retrieves the stored conversation for userID.
//
// Message shapes are validated at this boundary: entries with an unknown
// sender or empty text are dropped (and logged), never surfaced to the UI.
// Callers substitute the default greeting on error; a fetch failure is a
// designed fallback, not a user-visible condition.
func (c *Client) FetchHistory(ctx context.Context, userID string) ([]model.Message, error) {
	endpoint := c.baseURL + "/api/history/" + url.PathEscape(userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build history request: %w", err)
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var hist historyResponse
	if err := json.Unmarshal(body, &hist); err != nil {
		return nil, fmt.Errorf("failed to decode history response: %w", err)
	}

	messages := make([]model.Message, 0, len(hist.Messages))
	for _, wm := range hist.Messages {
		sender, err := model.ParseSender(wm.Sender)
		if err != nil || wm.Text == "" {
			c.log.Warn().Str("sender", wm.Sender).Msg("dropping malformed history entry")
			continue
		}
		messages = append(messages, model.Message{Sender: sender, Text: wm.Text})
	}
	return messages, nil
}

// SendChat sends the user's message and returns Ellie's reply.
func (c *Client) SendChat(ctx context.Context, userID, message string) (string, error) {
	body, err := c.postJSON(ctx, "/api/chat", chatRequest{UserID: userID, Message: message})
	if err != nil {
		return "", err
	}

	var chat chatResponse
	if err := json.Unmarshal(body, &chat); err != nil {
		return "", fmt.Errorf("failed to decode chat response: %w", err)
	}
	return chat.Reply, nil
}

// ResetHistory asks the backend to clear the stored conversation. The
// response body is ignored; only the status matters.
func (c *Client) ResetHistory(ctx context.Context, userID string) error {
	_, err := c.postJSON(ctx, "/api/reset", resetRequest{UserID: userID})
	return err
}

// SaveProfile stores the user's name and freeform preferences.
func (c *Client) SaveProfile(ctx context.Context, userID, name, preferences string) error {
	_, err := c.postJSON(ctx, "/api/profile", profileRequest{
		UserID:      userID,
		Name:        name,
		Preferences: preferences,
	})
	return err
}

// =============================================================================
// HTTP PLUMBING
// =============================================================================

// postJSON performs a single POST of a JSON payload and returns the
// response body.
func (c *Client) postJSON(ctx context.Context, path string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

// do executes a request, logs its outcome, and converts non-2xx responses
// into *APIError.
func (c *Client) do(req *http.Request) ([]byte, error) {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Str("method", req.Method).Str("path", req.URL.Path).Err(err).
			Msg("backend request failed")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := readBody(resp)
	if err != nil {
		return nil, err
	}

	c.log.Info().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("backend request")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errorFromResponse(resp.StatusCode, body)
	}
	return body, nil
}

// readBody reads a response body with a size limit.
func readBody(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(body)) == MaxResponseSize {
		return nil, fmt.Errorf("response exceeded maximum size of %d bytes", MaxResponseSize)
	}
	return body, nil
}

// errorFromResponse builds an *APIError from a non-success response,
// preferring the backend's "detail" field when it parses.
func errorFromResponse(statusCode int, body []byte) error {
	var detail detailResponse
	if err := json.Unmarshal(body, &detail); err == nil && detail.Detail != "" {
		return &APIError{Status: statusCode, Detail: detail.Detail}
	}
	return &APIError{Status: statusCode}
}
