// Package client talks to the portfolio API. *Client satisfies the edit
// session's Store.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"pfa/internal/models"
	"pfa/internal/portfolio"
)

const (
	apiPrefix      = "/api/v1"
	defaultTimeout = 30 * time.Second
)

// Client is an HTTP client for the portfolio endpoints. Without a token,
// requests run in guest mode.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithToken attaches a bearer credential to every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a client for the API served at baseURL, e.g.
// "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch loads the current snapshot.
func (c *Client) Fetch(ctx context.Context) (portfolio.Snapshot, error) {
	return c.do(ctx, "fetch", http.MethodGet, "/portfolio", nil)
}

// Save replaces every record on the server with records.
func (c *Client) Save(ctx context.Context, records models.Records) (portfolio.Snapshot, error) {
	return c.do(ctx, "save", http.MethodPut, "/portfolio", records)
}

// UpdateTaxProfile sets the filing status and state.
func (c *Client) UpdateTaxProfile(ctx context.Context, status models.FilingStatus, state string) (portfolio.Snapshot, error) {
	body := map[string]string{
		"filing_status": string(status),
		"state":         state,
	}
	return c.do(ctx, "update tax profile", http.MethodPut, "/tax_info", body)
}

func (c *Client) do(ctx context.Context, op, method, path string, body any) (portfolio.Snapshot, error) {
	var snap portfolio.Snapshot

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return snap, &TransportError{Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, reader)
	if err != nil {
		return snap, &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return snap, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return snap, &TransportError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return snap, classify(op, method, resp.StatusCode, data)
	}

	if err := json.Unmarshal(data, &snap); err != nil {
		return snap, &TransportError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode snapshot: %w", err)}
	}
	return snap, nil
}

// classify turns a non-200 response into a ValidationError when the server
// rejected a write, and a TransportError otherwise.
func classify(op, method string, status int, data []byte) error {
	code, message := errorBody(data)

	rejected := status == http.StatusBadRequest || status == http.StatusUnprocessableEntity
	if method != http.MethodGet && rejected {
		if message == "" {
			message = genericRejection
		}
		return &ValidationError{StatusCode: status, Code: code, Message: message}
	}
	return &TransportError{Op: op, StatusCode: status, Message: message}
}
