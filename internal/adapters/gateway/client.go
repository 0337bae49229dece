package gateway

// Package gateway provides HTTP clients for the microservice surface behind
// the platform gateway. Every endpoint shape is the backend's contract;
// responses are decoded loosely and unknown fields ignored.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AbdelhakNemri/sports-arena-client/internal/ports"
)

// ClientOptions groups dependencies for the gateway client.
type ClientOptions struct {
	BaseURL string           // Required: gateway base URL
	Tokens  ports.TokenStore // Optional: bearer source for authenticated calls
	Timeout time.Duration    // Optional: per-request timeout (default 15s)
	Logger  *slog.Logger     // Optional: structured logger

	// HTTPClient overrides the underlying client (testing).
	HTTPClient *http.Client
}

// Client is the shared HTTP core for all gateway sub-clients. It injects the
// bearer token and a per-request correlation ID, and maps HTTP failures into
// APIError values carrying the verbatim status and server message.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  ports.TokenStore
	logger  *slog.Logger
}

// New constructs a gateway client.
func New(opts ClientOptions) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, errors.New("gateway base URL is required")
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := opts.Logger
	if logger != nil {
		logger = logger.With("component", "gateway_client")
	}

	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http:    httpClient,
		tokens:  opts.Tokens,
		logger:  logger,
	}, nil
}

// Auth returns the auth service sub-client.
func (c *Client) Auth() *AuthAPI { return &AuthAPI{c: c} }

// Players returns the player service sub-client.
func (c *Client) Players() *PlayersAPI { return &PlayersAPI{c: c} }

// Notifications returns the notification service sub-client.
func (c *Client) Notifications() *NotificationsAPI { return &NotificationsAPI{c: c} }

// Bookings returns the booking service sub-client.
func (c *Client) Bookings() *BookingsAPI { return &BookingsAPI{c: c} }

// Fields returns the field service sub-client.
func (c *Client) Fields() *FieldsAPI { return &FieldsAPI{c: c} }

// Events returns the event service sub-client.
func (c *Client) Events() *EventsAPI { return &EventsAPI{c: c} }

// Admin returns the admin dashboard sub-client.
func (c *Client) Admin() *AdminAPI { return &AdminAPI{c: c} }

// APIError is an HTTP-level failure from the gateway, preserved verbatim for
// caller-side interpretation. Status 0 means the gateway was unreachable.
type APIError struct {
	Status  int    `json:"status"`
	Code    string `json:"error"`
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("gateway unreachable: %s", e.Message)
	}
	if e.Message != "" {
		return fmt.Sprintf("gateway error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("gateway error %d", e.Status)
}

// StatusOf returns the HTTP status carried by err, or ok=false when err is
// not an APIError.
func StatusOf(err error) (int, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status, true
	}
	return 0, false
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.attachBearer(ctx, req)

	resp, err := c.http.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.WarnContext(ctx, "gateway request failed", "method", method, "path", path, "error", err)
		}
		return classify(&APIError{Status: 0, Message: err.Error()})
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.errorFromResponse(resp, path)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// attachBearer adds the stored token when one is present. Requests without a
// token go out unauthenticated; the backend decides whether that is allowed.
func (c *Client) attachBearer(ctx context.Context, req *http.Request) {
	if c.tokens == nil {
		return
	}
	token, err := c.tokens.Get(ctx)
	if err != nil {
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)
}

// errorFromResponse decodes the gateway's error envelope when present and
// falls back to the raw status otherwise. The status code is always the one
// the server sent.
func (c *Client) errorFromResponse(resp *http.Response, path string) error {
	apiErr := &APIError{Status: resp.StatusCode, Path: path}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && len(data) > 0 {
		var envelope APIError
		if jsonErr := json.Unmarshal(data, &envelope); jsonErr == nil {
			apiErr.Code = envelope.Code
			apiErr.Message = envelope.Message
			if envelope.Path != "" {
				apiErr.Path = envelope.Path
			}
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return classify(apiErr)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
