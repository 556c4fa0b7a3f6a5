package api

// Package api wraps every outbound REST call: bearer attachment, the shared
// response envelope, error classification, and the global session
// invalidation contract for auth failures.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hajzi/admin-console/internal/domain/model"
	apperrors "github.com/hajzi/admin-console/internal/errors"
	"github.com/hajzi/admin-console/internal/nav"
	"github.com/hajzi/admin-console/internal/ports"
)

// Options groups dependencies for Client.
type Options struct {
	// BaseURL is the backend origin; the "/api" prefix is appended here.
	BaseURL string
	// Tokens supplies the persisted bearer token. Read-only from this side;
	// the only write the client ever performs is the destructive Clear on an
	// auth failure.
	Tokens ports.TokenStore
	// Navigator is told to jump to the login screen on an auth failure.
	// Optional; a headless embedding may omit it.
	Navigator ports.Navigator
	// Logger receives request-level diagnostics. Optional.
	Logger *slog.Logger
	// HTTPClient overrides the underlying transport. Optional.
	HTTPClient *http.Client
	// Timeout bounds each request when HTTPClient is not supplied.
	Timeout time.Duration
}

// Client is the shared HTTP client. All screens go through it; none of them
// handle 401/403-blocked themselves.
type Client struct {
	baseURL string
	hc      *http.Client
	tokens  ports.TokenStore
	nav     ports.Navigator
	logger  *slog.Logger

	onAuthFailure func()
}

// New constructs a Client. BaseURL and Tokens are required.
func New(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}
	if opts.Tokens == nil {
		return nil, errors.New("token store is required")
	}

	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/") + "/api",
		hc:      hc,
		tokens:  opts.Tokens,
		nav:     opts.Navigator,
		logger:  logger,
	}, nil
}

// SetAuthFailureHook registers a callback invoked after the client clears the
// persisted token on an auth failure. The session store uses it to drop its
// in-memory identity; wiring happens in bootstrap because the store is built
// after the client.
func (c *Client) SetAuthFailureHook(fn func()) {
	c.onAuthFailure = fn
}

// envelope is the response shape shared by every backend endpoint.
type envelope struct {
	Success    bool              `json:"success"`
	Data       json.RawMessage   `json:"data"`
	Pagination *model.Pagination `json:"pagination,omitempty"`
	Message    string            `json:"message,omitempty"`
}

// Result is a decoded successful response.
type Result struct {
	data       json.RawMessage
	Pagination *model.Pagination
	Message    string
}

// Decode unmarshals the envelope's data field into dst. A missing or null
// data field is a contract breach and classified as a validation error.
func (r *Result) Decode(dst any) error {
	if len(r.data) == 0 || string(r.data) == "null" {
		return apperrors.Decode(errors.New("response data field is absent"))
	}
	if err := json.Unmarshal(r.data, dst); err != nil {
		return apperrors.Decode(err)
	}
	return nil
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string) (*Result, error) {
	return c.Do(ctx, http.MethodGet, path, nil)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (*Result, error) {
	return c.Do(ctx, http.MethodPost, path, body)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (*Result, error) {
	return c.Do(ctx, http.MethodPut, path, body)
}

// Patch issues a PATCH request with an optional JSON body.
func (c *Client) Patch(ctx context.Context, path string, body any) (*Result, error) {
	return c.Do(ctx, http.MethodPatch, path, body)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Result, error) {
	return c.Do(ctx, http.MethodDelete, path, nil)
}

// Do issues a request against the backend and classifies the outcome per the
// client error taxonomy. Auth failures (401, or 403 with a blocked-account
// message) additionally clear the persisted token and force navigation to
// the login screen; every other error is returned to the caller untouched
// for screen-local handling.
func (c *Client) Do(ctx context.Context, method, path string, body any) (*Result, error) {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, apperrors.Network("no response from backend", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	var env envelope
	raw, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, apperrors.Network("read response body", readErr)
	}
	// Error responses are not guaranteed to carry the envelope; tolerate
	// undecodable bodies there and fall back to the status text.
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if decodeErr != nil {
			return nil, apperrors.Decode(decodeErr)
		}
		if !env.Success {
			return nil, apperrors.Validation(messageOrDefault(env.Message, "request was not successful"))
		}
		return &Result{data: env.Data, Pagination: env.Pagination, Message: env.Message}, nil
	}

	return nil, c.classifyFailure(resp.StatusCode, env.Message)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, apperrors.Decode(fmt.Errorf("encode request body: %w", err))
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, apperrors.Validationf("build request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	token, err := c.tokens.Load()
	if err != nil {
		// A broken token store must not take down read-only screens.
		c.logger.WarnContext(ctx, "load token failed", "error", err)
	} else if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}

// classifyFailure maps a non-2xx response to the client error taxonomy and
// runs the destructive auth contract where it applies.
func (c *Client) classifyFailure(status int, message string) error {
	switch {
	case status == http.StatusUnauthorized:
		c.handleAuthFailure()
		return apperrors.AuthStatus(messageOrDefault(message, "authentication required"), status)
	case status == http.StatusForbidden && isBlockedMessage(message):
		c.handleAuthFailure()
		return apperrors.AuthStatus(message, status)
	case status == http.StatusForbidden:
		return apperrors.Permission(messageOrDefault(message, "access denied"), status)
	case status >= 400 && status < 500:
		return apperrors.ValidationStatus(messageOrDefault(message, http.StatusText(status)), status)
	default:
		return apperrors.Server(messageOrDefault(message, "the server failed to process the request"), status)
	}
}

// handleAuthFailure enforces the session-invalidation contract: drop the
// persisted token, tell the session store, and force the shell to the login
// screen unless it is already there. Centralized here so no call site ever
// duplicates it.
func (c *Client) handleAuthFailure() {
	if err := c.tokens.Clear(); err != nil {
		c.logger.Warn("clear token after auth failure", "error", err)
	}
	if c.onAuthFailure != nil {
		c.onAuthFailure()
	}
	if c.nav != nil && c.nav.CurrentPath() != nav.PathLogin {
		c.nav.Navigate(nav.PathLogin)
	}
}

// isBlockedMessage reports whether a 403 message semantically marks the
// account as blocked, which the backend uses instead of a dedicated status.
func isBlockedMessage(message string) bool {
	return strings.Contains(strings.ToLower(message), "blocked")
}

func messageOrDefault(message, fallback string) string {
	if message != "" {
		return message
	}
	return fallback
}
