package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"estate-console/internal/logger"
	"estate-console/internal/session"
)

// Client is the typed HTTP client for the external estate backend. It owns
// bearer injection, the request deadline, and the retry policy; everything
// above it deals in wire DTOs and typed errors only.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     session.TokenStore
	timeout    time.Duration
	maxRetries int
	backoff    time.Duration
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout sets the per-request deadline. Default 10s.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithRetries sets the retry count and linear backoff base for idempotent
// requests. Defaults: 3 attempts, 500ms base.
func WithRetries(max int, backoff time.Duration) Option {
	return func(c *Client) {
		c.maxRetries = max
		c.backoff = backoff
	}
}

// WithHTTPClient swaps the underlying http.Client (tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func New(baseURL string, tokens session.TokenStore, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		tokens:     tokens,
		timeout:    10 * time.Second,
		maxRetries: 3,
		backoff:    500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type requestSpec struct {
	method      string
	path        string
	query       url.Values
	contentType string
	body        []byte
	// authenticated requests carry the stored bearer token; login and the
	// master-admin setup endpoints do not.
	authenticated bool
}

// do runs one request with timeout, auth and retry policy, decoding a 2xx
// JSON body into out when out is non-nil.
func (c *Client) do(ctx context.Context, spec requestSpec, out any) error {
	attempts := 1
	if c.retryable(spec.method) {
		attempts = c.maxRetries
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			// Linear backoff: base delay times the attempt number.
			select {
			case <-time.After(c.backoff * time.Duration(attempt-1)):
			case <-ctx.Done():
				return &Error{Kind: KindTimeout, Message: "Request cancelled"}
			}
		}

		err := c.doOnce(ctx, spec, out)
		if err == nil {
			return nil
		}
		lastErr = err

		if !c.shouldRetry(spec.method, err) {
			return err
		}
		logger.Warn("Retrying backend request", "method", spec.method, "path", spec.path, "attempt", attempt, "error", err)
	}
	return lastErr
}

// retryable reports whether a method may be retried at all. Only GETs are
// idempotent against this backend; mutations run exactly once.
func (c *Client) retryable(method string) bool {
	return method == http.MethodGet
}

// shouldRetry applies the failure-kind policy: network errors, timeouts,
// 5xx and 429 retry; every other 4xx is terminal.
func (c *Client) shouldRetry(method string, err error) bool {
	if !c.retryable(method) {
		return false
	}
	e, ok := AsError(err)
	if !ok {
		return false
	}
	switch e.Kind {
	case KindNetwork, KindTimeout, KindServer, KindRateLimit:
		return true
	default:
		return false
	}
}

func (c *Client) doOnce(ctx context.Context, spec requestSpec, out any) error {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u := c.baseURL + spec.path
	if len(spec.query) > 0 {
		u += "?" + spec.query.Encode()
	}

	var bodyReader io.Reader
	if spec.body != nil {
		bodyReader = bytes.NewReader(spec.body)
	}
	req, err := http.NewRequestWithContext(reqCtx, spec.method, u, bodyReader)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: fmt.Sprintf("Failed to build request: %v", err)}
	}

	if spec.contentType != "" {
		req.Header.Set("Content-Type", spec.contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	if spec.authenticated {
		token, err := c.tokens.Load()
		if err != nil {
			if errors.Is(err, session.ErrNoToken) {
				return &Error{Kind: KindAuth, Status: http.StatusUnauthorized, Message: "Not logged in"}
			}
			return &Error{Kind: KindAuth, Status: http.StatusUnauthorized, Message: err.Error()}
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	logger.BackendCall(spec.method, spec.path)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
			logger.BackendResult(spec.method, spec.path, 0, err)
			return &Error{Kind: KindTimeout, Message: "Request timed out"}
		}
		logger.BackendResult(spec.method, spec.path, 0, err)
		return &Error{Kind: KindNetwork, Message: "Could not reach the server"}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.BackendResult(spec.method, spec.path, resp.StatusCode, err)
		return &Error{Kind: KindNetwork, Message: "Failed to read response"}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := newStatusError(resp.StatusCode, body)
		if statusErr.Kind == KindAuth {
			// An invalid session is terminal: drop the stored token so the
			// next operation forces a fresh login.
			if clearErr := c.tokens.Clear(); clearErr != nil {
				logger.Error("Failed to clear session token", "error", clearErr)
			}
		}
		logger.BackendResult(spec.method, spec.path, resp.StatusCode, statusErr)
		return statusErr
	}

	logger.BackendResult(spec.method, spec.path, resp.StatusCode, nil)
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &Error{Kind: KindServer, Status: resp.StatusCode, Message: "Unexpected response from server"}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, requestSpec{method: http.MethodGet, path: path, query: query, authenticated: true}, out)
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}
	return c.do(ctx, requestSpec{
		method:        http.MethodPost,
		path:          path,
		contentType:   "application/json",
		body:          body,
		authenticated: true,
	}, out)
}

func (c *Client) putJSON(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}
	return c.do(ctx, requestSpec{
		method:        http.MethodPut,
		path:          path,
		contentType:   "application/json",
		body:          body,
		authenticated: true,
	}, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, requestSpec{method: http.MethodDelete, path: path, authenticated: true}, nil)
}
