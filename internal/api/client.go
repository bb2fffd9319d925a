package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-logr/logr"

	"github.com/grantthrive/grantctl/internal/metrics"
	"github.com/grantthrive/grantctl/internal/util/retry"
)

// DefaultBaseURL is the API root of a local GrantThrive backend.
const DefaultBaseURL = "http://localhost:5000/api"

const defaultUserAgent = "grantctl"

// TokenStore holds the bearer token between requests.
type TokenStore interface {
	Token() (string, error)
	SetToken(token string) error
	Clear() error
}

// Client is a GrantThrive API client.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenStore
	userAgent      string
	requestTimeout time.Duration
	retryOpts      []retry.Option
	log            logr.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRequestTimeout bounds every call except save and publish, which run
// under the caller's deadline. Zero disables the limit.
func WithRequestTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.requestTimeout = d
	}
}

// WithTokenStore sets where the bearer token is read from and cleared.
func WithTokenStore(ts TokenStore) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithRetry sets the backoff used for GET requests.
func WithRetry(opts ...retry.Option) Option {
	return func(c *Client) {
		c.retryOpts = opts
	}
}

// WithLogger sets the request logger.
func WithLogger(l logr.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// NewClient creates a client for the API rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		httpClient:     &http.Client{},
		userAgent:      defaultUserAgent,
		requestTimeout: 15 * time.Second,
		retryOpts: []retry.Option{
			retry.WithMaxRetries(2),
			retry.WithInitialDelay(500 * time.Millisecond),
			retry.WithMaxDelay(5 * time.Second),
		},
		log: logr.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		r = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	if c.tokens != nil {
		token, err := c.tokens.Token()
		if err != nil {
			return nil, fmt.Errorf("read token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

// do sends req and decodes a successful JSON body into out. op names the
// request in logs and metrics.
func (c *Client) do(op string, req *http.Request, out any) error {
	log := c.log.WithValues("op", op, "method", req.Method, "path", req.URL.Path)
	started := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordRequest(op, 0, time.Since(started).Seconds())
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	metrics.RecordRequest(op, resp.StatusCode, time.Since(started).Seconds())
	log.V(1).Info("API response", "status", resp.StatusCode, "elapsed", time.Since(started))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := responseError(resp.StatusCode, resp.Header.Get("Content-Type"), body)
		if errors.Is(err, ErrUnauthorized) && c.tokens != nil {
			if clearErr := c.tokens.Clear(); clearErr != nil {
				log.Error(clearErr, "Failed to clear stored token")
			}
		}
		return err
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parse response: %w (status %d)", err, resp.StatusCode)
	}
	return nil
}

// requestContext applies the request timeout to ctx.
func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.requestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.requestTimeout)
}

// get performs an idempotent GET with retries. Each attempt gets its own
// request timeout.
func (c *Client) get(ctx context.Context, op, path string, out any) error {
	onRetry := retry.WithOnRetry(func(attempt int, err error) {
		c.log.V(1).Info("Retrying request", "op", op, "attempt", attempt, "error", err.Error())
	})
	opts := append(slices.Clone(c.retryOpts), onRetry)

	err := retry.WithExponentialBackoff(ctx, func() error {
		ctx, cancel := c.requestContext(ctx)
		defer cancel()
		req, err := c.newRequest(ctx, http.MethodGet, path, nil)
		if err != nil {
			return retry.Fatal(err)
		}
		err = c.do(op, req, out)
		if err != nil && !IsRetryable(err) {
			return retry.Fatal(err)
		}
		return err
	}, opts...)

	var fatal *retry.FatalError
	if errors.As(err, &fatal) {
		return fatal.Err
	}
	return err
}

// post performs a single POST bounded by the request timeout.
func (c *Client) post(ctx context.Context, op, path string, body, out any, header http.Header) error {
	ctx, cancel := c.requestContext(ctx)
	defer cancel()
	return c.send(ctx, op, path, body, out, header)
}

// send performs a single POST bounded only by ctx.
func (c *Client) send(ctx context.Context, op, path string, body, out any, header http.Header) error {
	req, err := c.newRequest(ctx, http.MethodPost, path, body)
	if err != nil {
		return err
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	return c.do(op, req, out)
}
