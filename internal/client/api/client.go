package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/dmitrijs2005/pointquest-admin/internal/client/notify"
	"github.com/dmitrijs2005/pointquest-admin/internal/logging"
)

const (
	DefaultTimeout   = 15 * time.Second
	RequestIDHeader  = "X-Request-ID"
	maxResponseBytes = 16 << 20
)

// TokenSource yields the bearer token for outgoing requests; "" sends none.
type TokenSource interface {
	Token() string
}

type Options struct {
	// BaseURL is the API root including its base path, e.g.
	// "http://127.0.0.1:8080/api".
	BaseURL string
	// Timeout bounds each request; DefaultTimeout when zero.
	Timeout time.Duration
	// RequestsPerSecond throttles outgoing calls; <= 0 means unlimited.
	RequestsPerSecond float64
	Notifier          notify.Notifier
	Logger            logging.Logger
	// HTTPClient replaces the default client; Timeout and the cookie jar
	// are then the caller's business.
	HTTPClient *http.Client
}

type Client struct {
	baseURL  string
	http     *http.Client
	limiter  *rate.Limiter
	notifier notify.Notifier
	log      logging.Logger

	mu     sync.RWMutex
	tokens TokenSource
}

func New(opts Options) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", opts.BaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: scheme and host are required", opts.BaseURL)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, err
		}
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout, Jar: jar}
	}

	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}

	c := &Client{
		baseURL:  base,
		http:     httpClient,
		limiter:  rate.NewLimiter(limit, 1),
		notifier: opts.Notifier,
		log:      opts.Logger,
	}
	if c.notifier == nil {
		c.notifier = notify.Nop{}
	}
	if c.log == nil {
		c.log = logging.Discard()
	}
	return c, nil
}

// UseTokenSource sets where the bearer token comes from. It is set after
// construction because the session that owns the token itself depends on
// the client.
func (c *Client) UseTokenSource(ts TokenSource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens = ts
}

func (c *Client) token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.tokens == nil {
		return ""
	}
	return c.tokens.Token()
}

// Request describes one API call. Path is relative to the base URL and must
// already be escaped. At most one of JSON and Raw is used.
type Request struct {
	Method      string
	Path        string
	Query       url.Values
	JSON        any
	Raw         []byte
	ContentType string
}

func (c *Client) newHTTPRequest(ctx context.Context, r Request) (*http.Request, error) {
	target := c.baseURL + r.Path
	if len(r.Query) > 0 {
		target += "?" + r.Query.Encode()
	}

	var body io.Reader
	contentType := r.ContentType
	switch {
	case r.JSON != nil:
		b, err := json.Marshal(r.JSON)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(b)
		if contentType == "" {
			contentType = "application/json"
		}
	case r.Raw != nil:
		body = bytes.NewReader(r.Raw)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, target, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	return req, nil
}

// do performs the round trip and returns the body of a 2xx response. Any
// other outcome is an *Error built by transportError.
func (c *Client) do(ctx context.Context, r Request) (int, []byte, *Error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, nil, transportError(0, nil, err)
	}

	req, err := c.newHTTPRequest(ctx, r)
	if err != nil {
		return 0, nil, transportError(0, nil, err)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(ctx, "api request failed", "method", r.Method, "path", r.Path,
			"request_id", req.Header.Get(RequestIDHeader), "error", err)
		return 0, nil, transportError(0, nil, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	c.log.Debug(ctx, "api request", "method", r.Method, "path", r.Path, "status", resp.StatusCode,
		"request_id", req.Header.Get(RequestIDHeader), "duration", time.Since(start))
	if err != nil {
		return resp.StatusCode, nil, transportError(0, nil, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, body, transportError(resp.StatusCode, body, nil)
	}
	return resp.StatusCode, body, nil
}

// fail surfaces e to the user and returns it as an error.
func (c *Client) fail(ctx context.Context, e *Error) error {
	c.notifier.Error(ctx, e.Message)
	level := c.log.Warn
	if errors.Is(e, ErrUnavailable) {
		level = c.log.Error
	}
	level(ctx, "api call failed", e.logAttrs()...)
	return e
}

// call sends r and normalises the response into T.
func call[T any](ctx context.Context, c *Client, r Request) (T, error) {
	var zero T

	status, body, apiErr := c.do(ctx, r)
	if apiErr != nil {
		return zero, c.fail(ctx, apiErr)
	}

	out, apiErr := normalize[T](status, body)
	if apiErr != nil {
		return zero, c.fail(ctx, apiErr)
	}
	return out, nil
}

// exec is call for endpoints whose data is ignored; a success body that is
// not JSON is accepted.
func (c *Client) exec(ctx context.Context, r Request) error {
	status, body, apiErr := c.do(ctx, r)
	if apiErr != nil {
		return c.fail(ctx, apiErr)
	}
	if _, apiErr := normalize[json.RawMessage](status, body); apiErr != nil && apiErr.Kind != KindDecode {
		return c.fail(ctx, apiErr)
	}
	return nil
}
