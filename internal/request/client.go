package request

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Alessio99-a/fetchbind/internal/fetch"
)

const (
	defaultUserAgent = "fetchbind/0.1"
	defaultTimeout   = 30 * time.Second

	// bodyExcerptLimit bounds how much of an error response body is kept.
	bodyExcerptLimit = 512
)

// Ensure Client satisfies the coordinator's transport contract at compile time.
var _ fetch.Transport[json.RawMessage] = (*Client[json.RawMessage])(nil)

// Client performs HTTP requests described by fetch.Options and decodes JSON
// responses into T. It is safe for concurrent use.
type Client[T any] struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	logger    zerolog.Logger
}

type clientSettings struct {
	httpClient *http.Client
	userAgent  string
	timeout    time.Duration
}

// ClientOption customizes a Client at construction.
type ClientOption func(*clientSettings)

// WithTimeout sets the default per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(s *clientSettings) {
		s.timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(s *clientSettings) {
		s.httpClient = c
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(s *clientSettings) {
		s.userAgent = ua
	}
}

// NewClient builds a client. baseURL may be empty, in which case every
// request must carry an absolute URL. A bare host:port is normalized to an
// http URL the way local daemon binds usually are.
func NewClient[T any](baseURL string, logger zerolog.Logger, opts ...ClientOption) (*Client[T], error) {
	settings := clientSettings{
		userAgent: defaultUserAgent,
		timeout:   defaultTimeout,
	}
	for _, opt := range opts {
		opt(&settings)
	}
	if settings.httpClient == nil {
		settings.httpClient = &http.Client{Timeout: settings.timeout}
	}

	c := &Client[T]{
		http:      settings.httpClient,
		userAgent: settings.userAgent,
		logger:    logger,
	}
	if strings.TrimSpace(baseURL) != "" {
		base, err := parseBaseURL(baseURL)
		if err != nil {
			return nil, err
		}
		c.baseURL = base
	}
	return c, nil
}

// Do implements fetch.Transport. The request is built from the merged
// options, executed under ctx and its JSON payload decoded into T. Non-2xx
// responses come back as a *StatusError; every path settles even when ctx is
// cancelled mid-flight.
func (c *Client[T]) Do(ctx context.Context, opts fetch.Options) (T, error) {
	var zero T

	target, err := c.resolveTarget(opts)
	if err != nil {
		return zero, err
	}

	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	var body io.Reader
	if opts.Body != "" {
		body = strings.NewReader(opts.Body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return zero, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if opts.Body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return zero, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug().
		Str("method", method).
		Str("url", target.String()).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, bodyExcerptLimit))
		return zero, &StatusError{
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(excerpt)),
		}
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, fmt.Errorf("read response: %w", err)
	}
	if len(payload) == 0 {
		return zero, nil
	}

	var decoded T
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return zero, fmt.Errorf("decode response: %w", err)
	}
	return decoded, nil
}

func (c *Client[T]) resolveTarget(opts fetch.Options) (*url.URL, error) {
	raw := strings.TrimSpace(opts.URL)
	if raw == "" && c.baseURL == nil {
		return nil, ErrNoTarget
	}

	rel, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTarget, opts.URL, err)
	}

	target := rel
	if c.baseURL != nil {
		target = c.baseURL.ResolveReference(rel)
	}
	if !target.IsAbs() {
		return nil, fmt.Errorf("%w: %q is not absolute and no base URL is set", ErrInvalidTarget, opts.URL)
	}

	if len(opts.Query) > 0 {
		values := target.Query()
		for k, vs := range opts.Query {
			for _, v := range vs {
				values.Add(k, v)
			}
		}
		target.RawQuery = values.Encode()
	}
	return target, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: base %q: %v", ErrInvalidTarget, raw, err)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
