package httpclient

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/repopulse/repopulse/pkg/cache"
	"github.com/repopulse/repopulse/pkg/errors"
)

const defaultTimeout = 10 * time.Second

// Client performs synchronous HTTP requests, one at a time. Default headers
// are applied to every request; per-request headers override them.
type Client struct {
	http     *http.Client
	headers  map[string]string
	cache    cache.Cache
	cacheTTL time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHeaders sets default headers applied to all requests.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) { c.headers = headers }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithCache enables caching of successful GET responses with the given TTL.
func WithCache(store cache.Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = store
		c.cacheTTL = ttl
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New creates a Client. Without options it uses a 10 second timeout, no
// default headers and no caching.
func New(opts ...Option) *Client {
	c := &Client{
		http:  &http.Client{Timeout: defaultTimeout},
		cache: cache.NewNullCache(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do constructs and sends a single HTTP request.
//
// Headers and any JSON body are validated before the request is built;
// validation failures return INVALID_HEADER, INVALID_JSON or INVALID_URL
// errors. A non-empty body sets Content-Type: application/json.
//
// Transport failures are not returned as errors: the failure reason becomes
// the response body and the status code is [StatusConnectFailure].
func (c *Client) Do(ctx context.Context, method, rawURL, bodyJSON string, headers map[string]string) (*Response, error) {
	if err := ValidateURL(rawURL); err != nil {
		return nil, err
	}

	merged := make(map[string]string, len(c.headers)+len(headers)+1)
	for k, v := range c.headers {
		merged[k] = v
	}
	for k, v := range headers {
		merged[k] = v
	}
	if err := ValidateHeaders(merged); err != nil {
		return nil, err
	}

	var body io.Reader
	if bodyJSON != "" {
		if err := ValidateJSON(bodyJSON); err != nil {
			return nil, err
		}
		merged["Content-Type"] = "application/json"
		body = strings.NewReader(bodyJSON)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "build %s request for %s", method, rawURL)
	}
	for k, v := range merged {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Response{
			StatusCode: StatusConnectFailure,
			Body:       reason(err),
			Headers:    req.Header.Clone(),
		}, nil
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Response{
			StatusCode: StatusConnectFailure,
			Body:       reason(err),
			Headers:    resp.Header,
		}, nil
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       string(data),
		Headers:    resp.Header,
	}, nil
}

// Get performs an HTTP GET request. Query parameters, if any, are encoded
// onto the URL. Successful responses are cached when caching is enabled.
func (c *Client) Get(ctx context.Context, rawURL string, query url.Values, headers map[string]string) (*Response, error) {
	if len(query) > 0 {
		rawURL += "?" + query.Encode()
	}

	key := cache.Key(http.MethodGet, rawURL)
	if data, hit, _ := c.cache.Get(ctx, key); hit {
		var cached Response
		if json.Unmarshal(data, &cached) == nil {
			return &cached, nil
		}
	}

	resp, err := c.Do(ctx, http.MethodGet, rawURL, "", headers)
	if err != nil {
		return nil, err
	}
	if resp.OK() {
		if data, err := json.Marshal(resp); err == nil {
			_ = c.cache.Set(ctx, key, data, c.cacheTTL)
		}
	}
	return resp, nil
}

// Head performs an HTTP HEAD request.
func (c *Client) Head(ctx context.Context, rawURL string, headers map[string]string) (*Response, error) {
	return c.Do(ctx, http.MethodHead, rawURL, "", headers)
}

// Options performs an HTTP OPTIONS request.
func (c *Client) Options(ctx context.Context, rawURL string, headers map[string]string) (*Response, error) {
	return c.Do(ctx, http.MethodOptions, rawURL, "", headers)
}

// Post performs an HTTP POST request with a JSON body.
func (c *Client) Post(ctx context.Context, rawURL, bodyJSON string, headers map[string]string) (*Response, error) {
	return c.Do(ctx, http.MethodPost, rawURL, bodyJSON, headers)
}

// Put performs an HTTP PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, rawURL, bodyJSON string, headers map[string]string) (*Response, error) {
	return c.Do(ctx, http.MethodPut, rawURL, bodyJSON, headers)
}

// Patch performs an HTTP PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, rawURL, bodyJSON string, headers map[string]string) (*Response, error) {
	return c.Do(ctx, http.MethodPatch, rawURL, bodyJSON, headers)
}

// Delete performs an HTTP DELETE request.
func (c *Client) Delete(ctx context.Context, rawURL string, headers map[string]string) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, rawURL, "", headers)
}

// reason extracts the underlying failure reason from a transport error,
// unwrapping the url.Error shell around it.
func reason(err error) string {
	var uerr *url.Error
	if stderrors.As(err, &uerr) {
		return uerr.Err.Error()
	}
	return err.Error()
}
