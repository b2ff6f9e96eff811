// Package gitapi implements the request-dispatch core shared by every
// endpoint binding: a pure request builder (path template + named params +
// options routed by method) and a call executor that performs exactly one
// HTTP round trip and normalizes the response into a small result contract.
package gitapi

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
)

const (
	defaultBaseURL = "https://api.github.com"
	acceptType     = "application/vnd.github+json"
	apiVersion     = "2022-11-28"

	defaultUserAgent = "repolens"

	// maxBodySize caps how much of a response body is read.
	maxBodySize = 1 << 22
)

// Client executes API calls described by descriptors. It is immutable after
// construction and safe for concurrent use: each call is a single-shot
// request/response transaction with no state carried between calls.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	auth       Auth
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the transport used for the HTTP exchange. Connection
// pooling, retries, and rate limiting are that client's policy, not the
// executor's.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithAuth sets the credentials applied to every outgoing request.
func WithAuth(auth Auth) Option {
	return func(c *Client) {
		c.auth = auth
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// New creates a Client for the API at baseURL. An empty baseURL selects the
// public endpoint.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL %q: %w", baseURL, err)
	}

	c := &Client{
		baseURL:    parsed,
		httpClient: http.DefaultClient,
		userAgent:  defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Do executes one call and decodes a 2xx JSON response into out. A nil out
// discards the body, which is how action endpoints (add/remove/delete) are
// called: for them a 2xx with an empty body is plain success. A non-nil out
// with an empty 2xx body yields ErrNoContent. Any non-2xx response is
// returned as *APIError with the exact status; Do never converts a status
// into a domain answer on the caller's behalf. Transport failures propagate
// wrapped, never as a boolean.
func (c *Client) Do(ctx context.Context, desc *Descriptor, out any) error {
	req, err := c.newRequest(ctx, desc)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", desc.Method, desc.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", desc.Method, desc.Path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, body)
	}
	if out == nil {
		return nil
	}
	if len(body) == 0 || resp.StatusCode == http.StatusNoContent {
		return ErrNoContent
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", desc.Method, desc.Path, err)
	}
	return nil
}

// Check executes a membership probe: endpoints where the presence or
// absence of the resource is encoded as 2xx-empty versus 404. It returns
// (true, nil) on 2xx, (false, nil) on 404, and (false, err) for every other
// failure — a 500 is a system failure, never a negative answer. This is the
// only place a status is translated into a boolean.
func (c *Client) Check(ctx context.Context, desc *Descriptor) (bool, error) {
	err := c.Do(ctx, desc, nil)
	if err == nil {
		return true, nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return false, nil
	}
	return false, err
}

func (c *Client) newRequest(ctx context.Context, desc *Descriptor) (*http.Request, error) {
	u := *c.baseURL
	u.Path = joinPath(u.Path, desc.Path)
	if len(desc.Query) > 0 {
		u.RawQuery = desc.Query.Encode()
	}

	var reqBody io.Reader
	if desc.Body != nil {
		raw, err := json.Marshal(desc.Body)
		if err != nil {
			return nil, fmt.Errorf("%s %s: encode body: %w", desc.Method, desc.Path, err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, desc.Method, u.String(), reqBody)
	if err != nil {
		return nil, fmt.Errorf("%s %s: create request: %w", desc.Method, desc.Path, err)
	}

	req.Header.Set("Accept", acceptType)
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	req.Header.Set("User-Agent", c.userAgent)
	if desc.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.auth != nil {
		c.auth.Apply(req)
	}
	return req, nil
}

func joinPath(base, resource string) string {
	if resource == "" {
		return base
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + strings.TrimPrefix(resource, "/")
}
